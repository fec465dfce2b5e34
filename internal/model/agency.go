package model

import (
	"time"

	"github.com/google/uuid"
)

// GeoFocus describes the geographic reach of an agency.
type GeoFocus string

const (
	GeoFocusLocal         GeoFocus = "local"
	GeoFocusRegional      GeoFocus = "regional"
	GeoFocusNational      GeoFocus = "national"
	GeoFocusInternational GeoFocus = "international"
)

// CaoType identifies the collective labor agreement an agency follows.
type CaoType string

const (
	CaoABU      CaoType = "ABU"
	CaoNBBU     CaoType = "NBBU"
	CaoEigen    CaoType = "eigen_cao"
	CaoOnbekend CaoType = "onbekend"
)

// PricingModel describes how an agency structures its rates.
type PricingModel string

const (
	PricingOmrekenfactor PricingModel = "omrekenfactor"
	PricingFixedMargin   PricingModel = "fixed_margin"
	PricingFixedFee      PricingModel = "fixed_fee"
	PricingUnknown       PricingModel = "unknown"
)

// OfficeLocation is one physical office, resolved to a province where the
// city is known. Unresolved cities keep an empty province rather than being
// dropped.
type OfficeLocation struct {
	City     string `json:"city"`
	Province string `json:"province,omitempty"`
}

// Services holds the boolean service-offering flags. False means
// "not detected", never "confirmed absent".
type Services struct {
	Uitzenden               bool `json:"uitzenden"`
	Detacheren              bool `json:"detacheren"`
	WervingSelectie         bool `json:"werving_selectie"`
	Payrolling              bool `json:"payrolling"`
	ZZPBemiddeling          bool `json:"zzp_bemiddeling"`
	VacaturebemiddelingOnly bool `json:"vacaturebemiddeling_only"`
	InhouseServices         bool `json:"inhouse_services"`
	MSP                     bool `json:"msp"`
	RPO                     bool `json:"rpo"`
	ExecutiveSearch         bool `json:"executive_search"`
	OpleidenOntwikkelen     bool `json:"opleiden_ontwikkelen"`
	Reintegratie            bool `json:"reintegratie_outplacement"`
}

// DigitalCapabilities holds detected digital self-service features.
type DigitalCapabilities struct {
	ClientPortal          bool `json:"client_portal"`
	CandidatePortal       bool `json:"candidate_portal"`
	MobileApp             bool `json:"mobile_app"`
	APIAvailable          bool `json:"api_available"`
	RealtimeVacancyFeed   bool `json:"realtime_vacancy_feed"`
	SelfServiceContracting bool `json:"self_service_contracting"`
}

// AICapabilities holds detected AI-related features.
type AICapabilities struct {
	InternalAIMatching   bool `json:"internal_ai_matching"`
	PredictivePlanning   bool `json:"predictive_planning"`
	ChatbotForCandidates bool `json:"chatbot_for_candidates"`
	ChatbotForClients    bool `json:"chatbot_for_clients"`
	AIScreening          bool `json:"ai_screening"`
}

// TakeoverPolicy describes the conditions for hiring a placed worker
// directly.
type TakeoverPolicy struct {
	FreeTakeoverHours *int   `json:"free_takeover_hours,omitempty"`
	FreeTakeoverWeeks *int   `json:"free_takeover_weeks,omitempty"`
	FeeModel          string `json:"overname_fee_model,omitempty"`
	FeeHint           string `json:"overname_fee_hint,omitempty"`
}

// ReviewSource is one external review platform linked from the site.
type ReviewSource struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Agency is the fixed-schema output record for one staffing agency.
// Every field is independently nullable; absence is a valid terminal
// state. Invariant: every populated field has at least one entry in
// EvidenceURLs.
type Agency struct {
	ID uuid.UUID `json:"id"`

	// Identity
	AgencyName string  `json:"agency_name"`
	LegalName  *string `json:"legal_name"`
	LogoURL    *string `json:"logo_url"`
	WebsiteURL string  `json:"website_url"`
	BrandGroup *string `json:"brand_group"`
	HQCity     *string `json:"hq_city"`
	HQProvince *string `json:"hq_province"`
	KvKNumber  *string `json:"kvk_number"`

	// Contact (business-only, no personal data)
	ContactPhone     *string `json:"contact_phone"`
	ContactEmail     *string `json:"contact_email"`
	ContactFormURL   *string `json:"contact_form_url"`
	EmployersPageURL *string `json:"employers_page_url"`

	// Geography
	RegionsServed   []string         `json:"regions_served"`
	OfficeLocations []OfficeLocation `json:"office_locations"`
	GeoFocus        GeoFocus         `json:"geo_focus_type"`

	// Market positioning
	SectorsCore      []string `json:"sectors_core"`
	SectorsSecondary []string `json:"sectors_secondary"`
	RoleLevels       []string `json:"role_levels"`
	CompanySizeFit   []string `json:"company_size_fit"`
	CustomerSegments []string `json:"customer_segments"`

	// Specialisations
	FocusSegments        []string `json:"focus_segments"`
	ShiftTypesSupported  []string `json:"shift_types_supported"`
	VolumeSpecialisation string   `json:"volume_specialisation"`
	TypicalUseCases      []string `json:"typical_use_cases"`

	// Services
	Services Services `json:"services"`

	// Legal / CAO & compliance
	CaoType        CaoType  `json:"cao_type"`
	ABUPhases      []string `json:"abu_phases"`
	NBBUPhases     []string `json:"nbbu_phases"`
	Certifications []string `json:"certifications"`
	Memberships    []string `json:"membership"`

	// Pricing & commercial conditions
	PricingModel        PricingModel   `json:"pricing_model"`
	PricingTransparency *string        `json:"pricing_transparency"`
	OmrekenfactorMin    *float64       `json:"omrekenfactor_min"`
	OmrekenfactorMax    *float64       `json:"omrekenfactor_max"`
	ExamplePricingHint  *string        `json:"example_pricing_hint"`
	NoCureNoPay         *bool          `json:"no_cure_no_pay"`
	MinAssignmentWeeks  *int           `json:"min_assignment_duration_weeks"`
	MinHoursPerWeek     *int           `json:"min_hours_per_week"`
	TakeoverPolicy      TakeoverPolicy `json:"takeover_policy"`

	// Operational claims
	AvgHourlyRateLow       *float64 `json:"avg_hourly_rate_low"`
	AvgHourlyRateHigh      *float64 `json:"avg_hourly_rate_high"`
	AvgTimeToFillDays      *int     `json:"avg_time_to_fill_days"`
	SpeedClaims            []string `json:"speed_claims"`
	AnnualPlacements       *int     `json:"annual_placements_estimate"`
	CandidatePoolSize      *int     `json:"candidate_pool_size_estimate"`

	// Digital & AI
	Digital DigitalCapabilities `json:"digital_capabilities"`
	AI      AICapabilities      `json:"ai_capabilities"`

	// Reputation
	ReviewRating  *float64       `json:"review_rating"`
	ReviewCount   *int           `json:"review_count"`
	ReviewSources []ReviewSource `json:"review_sources"`

	// Meta / provenance
	GrowthSignals []string  `json:"growth_signals"`
	Notes         *string   `json:"notes"`
	EvidenceURLs  []string  `json:"evidence_urls"`
	CollectedAt   time.Time `json:"collected_at"`
}

// NewAgency creates an empty record for one agency with defaults matching
// the schema's "not detected" states.
func NewAgency(name, websiteURL string) *Agency {
	return &Agency{
		ID:                   uuid.New(),
		AgencyName:           name,
		WebsiteURL:           websiteURL,
		GeoFocus:             GeoFocusNational,
		CaoType:              CaoOnbekend,
		PricingModel:         PricingUnknown,
		VolumeSpecialisation: "unknown",
	}
}
