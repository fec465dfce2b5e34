package assemble

import (
	"strings"

	"github.com/inhuren/agency-scraper/internal/model"
)

// applyField dispatches a candidate to its target field. Returns false
// when the field path is unknown or the value has the wrong type; both
// are reported as extract-stage warnings.
func (a *Assembler) applyField(c model.Candidate, override bool) bool {
	ag := a.agency

	switch {
	case strings.HasPrefix(c.FieldPath, "services."):
		return a.applyServiceFlag(c)
	case strings.HasPrefix(c.FieldPath, "digital."):
		return a.applyDigitalFlag(c)
	case strings.HasPrefix(c.FieldPath, "ai."):
		return a.applyAIFlag(c)
	}

	switch c.FieldPath {
	// Scalar strings: first non-null wins.
	case "legal_name":
		return a.setString(&ag.LegalName, c, override)
	case "logo_url":
		return a.setString(&ag.LogoURL, c, override)
	case "brand_group":
		return a.setString(&ag.BrandGroup, c, override)
	case "hq_city":
		return a.setString(&ag.HQCity, c, override)
	case "hq_province":
		return a.setString(&ag.HQProvince, c, override)
	case "kvk_number":
		return a.setString(&ag.KvKNumber, c, override)
	case "contact_phone":
		return a.setString(&ag.ContactPhone, c, override)
	case "contact_email":
		return a.setString(&ag.ContactEmail, c, override)
	case "contact_form_url":
		return a.setString(&ag.ContactFormURL, c, override)
	case "employers_page_url":
		return a.setString(&ag.EmployersPageURL, c, override)
	case "pricing_transparency":
		return a.setString(&ag.PricingTransparency, c, override)
	case "example_pricing_hint":
		return a.setString(&ag.ExamplePricingHint, c, override)
	case "notes":
		return a.setString(&ag.Notes, c, override)

	// Enum scalars carry a non-null default; first applied value wins.
	case "geo_focus_type":
		if s, ok := c.Value.(string); ok && a.claimScalar(c.FieldPath, override) {
			ag.GeoFocus = model.GeoFocus(s)
			return true
		}
		return false
	case "cao_type":
		if s, ok := c.Value.(string); ok && a.claimScalar(c.FieldPath, override) {
			ag.CaoType = model.CaoType(s)
			return true
		}
		return false
	case "pricing_model":
		if s, ok := c.Value.(string); ok && a.claimScalar(c.FieldPath, override) {
			ag.PricingModel = model.PricingModel(s)
			return true
		}
		return false
	case "volume_specialisation":
		if s, ok := c.Value.(string); ok && a.claimScalar(c.FieldPath, override) {
			ag.VolumeSpecialisation = s
			return true
		}
		return false
	case "takeover_policy.overname_fee_model":
		if s, ok := c.Value.(string); ok && a.claimScalar(c.FieldPath, override) {
			ag.TakeoverPolicy.FeeModel = s
			return true
		}
		return false
	case "takeover_policy.overname_fee_hint":
		if s, ok := c.Value.(string); ok && a.claimScalar(c.FieldPath, override) {
			ag.TakeoverPolicy.FeeHint = s
			return true
		}
		return false

	// Numeric and boolean scalars.
	case "omrekenfactor_min":
		return setPtr(&ag.OmrekenfactorMin, asFloat(c.Value), override)
	case "omrekenfactor_max":
		return setPtr(&ag.OmrekenfactorMax, asFloat(c.Value), override)
	case "avg_hourly_rate_low":
		return setPtr(&ag.AvgHourlyRateLow, asFloat(c.Value), override)
	case "avg_hourly_rate_high":
		return setPtr(&ag.AvgHourlyRateHigh, asFloat(c.Value), override)
	case "review_rating":
		return setPtr(&ag.ReviewRating, asFloat(c.Value), override)
	case "review_count":
		return setPtr(&ag.ReviewCount, asInt(c.Value), override)
	case "avg_time_to_fill_days":
		return setPtr(&ag.AvgTimeToFillDays, asInt(c.Value), override)
	case "annual_placements_estimate":
		return setPtr(&ag.AnnualPlacements, asInt(c.Value), override)
	case "candidate_pool_size_estimate":
		return setPtr(&ag.CandidatePoolSize, asInt(c.Value), override)
	case "min_assignment_duration_weeks":
		return setPtr(&ag.MinAssignmentWeeks, asInt(c.Value), override)
	case "min_hours_per_week":
		return setPtr(&ag.MinHoursPerWeek, asInt(c.Value), override)
	case "takeover_policy.free_takeover_hours":
		return setPtr(&ag.TakeoverPolicy.FreeTakeoverHours, asInt(c.Value), override)
	case "takeover_policy.free_takeover_weeks":
		return setPtr(&ag.TakeoverPolicy.FreeTakeoverWeeks, asInt(c.Value), override)
	case "no_cure_no_pay":
		if b, ok := c.Value.(bool); ok {
			return setPtr(&ag.NoCureNoPay, &b, override)
		}
		return false

	// List fields: dedup union across all pages.
	case "regions_served":
		return unionInto(&ag.RegionsServed, c.Value)
	case "sectors_core":
		return unionInto(&ag.SectorsCore, c.Value)
	case "sectors_secondary":
		return unionInto(&ag.SectorsSecondary, c.Value)
	case "role_levels":
		return unionInto(&ag.RoleLevels, c.Value)
	case "company_size_fit":
		return unionInto(&ag.CompanySizeFit, c.Value)
	case "customer_segments":
		return unionInto(&ag.CustomerSegments, c.Value)
	case "focus_segments":
		return unionInto(&ag.FocusSegments, c.Value)
	case "shift_types_supported":
		return unionInto(&ag.ShiftTypesSupported, c.Value)
	case "typical_use_cases":
		return unionInto(&ag.TypicalUseCases, c.Value)
	case "certifications":
		return unionInto(&ag.Certifications, c.Value)
	case "membership":
		return unionInto(&ag.Memberships, c.Value)
	case "abu_phases":
		return unionInto(&ag.ABUPhases, c.Value)
	case "nbbu_phases":
		return unionInto(&ag.NBBUPhases, c.Value)
	case "speed_claims":
		return unionInto(&ag.SpeedClaims, c.Value)
	case "growth_signals":
		return unionInto(&ag.GrowthSignals, c.Value)

	case "office_locations":
		return a.unionOffices(c.Value)
	case "review_sources":
		return a.unionReviewSources(c.Value)
	}

	a.Warn(model.StageExtract, c.SourceURL, "unknown field path "+c.FieldPath)
	return false
}

// setString applies first-non-null-wins to a *string field.
func (a *Assembler) setString(dst **string, c model.Candidate, override bool) bool {
	s, ok := c.Value.(string)
	if !ok || s == "" {
		return false
	}
	if *dst != nil && !override {
		return false
	}
	*dst = &s
	return true
}

// claimScalar marks an enum scalar as set; the first claim wins unless
// overriding.
func (a *Assembler) claimScalar(path string, override bool) bool {
	if _, done := a.setScalar[path]; done && !override {
		return false
	}
	a.setScalar[path] = struct{}{}
	return true
}

func setPtr[T any](dst **T, val *T, override bool) bool {
	if val == nil {
		return false
	}
	if *dst != nil && !override {
		return false
	}
	*dst = val
	return true
}

// unionInto appends new members, preserving first-seen order. Accepts a
// single string or a string slice.
func unionInto(dst *[]string, value any) bool {
	var vals []string
	switch v := value.(type) {
	case string:
		if v != "" {
			vals = []string{v}
		}
	case []string:
		vals = v
	default:
		return false
	}
	if len(vals) == 0 {
		return false
	}

	seen := make(map[string]struct{}, len(*dst))
	for _, existing := range *dst {
		seen[existing] = struct{}{}
	}
	added := false
	for _, v := range vals {
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		*dst = append(*dst, v)
		added = true
	}
	return added
}

func (a *Assembler) unionOffices(value any) bool {
	var offices []model.OfficeLocation
	switch v := value.(type) {
	case model.OfficeLocation:
		offices = []model.OfficeLocation{v}
	case []model.OfficeLocation:
		offices = v
	default:
		return false
	}

	added := false
	for _, office := range offices {
		if office.City == "" {
			continue
		}
		dup := false
		for _, existing := range a.agency.OfficeLocations {
			if existing.City == office.City {
				dup = true
				break
			}
		}
		if !dup {
			a.agency.OfficeLocations = append(a.agency.OfficeLocations, office)
			added = true
		}
	}
	return added
}

func (a *Assembler) unionReviewSources(value any) bool {
	var sources []model.ReviewSource
	switch v := value.(type) {
	case model.ReviewSource:
		sources = []model.ReviewSource{v}
	case []model.ReviewSource:
		sources = v
	default:
		return false
	}

	added := false
	for _, src := range sources {
		if src.Platform == "" {
			continue
		}
		dup := false
		for _, existing := range a.agency.ReviewSources {
			if existing.Platform == src.Platform {
				dup = true
				break
			}
		}
		if !dup {
			a.agency.ReviewSources = append(a.agency.ReviewSources, src)
			added = true
		}
	}
	return added
}

// applyServiceFlag ORs a service flag: once detected on any page, a flag
// stays true.
func (a *Assembler) applyServiceFlag(c model.Candidate) bool {
	on, ok := c.Value.(bool)
	if !ok || !on {
		return false
	}
	s := &a.agency.Services
	switch strings.TrimPrefix(c.FieldPath, "services.") {
	case "uitzenden":
		s.Uitzenden = true
	case "detacheren":
		s.Detacheren = true
	case "werving_selectie":
		s.WervingSelectie = true
	case "payrolling":
		s.Payrolling = true
	case "zzp_bemiddeling":
		s.ZZPBemiddeling = true
	case "vacaturebemiddeling_only":
		s.VacaturebemiddelingOnly = true
	case "inhouse_services":
		s.InhouseServices = true
	case "msp":
		s.MSP = true
	case "rpo":
		s.RPO = true
	case "executive_search":
		s.ExecutiveSearch = true
	case "opleiden_ontwikkelen":
		s.OpleidenOntwikkelen = true
	case "reintegratie_outplacement":
		s.Reintegratie = true
	default:
		a.Warn(model.StageExtract, c.SourceURL, "unknown service flag "+c.FieldPath)
		return false
	}
	return true
}

func (a *Assembler) applyDigitalFlag(c model.Candidate) bool {
	on, ok := c.Value.(bool)
	if !ok || !on {
		return false
	}
	d := &a.agency.Digital
	switch strings.TrimPrefix(c.FieldPath, "digital.") {
	case "client_portal":
		d.ClientPortal = true
	case "candidate_portal":
		d.CandidatePortal = true
	case "mobile_app":
		d.MobileApp = true
	case "api_available":
		d.APIAvailable = true
	case "realtime_vacancy_feed":
		d.RealtimeVacancyFeed = true
	case "self_service_contracting":
		d.SelfServiceContracting = true
	default:
		a.Warn(model.StageExtract, c.SourceURL, "unknown digital flag "+c.FieldPath)
		return false
	}
	return true
}

func (a *Assembler) applyAIFlag(c model.Candidate) bool {
	on, ok := c.Value.(bool)
	if !ok || !on {
		return false
	}
	ai := &a.agency.AI
	switch strings.TrimPrefix(c.FieldPath, "ai.") {
	case "internal_ai_matching":
		ai.InternalAIMatching = true
	case "predictive_planning":
		ai.PredictivePlanning = true
	case "chatbot_for_candidates":
		ai.ChatbotForCandidates = true
	case "chatbot_for_clients":
		ai.ChatbotForClients = true
	case "ai_screening":
		ai.AIScreening = true
	default:
		a.Warn(model.StageExtract, c.SourceURL, "unknown ai flag "+c.FieldPath)
		return false
	}
	return true
}

func asFloat(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case float32:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	}
	return nil
}

func asInt(v any) *int {
	switch n := v.(type) {
	case int:
		return &n
	case int64:
		i := int(n)
		return &i
	case float64:
		i := int(n)
		return &i
	}
	return nil
}
