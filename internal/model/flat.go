package model

// Flat returns the record as a flat field-path → value map, nulls
// included, ready for serialization by a storage backend. Pointer fields
// flatten to nil when unset so the output schema is identical for every
// agency.
func (a *Agency) Flat() map[string]any {
	m := map[string]any{
		"id":           a.ID.String(),
		"agency_name":  a.AgencyName,
		"legal_name":   deref(a.LegalName),
		"logo_url":     deref(a.LogoURL),
		"website_url":  a.WebsiteURL,
		"brand_group":  deref(a.BrandGroup),
		"hq_city":      deref(a.HQCity),
		"hq_province":  deref(a.HQProvince),
		"kvk_number":   deref(a.KvKNumber),

		"contact_phone":      deref(a.ContactPhone),
		"contact_email":      deref(a.ContactEmail),
		"contact_form_url":   deref(a.ContactFormURL),
		"employers_page_url": deref(a.EmployersPageURL),

		"regions_served":   a.RegionsServed,
		"office_locations": a.OfficeLocations,
		"geo_focus_type":   string(a.GeoFocus),

		"sectors_core":      a.SectorsCore,
		"sectors_secondary": a.SectorsSecondary,
		"role_levels":       a.RoleLevels,
		"company_size_fit":  a.CompanySizeFit,
		"customer_segments": a.CustomerSegments,

		"focus_segments":        a.FocusSegments,
		"shift_types_supported": a.ShiftTypesSupported,
		"volume_specialisation": a.VolumeSpecialisation,
		"typical_use_cases":     a.TypicalUseCases,

		"cao_type":       string(a.CaoType),
		"abu_phases":     a.ABUPhases,
		"nbbu_phases":    a.NBBUPhases,
		"certifications": a.Certifications,
		"membership":     a.Memberships,

		"pricing_model":                 string(a.PricingModel),
		"pricing_transparency":          deref(a.PricingTransparency),
		"omrekenfactor_min":             deref(a.OmrekenfactorMin),
		"omrekenfactor_max":             deref(a.OmrekenfactorMax),
		"example_pricing_hint":          deref(a.ExamplePricingHint),
		"no_cure_no_pay":                deref(a.NoCureNoPay),
		"min_assignment_duration_weeks": deref(a.MinAssignmentWeeks),
		"min_hours_per_week":            deref(a.MinHoursPerWeek),
		"takeover_policy":               a.TakeoverPolicy,

		"avg_hourly_rate_low":          deref(a.AvgHourlyRateLow),
		"avg_hourly_rate_high":         deref(a.AvgHourlyRateHigh),
		"avg_time_to_fill_days":        deref(a.AvgTimeToFillDays),
		"speed_claims":                 a.SpeedClaims,
		"annual_placements_estimate":   deref(a.AnnualPlacements),
		"candidate_pool_size_estimate": deref(a.CandidatePoolSize),

		"review_rating":  deref(a.ReviewRating),
		"review_count":   deref(a.ReviewCount),
		"review_sources": a.ReviewSources,

		"growth_signals": a.GrowthSignals,
		"notes":          deref(a.Notes),
		"evidence_urls":  a.EvidenceURLs,
		"collected_at":   a.CollectedAt,
	}

	m["services.uitzenden"] = a.Services.Uitzenden
	m["services.detacheren"] = a.Services.Detacheren
	m["services.werving_selectie"] = a.Services.WervingSelectie
	m["services.payrolling"] = a.Services.Payrolling
	m["services.zzp_bemiddeling"] = a.Services.ZZPBemiddeling
	m["services.vacaturebemiddeling_only"] = a.Services.VacaturebemiddelingOnly
	m["services.inhouse_services"] = a.Services.InhouseServices
	m["services.msp"] = a.Services.MSP
	m["services.rpo"] = a.Services.RPO
	m["services.executive_search"] = a.Services.ExecutiveSearch
	m["services.opleiden_ontwikkelen"] = a.Services.OpleidenOntwikkelen
	m["services.reintegratie_outplacement"] = a.Services.Reintegratie

	m["digital.client_portal"] = a.Digital.ClientPortal
	m["digital.candidate_portal"] = a.Digital.CandidatePortal
	m["digital.mobile_app"] = a.Digital.MobileApp
	m["digital.api_available"] = a.Digital.APIAvailable
	m["digital.realtime_vacancy_feed"] = a.Digital.RealtimeVacancyFeed
	m["digital.self_service_contracting"] = a.Digital.SelfServiceContracting

	m["ai.internal_ai_matching"] = a.AI.InternalAIMatching
	m["ai.predictive_planning"] = a.AI.PredictivePlanning
	m["ai.chatbot_for_candidates"] = a.AI.ChatbotForCandidates
	m["ai.chatbot_for_clients"] = a.AI.ChatbotForClients
	m["ai.ai_screening"] = a.AI.AIScreening

	return m
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
