package assemble

import (
	"fmt"
	"regexp"

	"github.com/inhuren/agency-scraper/internal/model"
)

var (
	kvkRe   = regexp.MustCompile(`^\d{8}$`)
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	urlRe   = regexp.MustCompile(`^https?://`)
)

// validate checks field formats on the assembled record. A failing field
// is nulled and a validation warning emitted; nothing here fails the run.
func (a *Assembler) validate() {
	ag := a.agency

	if ag.KvKNumber != nil && !kvkRe.MatchString(*ag.KvKNumber) {
		a.Warn(model.StageValidate, "", fmt.Sprintf("kvk_number %q is not an 8-digit number, nulled", *ag.KvKNumber))
		ag.KvKNumber = nil
	}

	if ag.ContactEmail != nil && !emailRe.MatchString(*ag.ContactEmail) {
		a.Warn(model.StageValidate, "", fmt.Sprintf("contact_email %q malformed, nulled", *ag.ContactEmail))
		ag.ContactEmail = nil
	}

	for name, field := range map[string]**string{
		"logo_url":           &ag.LogoURL,
		"contact_form_url":   &ag.ContactFormURL,
		"employers_page_url": &ag.EmployersPageURL,
	} {
		if *field != nil && !urlRe.MatchString(**field) {
			a.Warn(model.StageValidate, "", fmt.Sprintf("%s %q is not an absolute URL, nulled", name, **field))
			*field = nil
		}
	}

	if ag.ReviewRating != nil && (*ag.ReviewRating < 0 || *ag.ReviewRating > 10) {
		a.Warn(model.StageValidate, "", fmt.Sprintf("review_rating %.1f out of range, nulled", *ag.ReviewRating))
		ag.ReviewRating = nil
	}

	if ag.OmrekenfactorMin != nil && ag.OmrekenfactorMax != nil &&
		*ag.OmrekenfactorMin > *ag.OmrekenfactorMax {
		a.Warn(model.StageValidate, "", "omrekenfactor range inverted, nulled")
		ag.OmrekenfactorMin = nil
		ag.OmrekenfactorMax = nil
	}
}
