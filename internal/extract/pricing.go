package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/inhuren/agency-scraper/internal/document"
	"github.com/inhuren/agency-scraper/internal/model"
	"github.com/inhuren/agency-scraper/internal/vocab"
)

var (
	// "omrekenfactor van 1,8 tot 2,2", "omrekenfactor: 1.95", etc.
	omrekenfactorRe = regexp.MustCompile(`(?i)omrekenfactor[^\d]{0,30}(\d[.,]\d{1,2})(?:[^\d]{1,15}(\d[.,]\d{1,2}))?`)

	noCureNoPayRe = regexp.MustCompile(`(?i)no[\s\-]?cure[,\s\-]{0,2}no[\s\-]?pay`)
)

// Pricing extracts commercial-condition signals: the omrekenfactor range,
// the pricing model it implies, and a no-cure-no-pay claim.
func Pricing(d *document.Document, _ *vocab.Tables) []model.Candidate {
	text := d.Text()
	var out []model.Candidate

	if m := omrekenfactorRe.FindStringSubmatch(text); m != nil {
		if min, ok := parseFactor(m[1]); ok {
			out = append(out,
				model.NewCandidate("pricing_model", string(model.PricingOmrekenfactor), d.URL),
				model.NewCandidate("omrekenfactor_min", min, d.URL),
				model.NewCandidate("pricing_transparency", "public_examples", d.URL),
			)
			if m[2] != "" {
				if max, ok := parseFactor(m[2]); ok {
					out = append(out, model.NewCandidate("omrekenfactor_max", max, d.URL))
				}
			}
		}
	} else if strings.Contains(strings.ToLower(text), "omrekenfactor") {
		out = append(out,
			model.NewCandidate("pricing_model", string(model.PricingOmrekenfactor), d.URL),
			model.NewCandidate("pricing_transparency", "explainer_only", d.URL),
		)
	}

	if noCureNoPayRe.MatchString(text) {
		out = append(out, model.NewCandidate("no_cure_no_pay", true, d.URL))
	}

	return out
}

func parseFactor(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || f < 1.0 || f > 5.0 {
		return 0, false
	}
	return f, true
}
