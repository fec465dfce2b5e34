package extract

import (
	"strings"

	"github.com/inhuren/agency-scraper/internal/document"
	"github.com/inhuren/agency-scraper/internal/model"
	"github.com/inhuren/agency-scraper/internal/vocab"
)

// Cao detects the collective labor agreement type and phase system.
// ABU membership implies the ABU CAO unless the page names NBBU
// explicitly first.
func Cao(d *document.Document, _ *vocab.Tables) []model.Candidate {
	lower := strings.ToLower(d.Text())
	var out []model.Candidate

	switch {
	case containsToken(lower, "abu"):
		out = append(out, model.NewCandidate("cao_type", string(model.CaoABU), d.URL))
	case containsToken(lower, "nbbu"):
		out = append(out, model.NewCandidate("cao_type", string(model.CaoNBBU), d.URL))
	case strings.Contains(lower, "eigen cao"):
		out = append(out, model.NewCandidate("cao_type", string(model.CaoEigen), d.URL))
	}

	if strings.Contains(lower, "fase a") && strings.Contains(lower, "fase b") {
		out = append(out, model.NewCandidate("abu_phases", []string{"A", "B", "C"}, d.URL))
	}
	if strings.Contains(lower, "fase 1") && strings.Contains(lower, "fase 2") {
		out = append(out, model.NewCandidate("nbbu_phases", []string{"1", "2", "3", "4"}, d.URL))
	}

	return out
}
