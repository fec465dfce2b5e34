package extract

import (
	"github.com/inhuren/agency-scraper/internal/document"
	"github.com/inhuren/agency-scraper/internal/model"
	"github.com/inhuren/agency-scraper/internal/vocab"
)

// Sectors normalizes free text into the canonical sector vocabulary.
// Surface forms map to exactly one canonical token; block-listed
// near-miss terms (work arrangements like "thuiswerk") never match.
// Output is deterministic for identical input text.
func Sectors(d *document.Document, tables *vocab.Tables) []model.Candidate {
	matched := matchSectors(d.Text(), tables)
	if len(matched) == 0 {
		return nil
	}
	return []model.Candidate{model.NewCandidate("sectors_core", matched, d.URL)}
}

// Services detects the boolean service-offering flags from keyword
// matches. A flag that never matches simply stays false.
func Services(d *document.Document, tables *vocab.Tables) []model.Candidate {
	matched := matchVocabulary(d.Text(), tables.Services)
	out := make([]model.Candidate, 0, len(matched))
	for _, flag := range matched {
		out = append(out, model.NewCandidate("services."+flag, true, d.URL))
	}
	return out
}

// RoleLevels matches seniority vocabulary on word boundaries against the
// four canonical levels.
func RoleLevels(d *document.Document, tables *vocab.Tables) []model.Candidate {
	matched := matchVocabulary(d.Text(), tables.RoleLevels)
	if len(matched) == 0 {
		return nil
	}
	return []model.Candidate{model.NewCandidate("role_levels", matched, d.URL)}
}
