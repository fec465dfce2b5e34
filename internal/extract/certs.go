package extract

import (
	"github.com/inhuren/agency-scraper/internal/document"
	"github.com/inhuren/agency-scraper/internal/model"
	"github.com/inhuren/agency-scraper/internal/vocab"
)

// Certifications matches the fixed certification and membership
// vocabularies (including abbreviation variants) in document text.
// Whole-token, case-insensitive; works identically on HTML and
// PDF-extracted text.
func Certifications(d *document.Document, tables *vocab.Tables) []model.Candidate {
	var out []model.Candidate

	if certs := matchVocabulary(d.Text(), tables.Certifications); len(certs) > 0 {
		out = append(out, model.NewCandidate("certifications", certs, d.URL))
	}
	if members := matchVocabulary(d.Text(), tables.Memberships); len(members) > 0 {
		out = append(out, model.NewCandidate("membership", members, d.URL))
	}
	return out
}
