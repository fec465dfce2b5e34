package extract

import (
	"regexp"
	"strings"

	"github.com/inhuren/agency-scraper/internal/document"
	"github.com/inhuren/agency-scraper/internal/model"
	"github.com/inhuren/agency-scraper/internal/vocab"
)

// kvkRe locates a digit run adjacent to a recognized KvK label token.
// Format validation (exactly 8 digits) happens at finalization so a
// wrong-length number surfaces as a validation warning, not a silent miss.
var kvkRe = regexp.MustCompile(`(?i)(?:kvk|k\.v\.k\.|kamer van koophandel|chamber of commerce)(?:[\s\-:.,]|nummer|nr\.?)*\s*(\d+)`)

// KvKNumber extracts the Chamber of Commerce registration number.
func KvKNumber(d *document.Document, _ *vocab.Tables) []model.Candidate {
	m := kvkRe.FindStringSubmatch(d.Text())
	if m == nil {
		return nil
	}
	return []model.Candidate{model.NewCandidate("kvk_number", strings.TrimSpace(m[1]), d.URL)}
}
