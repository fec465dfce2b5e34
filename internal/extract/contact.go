package extract

import (
	"regexp"
	"strings"

	"github.com/inhuren/agency-scraper/internal/document"
	"github.com/inhuren/agency-scraper/internal/model"
	"github.com/inhuren/agency-scraper/internal/vocab"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// Dutch business phone formats: international +31 and national 0-prefixed.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+31[\s\-]?\(?0?\)?[\s\-]?\d{1,2}[\s\-]?\d{3}[\s\-]?\d{2}[\s\-]?\d{2}`),
		regexp.MustCompile(`0\d{2,3}[\s\-]?\d{3}[\s\-]?\d{2}[\s\-]?\d{2}`),
	}

	// Only generic role mailboxes qualify; personal-looking addresses are
	// out of scope by policy.
	genericMailboxPrefixes = []string{
		"info", "contact", "sales", "werkgevers", "klantenservice",
		"service", "hallo", "hello", "office", "recruitment",
	}
)

// Contact extracts a business phone number and a generic role-based email
// address from page text.
func Contact(d *document.Document, _ *vocab.Tables) []model.Candidate {
	text := d.Text()
	var out []model.Candidate

	for _, re := range phonePatterns {
		if m := re.FindString(text); m != "" {
			out = append(out, model.NewCandidate("contact_phone", strings.TrimSpace(m), d.URL))
			break
		}
	}

	for _, email := range emailRe.FindAllString(text, 10) {
		if isGenericMailbox(email) {
			out = append(out, model.NewCandidate("contact_email", strings.ToLower(email), d.URL))
			break
		}
	}

	return out
}

func isGenericMailbox(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 {
		return false
	}
	local := strings.ToLower(email[:at])
	for _, prefix := range genericMailboxPrefixes {
		if local == prefix {
			return true
		}
	}
	return false
}
