package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/inhuren/agency-scraper/internal/document"
	"github.com/inhuren/agency-scraper/internal/model"
	"github.com/inhuren/agency-scraper/internal/vocab"
)

// Portals detects candidate and client login portals. The predicate is
// total: a page with no match contributes nothing and the flags stay
// false, never null.
func Portals(d *document.Document, tables *vocab.Tables) []model.Candidate {
	text := strings.ToLower(d.Text())
	var out []model.Candidate

	if matchesAny(text, tables.PortalCandidate) || linkMatches(d, tables.PortalCandidate) {
		out = append(out, model.NewCandidate("digital.candidate_portal", true, d.URL))
	}
	if matchesAny(text, tables.PortalClient) || linkMatches(d, tables.PortalClient) {
		out = append(out, model.NewCandidate("digital.client_portal", true, d.URL))
	}
	return out
}

// Chatbot detects third-party chat widgets by their script signatures,
// in both script sources and framework page state.
func Chatbot(d *document.Document, tables *vocab.Tables) []model.Candidate {
	found := false

	d.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		haystack := strings.ToLower(src + " " + s.Text())
		for _, sig := range tables.ChatWidgets {
			if strings.Contains(haystack, strings.ToLower(sig)) {
				found = true
				return false
			}
		}
		return true
	})

	if !found {
		for _, sig := range tables.ChatWidgets {
			if d.StructuredHas(sig) {
				found = true
				break
			}
		}
	}

	if !found {
		return nil
	}
	return []model.Candidate{model.NewCandidate("ai.chatbot_for_candidates", true, d.URL)}
}

func matchesAny(lowerText string, keywords []string) bool {
	for _, kw := range keywords {
		if containsToken(lowerText, kw) {
			return true
		}
	}
	return false
}

// linkMatches checks anchor hrefs and link texts for portal keywords.
func linkMatches(d *document.Document, keywords []string) bool {
	if !d.HasHTML() {
		return false
	}
	found := false
	d.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		haystack := strings.ToLower(href + " " + a.Text())
		for _, kw := range keywords {
			if strings.Contains(haystack, strings.ToLower(kw)) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}
