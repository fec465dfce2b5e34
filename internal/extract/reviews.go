package extract

import (
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/inhuren/agency-scraper/internal/document"
	"github.com/inhuren/agency-scraper/internal/model"
	"github.com/inhuren/agency-scraper/internal/vocab"
)

// Reviews extracts review platform links from the page and an aggregate
// rating from structured data when the site publishes one.
func Reviews(d *document.Document, tables *vocab.Tables) []model.Candidate {
	var out []model.Candidate

	if ratingStr, ok := d.StructuredString("ratingValue"); ok {
		if rating, err := strconv.ParseFloat(strings.ReplaceAll(ratingStr, ",", "."), 64); err == nil {
			out = append(out, model.NewCandidate("review_rating", rating, d.URL))
		}
	}
	if countStr, ok := d.StructuredString("reviewCount"); ok {
		if count, err := strconv.Atoi(countStr); err == nil {
			out = append(out, model.NewCandidate("review_count", count, d.URL))
		}
	}

	if !d.HasHTML() {
		return out
	}

	found := map[string]string{} // platform -> url
	d.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		lowerHref := strings.ToLower(href)
		for platform, domains := range tables.ReviewPlatforms {
			if _, dup := found[platform]; dup {
				continue
			}
			for _, domain := range domains {
				if strings.Contains(lowerHref, domain) {
					found[platform] = href
					break
				}
			}
		}
	})

	if len(found) > 0 {
		platforms := make([]string, 0, len(found))
		for p := range found {
			platforms = append(platforms, p)
		}
		sort.Strings(platforms)

		sources := make([]model.ReviewSource, 0, len(found))
		for _, p := range platforms {
			sources = append(sources, model.ReviewSource{Platform: p, URL: found[p]})
		}
		out = append(out, model.NewCandidate("review_sources", sources, d.URL))
	}

	return out
}
