package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/inhuren/agency-scraper/internal/document"
	"github.com/inhuren/agency-scraper/internal/model"
	"github.com/inhuren/agency-scraper/internal/vocab"
)

var titleCaser = cases.Title(language.Dutch)

// vestigingRe catches "vestiging <City>" phrasings for cities absent from
// the lookup table.
var vestigingRe = regexp.MustCompile(`(?i)vestiging\s+([A-ZÀ-Ž][a-zà-ž\-']{2,})`)

// Offices extracts office locations. Known cities resolve to a province
// via the static city table; unresolved cities are kept with an empty
// province rather than dropped.
func Offices(d *document.Document, tables *vocab.Tables) []model.Candidate {
	var offices []model.OfficeLocation
	seen := map[string]struct{}{}

	add := func(city, province string) {
		city = titleCaser.String(strings.ToLower(strings.TrimSpace(city)))
		if city == "" {
			return
		}
		if _, dup := seen[city]; dup {
			return
		}
		seen[city] = struct{}{}
		offices = append(offices, model.OfficeLocation{City: city, Province: province})
	}

	// Sorted city iteration keeps the emitted order reproducible across
	// runs; map order would reshuffle the list.
	cityNames := make([]string, 0, len(tables.Cities))
	for city := range tables.Cities {
		cityNames = append(cityNames, city)
	}
	sort.Strings(cityNames)

	scan := func(text string) {
		lower := strings.ToLower(text)
		for _, city := range cityNames {
			if containsToken(lower, city) {
				add(city, tables.Cities[city])
			}
		}
	}

	if d.HasHTML() {
		d.Find("h2, h3, h4, address, .office, .vestiging, .locatie").Each(func(_ int, s *goquery.Selection) {
			scan(s.Text())
		})
		d.Find("address").Each(func(_ int, s *goquery.Selection) {
			for _, m := range vestigingRe.FindAllStringSubmatch(s.Text(), -1) {
				add(m[1], tables.Province(m[1]))
			}
		})
	} else {
		// PDF and plain-text documents: match the city table against the
		// whole text.
		scan(d.Text())
	}

	for _, m := range vestigingRe.FindAllStringSubmatch(d.Text(), -1) {
		add(m[1], tables.Province(m[1]))
	}

	if len(offices) == 0 {
		return nil
	}
	return []model.Candidate{model.NewCandidate("office_locations", offices, d.URL)}
}
