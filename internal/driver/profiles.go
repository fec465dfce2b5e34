package driver

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/inhuren/agency-scraper/internal/assemble"
	"github.com/inhuren/agency-scraper/internal/document"
	"github.com/inhuren/agency-scraper/internal/model"
)

// builtinProfiles returns the profiles shipped with the binary. File
// profiles under the configured profile directory can extend or replace
// these.
func builtinProfiles() []Profile {
	return []Profile{randstadProfile(), tempoTeamProfile(), brunelProfile()}
}

func randstadProfile() Profile {
	const site = "https://www.randstad.nl"
	return Profile{
		Name:       "randstad",
		WebsiteURL: site,
		BrandGroup: "Randstad Groep Nederland",
		GeoFocus:   string(model.GeoFocusNational),
		Pages: []string{
			site,
			site + "/werkgevers",
			site + "/over-randstad",
			site + "/over-randstad/contact",
			site + "/werkgevers/uitzenden",
			site + "/werkgevers/detachering",
		},
		Seed: []model.Candidate{
			model.NewCandidate("services.uitzenden", true, site),
			model.NewCandidate("services.detacheren", true, site),
			model.NewCandidate("services.werving_selectie", true, site),
			model.NewCandidate("services.payrolling", true, site),
			model.NewCandidate("services.inhouse_services", true, site),
			model.NewCandidate("services.msp", true, site),
			model.NewCandidate("membership", "ABU", site),
			model.NewCandidate("cao_type", string(model.CaoABU), site),
			model.NewCandidate("digital.client_portal", true, site),
			model.NewCandidate("digital.candidate_portal", true, site),
			model.NewCandidate("digital.mobile_app", true, site),
			model.NewCandidate("focus_segments", []string{"blue_collar", "white_collar", "young_professionals"}, site),
		},
		Hooks: []Hook{employersPageHook(site + "/werkgevers")},
	}
}

func tempoTeamProfile() Profile {
	const site = "https://www.tempo-team.nl"
	return Profile{
		Name:       "tempo-team",
		WebsiteURL: site,
		BrandGroup: "Randstad Groep Nederland",
		GeoFocus:   string(model.GeoFocusNational),
		Pages: []string{
			site,
			site + "/werkgevers",
			site + "/over-tempo-team",
			site + "/over-tempo-team/contact",
			site + "/vestigingen",
		},
		Seed: []model.Candidate{
			model.NewCandidate("services.uitzenden", true, site),
			model.NewCandidate("membership", "ABU", site),
		},
		Hooks: []Hook{
			employersPageHook(site + "/werkgevers"),
			legalNameHook("Tempo-Team"),
		},
	}
}

func brunelProfile() Profile {
	const site = "https://www.brunel.net/nl-nl"
	return Profile{
		Name:       "brunel",
		WebsiteURL: site,
		BrandGroup: "Brunel International",
		GeoFocus:   string(model.GeoFocusInternational),
		Pages: []string{
			site,
			site + "/werkgevers",
			site + "/contact",
		},
		Seed: []model.Candidate{
			model.NewCandidate("services.detacheren", true, site),
			model.NewCandidate("services.werving_selectie", true, site),
			model.NewCandidate("focus_segments", []string{"specialists", "engineering"}, site),
		},
		Hooks: []Hook{
			// Brunel keeps contact details in framework page state rather
			// than the rendered DOM.
			func(d *document.Document, a *assemble.Assembler) {
				if phone, ok := d.StructuredString("phoneNumber"); ok {
					a.Apply(model.NewCandidate("contact_phone", phone, d.URL))
				}
				if email, ok := d.StructuredString("emailAddress"); ok {
					a.Apply(model.NewCandidate("contact_email", strings.ToLower(email), d.URL))
				}
			},
		},
	}
}

// employersPageHook records the employers page URL and a contact-form
// link found on it.
func employersPageHook(employersURL string) Hook {
	return func(d *document.Document, a *assemble.Assembler) {
		if d.URL != employersURL {
			return
		}
		a.Apply(model.NewCandidate("employers_page_url", employersURL, d.URL))

		d.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
			text := strings.ToLower(link.Text())
			if strings.Contains(text, "contact") {
				if href, ok := link.Attr("href"); ok {
					a.Apply(model.NewCandidate("contact_form_url", absolutize(employersURL, href), d.URL))
					return false
				}
			}
			return true
		})
	}
}

// legalNameHook looks for the "<Name> ... B.V." legal entity form in page
// text.
func legalNameHook(name string) Hook {
	return func(d *document.Document, a *assemble.Assembler) {
		text := d.Text()
		idx := strings.Index(text, name)
		if idx < 0 {
			return
		}
		// Search a short window after the brand name for the entity suffix.
		window := text[idx:min(idx+80, len(text))]
		for _, suffix := range []string{"B.V.", "BV", "N.V."} {
			if pos := strings.Index(window, suffix); pos > 0 {
				legal := strings.TrimSpace(window[:pos+len(suffix)])
				a.Apply(model.NewCandidate("legal_name", legal, d.URL))
				return
			}
		}
	}
}

func absolutize(base, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "/") {
		// Keep scheme+host from base.
		if i := strings.Index(strings.TrimPrefix(base, "https://"), "/"); i >= 0 {
			return base[:len("https://")+i] + href
		}
		return strings.TrimRight(base, "/") + href
	}
	return strings.TrimRight(base, "/") + "/" + href
}
