// Package extract holds the extraction primitives: independent, pure
// functions that each inspect one parsed document and propose zero or
// more candidate field values with their source URL as evidence. A
// primitive that finds nothing returns nil; malformed input behaves as
// nothing found. Primitives never mutate shared state and never return
// errors to the caller.
package extract

import (
	"sort"
	"strings"
	"unicode"

	"github.com/inhuren/agency-scraper/internal/document"
	"github.com/inhuren/agency-scraper/internal/model"
	"github.com/inhuren/agency-scraper/internal/vocab"
)

// Primitive is one extraction function. The tables value is read-only
// shared state, safe across concurrent runs.
type Primitive func(d *document.Document, tables *vocab.Tables) []model.Candidate

// Standard returns the default primitive set, applied to every page in
// its configured order before any agency-specific hooks.
func Standard() []Primitive {
	return []Primitive{
		Logo,
		Contact,
		KvKNumber,
		Sectors,
		Services,
		RoleLevels,
		Portals,
		Chatbot,
		Offices,
		Certifications,
		Cao,
		Pricing,
		Reviews,
	}
}

// containsToken reports whether term occurs in text on word boundaries,
// case-insensitively. Multi-word terms match as phrases; single tokens
// must not be substrings of larger words, so "it" never matches inside
// "kwaliteit".
func containsToken(text, term string) bool {
	text = strings.ToLower(text)
	term = strings.ToLower(term)
	start := 0
	for {
		idx := strings.Index(text[start:], term)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(term)
		beforeOK := idx == 0 || !isWordByte(text[idx-1])
		afterOK := end >= len(text) || !isWordByte(text[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isWordByte(b byte) bool {
	r := rune(b)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// matchVocabulary matches a canonical→synonyms table against text and
// returns the canonical tokens, sorted, for deterministic output.
func matchVocabulary(text string, table map[string][]string) []string {
	lower := strings.ToLower(text)
	var out []string
	for canonical, forms := range table {
		for _, form := range forms {
			if containsToken(lower, form) {
				out = append(out, canonical)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

// matchSectors is matchVocabulary with the sector block list applied.
// The block list holds work arrangements ("thuiswerk", "bijbaan") that
// must never normalize into a sector; it scopes to the sector table
// only, so the same words stay usable in other vocabularies such as
// role levels.
func matchSectors(text string, tables *vocab.Tables) []string {
	lower := strings.ToLower(text)
	var out []string
	for canonical, forms := range tables.Sectors {
		if tables.Blocked(canonical) {
			continue
		}
		for _, form := range forms {
			if tables.Blocked(form) {
				continue
			}
			if containsToken(lower, form) {
				out = append(out, canonical)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}
