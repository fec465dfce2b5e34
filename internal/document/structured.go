package document

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kaptinlin/jsonrepair"
	"go.uber.org/zap"
)

// decodeStructured scans script elements for embedded structured data:
// schema.org JSON-LD blocks and framework-injected page-state blobs
// (__NEXT_DATA__, __NUXT_DATA__). Each parseable block becomes a generic
// key-value tree. Unparseable blocks are skipped with a degradation note.
func decodeStructured(gq *goquery.Document, url string, degraded *[]string) []any {
	var trees []any

	gq.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		if tree, ok := decodeJSONTree(s.Text(), url, degraded); ok {
			trees = append(trees, tree)
		}
	})

	gq.Find(`script#__NEXT_DATA__, script#__NUXT_DATA__`).Each(func(_ int, s *goquery.Selection) {
		if tree, ok := decodeJSONTree(s.Text(), url, degraded); ok {
			trees = append(trees, tree)
		}
	})

	return trees
}

// decodeJSONTree parses a JSON blob, attempting a repair pass for the
// slightly-broken JSON (trailing commas, unquoted keys) that CMS
// templates tend to emit.
func decodeJSONTree(raw, url string, degraded *[]string) (any, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}

	var tree any
	if err := json.Unmarshal([]byte(raw), &tree); err == nil {
		return tree, true
	}

	repaired, err := jsonrepair.JSONRepair(raw)
	if err != nil {
		*degraded = append(*degraded, "structured data block unparseable")
		zap.L().Debug("structured data block unparseable",
			zap.String("url", url), zap.Error(err))
		return nil, false
	}
	if err := json.Unmarshal([]byte(repaired), &tree); err != nil {
		*degraded = append(*degraded, "structured data block unparseable after repair")
		return nil, false
	}
	return tree, true
}

// Structured returns the decoded structured-data trees, in document order.
func (d *Document) Structured() []any { return d.structured }

// StructuredString performs a deep search across all structured-data
// trees for the first string value under the given key. Structured data
// outranks DOM scraping for fields present in both.
func (d *Document) StructuredString(key string) (string, bool) {
	for _, tree := range d.structured {
		if v, ok := deepFind(tree, key, 0); ok {
			if s, ok := v.(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// StructuredHas reports whether any structured-data tree contains the key
// (at any depth) or the literal substring in a string value. Used for
// widget/component detection in framework page state.
func (d *Document) StructuredHas(needle string) bool {
	needle = strings.ToLower(needle)
	for _, tree := range d.structured {
		if deepContains(tree, needle, 0) {
			return true
		}
	}
	return false
}

const maxDepth = 32

func deepFind(node any, key string, depth int) (any, bool) {
	if depth > maxDepth {
		return nil, false
	}
	switch n := node.(type) {
	case map[string]any:
		if v, ok := n[key]; ok {
			return v, true
		}
		for _, v := range n {
			if found, ok := deepFind(v, key, depth+1); ok {
				return found, true
			}
		}
	case []any:
		for _, v := range n {
			if found, ok := deepFind(v, key, depth+1); ok {
				return found, true
			}
		}
	}
	return nil, false
}

func deepContains(node any, needle string, depth int) bool {
	if depth > maxDepth {
		return false
	}
	switch n := node.(type) {
	case string:
		return strings.Contains(strings.ToLower(n), needle)
	case map[string]any:
		for k, v := range n {
			if strings.Contains(strings.ToLower(k), needle) {
				return true
			}
			if deepContains(v, needle, depth+1) {
				return true
			}
		}
	case []any:
		for _, v := range n {
			if deepContains(v, needle, depth+1) {
				return true
			}
		}
	}
	return false
}
