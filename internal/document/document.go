// Package document turns raw fetched content into a queryable, read-only
// view: a goquery tree plus whole-page visible text for HTML, decoded
// embedded structured-data objects, and per-page flat text for PDFs.
// Parsing never fails fatally; malformed fragments are skipped and the
// rest of the document stays usable.
package document

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Kind identifies the source content type of a document.
type Kind string

const (
	KindHTML Kind = "html"
	KindPDF  Kind = "pdf"
	KindText Kind = "text"
)

// Document is a derived view over one fetched page. It is owned by the
// extraction step that produced it and never mutated after construction.
type Document struct {
	URL  string
	Kind Kind

	doc        *goquery.Document
	text       string
	pages      []string // PDF page texts, in order
	structured []any    // decoded JSON-LD / framework-state trees
	degraded   []string // parse degradation reasons, for warning emission
}

// ParseHTML builds a document from HTML text. Malformed markup yields a
// best-effort tree rather than an error.
func ParseHTML(content, url string) *Document {
	d := &Document{URL: url, Kind: KindHTML}

	gq, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		// net/html only errors on reader failure; a string reader never
		// does, but keep the document usable regardless.
		zap.L().Warn("html parse failed, falling back to tag stripping",
			zap.String("url", url), zap.Error(err))
		d.degraded = append(d.degraded, "html parse failed: "+err.Error())
		d.text = normalizeWhitespace(stripTags(content))
		return d
	}

	d.doc = gq
	d.text = visibleText(gq)
	d.structured = decodeStructured(gq, url, &d.degraded)
	return d
}

// ParseText builds a document from plain text content.
func ParseText(content, url string) *Document {
	return &Document{URL: url, Kind: KindText, text: normalizeWhitespace(content)}
}

// Text returns the whole-document visible text: tags stripped, whitespace
// collapsed to single spaces. For PDFs this is all pages joined.
func (d *Document) Text() string { return d.text }

// Pages returns per-page text for PDF documents, nil otherwise.
func (d *Document) Pages() []string { return d.pages }

// Degradations lists non-fatal parse problems encountered while building
// the document.
func (d *Document) Degradations() []string { return d.degraded }

// Find runs a CSS selector query against the HTML tree. Returns an empty
// selection for non-HTML documents.
func (d *Document) Find(selector string) *goquery.Selection {
	if d.doc == nil {
		return emptySelection()
	}
	return d.doc.Find(selector)
}

// HasHTML reports whether a DOM tree is available.
func (d *Document) HasHTML() bool { return d.doc != nil }

// Even an empty input gets html/head/body synthesized, so select a tag
// that cannot exist to obtain a zero-length selection.
var emptySel = func() *goquery.Selection {
	gq, _ := goquery.NewDocumentFromReader(strings.NewReader(""))
	return gq.Find("zero-length")
}()

func emptySelection() *goquery.Selection {
	return emptySel
}

// visibleText extracts the page's visible text: script, style, noscript
// and template contents removed, remaining text concatenated with single
// spaces.
func visibleText(gq *goquery.Document) string {
	clone := gq.Selection.Clone()
	clone.Find("script, style, noscript, template").Remove()
	return normalizeWhitespace(clone.Text())
}

var whitespaceRe = regexp.MustCompile(`\s+`)

func normalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

func stripTags(s string) string {
	return tagRe.ReplaceAllString(s, " ")
}
