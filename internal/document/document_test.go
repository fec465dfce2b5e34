package document

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHTMLVisibleText(t *testing.T) {
	html := `<html><head>
		<style>body { color: red }</style>
		<script>var tracking = true;</script>
	</head><body>
		<h1>Uitzendbureau   Delta</h1>
		<noscript>enable js</noscript>
		<p>Wij  bieden
		uitzenden.</p>
	</body></html>`

	d := ParseHTML(html, "https://delta.example")
	assert.Equal(t, KindHTML, d.Kind)
	assert.True(t, d.HasHTML())
	assert.Equal(t, "Uitzendbureau Delta Wij bieden uitzenden.", d.Text())
	assert.NotContains(t, d.Text(), "tracking")
	assert.NotContains(t, d.Text(), "color: red")
	assert.NotContains(t, d.Text(), "enable js")
	assert.Empty(t, d.Degradations())
}

func TestParseHTMLMalformedStaysUsable(t *testing.T) {
	// Unclosed tags and stray brackets: net/html repairs what it can.
	d := ParseHTML("<html><body><p>open paragraaf <div>blok</body>", "https://x.example")
	assert.True(t, d.HasHTML())
	assert.Contains(t, d.Text(), "open paragraaf")
	assert.Contains(t, d.Text(), "blok")
}

func TestParseHTMLFindOnNonHTML(t *testing.T) {
	d := ParseText("plain content", "https://x.example")
	assert.False(t, d.HasHTML())
	assert.Equal(t, 0, d.Find("a").Length())
	assert.Equal(t, "plain content", d.Text())
}

func TestStructuredJSONLD(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{"@type": "EmploymentAgency", "logo": "https://cdn.example/logo.png",
	 "aggregateRating": {"ratingValue": "8.7", "reviewCount": "231"}}
	</script></head><body></body></html>`

	d := ParseHTML(html, "https://x.example")
	require.Len(t, d.Structured(), 1)

	logo, ok := d.StructuredString("logo")
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example/logo.png", logo)

	rating, ok := d.StructuredString("ratingValue")
	assert.True(t, ok)
	assert.Equal(t, "8.7", rating)
}

func TestStructuredNextData(t *testing.T) {
	html := `<html><body><script id="__NEXT_DATA__" type="application/json">
	{"props": {"pageProps": {"office": {"phoneNumber": "+31 20 569 59 11"}}}}
	</script></body></html>`

	d := ParseHTML(html, "https://x.example")
	phone, ok := d.StructuredString("phoneNumber")
	assert.True(t, ok)
	assert.Equal(t, "+31 20 569 59 11", phone)
}

func TestStructuredRepairsBrokenJSON(t *testing.T) {
	// Trailing comma: invalid JSON that the repair pass fixes.
	html := `<html><head><script type="application/ld+json">
	{"logo": "https://cdn.example/logo.svg",}
	</script></head><body></body></html>`

	d := ParseHTML(html, "https://x.example")
	logo, ok := d.StructuredString("logo")
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example/logo.svg", logo)
}

func TestStructuredGarbageDoesNotBreakPage(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	not json at all {{{]
	</script></head><body><p>rest of page</p></body></html>`

	d := ParseHTML(html, "https://x.example")
	// Whatever the repair pass makes of the blob, the page itself stays
	// usable and no structured field leaks out of it.
	assert.Contains(t, d.Text(), "rest of page")
	_, ok := d.StructuredString("logo")
	assert.False(t, ok)
}

func TestStructuredHas(t *testing.T) {
	html := `<html><body><script id="__NEXT_DATA__" type="application/json">
	{"widgets": ["https://widget.intercom.io/widget/abc"]}
	</script></body></html>`

	d := ParseHTML(html, "https://x.example")
	assert.True(t, d.StructuredHas("widget.intercom"))
	assert.False(t, d.StructuredHas("crisp.chat"))
}

type fakePDFExtractor struct {
	text string
	err  error
}

func (f *fakePDFExtractor) ExtractText(ctx context.Context, pdf []byte) (string, error) {
	return f.text, f.err
}

func TestParsePDFPages(t *testing.T) {
	ex := &fakePDFExtractor{text: "Tarieven  2026\fomrekenfactor 2,0\f\f"}
	d := ParsePDF(context.Background(), []byte("%PDF-"), "https://x.example/tarieven.pdf", ex)

	assert.Equal(t, KindPDF, d.Kind)
	assert.Equal(t, []string{"Tarieven 2026", "omrekenfactor 2,0"}, d.Pages())
	assert.Equal(t, "Tarieven 2026 omrekenfactor 2,0", d.Text())
	assert.Empty(t, d.Degradations())
}

func TestParsePDFFailureDegrades(t *testing.T) {
	ex := &fakePDFExtractor{err: errors.New("damaged xref table")}
	d := ParsePDF(context.Background(), []byte("junk"), "https://x.example/broken.pdf", ex)

	assert.Empty(t, d.Text())
	require.Len(t, d.Degradations(), 1)
	assert.Contains(t, d.Degradations()[0], "pdf text extraction failed")
}
