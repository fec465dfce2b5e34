package extract

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/inhuren/agency-scraper/internal/document"
	"github.com/inhuren/agency-scraper/internal/model"
	"github.com/inhuren/agency-scraper/internal/vocab"
)

var bannerKeywords = []string{"banner", "hero", "slide", "carousel", "header-image", "campaign"}

// Logo finds the agency logo. Structured-data image fields outrank
// DOM-scraped candidates; only PNG and SVG sources from header, footer,
// or nav sections qualify, and anything matching a banner/hero heuristic
// is rejected.
func Logo(d *document.Document, _ *vocab.Tables) []model.Candidate {
	if src, ok := d.StructuredString("logo"); ok && acceptableLogoSrc(src) {
		return []model.Candidate{model.NewCandidate("logo_url", absoluteURL(d.URL, src), d.URL)}
	}

	if !d.HasHTML() {
		return nil
	}

	// Priority 1: chrome sections, src or alt marked as logo/brand.
	var found string
	d.Find("header img, footer img, nav img, .header img, .footer img, .navbar img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src := imgSrc(img)
		alt, _ := img.Attr("alt")
		if !acceptableLogoSrc(src) || isBannerLike(img, src) {
			return true
		}
		if strings.Contains(strings.ToLower(src), "logo") ||
			strings.Contains(strings.ToLower(src), "brand") ||
			strings.Contains(strings.ToLower(alt), "logo") {
			found = src
			return false
		}
		return true
	})

	// Priority 2: any PNG/SVG with "logo" in the path.
	if found == "" {
		d.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
			src := imgSrc(img)
			if acceptableLogoSrc(src) && strings.Contains(strings.ToLower(src), "logo") && !isBannerLike(img, src) {
				found = src
				return false
			}
			return true
		})
	}

	if found == "" {
		return nil
	}
	return []model.Candidate{model.NewCandidate("logo_url", absoluteURL(d.URL, found), d.URL)}
}

func imgSrc(img *goquery.Selection) string {
	if src, ok := img.Attr("src"); ok && src != "" {
		return src
	}
	src, _ := img.Attr("data-src")
	return src
}

// acceptableLogoSrc accepts vector or lossless-raster formats only.
func acceptableLogoSrc(src string) bool {
	if src == "" {
		return false
	}
	lower := strings.ToLower(src)
	for _, ext := range []string{".png", ".svg"} {
		if strings.HasSuffix(lower, ext) || strings.Contains(lower, ext+"?") {
			return true
		}
	}
	return false
}

// isBannerLike rejects images whose filename or dimensions suggest a
// banner or hero image rather than a logo.
func isBannerLike(img *goquery.Selection, src string) bool {
	lower := strings.ToLower(src)
	for _, kw := range bannerKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	w := attrInt(img, "width")
	h := attrInt(img, "height")
	if w > 0 && h > 0 && float64(w)/float64(h) > 4.0 {
		return true
	}
	return false
}

func attrInt(s *goquery.Selection, name string) int {
	v, ok := s.Attr(name)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSuffix(v, "px"))
	if err != nil {
		return 0
	}
	return n
}

// absoluteURL resolves src against the page URL.
func absoluteURL(page, src string) string {
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	base, err := url.Parse(page)
	if err != nil {
		return src
	}
	ref, err := url.Parse(src)
	if err != nil {
		return src
	}
	return base.ResolveReference(ref).String()
}
