package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inhuren/agency-scraper/internal/document"
)

func TestLogoFromHeader(t *testing.T) {
	d := document.ParseHTML(`<html><body>
		<header><img src="/assets/logo.png" alt="Delta logo"></header>
	</body></html>`, "https://delta.example/over-ons")

	cands := Logo(d, nil)
	require.Len(t, cands, 1)
	assert.Equal(t, "https://delta.example/assets/logo.png", cands[0].Value)
}

func TestLogoPrefersStructuredData(t *testing.T) {
	d := document.ParseHTML(`<html><head>
		<script type="application/ld+json">{"logo": "https://cdn.delta.example/brand/logo.svg"}</script>
	</head><body>
		<header><img src="/other-logo.png" alt="logo"></header>
	</body></html>`, "https://delta.example")

	cands := Logo(d, nil)
	require.Len(t, cands, 1)
	assert.Equal(t, "https://cdn.delta.example/brand/logo.svg", cands[0].Value)
}

func TestLogoRejectsJPEGAndBanners(t *testing.T) {
	tests := []struct {
		name, html string
	}{
		{"jpeg", `<header><img src="/logo.jpg" alt="logo"></header>`},
		{"banner keyword", `<header><img src="/hero-banner-logo.png"></header>`},
		{"banner aspect", `<header><img src="/logo.png" width="1200" height="200"></header>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := document.ParseHTML("<html><body>"+tt.html+"</body></html>", "https://x.example")
			assert.Empty(t, Logo(d, nil))
		})
	}
}

func TestLogoLazyLoadedSrc(t *testing.T) {
	d := document.ParseHTML(`<html><body>
		<nav><img data-src="//cdn.x.example/logo.svg" alt="logo"></nav>
	</body></html>`, "https://x.example")

	cands := Logo(d, nil)
	require.Len(t, cands, 1)
	assert.Equal(t, "https://cdn.x.example/logo.svg", cands[0].Value)
}

func TestLogoFallbackAnyImgWithLogoPath(t *testing.T) {
	d := document.ParseHTML(`<html><body>
		<div class="content"><img src="/static/img/logo.png"></div>
	</body></html>`, "https://x.example")

	cands := Logo(d, nil)
	require.Len(t, cands, 1)
	assert.Equal(t, "https://x.example/static/img/logo.png", cands[0].Value)
}

func TestLogoNoneFound(t *testing.T) {
	d := document.ParseHTML(`<html><body><img src="/photo.png"></body></html>`, "https://x.example")
	assert.Empty(t, Logo(d, nil))
}
