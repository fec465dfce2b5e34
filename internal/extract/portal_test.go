package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inhuren/agency-scraper/internal/document"
)

func TestPortalsDetected(t *testing.T) {
	tables := loadTables(t)
	d := document.ParseHTML(`<html><body>
		<a href="/mijn-omgeving">Mijn profiel</a>
		<a href="https://portal.x.example">Werkgeversportaal</a>
	</body></html>`, "https://x.example")

	cands := Portals(d, tables)
	assert.True(t, hasCandidate(cands, "digital.candidate_portal"))
	assert.True(t, hasCandidate(cands, "digital.client_portal"))
}

func TestPortalsAbsent(t *testing.T) {
	tables := loadTables(t)
	d := htmlDoc("<p>Over onze dienstverlening.</p>", "https://x.example")
	assert.Empty(t, Portals(d, tables))
}

func TestChatbotFromScriptSrc(t *testing.T) {
	tables := loadTables(t)
	d := document.ParseHTML(`<html><body>
		<script src="https://widget.intercom.io/widget/abc123"></script>
	</body></html>`, "https://x.example")

	cands := Chatbot(d, tables)
	require.Len(t, cands, 1)
	assert.Equal(t, "ai.chatbot_for_candidates", cands[0].FieldPath)
	assert.Equal(t, true, cands[0].Value)
}

func TestChatbotFromInlineScript(t *testing.T) {
	tables := loadTables(t)
	d := document.ParseHTML(`<html><body>
		<script>window.$crisp=[];d.src="https://client.crisp.chat/l.js";</script>
	</body></html>`, "https://x.example")

	assert.Len(t, Chatbot(d, tables), 1)
}

func TestChatbotFromFrameworkState(t *testing.T) {
	tables := loadTables(t)
	d := document.ParseHTML(`<html><body>
		<script id="__NUXT_DATA__" type="application/json">{"modules": ["tawk.to integration"]}</script>
	</body></html>`, "https://x.example")

	assert.Len(t, Chatbot(d, tables), 1)
}

func TestChatbotAbsent(t *testing.T) {
	tables := loadTables(t)
	d := document.ParseHTML(`<html><body><script src="/js/app.js"></script></body></html>`, "https://x.example")
	assert.Empty(t, Chatbot(d, tables))
}
