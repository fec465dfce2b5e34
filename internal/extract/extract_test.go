package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inhuren/agency-scraper/internal/document"
	"github.com/inhuren/agency-scraper/internal/model"
	"github.com/inhuren/agency-scraper/internal/vocab"
)

func loadTables(t *testing.T) *vocab.Tables {
	t.Helper()
	tables, err := vocab.Load()
	require.NoError(t, err)
	return tables
}

func htmlDoc(body, url string) *document.Document {
	return document.ParseHTML("<html><body>"+body+"</body></html>", url)
}

func findCandidate(t *testing.T, cands []model.Candidate, path string) model.Candidate {
	t.Helper()
	for _, c := range cands {
		if c.FieldPath == path {
			return c
		}
	}
	t.Fatalf("no candidate for %s in %v", path, cands)
	return model.Candidate{}
}

func hasCandidate(cands []model.Candidate, path string) bool {
	for _, c := range cands {
		if c.FieldPath == path {
			return true
		}
	}
	return false
}

func TestContainsToken(t *testing.T) {
	tests := []struct {
		text, term string
		want       bool
	}{
		{"wij leveren logistiek personeel", "logistiek", true},
		{"Logistiek en transport", "logistiek", true},
		{"wij staan voor kwaliteit", "it", false},
		{"it professionals gezocht", "it", true},
		{"werving en selectie voor mkb", "werving en selectie", true},
		{"uitzendkrachten", "uitzend", false},
		{"", "zorg", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, containsToken(tt.text, tt.term), "%q in %q", tt.term, tt.text)
	}
}

func TestSectorsDeterministicAndSorted(t *testing.T) {
	tables := loadTables(t)
	d := htmlDoc("<p>Personeel voor transport, horeca en de zorg.</p>", "https://x.example")

	first := Sectors(d, tables)
	require.Len(t, first, 1)
	assert.Equal(t, []string{"horeca", "logistiek", "zorg"}, first[0].Value)

	// Same input, same output, every time.
	for i := 0; i < 10; i++ {
		again := Sectors(d, tables)
		assert.Equal(t, first, again)
	}
}

func TestSectorsBlocklistExcluded(t *testing.T) {
	tables := loadTables(t)

	// Work arrangements that read like sectors must never normalize into
	// one, while real sector terms on the same pages still match.
	pageA := htmlDoc("<p>Wij bieden uitzenden en logistiek, thuiswerk</p>", "https://x.example/a")
	pageB := htmlDoc("<p>logistiek en horeca, oproepkracht</p>", "https://x.example/b")

	candsA := Sectors(pageA, tables)
	candsB := Sectors(pageB, tables)
	require.Len(t, candsA, 1)
	require.Len(t, candsB, 1)
	assert.Equal(t, []string{"logistiek"}, candsA[0].Value)
	assert.Equal(t, []string{"horeca", "logistiek"}, candsB[0].Value)

	servicesA := Services(pageA, tables)
	assert.True(t, hasCandidate(servicesA, "services.uitzenden"))
}

func TestServicesFlags(t *testing.T) {
	tables := loadTables(t)
	d := htmlDoc("<p>Detachering, payroll en werving en selectie voor uw organisatie.</p>", "https://x.example")

	cands := Services(d, tables)
	assert.True(t, hasCandidate(cands, "services.detacheren"))
	assert.True(t, hasCandidate(cands, "services.payrolling"))
	assert.True(t, hasCandidate(cands, "services.werving_selectie"))
	assert.False(t, hasCandidate(cands, "services.msp"))

	for _, c := range cands {
		assert.Equal(t, true, c.Value)
	}
}

func TestRoleLevels(t *testing.T) {
	tables := loadTables(t)
	d := htmlDoc("<p>Van starter tot senior specialist, ook voor studenten.</p>", "https://x.example")

	cands := RoleLevels(d, tables)
	require.Len(t, cands, 1)
	assert.Equal(t, []string{"senior", "starter", "student"}, cands[0].Value)
}

func TestRoleLevelsBijbaan(t *testing.T) {
	tables := loadTables(t)
	d := htmlDoc("<p>Op zoek naar een leuke bijbaan naast je studie?</p>", "https://x.example")

	// "bijbaan" is a student-level signal even though it is blocked as a
	// sector term.
	cands := RoleLevels(d, tables)
	require.Len(t, cands, 1)
	assert.Equal(t, []string{"student"}, cands[0].Value)
	assert.Empty(t, Sectors(d, tables))
}

func TestKvKNumber(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"labeled", "<p>KvK-nummer: 16033314</p>", "16033314"},
		{"full label", "<p>Kamer van Koophandel 33216586</p>", "33216586"},
		{"dotted", "<p>K.v.K. nr. 12345678</p>", "12345678"},
		// Wrong-length numbers are still emitted; finalization nulls them
		// with a validation warning.
		{"too short", "<p>KVK: 123</p>", "123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := htmlDoc(tt.body, "https://x.example")
			cands := KvKNumber(d, nil)
			require.Len(t, cands, 1)
			assert.Equal(t, tt.want, cands[0].Value)
		})
	}
}

func TestKvKNumberAbsent(t *testing.T) {
	d := htmlDoc("<p>Bel ons op 030 123 45 67</p>", "https://x.example")
	assert.Empty(t, KvKNumber(d, nil))
}

func TestContact(t *testing.T) {
	d := htmlDoc("<p>Bel +31 20 569 59 11 of mail Info@Randstad.nl. Persoonlijk: j.jansen@randstad.nl</p>", "https://x.example")
	cands := Contact(d, nil)

	phone := findCandidate(t, cands, "contact_phone")
	assert.Equal(t, "+31 20 569 59 11", phone.Value)

	// Only the generic mailbox qualifies, lowercased; the personal address
	// is skipped.
	email := findCandidate(t, cands, "contact_email")
	assert.Equal(t, "info@randstad.nl", email.Value)
}

func TestContactSkipsPersonalMailboxes(t *testing.T) {
	d := htmlDoc("<p>Mail j.devries@bureau.nl voor vragen.</p>", "https://x.example")
	cands := Contact(d, nil)
	assert.False(t, hasCandidate(cands, "contact_email"))
}

func TestCao(t *testing.T) {
	tables := loadTables(t)

	abu := htmlDoc("<p>Wij volgen de ABU cao. Fase A en fase B uitgelegd.</p>", "https://x.example")
	cands := Cao(abu, tables)
	assert.Equal(t, "ABU", findCandidate(t, cands, "cao_type").Value)
	assert.Equal(t, []string{"A", "B", "C"}, findCandidate(t, cands, "abu_phases").Value)

	nbbu := htmlDoc("<p>NBBU-cao van toepassing. Van fase 1 naar fase 2.</p>", "https://x.example")
	cands = Cao(nbbu, tables)
	assert.Equal(t, "NBBU", findCandidate(t, cands, "cao_type").Value)
	assert.Equal(t, []string{"1", "2", "3", "4"}, findCandidate(t, cands, "nbbu_phases").Value)

	neutral := htmlDoc("<p>Over ons team.</p>", "https://x.example")
	assert.Empty(t, Cao(neutral, tables))
}

func TestCertificationsAndMemberships(t *testing.T) {
	tables := loadTables(t)
	d := htmlDoc("<p>NEN 4400-1 gecertificeerd, SNA-keurmerk, VCU. Lid van de ABU.</p>", "https://x.example")

	cands := Certifications(d, tables)
	certs := findCandidate(t, cands, "certifications")
	assert.Equal(t, []string{"NEN 4400-1", "SNA", "VCU"}, certs.Value)

	members := findCandidate(t, cands, "membership")
	assert.Equal(t, []string{"ABU"}, members.Value)
}

func TestPricingOmrekenfactorRange(t *testing.T) {
	d := htmlDoc("<p>Onze omrekenfactor ligt tussen 1,8 en 2,2 afhankelijk van de functie.</p>", "https://x.example")
	cands := Pricing(d, nil)

	assert.Equal(t, string(model.PricingOmrekenfactor), findCandidate(t, cands, "pricing_model").Value)
	assert.Equal(t, 1.8, findCandidate(t, cands, "omrekenfactor_min").Value)
	assert.Equal(t, 2.2, findCandidate(t, cands, "omrekenfactor_max").Value)
	assert.Equal(t, "public_examples", findCandidate(t, cands, "pricing_transparency").Value)
}

func TestPricingExplainerOnly(t *testing.T) {
	d := htmlDoc("<p>Wat is een omrekenfactor? Wij leggen het uit.</p>", "https://x.example")
	cands := Pricing(d, nil)

	assert.Equal(t, "explainer_only", findCandidate(t, cands, "pricing_transparency").Value)
	assert.False(t, hasCandidate(cands, "omrekenfactor_min"))
}

func TestPricingNoCureNoPay(t *testing.T) {
	// The comma-and-space phrasing is the common Dutch copy; the hyphen
	// and bare variants appear too.
	phrasings := []string{
		"Werving en selectie op basis van no cure, no pay.",
		"Wij werken no-cure-no-pay.",
		"No cure no pay recruitment.",
	}
	for _, text := range phrasings {
		d := htmlDoc("<p>"+text+"</p>", "https://x.example")
		cands := Pricing(d, nil)
		assert.Equal(t, true, findCandidate(t, cands, "no_cure_no_pay").Value, "phrasing %q", text)
	}
}

func TestPricingRejectsImplausibleFactor(t *testing.T) {
	d := htmlDoc("<p>omrekenfactor 9,9 aldus dit voorbeeld</p>", "https://x.example")
	cands := Pricing(d, nil)
	assert.False(t, hasCandidate(cands, "omrekenfactor_min"))
}
