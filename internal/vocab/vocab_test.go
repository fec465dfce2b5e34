package vocab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltin(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	assert.Contains(t, tables.Sectors, "logistiek")
	assert.Contains(t, tables.Sectors, "horeca")
	assert.Contains(t, tables.Services, "uitzenden")
	assert.Contains(t, tables.Certifications, "NEN 4400-1")
	assert.Contains(t, tables.Memberships, "ABU")
	assert.NotEmpty(t, tables.PortalCandidate)
	assert.NotEmpty(t, tables.ChatWidgets)

	// Apostrophe city names survive the YAML round trip.
	assert.Contains(t, tables.Cities, "'s-gravenhage")
	assert.Contains(t, tables.Cities, "'s-hertogenbosch")
}

func TestSynonymsLowercased(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	for canonical, forms := range tables.Sectors {
		for _, f := range forms {
			assert.Equal(t, strings.ToLower(f), f, "sector %s synonym %q not lowercased", canonical, f)
		}
	}
}

func TestProvince(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	tests := []struct {
		city string
		want string
	}{
		{"Utrecht", "Utrecht"},
		{"eindhoven", "Noord-Brabant"},
		{" Den Haag ", "Zuid-Holland"},
		{"'s-Hertogenbosch", "Noord-Brabant"},
		{"'s-Gravenhage", "Zuid-Holland"},
		{"Knollendam", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tables.Province(tt.city), "city %q", tt.city)
	}
}

func TestBlocked(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	assert.True(t, tables.Blocked("thuiswerk"))
	assert.True(t, tables.Blocked("Oproepkracht"))
	assert.False(t, tables.Blocked("logistiek"))
}

func TestLoadBytesRejectsEmptySectors(t *testing.T) {
	_, err := LoadBytes([]byte("role_levels:\n  senior: [senior]\n"))
	assert.Error(t, err)
}

func TestLoadBytesRejectsBadYAML(t *testing.T) {
	_, err := LoadBytes([]byte("sectors: [not, a, map"))
	assert.Error(t, err)
}
