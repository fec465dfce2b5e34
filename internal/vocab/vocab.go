// Package vocab holds the controlled vocabularies consulted during
// extraction: sector synonyms, role-level terms, certification aliases,
// the city→province table, and keyword sets for portal and chatbot
// detection. Tables are loaded once at process start and shared
// read-only across all concurrent runs.
package vocab

import (
	_ "embed"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultTables []byte

// Tables is the immutable set of normalization vocabularies. All lookup
// keys are lowercased at load time; callers match against lowercased
// input.
type Tables struct {
	Sectors         map[string][]string `yaml:"sectors"`
	SectorBlocklist []string            `yaml:"sector_blocklist"`
	RoleLevels      map[string][]string `yaml:"role_levels"`
	Certifications  map[string][]string `yaml:"certifications"`
	Memberships     map[string][]string `yaml:"memberships"`
	Services        map[string][]string `yaml:"services"`
	PortalCandidate []string            `yaml:"portal_candidate"`
	PortalClient    []string            `yaml:"portal_client"`
	ChatWidgets     []string            `yaml:"chat_widgets"`
	ReviewPlatforms map[string][]string `yaml:"review_platforms"`
	Cities          map[string]string   `yaml:"cities"`

	blocked map[string]struct{}
}

// Load returns the built-in tables.
func Load() (*Tables, error) {
	return parse(defaultTables)
}

// LoadBytes parses tables from raw YAML, for user-supplied overrides.
func LoadBytes(data []byte) (*Tables, error) {
	return parse(data)
}

// LoadFile reads tables from a YAML file on disk.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "vocab: read %s", path)
	}
	return parse(data)
}

func parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, eris.Wrap(err, "vocab: unmarshal tables")
	}
	if len(t.Sectors) == 0 {
		return nil, eris.New("vocab: no sectors defined")
	}

	t.Sectors = lowerSynonyms(t.Sectors)
	t.RoleLevels = lowerSynonyms(t.RoleLevels)
	t.Services = lowerSynonyms(t.Services)
	t.Certifications = lowerSynonyms(t.Certifications)
	t.Memberships = lowerSynonyms(t.Memberships)

	cities := make(map[string]string, len(t.Cities))
	for city, province := range t.Cities {
		cities[strings.ToLower(city)] = province
	}
	t.Cities = cities

	t.blocked = make(map[string]struct{}, len(t.SectorBlocklist))
	for _, b := range t.SectorBlocklist {
		t.blocked[strings.ToLower(b)] = struct{}{}
	}

	return &t, nil
}

func lowerSynonyms(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for canonical, forms := range m {
		lowered := make([]string, len(forms))
		for i, f := range forms {
			lowered[i] = strings.ToLower(f)
		}
		out[canonical] = lowered
	}
	return out
}

// Province resolves a city name to its province. Returns "" when the city
// is not in the table; callers keep the location with an empty province
// rather than dropping it.
func (t *Tables) Province(city string) string {
	return t.Cities[strings.ToLower(strings.TrimSpace(city))]
}

// Blocked reports whether a term is on the sector block list.
func (t *Tables) Blocked(term string) bool {
	_, ok := t.blocked[strings.ToLower(term)]
	return ok
}
