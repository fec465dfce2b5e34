// Package driver sequences one agency's scrape: fetch each configured
// page in order, parse it, run the standard extraction primitives and the
// profile's hooks, and fold everything into one record. Per-agency
// customization is composition — a page list plus hook functions — not
// inheritance.
package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/inhuren/agency-scraper/internal/assemble"
	"github.com/inhuren/agency-scraper/internal/document"
	"github.com/inhuren/agency-scraper/internal/model"
)

// Hook is an agency-specific extraction step, invoked after the standard
// primitives on each page. Hooks feed the assembler through the same
// merge-policy contract as primitives.
type Hook func(d *document.Document, a *assemble.Assembler)

// Profile describes how to scrape one agency.
type Profile struct {
	Name       string
	WebsiteURL string
	BrandGroup string
	GeoFocus   string
	// Pages are fetched strictly in this order; the merge policy assumes
	// earlier pages are higher-trust.
	Pages []string
	Hooks []Hook
	// Seed holds known facts applied before any page is fetched, so they
	// win first-non-null merges and OR into flag fields.
	Seed []model.Candidate
}

// profileFile is the YAML on-disk form of a profile. Hooks are code-only;
// file profiles get the standard primitive set.
type profileFile struct {
	Name       string         `yaml:"name"`
	WebsiteURL string         `yaml:"website_url"`
	BrandGroup string         `yaml:"brand_group"`
	GeoFocus   string         `yaml:"geo_focus"`
	Pages      []string       `yaml:"pages"`
	Seed       map[string]any `yaml:"seed"`
}

// LoadProfile reads a single profile from a YAML file.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, eris.Wrapf(err, "driver: read profile %s", path)
	}
	var pf profileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return Profile{}, eris.Wrapf(err, "driver: unmarshal profile %s", path)
	}
	if pf.Name == "" || pf.WebsiteURL == "" {
		return Profile{}, eris.Errorf("driver: profile %s missing name or website_url", path)
	}

	p := Profile{
		Name:       pf.Name,
		WebsiteURL: pf.WebsiteURL,
		BrandGroup: pf.BrandGroup,
		GeoFocus:   pf.GeoFocus,
		Pages:      pf.Pages,
	}

	// Deterministic seed order regardless of YAML map iteration.
	keys := make([]string, 0, len(pf.Seed))
	for k := range pf.Seed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p.Seed = append(p.Seed, model.NewCandidate(k, normalizeSeedValue(pf.Seed[k]), pf.WebsiteURL))
	}

	return p, nil
}

// normalizeSeedValue converts YAML-decoded values into the types the
// assembler accepts.
func normalizeSeedValue(v any) any {
	switch val := v.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	default:
		return val
	}
}

// Registry holds the known agency profiles by name.
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry creates a registry seeded with the built-in profiles.
func NewRegistry() *Registry {
	r := &Registry{profiles: make(map[string]Profile)}
	for _, p := range builtinProfiles() {
		r.Register(p)
	}
	return r
}

// Register adds or replaces a profile.
func (r *Registry) Register(p Profile) {
	r.profiles[strings.ToLower(p.Name)] = p
}

// LoadDir registers every *.yaml profile in dir. Missing dir is not an
// error; a site without file profiles just uses the built-ins.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return eris.Wrapf(err, "driver: read profile dir %s", dir)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		p, err := LoadProfile(filepath.Join(dir, e.Name()))
		if err != nil {
			return err
		}
		r.Register(p)
	}
	return nil
}

// Get returns the profile registered under name.
func (r *Registry) Get(name string) (Profile, bool) {
	p, ok := r.profiles[strings.ToLower(name)]
	return p, ok
}

// Names returns all registered profile names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for n := range r.profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
