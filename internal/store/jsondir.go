package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/inhuren/agency-scraper/internal/model"
)

// JSONDirStore writes one pretty-printed JSON file per agency into a
// directory. Warnings ride along in a sibling <name>.warnings.json so a
// record file stays a plain agency document.
type JSONDirStore struct {
	dir string
}

// NewJSONDir creates the directory if needed and returns a store over it.
func NewJSONDir(dir string) (*JSONDirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "jsondir: create %s", dir)
	}
	return &JSONDirStore{dir: dir}, nil
}

func (s *JSONDirStore) Migrate(context.Context) error { return nil }

func (s *JSONDirStore) Close() error { return nil }

// fileName maps an agency name to its record file: lowercased, spaces to
// underscores.
func fileName(agency string) string {
	name := strings.ToLower(strings.TrimSpace(agency))
	name = strings.ReplaceAll(name, " ", "_")
	return name + ".json"
}

func (s *JSONDirStore) SaveAgency(_ context.Context, agency *model.Agency, warnings []model.Warning) error {
	record, err := json.MarshalIndent(agency, "", "  ")
	if err != nil {
		return eris.Wrap(err, "jsondir: marshal agency")
	}
	path := filepath.Join(s.dir, fileName(agency.AgencyName))
	if err := os.WriteFile(path, append(record, '\n'), 0o644); err != nil {
		return eris.Wrapf(err, "jsondir: write %s", path)
	}

	warnPath := strings.TrimSuffix(path, ".json") + ".warnings.json"
	if len(warnings) == 0 {
		// No stale warnings from a previous run.
		if err := os.Remove(warnPath); err != nil && !os.IsNotExist(err) {
			return eris.Wrapf(err, "jsondir: remove %s", warnPath)
		}
		return nil
	}
	data, err := json.MarshalIndent(warnings, "", "  ")
	if err != nil {
		return eris.Wrap(err, "jsondir: marshal warnings")
	}
	if err := os.WriteFile(warnPath, append(data, '\n'), 0o644); err != nil {
		return eris.Wrapf(err, "jsondir: write %s", warnPath)
	}
	return nil
}

func (s *JSONDirStore) GetAgency(_ context.Context, name string) (*model.Agency, error) {
	path := filepath.Join(s.dir, fileName(name))
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "jsondir: read %s", path)
	}
	var agency model.Agency
	if err := json.Unmarshal(data, &agency); err != nil {
		return nil, eris.Wrapf(err, "jsondir: unmarshal %s", path)
	}
	return &agency, nil
}

func (s *JSONDirStore) ListAgencies(_ context.Context) ([]model.Agency, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, eris.Wrapf(err, "jsondir: read dir %s", s.dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") || strings.HasSuffix(e.Name(), ".warnings.json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var agencies []model.Agency
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			return nil, eris.Wrapf(err, "jsondir: read %s", name)
		}
		var agency model.Agency
		if err := json.Unmarshal(data, &agency); err != nil {
			return nil, eris.Wrapf(err, "jsondir: unmarshal %s", name)
		}
		agencies = append(agencies, agency)
	}
	return agencies, nil
}

func (s *JSONDirStore) ListWarnings(_ context.Context, agency string) ([]model.Warning, error) {
	path := filepath.Join(s.dir, strings.TrimSuffix(fileName(agency), ".json")+".warnings.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "jsondir: read %s", path)
	}
	var warnings []model.Warning
	if err := json.Unmarshal(data, &warnings); err != nil {
		return nil, eris.Wrapf(err, "jsondir: unmarshal %s", path)
	}
	return warnings, nil
}
