// Package assemble owns the per-agency output record. It folds extraction
// candidates into the record under the field-level merge policy — scalar
// fields are first-non-null-wins, list fields are deduplicated unions,
// boolean capability flags only ever flip to true — and tracks every
// visited URL as evidence.
package assemble

import (
	"time"

	"go.uber.org/zap"

	"github.com/inhuren/agency-scraper/internal/model"
)

// Assembler accumulates candidates for one agency's record. It is not
// safe for concurrent use; one run owns one assembler.
type Assembler struct {
	agency    *model.Agency
	agencyKey string

	visited   map[string]struct{}
	setScalar map[string]struct{} // enum scalars with non-null defaults
	warnings  []model.Warning
	finalized bool
}

// New creates an assembler around a fresh record.
func New(name, websiteURL string) *Assembler {
	return &Assembler{
		agency:    model.NewAgency(name, websiteURL),
		agencyKey: name,
		visited:   make(map[string]struct{}),
		setScalar: make(map[string]struct{}),
	}
}

// Record exposes the record being built, for hooks that read earlier
// results. Mutation goes through Apply/Override only.
func (a *Assembler) Record() *model.Agency { return a.agency }

// Visit records a URL in the evidence set whether or not it yielded any
// field data. The set only grows for the lifetime of one run.
func (a *Assembler) Visit(url string) {
	if url == "" {
		return
	}
	if _, seen := a.visited[url]; seen {
		return
	}
	a.visited[url] = struct{}{}
	a.agency.EvidenceURLs = append(a.agency.EvidenceURLs, url)
}

// Warn records a structured, non-fatal degradation.
func (a *Assembler) Warn(stage model.Stage, url, reason string) {
	a.warnings = append(a.warnings, model.Warning{
		Agency: a.agencyKey,
		URL:    url,
		Stage:  stage,
		Reason: reason,
	})
	zap.L().Warn("scrape degradation",
		zap.String("agency", a.agencyKey),
		zap.String("stage", string(stage)),
		zap.String("url", url),
		zap.String("reason", reason),
	)
}

// Warnings returns all warnings collected so far.
func (a *Assembler) Warnings() []model.Warning { return a.warnings }

// Apply folds one candidate into the record under the merge policy and
// records its source URL as evidence. Applying the same candidate twice
// yields the same record as applying it once. Unknown field paths and
// mistyped values are warned about and ignored, never fatal.
func (a *Assembler) Apply(c model.Candidate) {
	if c.Value == nil {
		return
	}
	a.Visit(c.SourceURL)
	if !a.applyField(c, false) {
		return
	}
}

// Override sets a scalar field unconditionally, bypassing first-wins.
// Page-specific overrides are deliberate and always leave a trace.
func (a *Assembler) Override(c model.Candidate) {
	if c.Value == nil {
		return
	}
	a.Visit(c.SourceURL)
	a.Warn(model.StageOverride, c.SourceURL, "field "+c.FieldPath+" overridden")
	a.applyField(c, true)
}

// Finalize stamps the collection timestamp exactly once and validates
// field formats. A field that fails validation is nulled with a warning;
// finalization never fails the run.
func (a *Assembler) Finalize(collectedAt time.Time) *model.Agency {
	if a.finalized {
		return a.agency
	}
	a.finalized = true
	a.validate()
	a.agency.CollectedAt = collectedAt.UTC()
	return a.agency
}
