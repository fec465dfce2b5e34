package driver

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/inhuren/agency-scraper/internal/assemble"
	"github.com/inhuren/agency-scraper/internal/document"
	"github.com/inhuren/agency-scraper/internal/extract"
	"github.com/inhuren/agency-scraper/internal/fetcher"
	"github.com/inhuren/agency-scraper/internal/model"
	"github.com/inhuren/agency-scraper/internal/vocab"
)

// Driver runs agency scrapes. One Driver serves many concurrent runs:
// the fetcher, tables, and primitive set are all read-only shared state,
// and every run owns a disjoint assembler.
type Driver struct {
	fetcher    fetcher.Fetcher
	tables     *vocab.Tables
	pdf        document.PDFExtractor
	primitives []extract.Primitive
}

// New creates a Driver with the standard primitive set.
func New(f fetcher.Fetcher, tables *vocab.Tables, pdf document.PDFExtractor) *Driver {
	return &Driver{
		fetcher:    f,
		tables:     tables,
		pdf:        pdf,
		primitives: extract.Standard(),
	}
}

// Result is one finished run: the finalized record plus every warning
// the run produced. The caller decides what an empty or degraded record
// means; the driver never treats one as failure.
type Result struct {
	Agency   *model.Agency
	Warnings []model.Warning
}

// Run scrapes one agency: pages are fetched and folded into the record
// strictly in the configured order, so merge results are reproducible
// for fixed page contents. A page that exhausts its retry budget is
// warned about and skipped; the run always finishes with a finalized
// record.
func (dr *Driver) Run(ctx context.Context, p Profile) *Result {
	log := zap.L().With(zap.String("component", "driver"), zap.String("agency", p.Name))
	log.Info("starting scrape", zap.Int("pages", len(p.Pages)))

	asm := assemble.New(p.Name, p.WebsiteURL)

	if p.BrandGroup != "" {
		asm.Apply(model.NewCandidate("brand_group", p.BrandGroup, p.WebsiteURL))
	}
	if p.GeoFocus != "" {
		asm.Apply(model.NewCandidate("geo_focus_type", p.GeoFocus, p.WebsiteURL))
	}
	for _, seed := range p.Seed {
		asm.Apply(seed)
	}

	for _, pageURL := range p.Pages {
		dr.processPage(ctx, pageURL, p, asm, log)
	}

	agency := asm.Finalize(time.Now())
	log.Info("scrape complete",
		zap.Int("evidence_urls", len(agency.EvidenceURLs)),
		zap.Int("warnings", len(asm.Warnings())),
	)
	return &Result{Agency: agency, Warnings: asm.Warnings()}
}

func (dr *Driver) processPage(ctx context.Context, pageURL string, p Profile, asm *assemble.Assembler, log *zap.Logger) {
	asm.Visit(pageURL)

	res, err := dr.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		asm.Warn(model.StageFetch, pageURL, err.Error())
		return
	}

	var doc *document.Document
	switch {
	case res.IsPDF():
		doc = document.ParsePDF(ctx, res.Body, pageURL, dr.pdf)
	default:
		doc = document.ParseHTML(res.Text, pageURL)
	}
	for _, reason := range doc.Degradations() {
		asm.Warn(model.StageParse, pageURL, reason)
	}

	for _, primitive := range dr.primitives {
		for _, candidate := range primitive(doc, dr.tables) {
			asm.Apply(candidate)
		}
	}

	for _, hook := range p.Hooks {
		hook(doc, asm)
	}

	log.Debug("page processed", zap.String("url", pageURL), zap.String("kind", string(doc.Kind)))
}
