package main

import (
	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/inhuren/agency-scraper/internal/document"
	"github.com/inhuren/agency-scraper/internal/driver"
	"github.com/inhuren/agency-scraper/internal/fetcher"
	"github.com/inhuren/agency-scraper/internal/store"
	"github.com/inhuren/agency-scraper/internal/vocab"
)

// env bundles the wired components a command needs.
type env struct {
	Driver   *driver.Driver
	Registry *driver.Registry
	Store    store.Store
}

func (e *env) Close() {
	if e.Store != nil {
		_ = e.Store.Close()
	}
}

// initEnv builds the scrape environment from the loaded config.
func initEnv() (*env, error) {
	tables, err := loadVocab()
	if err != nil {
		return nil, err
	}

	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		Timeout:    cfg.Fetch.Timeout(),
		MaxRetries: cfg.Fetch.MaxRetries,
		HostRate:   rate.Limit(cfg.Fetch.RequestsPerSec),
		UserAgent:  cfg.Fetch.UserAgent,
	})

	pdf := document.NewPdfToText(cfg.PDF.PdfToTextPath)

	reg := driver.NewRegistry()
	if err := reg.LoadDir(cfg.Profiles.Dir); err != nil {
		return nil, err
	}

	st, err := openStore()
	if err != nil {
		return nil, err
	}

	return &env{
		Driver:   driver.New(f, tables, pdf),
		Registry: reg,
		Store:    st,
	}, nil
}

func loadVocab() (*vocab.Tables, error) {
	if cfg.Vocab.Path != "" {
		return vocab.LoadFile(cfg.Vocab.Path)
	}
	return vocab.Load()
}

func openStore() (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		return store.NewSQLite(cfg.Store.Path)
	case "jsondir":
		return store.NewJSONDir(cfg.Store.Path)
	default:
		return nil, eris.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
