// Package store persists finalized agency records. The engine hands the
// store one record per run as a flat, null-inclusive structure; the store
// owns format and destination.
package store

import (
	"context"

	"github.com/inhuren/agency-scraper/internal/model"
)

// Store defines the persistence interface for scraped agency records.
type Store interface {
	// SaveAgency upserts one finalized record and its run warnings.
	SaveAgency(ctx context.Context, agency *model.Agency, warnings []model.Warning) error
	GetAgency(ctx context.Context, name string) (*model.Agency, error)
	ListAgencies(ctx context.Context) ([]model.Agency, error)
	ListWarnings(ctx context.Context, agency string) ([]model.Warning, error)

	Migrate(ctx context.Context) error
	Close() error
}
