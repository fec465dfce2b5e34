package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/inhuren/agency-scraper/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL
// mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS agencies (
	name         TEXT PRIMARY KEY,
	record       TEXT NOT NULL,
	collected_at DATETIME NOT NULL,
	updated_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS warnings (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	agency     TEXT NOT NULL,
	url        TEXT,
	stage      TEXT NOT NULL,
	reason     TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_warnings_agency ON warnings(agency);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveAgency(ctx context.Context, agency *model.Agency, warnings []model.Warning) error {
	record, err := json.Marshal(agency)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal agency")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin tx")
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO agencies (name, record, collected_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET record=excluded.record,
		   collected_at=excluded.collected_at, updated_at=excluded.updated_at`,
		agency.AgencyName, string(record), agency.CollectedAt, time.Now().UTC(),
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: upsert agency")
	}

	// Warnings are per-run: replace the previous run's set.
	if _, err := tx.ExecContext(ctx, `DELETE FROM warnings WHERE agency = ?`, agency.AgencyName); err != nil {
		return eris.Wrap(err, "sqlite: clear warnings")
	}
	for _, w := range warnings {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO warnings (agency, url, stage, reason) VALUES (?, ?, ?, ?)`,
			w.Agency, w.URL, string(w.Stage), w.Reason,
		); err != nil {
			return eris.Wrap(err, "sqlite: insert warning")
		}
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit")
}

func (s *SQLiteStore) GetAgency(ctx context.Context, name string) (*model.Agency, error) {
	var record string
	err := s.db.QueryRowContext(ctx,
		`SELECT record FROM agencies WHERE name = ?`, name,
	).Scan(&record)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: get agency")
	}

	var agency model.Agency
	if err := json.Unmarshal([]byte(record), &agency); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal agency")
	}
	return &agency, nil
}

func (s *SQLiteStore) ListAgencies(ctx context.Context) ([]model.Agency, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT record FROM agencies ORDER BY name`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list agencies")
	}
	defer rows.Close()

	var agencies []model.Agency
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan agency")
		}
		var agency model.Agency
		if err := json.Unmarshal([]byte(record), &agency); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal agency")
		}
		agencies = append(agencies, agency)
	}
	return agencies, eris.Wrap(rows.Err(), "sqlite: iterate agencies")
}

func (s *SQLiteStore) ListWarnings(ctx context.Context, agency string) ([]model.Warning, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT agency, COALESCE(url, ''), stage, reason FROM warnings WHERE agency = ? ORDER BY id`, agency)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list warnings")
	}
	defer rows.Close()

	var warnings []model.Warning
	for rows.Next() {
		var w model.Warning
		var stage string
		if err := rows.Scan(&w.Agency, &w.URL, &stage, &w.Reason); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan warning")
		}
		w.Stage = model.Stage(stage)
		warnings = append(warnings, w)
	}
	return warnings, eris.Wrap(rows.Err(), "sqlite: iterate warnings")
}
