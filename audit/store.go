// CLAUDE:SUMMARY SQLite persistence for audit reports: insert, get by ID, recent summaries.
package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Schema is the audits table, applied via dbopen.WithSchema at startup.
const Schema = `
CREATE TABLE IF NOT EXISTS audits (
	id          TEXT PRIMARY KEY,
	url         TEXT NOT NULL,
	platform    TEXT NOT NULL DEFAULT '',
	total_score INTEGER NOT NULL,
	report_json TEXT NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_audits_created ON audits (created_at DESC);
`

// Store persists audit reports.
type Store struct {
	db *sql.DB
}

// NewStore wraps an opened database. The schema must already be applied.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Summary is one row of an audit listing.
type Summary struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Platform   string    `json:"platform,omitempty"`
	TotalScore int       `json:"totalScore"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Insert stores one report.
func (s *Store) Insert(ctx context.Context, rep *Report) error {
	body, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("audit: marshal report: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO audits (id, url, platform, total_score, report_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rep.ID, rep.URL, rep.Platform, rep.Result.TotalScore,
		string(body), rep.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("audit: insert %s: %w", rep.ID, err)
	}
	return nil
}

// Get returns one report by ID.
func (s *Store) Get(ctx context.Context, id string) (*Report, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT report_json FROM audits WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("audit: get %s: %w", id, err)
	}
	var rep Report
	if err := json.Unmarshal([]byte(body), &rep); err != nil {
		return nil, fmt.Errorf("audit: decode %s: %w", id, err)
	}
	return &rep, nil
}

// Recent returns summaries of the latest audits, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, url, platform, total_score, created_at
		 FROM audits ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("audit: list: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var created string
		if err := rows.Scan(&sum.ID, &sum.URL, &sum.Platform, &sum.TotalScore, &created); err != nil {
			return nil, fmt.Errorf("audit: scan: %w", err)
		}
		sum.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, sum)
	}
	return out, rows.Err()
}
