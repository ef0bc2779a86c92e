package store

import (
	"context"
	"fmt"
	"time"

	"github.com/roach88/torsor/internal/harness"
)

// timestampLayout is RFC 3339 with a fixed nine-digit fraction, so that
// recorded_at sorts chronologically as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// WriteRun records a report and returns the ID assigned to the run.
// The run and all of its case results are written in one transaction.
//
// source is the suite file the report came from and may be empty.
func (s *Store) WriteRun(ctx context.Context, report *harness.Report, source string) (string, error) {
	id := s.ids.Generate()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("write run: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, suite, source, recorded_at, passed, failed)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, report.Suite, source, formatTimestamp(s.clock()), report.Passed, report.Failed)
	if err != nil {
		return "", fmt.Errorf("write run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO case_results (run_id, seq, name, want, got, pass, diagnostic)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("write case results: %w", err)
	}
	defer stmt.Close()

	for _, c := range report.Cases {
		if _, err := stmt.ExecContext(ctx, id, c.Seq, c.Name, string(c.Want), string(c.Got), c.Pass, c.Diagnostic); err != nil {
			return "", fmt.Errorf("write case result %q: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("write run: %w", err)
	}
	return id, nil
}

// DeleteRun removes a run and, through the foreign key, its case results.
// Deleting an unknown run is not an error.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	return nil
}
