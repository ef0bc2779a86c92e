package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/torsor/internal/harness"
)

// Run is a recorded suite execution.
type Run struct {
	ID         string `json:"id"`
	Suite      string `json:"suite"`
	Source     string `json:"source,omitempty"`
	RecordedAt string `json:"recorded_at"`
	Passed     int    `json:"passed"`
	Failed     int    `json:"failed"`
}

// OK reports whether every case in the run matched its expectation.
func (r Run) OK() bool {
	return r.Failed == 0
}

// ListRuns returns recorded runs, newest first. A limit of zero or less
// returns every run. suite filters by suite name when non-empty.
//
// Returns an empty slice (not nil) if nothing has been recorded.
func (s *Store) ListRuns(ctx context.Context, suite string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, suite, source, recorded_at, passed, failed
		FROM runs
		WHERE ? = '' OR suite = ?
		ORDER BY recorded_at DESC, id COLLATE BINARY DESC
		LIMIT ?
	`, suite, suite, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ReadRun returns a single run by ID.
// Returns sql.ErrNoRows (wrapped) if the run does not exist.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, suite, source, recorded_at, passed, failed
		FROM runs
		WHERE id = ?
	`, id)
	run, err := scanRun(row)
	if err != nil {
		return Run{}, fmt.Errorf("read run %s: %w", id, err)
	}
	return run, nil
}

// ReadReport rebuilds the harness report recorded for a run.
// Case results are ordered by seq.
func (s *Store) ReadReport(ctx context.Context, id string) (*harness.Report, error) {
	run, err := s.ReadRun(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, name, want, got, pass, diagnostic
		FROM case_results
		WHERE run_id = ?
		ORDER BY seq ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query case results: %w", err)
	}
	defer rows.Close()

	report := harness.NewReport(run.Suite)
	for rows.Next() {
		var (
			c         harness.CaseResult
			want, got string
		)
		if err := rows.Scan(&c.Seq, &c.Name, &want, &got, &c.Pass, &c.Diagnostic); err != nil {
			return nil, fmt.Errorf("scan case result: %w", err)
		}
		c.Want = harness.Verdict(want)
		c.Got = harness.Verdict(got)
		report.Add(c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate case results: %w", err)
	}
	return report, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var r Run
	if err := row.Scan(&r.ID, &r.Suite, &r.Source, &r.RecordedAt, &r.Passed, &r.Failed); err != nil {
		if err == sql.ErrNoRows {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	return r, nil
}
