package store

import (
	"database/sql"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/roach88/torsor/internal/harness"
	"github.com/roach88/torsor/internal/testutil"
)

// createTestStore creates a store in a temporary directory with fixed IDs
// and a fixed recording time.
func createTestStore(t *testing.T, ids ...string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	clock := testutil.NewWallClock(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), 0)
	opts := []Option{WithClock(clock.Now)}
	if len(ids) > 0 {
		opts = append(opts, WithIDGenerator(NewFixedGenerator(ids...)))
	}
	s, err := Open(path, opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestReport creates a report with one passing and one failing case.
func createTestReport(suite string) *harness.Report {
	r := harness.NewReport(suite)
	r.Add(harness.CaseResult{Seq: 1, Name: "add offset", Want: harness.Allowed, Got: harness.Allowed, Pass: true})
	r.Add(harness.CaseResult{
		Seq: 2, Name: "add position", Want: harness.Allowed, Got: harness.Rejected,
		Diagnostic: "cannot use _torsor as int value in argument",
	})
	return r
}

func getTableColumns(t *testing.T, db *sql.DB, table string) []string {
	t.Helper()

	rows, err := db.Query("PRAGMA table_info(" + table + ")")
	if err != nil {
		t.Fatalf("failed to get table info for %q: %v", table, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dfltValue any
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltValue, &pk); err != nil {
			t.Fatalf("failed to scan column info: %v", err)
		}
		columns = append(columns, name)
	}
	return columns
}

func getTableIndexes(t *testing.T, db *sql.DB, table string) []string {
	t.Helper()

	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='index' AND tbl_name=?", table)
	if err != nil {
		t.Fatalf("failed to get indexes for %q: %v", table, err)
	}
	defer rows.Close()

	var indexes []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("failed to scan index name: %v", err)
		}
		indexes = append(indexes, name)
	}
	return indexes
}

func contains(slice []string, item string) bool {
	return slices.Contains(slice, item)
}
