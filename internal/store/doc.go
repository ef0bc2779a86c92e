// Package store records capability suite runs in SQLite so that verdicts
// can be compared across commits.
//
// Two tables hold the history:
//   - runs: one row per suite execution, with totals
//   - case_results: one row per case, keyed by (run_id, seq)
//
// # Ordering
//
// Case results are always read ORDER BY seq ASC, the harness's logical
// clock. Runs are listed newest first by recorded_at, then by id; run IDs
// are UUIDv7 so ties still sort by creation. recorded_at is UTC RFC 3339
// with a fixed nine-digit fraction, so text order is time order.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
