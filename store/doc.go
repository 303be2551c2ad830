// Package store keeps a SQLite history of colony runs.
//
// A run row is created by BeginRun before the colonies start, every report
// the coordinator receives is appended with RecordReport, and FinishRun
// records the outcome. Pheromone tables are never written: runs are not
// resumable, the history is for inspection only.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=ON
//
// Run ids are UUIDv7, so ordering by id is ordering by creation time.
package store
