// Package history archives finished tasks in SQLite.
//
// Only terminal snapshots (Completed, Failed, Cancelled) are recorded; the
// task registry remains the source of truth for live jobs. The database is a
// convenience log, not critical state; a lock held by another process or a
// pruned entry loses nothing the user cannot regenerate.
package history
