// Package queue persists merge jobs in SQLite and exposes helpers for
// driving their lifecycle.
//
// Each item records a discovered subtitle pair, its output path, a content
// fingerprint, and the pending -> merging -> completed/failed progression.
// Fingerprint lookups are what keep the watch loop from re-merging pairs it
// has already handled, including across daemon restarts. The database lives
// in the log directory and is transient job state, not an archive; schema
// changes bump the version in schema.go and users clear the database to
// adopt the new one.
package queue
