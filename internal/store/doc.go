// Package store persists translation records in a local SQLite database.
// Audio can be embedded in the row as a blob or written to files next to
// the database, selected by configuration; both strategies sit behind the
// same Store interface.
package store
