package store

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the storage engine cannot be reached or opened.
// Individual failures wrap it so callers can distinguish a broken store
// from a broken collaborator.
var ErrUnavailable = errors.New("store unavailable")

// Record is the persisted translation triple for one normalized English
// sentence. Records are immutable once inserted; there is no update or
// expiry path.
type Record struct {
	// ID is assigned by the store at insert time, ascending in insertion
	// order, never reused.
	ID int64

	// Key is the normalized (trimmed, case-folded) English sentence.
	// Unique across all records.
	Key string

	// Japanese is the translated text.
	Japanese string

	// Romaji is the Hepburn romanization of Japanese.
	Romaji string

	// Audio holds the encoded speech audio. Always non-empty on records
	// returned by a Store, regardless of the storage strategy.
	Audio []byte

	// AudioRef is the file name the audio was written under when the
	// store uses file-backed audio storage. Empty for embedded storage.
	AudioRef string
}

// Store persists translation records keyed on normalized English text.
// Implementations must be safe for concurrent readers and writers; the
// uniqueness of Key is enforced by the storage engine itself so that two
// racing inserts for the same key converge on a single record.
type Store interface {
	// Lookup returns the record for key, or (nil, nil) when absent.
	Lookup(ctx context.Context, key string) (*Record, error)

	// InsertIfAbsent persists rec if no record with the same key exists,
	// assigning rec.ID, and reports whether the insert happened. An
	// existing record makes the call a no-op returning false, not an
	// error.
	InsertIfAbsent(ctx context.Context, rec *Record) (bool, error)

	// ListAll returns all records ordered by ascending ID.
	ListAll(ctx context.Context) ([]Record, error)

	Close() error
}
