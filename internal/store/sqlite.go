package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/kotoba/internal"
)

const schema = `CREATE TABLE IF NOT EXISTS translations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	english_text TEXT UNIQUE NOT NULL,
	japanese_text TEXT NOT NULL,
	romaji_text TEXT NOT NULL,
	audio BLOB,
	audio_file TEXT
)`

// Options configures a SQLite-backed store.
type Options struct {
	// AudioDir selects file-backed audio storage: audio bytes are written
	// to files in this directory and only the file name is persisted in
	// the row. Empty means audio is embedded in the row as a blob.
	AudioDir string

	// AudioFormat is the file extension used for file-backed audio
	// (default "mp3").
	AudioFormat string
}

// SQLiteStore implements Store on top of a local SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	opts Options
}

// Open opens (creating if needed) the SQLite database at dbPath and
// prepares the translations table.
func Open(dbPath string, opts Options) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("%w: create db directory: %v", ErrUnavailable, err)
	}

	// WAL allows concurrent readers alongside a writer, busy_timeout
	// serializes racing writers instead of failing them. The pragmas go
	// in the DSN so every pooled connection gets them.
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite: %v", ErrUnavailable, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create schema: %v", ErrUnavailable, err)
	}

	if opts.AudioFormat == "" {
		opts.AudioFormat = "mp3"
	}
	if opts.AudioDir != "" {
		if err := os.MkdirAll(opts.AudioDir, 0755); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: create audio directory: %v", ErrUnavailable, err)
		}
	}

	return &SQLiteStore{db: db, opts: opts}, nil
}

// Lookup returns the record for key, or (nil, nil) when no record exists.
func (s *SQLiteStore) Lookup(ctx context.Context, key string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, english_text, japanese_text, romaji_text, audio, audio_file
		 FROM translations WHERE english_text = ?`, key)

	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", key, err)
	}

	if err := s.loadAudio(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// InsertIfAbsent persists rec unless a record with the same key already
// exists. The uniqueness constraint on english_text is the serialization
// point for concurrent misses on the same key: exactly one insert wins and
// every loser sees inserted == false.
func (s *SQLiteStore) InsertIfAbsent(ctx context.Context, rec *Record) (bool, error) {
	if s.opts.AudioDir != "" {
		return s.insertFileBacked(ctx, rec)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO translations (english_text, japanese_text, romaji_text, audio)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(english_text) DO NOTHING`,
		rec.Key, rec.Japanese, rec.Romaji, rec.Audio)
	if err != nil {
		return false, fmt.Errorf("insert %q: %w", rec.Key, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert %q: %w", rec.Key, err)
	}
	if n == 0 {
		return false, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("insert %q: %w", rec.Key, err)
	}
	rec.ID = id
	return true, nil
}

// insertFileBacked writes the audio to a temp file first, inserts the row
// inside a transaction, renames the temp file into place when the insert
// won, and only then commits. Row and file become visible together; a lost
// race or a failed rename leaves neither behind (first writer wins).
func (s *SQLiteStore) insertFileBacked(ctx context.Context, rec *Record) (bool, error) {
	fileName := internal.AudioFileName(rec.Key, s.opts.AudioFormat)
	finalPath := filepath.Join(s.opts.AudioDir, fileName)

	tmp, err := os.CreateTemp(s.opts.AudioDir, ".audio-*.tmp")
	if err != nil {
		return false, fmt.Errorf("insert %q: write audio: %w", rec.Key, err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(rec.Audio); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return false, fmt.Errorf("insert %q: write audio: %w", rec.Key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("insert %q: write audio: %w", rec.Key, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("insert %q: %w", rec.Key, err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO translations (english_text, japanese_text, romaji_text, audio_file)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(english_text) DO NOTHING`,
		rec.Key, rec.Japanese, rec.Romaji, fileName)
	if err != nil {
		tx.Rollback()
		os.Remove(tmpPath)
		return false, fmt.Errorf("insert %q: %w", rec.Key, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		os.Remove(tmpPath)
		return false, fmt.Errorf("insert %q: %w", rec.Key, err)
	}
	if n == 0 {
		tx.Rollback()
		os.Remove(tmpPath)
		return false, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		os.Remove(tmpPath)
		return false, fmt.Errorf("insert %q: %w", rec.Key, err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		tx.Rollback()
		os.Remove(tmpPath)
		return false, fmt.Errorf("insert %q: place audio file: %w", rec.Key, err)
	}

	if err := tx.Commit(); err != nil {
		os.Remove(finalPath)
		return false, fmt.Errorf("insert %q: %w", rec.Key, err)
	}

	rec.ID = id
	rec.AudioRef = fileName
	return true, nil
}

// ListAll returns every record ordered by ascending id (insertion order).
func (s *SQLiteStore) ListAll(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, english_text, japanese_text, romaji_text, audio, audio_file
		 FROM translations ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list records: %w", err)
		}
		if err := s.loadAudio(rec); err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AudioPath returns the absolute path of a file-backed audio reference, or
// "" for embedded storage.
func (s *SQLiteStore) AudioPath(rec *Record) string {
	if s.opts.AudioDir == "" || rec.AudioRef == "" {
		return ""
	}
	return filepath.Join(s.opts.AudioDir, rec.AudioRef)
}

func scanRecord(scan func(dest ...any) error) (*Record, error) {
	var rec Record
	var audio []byte
	var audioFile sql.NullString
	if err := scan(&rec.ID, &rec.Key, &rec.Japanese, &rec.Romaji, &audio, &audioFile); err != nil {
		return nil, err
	}
	rec.Audio = audio
	if audioFile.Valid {
		rec.AudioRef = audioFile.String
	}
	return &rec, nil
}

// loadAudio fills rec.Audio from the audio file for file-backed records so
// callers always see a complete record.
func (s *SQLiteStore) loadAudio(rec *Record) error {
	if rec.AudioRef == "" || len(rec.Audio) > 0 {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(s.opts.AudioDir, rec.AudioRef))
	if err != nil {
		return fmt.Errorf("%w: read audio for %q: %v", ErrUnavailable, rec.Key, err)
	}
	rec.Audio = data
	return nil
}

var _ Store = (*SQLiteStore)(nil)
