// Package archive moves the cache data directory aside so a fresh cache
// can be built without deleting anything.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveData moves the data directory (database and audio files) to an
// archive directory next to it, named with a timestamp.
func ArchiveData(dataDir string) error {
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		return fmt.Errorf("data directory does not exist: %s", dataDir)
	}

	parentDir := filepath.Dir(dataDir)
	archiveDir := filepath.Join(parentDir, "archive")

	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	archiveName := fmt.Sprintf("%s-%s", filepath.Base(dataDir), timestamp)
	archivePath := filepath.Join(archiveDir, archiveName)

	// Unlikely collision on the same second
	if _, err := os.Stat(archivePath); err == nil {
		timestamp = time.Now().Format("20060102-150405.000000")
		archiveName = fmt.Sprintf("%s-%s", filepath.Base(dataDir), timestamp)
		archivePath = filepath.Join(archiveDir, archiveName)
	}

	if err := os.Rename(dataDir, archivePath); err != nil {
		return fmt.Errorf("failed to archive data directory: %w", err)
	}

	fmt.Printf("Data directory archived to: %s\n", archivePath)
	return nil
}
