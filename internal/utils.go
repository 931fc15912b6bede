package internal

import (
	"crypto/sha256"
	"fmt"
	"unicode"
)

// AudioFileName derives the audio file name for a cache key when audio is
// stored on the filesystem instead of inside the database. The sanitized
// key keeps the name readable; the short hash of the full key makes the
// name unique, so distinct keys can never share a file.
func AudioFileName(key, format string) string {
	sum := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%s-%x.%s", SanitizeFilename(key), sum[:4], format)
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	result := ""
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			result += string(r)
		} else {
			result += "_"
		}
	}
	return result
}

// isAlphaNumeric checks if a rune is alphanumeric
func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han)
}
