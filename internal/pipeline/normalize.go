package pipeline

import (
	"strings"

	"golang.org/x/text/cases"
)

// Normalize canonicalizes raw input text into a cache key: surrounding
// whitespace is trimmed and the text is case folded independent of any
// locale. Inputs differing only in case or surrounding whitespace map to
// the same key, which is the equivalence the cache relies on.
func Normalize(raw string) string {
	// A Caser is stateful, so a fresh one per call keeps this safe for
	// concurrent requests.
	return cases.Fold().String(strings.TrimSpace(raw))
}
