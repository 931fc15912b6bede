// Package pipeline orchestrates the translation cache: it normalizes input
// text into a cache key, looks the key up in the store, and on a miss runs
// translation, transliteration and speech synthesis before persisting the
// result exactly once.
package pipeline
