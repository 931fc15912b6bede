package romaji

import (
	"context"
	"errors"
	"fmt"
)

// ErrMalformed indicates the input text cannot be transliterated. It should
// not occur for well-formed Japanese text.
var ErrMalformed = errors.New("transliteration failed: malformed input")

// ErrUnavailable indicates the transliteration collaborator cannot be
// reached. Distinct from ErrMalformed, which is about the input.
var ErrUnavailable = errors.New("transliteration unavailable")

// Transliterator converts Japanese text to a Latin-alphabet phonetic
// rendering. Implementations must be deterministic: the same input always
// yields the same output. The context bounds network-backed engines; the
// built-in converter ignores it.
type Transliterator interface {
	Transliterate(ctx context.Context, japanese string) (string, error)
}

// Config holds configuration for transliteration engines.
type Config struct {
	Engine string // Engine name: "kana", "openai" or "auto"

	OpenAIKey   string
	OpenAIModel string
}

// DefaultConfig returns default transliteration configuration. The "auto"
// engine reads pure kana text with the built-in converter and falls back to
// OpenAI for text containing kanji.
func DefaultConfig() *Config {
	return &Config{Engine: "auto"}
}

// NewTransliterator creates the appropriate engine based on configuration.
func NewTransliterator(config *Config) (Transliterator, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Engine {
	case "kana":
		return NewKanaTransliterator(), nil

	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAITransliterator(config), nil

	case "auto":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewFallbackTransliterator(
			NewKanaTransliterator(),
			NewOpenAITransliterator(config),
		), nil

	default:
		return nil, fmt.Errorf("unknown transliteration engine: %s", config.Engine)
	}
}

// FallbackTransliterator tries a primary engine and falls back to a
// secondary one when the primary rejects the input.
type FallbackTransliterator struct {
	primary  Transliterator
	fallback Transliterator
}

// NewFallbackTransliterator creates an engine that falls back to secondary
// if primary cannot read the input.
func NewFallbackTransliterator(primary, fallback Transliterator) *FallbackTransliterator {
	return &FallbackTransliterator{primary: primary, fallback: fallback}
}

// Transliterate tries the primary engine first.
func (f *FallbackTransliterator) Transliterate(ctx context.Context, japanese string) (string, error) {
	result, err := f.primary.Transliterate(ctx, japanese)
	if err == nil {
		return result, nil
	}
	return f.fallback.Transliterate(ctx, japanese)
}
