package pipeline

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/snonux/kotoba/internal/romaji"
	"codeberg.org/snonux/kotoba/internal/speech"
	"codeberg.org/snonux/kotoba/internal/store"
	"codeberg.org/snonux/kotoba/internal/translate"
)

// ErrEmptyInput indicates the input normalized to an empty string. It is
// raised before any collaborator is invoked.
var ErrEmptyInput = errors.New("input text is empty")

// Pipeline memoizes the translate -> transliterate -> synthesize chain in a
// persistent store. All collaborators are injected at construction; the
// pipeline holds no global state.
type Pipeline struct {
	store          store.Store
	translator     translate.Translator
	transliterator romaji.Transliterator
	synthesizer    speech.Provider
	language       string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLanguage sets the language code passed to speech synthesis
// (default "ja").
func WithLanguage(code string) Option {
	return func(p *Pipeline) {
		p.language = code
	}
}

// New creates a pipeline over the given store and collaborators.
func New(s store.Store, t translate.Translator, r romaji.Transliterator, sp speech.Provider, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:          s,
		translator:     t,
		transliterator: r,
		synthesizer:    sp,
		language:       "ja",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetOrCreate returns the cached record for rawText, computing and storing
// it on a cache miss. On a hit no collaborator is invoked. On a miss the
// three collaborators run in sequence and the result is persisted as one
// unit; any failure aborts with nothing written. Two calls racing past a
// miss for the same key both succeed and observe the same stored record.
func (p *Pipeline) GetOrCreate(ctx context.Context, rawText string) (*store.Record, error) {
	key := Normalize(rawText)
	if key == "" {
		return nil, ErrEmptyInput
	}

	existing, err := p.store.Lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	japanese, err := p.translator.Translate(ctx, rawText)
	if err != nil {
		return nil, err
	}

	romanized, err := p.transliterator.Transliterate(ctx, japanese)
	if err != nil {
		return nil, err
	}

	audio, err := p.synthesizer.Synthesize(ctx, romanized, p.language)
	if err != nil {
		return nil, err
	}

	candidate := &store.Record{
		Key:      key,
		Japanese: japanese,
		Romaji:   romanized,
		Audio:    audio,
	}

	inserted, err := p.store.InsertIfAbsent(ctx, candidate)
	if err != nil {
		return nil, err
	}
	if !inserted {
		// A concurrent run stored this key first. Discard our results
		// and return the winner's record so every caller observes the
		// same triple.
		stored, err := p.store.Lookup(ctx, key)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			return nil, fmt.Errorf("record for %q vanished after lost insert race", key)
		}
		return stored, nil
	}

	return candidate, nil
}

// ListAll returns every cached record in insertion order.
func (p *Pipeline) ListAll(ctx context.Context) ([]store.Record, error) {
	return p.store.ListAll(ctx)
}
