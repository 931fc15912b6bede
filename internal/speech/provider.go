package speech

import (
	"context"
	"errors"
	"fmt"
)

// Collaborator error kinds, mirroring the translate package.
var (
	// ErrUnavailable indicates the synthesis collaborator cannot be
	// reached (network, missing binary, open breaker).
	ErrUnavailable = errors.New("speech synthesis unavailable")

	// ErrFailed indicates the collaborator rejected the input or
	// returned no audio.
	ErrFailed = errors.New("speech synthesis failed")
)

// Provider defines the interface for text-to-speech providers.
type Provider interface {
	// Synthesize generates encoded audio for text pronounced in the
	// given language and returns the audio bytes.
	Synthesize(ctx context.Context, text, languageCode string) ([]byte, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for speech providers.
type Config struct {
	Provider     string // Provider name: "openai" or "espeak"
	OutputFormat string // Output format: "mp3" or "wav"

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string  // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	OpenAIVoice string  // "alloy", "ash", "ballad", "coral", "echo", "fable", "onyx", "nova", "sage", "shimmer", "verse"
	OpenAISpeed float64 // 0.25 to 4.0

	// espeak-ng settings
	ESpeakSpeed int // Words per minute
}

// DefaultProviderConfig returns default configuration.
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:     "openai",
		OutputFormat: "mp3",
		OpenAIModel:  "gpt-4o-mini-tts",
		OpenAIVoice:  "alloy",
		OpenAISpeed:  0.95, // Slightly slower for language learners
		ESpeakSpeed:  150,
	}
}

// NewProvider creates the appropriate speech provider based on configuration.
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config), nil

	case "espeak":
		return NewESpeakProvider(config)

	default:
		return nil, fmt.Errorf("unknown speech provider: %s", config.Provider)
	}
}

// ProviderWithFallback wraps a primary provider with a fallback option.
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
}

// NewProviderWithFallback creates a provider that falls back to secondary
// if primary fails.
func NewProviderWithFallback(primary, fallback Provider) Provider {
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// Synthesize tries the primary provider first, falls back to secondary on error.
func (p *ProviderWithFallback) Synthesize(ctx context.Context, text, languageCode string) ([]byte, error) {
	audio, err := p.primary.Synthesize(ctx, text, languageCode)
	if err != nil {
		return p.fallback.Synthesize(ctx, text, languageCode)
	}
	return audio, nil
}

// Name returns the provider name.
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available.
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
