package speech

import (
	"context"
	"errors"
	"os"
	"testing"
)

// mockProvider implements Provider for testing.
type mockProvider struct {
	name            string
	audio           []byte
	synthesizeErr   error
	availableErr    error
	synthesizeCalls int
}

func (m *mockProvider) Synthesize(ctx context.Context, text, languageCode string) ([]byte, error) {
	m.synthesizeCalls++
	if m.synthesizeErr != nil {
		return nil, m.synthesizeErr
	}
	return m.audio, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) IsAvailable() error {
	return m.availableErr
}

func TestDefaultProviderConfig(t *testing.T) {
	config := DefaultProviderConfig()

	if config.Provider != "openai" {
		t.Errorf("Expected provider 'openai', got '%s'", config.Provider)
	}
	if config.OutputFormat != "mp3" {
		t.Errorf("Expected output format 'mp3', got '%s'", config.OutputFormat)
	}
	if config.OpenAIModel != "gpt-4o-mini-tts" {
		t.Errorf("Expected OpenAI model 'gpt-4o-mini-tts', got '%s'", config.OpenAIModel)
	}
	if config.OpenAIVoice != "alloy" {
		t.Errorf("Expected OpenAI voice 'alloy', got '%s'", config.OpenAIVoice)
	}
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "nil config uses defaults",
			config:  nil,
			wantErr: true,
			errMsg:  "OpenAI API key is required",
		},
		{
			name: "openai provider without key",
			config: &Config{
				Provider: "openai",
			},
			wantErr: true,
			errMsg:  "OpenAI API key is required",
		},
		{
			name: "espeak provider with non-wav format",
			config: &Config{
				Provider:     "espeak",
				OutputFormat: "mp3",
			},
			wantErr: true,
			errMsg:  `espeak produces wav audio only, got format "mp3"`,
		},
		{
			name: "unknown provider",
			config: &Config{
				Provider: "unknown",
			},
			wantErr: true,
			errMsg:  "unknown speech provider: unknown",
		},
		{
			name: "openai provider with key",
			config: &Config{
				Provider:  "openai",
				OpenAIKey: "test-key",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewProvider() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err.Error() != tt.errMsg {
				t.Errorf("Expected error %q, got %q", tt.errMsg, err.Error())
			}
			if !tt.wantErr && provider == nil {
				t.Error("Expected provider, got nil")
			}
		})
	}
}

func TestProviderWithFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("primary succeeds", func(t *testing.T) {
		primary := &mockProvider{name: "primary", audio: []byte("primary audio")}
		fallback := &mockProvider{name: "fallback", audio: []byte("fallback audio")}
		p := NewProviderWithFallback(primary, fallback)

		audio, err := p.Synthesize(ctx, "konnichiwa", "ja")
		if err != nil {
			t.Fatalf("Synthesize failed: %v", err)
		}
		if string(audio) != "primary audio" {
			t.Errorf("Expected primary audio, got %q", audio)
		}
		if fallback.synthesizeCalls != 0 {
			t.Error("Fallback called although primary succeeded")
		}
	})

	t.Run("primary fails", func(t *testing.T) {
		primary := &mockProvider{name: "primary", synthesizeErr: errors.New("boom")}
		fallback := &mockProvider{name: "fallback", audio: []byte("fallback audio")}
		p := NewProviderWithFallback(primary, fallback)

		audio, err := p.Synthesize(ctx, "konnichiwa", "ja")
		if err != nil {
			t.Fatalf("Synthesize failed: %v", err)
		}
		if string(audio) != "fallback audio" {
			t.Errorf("Expected fallback audio, got %q", audio)
		}
	})

	t.Run("availability", func(t *testing.T) {
		primary := &mockProvider{name: "primary", availableErr: errors.New("down")}
		fallback := &mockProvider{name: "fallback"}
		p := NewProviderWithFallback(primary, fallback)

		if err := p.IsAvailable(); err != nil {
			t.Errorf("Expected available via fallback, got %v", err)
		}

		fallback.availableErr = errors.New("also down")
		if err := p.IsAvailable(); err == nil {
			t.Error("Expected error when both providers unavailable")
		}
	})
}

func TestWithBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	inner := &mockProvider{name: "mock", synthesizeErr: errors.New("boom")}
	p := WithBreaker(inner)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := p.Synthesize(ctx, "text", "ja"); err == nil {
			t.Fatal("Expected error from failing provider")
		}
	}

	callsBefore := inner.synthesizeCalls
	_, err := p.Synthesize(ctx, "text", "ja")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable from open breaker, got %v", err)
	}
	if inner.synthesizeCalls != callsBefore {
		t.Error("Inner provider called while breaker open")
	}
}

func TestOpenAIProvider_EmptyText(t *testing.T) {
	p := NewOpenAIProvider(&Config{OpenAIKey: "test-key", OpenAIModel: "tts-1"})

	_, err := p.Synthesize(context.Background(), "  ", "ja")
	if !errors.Is(err, ErrFailed) {
		t.Errorf("Expected ErrFailed for empty text, got %v", err)
	}
}

func TestOpenAIProvider_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	config := DefaultProviderConfig()
	config.OpenAIKey = apiKey
	p := NewOpenAIProvider(config)

	audio, err := p.Synthesize(context.Background(), "konnichiwa", "ja")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if len(audio) == 0 {
		t.Error("Got empty audio")
	}
}
