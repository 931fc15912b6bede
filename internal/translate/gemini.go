package translate

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// GeminiTranslator translates via the Google Gemini API.
type GeminiTranslator struct {
	apiKey string
	model  string

	once      sync.Once
	client    *genai.Client
	clientErr error
}

// NewGeminiTranslator creates a new Gemini-backed translator. The client is
// initialized lazily on first use.
func NewGeminiTranslator(config *Config) *GeminiTranslator {
	model := config.GeminiModel
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiTranslator{
		apiKey: config.GeminiKey,
		model:  model,
	}
}

// Translate translates an English sentence to Japanese.
func (t *GeminiTranslator) Translate(ctx context.Context, english string) (string, error) {
	t.once.Do(func() {
		t.client, t.clientErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  t.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	if t.clientErr != nil {
		return "", fmt.Errorf("%w: Gemini client: %v", ErrUnavailable, t.clientErr)
	}

	prompt := fmt.Sprintf("Translate the English sentence '%s' to Japanese. Respond with only the Japanese translation, nothing else.", english)
	resp, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: Gemini API error: %v", ErrUnavailable, err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", fmt.Errorf("%w: empty translation returned", ErrFailed)
	}
	return translation, nil
}
