package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Collaborator error kinds. Concrete failures wrap one of these so the
// pipeline can tell a dead service from a bad computation.
var (
	// ErrUnavailable indicates the translation collaborator cannot be
	// reached or initialized.
	ErrUnavailable = errors.New("translation unavailable")

	// ErrFailed indicates the collaborator was reachable but the
	// translation computation failed.
	ErrFailed = errors.New("translation failed")
)

// Translator translates an English sentence to Japanese. Implementations
// wrap slow, possibly network-bound collaborators; each call is a single
// blocking request with no partial result.
type Translator interface {
	Translate(ctx context.Context, english string) (string, error)
}

// Config holds configuration for translation providers.
type Config struct {
	Provider string // Provider name: "openai" or "gemini"

	OpenAIKey   string
	OpenAIModel string // Chat model used for translation

	GeminiKey   string
	GeminiModel string
}

// DefaultConfig returns default translation configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:    "openai",
		OpenAIModel: openai.GPT4oMini,
		GeminiModel: "gemini-2.0-flash",
	}
}

// NewTranslator creates the appropriate translator based on configuration.
func NewTranslator(config *Config) (Translator, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAITranslator(config), nil

	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiTranslator(config), nil

	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}
}

// OpenAITranslator translates via the OpenAI chat completion API.
type OpenAITranslator struct {
	client *openai.Client
	model  string
}

// NewOpenAITranslator creates a new OpenAI-backed translator.
func NewOpenAITranslator(config *Config) *OpenAITranslator {
	model := config.OpenAIModel
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITranslator{
		client: openai.NewClient(config.OpenAIKey),
		model:  model,
	}
}

// Translate translates an English sentence to Japanese.
func (t *OpenAITranslator) Translate(ctx context.Context, english string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Translate the English sentence '%s' to Japanese. Respond with only the Japanese translation, nothing else.", english),
			},
		},
		MaxTokens:   200,
		Temperature: 0.3,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: OpenAI API error: %v", ErrUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no translation returned", ErrFailed)
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return "", fmt.Errorf("%w: empty translation returned", ErrFailed)
	}
	return translation, nil
}
