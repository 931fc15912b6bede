package romaji

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAITransliterator resolves readings for mixed kanji text via the
// OpenAI chat API. Temperature is pinned to zero so the same input yields
// the same reading.
type OpenAITransliterator struct {
	client *openai.Client
	model  string
}

// NewOpenAITransliterator creates a new OpenAI-backed transliterator.
func NewOpenAITransliterator(config *Config) *OpenAITransliterator {
	model := config.OpenAIModel
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITransliterator{
		client: openai.NewClient(config.OpenAIKey),
		model:  model,
	}
}

// Transliterate converts Japanese text to Hepburn romaji. The caller's
// context bounds the API call.
func (t *OpenAITransliterator) Transliterate(ctx context.Context, japanese string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You convert Japanese text to Hepburn romaji. Respond with only the romaji, all lowercase, nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: japanese,
			},
		},
		MaxTokens:   200,
		Temperature: 0,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: OpenAI API error: %v", ErrUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no reading returned", ErrMalformed)
	}

	reading := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reading == "" {
		return "", fmt.Errorf("%w: empty reading returned", ErrMalformed)
	}
	return reading, nil
}

var _ Transliterator = (*OpenAITransliterator)(nil)
