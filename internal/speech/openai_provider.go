package speech

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider for OpenAI TTS.
type OpenAIProvider struct {
	client *openai.Client
	config *Config
}

// NewOpenAIProvider creates a new OpenAI TTS provider.
func NewOpenAIProvider(config *Config) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(config.OpenAIKey),
		config: config,
	}
}

// Synthesize generates audio bytes using OpenAI TTS.
func (p *OpenAIProvider) Synthesize(ctx context.Context, text, languageCode string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text cannot be empty", ErrFailed)
	}

	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(p.config.OpenAIModel),
		Input:          text,
		Voice:          openai.SpeechVoice(p.config.OpenAIVoice),
		Speed:          p.config.OpenAISpeed,
		ResponseFormat: responseFormat(p.config.OutputFormat),
	}

	// The TTS models take pronunciation hints through instructions rather
	// than a language parameter.
	if p.config.OpenAIModel == "gpt-4o-mini-tts" {
		req.Instructions = fmt.Sprintf("Pronounce the text as %s speech. Speak clearly for language learners.", languageName(languageCode))
	}

	response, err := p.client.CreateSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: OpenAI TTS API error: %v", ErrUnavailable, err)
	}
	defer response.Close()

	audio, err := io.ReadAll(response)
	if err != nil {
		return nil, fmt.Errorf("%w: read audio stream: %v", ErrFailed, err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: no audio data received from OpenAI", ErrFailed)
	}

	return audio, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is accessible.
func (p *OpenAIProvider) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}

	// A test API call would use credits. Having a key is good enough.
	return nil
}

func responseFormat(format string) openai.SpeechResponseFormat {
	switch strings.ToLower(format) {
	case "wav":
		return openai.SpeechResponseFormatWav
	case "opus":
		return openai.SpeechResponseFormatOpus
	case "aac":
		return openai.SpeechResponseFormatAac
	case "flac":
		return openai.SpeechResponseFormatFlac
	default:
		return openai.SpeechResponseFormatMp3
	}
}

// languageName maps common language codes to names usable in instructions.
func languageName(code string) string {
	switch strings.ToLower(code) {
	case "ja":
		return "Japanese"
	case "en":
		return "English"
	case "ko":
		return "Korean"
	case "zh":
		return "Chinese"
	default:
		return code
	}
}

var _ Provider = (*OpenAIProvider)(nil)
