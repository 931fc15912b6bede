package romaji

import (
	"context"
	"errors"
	"os"
	"testing"
)

func TestOpenAITransliterator_HonorsCallerContext(t *testing.T) {
	tr := NewOpenAITransliterator(&Config{OpenAIKey: "test-key"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tr.Transliterate(ctx, "日本語")
	if err == nil {
		t.Fatal("Expected error with canceled context")
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable for transport failure, got %v", err)
	}
	if errors.Is(err, ErrMalformed) {
		t.Error("Transport failure must not be reported as malformed input")
	}
}

func TestOpenAITransliterator_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	tr := NewOpenAITransliterator(&Config{OpenAIKey: apiKey})

	reading, err := tr.Transliterate(context.Background(), "日本語")
	if err != nil {
		t.Fatalf("Transliterate failed: %v", err)
	}
	if reading == "" {
		t.Error("Got empty reading")
	}

	t.Logf("Reading of 日本語: %s", reading)
}
