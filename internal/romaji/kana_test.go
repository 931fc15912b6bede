package romaji

import (
	"context"
	"errors"
	"testing"
)

func TestKanaTransliterator(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple hiragana", "こんにちは", "konnichiha"},
		{"katakana", "コンピュータ", "konpyuuta"},
		{"yoon digraph", "きょう", "kyou"},
		{"sokuon", "きって", "kitte"},
		{"sokuon before chi", "まっちゃ", "matcha"},
		{"syllabic n before vowel", "かんい", "kan'i"},
		{"syllabic n before consonant", "かんじ", "kanji"},
		{"chōon repeats vowel", "ラーメン", "raamen"},
		{"punctuation", "はい、そうです。", "hai, soudesu."},
		{"mixed kana scripts", "ひらがなとカタカナ", "hiraganatokatakana"},
		{"voiced syllables", "がぎぐげご", "gagigugego"},
		{"wo particle", "を", "o"},
	}

	tr := NewKanaTransliterator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.Transliterate(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Transliterate(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestKanaTransliterator_Deterministic(t *testing.T) {
	tr := NewKanaTransliterator()

	first, err := tr.Transliterate(context.Background(), "おはようございます")
	if err != nil {
		t.Fatalf("Transliterate failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		got, err := tr.Transliterate(context.Background(), "おはようございます")
		if err != nil {
			t.Fatalf("Transliterate failed on repeat: %v", err)
		}
		if got != first {
			t.Fatalf("Non-deterministic output: %q vs %q", got, first)
		}
	}
}

func TestKanaTransliterator_RejectsKanji(t *testing.T) {
	tr := NewKanaTransliterator()

	_, err := tr.Transliterate(context.Background(), "日本語")
	if err == nil {
		t.Fatal("Expected error for kanji input")
	}
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
}

func TestKanaTransliterator_RejectsEmpty(t *testing.T) {
	tr := NewKanaTransliterator()

	for _, input := range []string{"", "   "} {
		if _, err := tr.Transliterate(context.Background(), input); !errors.Is(err, ErrMalformed) {
			t.Errorf("Transliterate(%q): expected ErrMalformed, got %v", input, err)
		}
	}
}

func TestNewTransliterator(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "nil config needs key for auto engine",
			config:  nil,
			wantErr: true,
			errMsg:  "OpenAI API key is required",
		},
		{
			name:    "kana engine needs no key",
			config:  &Config{Engine: "kana"},
			wantErr: false,
		},
		{
			name:    "openai engine without key",
			config:  &Config{Engine: "openai"},
			wantErr: true,
			errMsg:  "OpenAI API key is required",
		},
		{
			name:    "auto engine with key",
			config:  &Config{Engine: "auto", OpenAIKey: "test-key"},
			wantErr: false,
		},
		{
			name:    "unknown engine",
			config:  &Config{Engine: "unknown"},
			wantErr: true,
			errMsg:  "unknown transliteration engine: unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewTransliterator(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTransliterator() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err.Error() != tt.errMsg {
				t.Errorf("Expected error %q, got %q", tt.errMsg, err.Error())
			}
			if !tt.wantErr && tr == nil {
				t.Error("Expected transliterator, got nil")
			}
		})
	}
}

// recordingTransliterator records calls and returns a fixed result.
type recordingTransliterator struct {
	result string
	err    error
	calls  int
}

func (r *recordingTransliterator) Transliterate(ctx context.Context, japanese string) (string, error) {
	r.calls++
	return r.result, r.err
}

func TestFallbackTransliterator(t *testing.T) {
	t.Run("primary succeeds", func(t *testing.T) {
		primary := &recordingTransliterator{result: "konnichiwa"}
		fallback := &recordingTransliterator{result: "unused"}
		tr := NewFallbackTransliterator(primary, fallback)

		got, err := tr.Transliterate(context.Background(), "こんにちは")
		if err != nil {
			t.Fatalf("Transliterate failed: %v", err)
		}
		if got != "konnichiwa" {
			t.Errorf("Expected primary result, got %q", got)
		}
		if fallback.calls != 0 {
			t.Error("Fallback called although primary succeeded")
		}
	})

	t.Run("primary rejects input", func(t *testing.T) {
		primary := &recordingTransliterator{err: ErrMalformed}
		fallback := &recordingTransliterator{result: "nihongo"}
		tr := NewFallbackTransliterator(primary, fallback)

		got, err := tr.Transliterate(context.Background(), "日本語")
		if err != nil {
			t.Fatalf("Transliterate failed: %v", err)
		}
		if got != "nihongo" {
			t.Errorf("Expected fallback result, got %q", got)
		}
		if primary.calls != 1 || fallback.calls != 1 {
			t.Errorf("Expected 1 call each, got primary=%d fallback=%d", primary.calls, fallback.calls)
		}
	})
}
