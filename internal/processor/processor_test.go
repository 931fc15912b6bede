package processor

import (
	"context"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/kotoba/internal/cli"
)

func testFlags(t *testing.T) *cli.Flags {
	t.Helper()

	flags := cli.NewFlags()
	flags.DBPath = filepath.Join(t.TempDir(), "translations.db")
	flags.Transliterate = "kana"
	return flags
}

func TestNewProcessor(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	p, err := NewProcessor(testFlags(t))
	if err != nil {
		t.Fatalf("NewProcessor failed: %v", err)
	}
	defer p.Close()

	if p.store == nil {
		t.Error("Store not initialized")
	}
	if p.pipeline == nil {
		t.Error("Pipeline not initialized")
	}
}

func TestNewProcessor_NoAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := NewProcessor(testFlags(t))
	if err == nil {
		t.Error("Expected error without API key")
	}
}

func TestNewProcessor_UnknownTranslator(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	flags := testFlags(t)
	flags.Translator = "unknown"

	_, err := NewProcessor(flags)
	if err == nil {
		t.Error("Expected error for unknown translator provider")
	}
}

func TestListTranslations_Empty(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	p, err := NewProcessor(testFlags(t))
	if err != nil {
		t.Fatalf("NewProcessor failed: %v", err)
	}
	defer p.Close()

	if err := p.ListTranslations(context.Background()); err != nil {
		t.Errorf("ListTranslations failed: %v", err)
	}
}

func TestProcessBatch_InvalidFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	flags := testFlags(t)
	flags.BatchFile = "/nonexistent/file.txt"

	p, err := NewProcessor(flags)
	if err != nil {
		t.Fatalf("NewProcessor failed: %v", err)
	}
	defer p.Close()

	if err := p.ProcessBatch(context.Background()); err == nil {
		t.Error("Expected error for non-existent batch file")
	}
}
