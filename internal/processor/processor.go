package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/snonux/kotoba/internal/batch"
	"codeberg.org/snonux/kotoba/internal/cli"
	"codeberg.org/snonux/kotoba/internal/pipeline"
	"codeberg.org/snonux/kotoba/internal/romaji"
	"codeberg.org/snonux/kotoba/internal/speech"
	"codeberg.org/snonux/kotoba/internal/store"
	"codeberg.org/snonux/kotoba/internal/translate"
)

// Processor wires the configured store and collaborators into a pipeline
// and drives it from CLI requests.
type Processor struct {
	flags    *cli.Flags
	store    *store.SQLiteStore
	pipeline *pipeline.Pipeline
}

// NewProcessor opens the store and constructs the pipeline from flags. The
// caller owns the processor and must Close it.
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	s, err := store.Open(flags.DBPath, store.Options{
		AudioDir:    flags.AudioDir,
		AudioFormat: flags.AudioFormat,
	})
	if err != nil {
		return nil, err
	}

	translator, err := newTranslator(flags)
	if err != nil {
		s.Close()
		return nil, err
	}

	transliterator, err := romaji.NewTransliterator(&romaji.Config{
		Engine:      flags.Transliterate,
		OpenAIKey:   cli.GetOpenAIKey(),
		OpenAIModel: flags.OpenAIChatModel,
	})
	if err != nil {
		s.Close()
		return nil, err
	}

	synthesizer, err := newSynthesizer(flags)
	if err != nil {
		s.Close()
		return nil, err
	}

	p := pipeline.New(s, translator, transliterator, synthesizer,
		pipeline.WithLanguage(flags.Language))

	return &Processor{
		flags:    flags,
		store:    s,
		pipeline: p,
	}, nil
}

func newTranslator(flags *cli.Flags) (translate.Translator, error) {
	translator, err := translate.NewTranslator(&translate.Config{
		Provider:    flags.Translator,
		OpenAIKey:   cli.GetOpenAIKey(),
		OpenAIModel: flags.OpenAIChatModel,
		GeminiKey:   cli.GetGeminiKey(),
		GeminiModel: flags.GeminiModel,
	})
	if err != nil {
		return nil, err
	}
	return translate.WithBreaker(translator, flags.Translator), nil
}

func newSynthesizer(flags *cli.Flags) (speech.Provider, error) {
	provider, err := speech.NewProvider(&speech.Config{
		Provider:     flags.TTSProvider,
		OutputFormat: flags.AudioFormat,
		OpenAIKey:    cli.GetOpenAIKey(),
		OpenAIModel:  flags.OpenAITTSModel,
		OpenAIVoice:  flags.OpenAIVoice,
		OpenAISpeed:  flags.OpenAISpeed,
	})
	if err != nil {
		return nil, err
	}
	return speech.WithBreaker(provider), nil
}

// Close releases the underlying store.
func (p *Processor) Close() error {
	return p.store.Close()
}

// ProcessSentence translates a single sentence and prints the result.
func (p *Processor) ProcessSentence(ctx context.Context, sentence string) error {
	rec, err := p.pipeline.GetOrCreate(ctx, sentence)
	if err != nil {
		return err
	}

	fmt.Printf("English:  %s\n", rec.Key)
	fmt.Printf("Japanese: %s\n", rec.Japanese)
	fmt.Printf("Romaji:   %s\n", rec.Romaji)
	if rec.AudioRef != "" {
		fmt.Printf("Audio:    %s\n", p.store.AudioPath(rec))
	} else {
		fmt.Printf("Audio:    %d bytes\n", len(rec.Audio))
	}

	if p.flags.SaveAudio != "" {
		if err := p.saveAudio(rec); err != nil {
			return err
		}
		fmt.Printf("Audio saved to: %s\n", p.flags.SaveAudio)
	}

	return nil
}

// ProcessBatch pre-warms the cache from a sentence file, continuing past
// per-sentence failures.
func (p *Processor) ProcessBatch(ctx context.Context) error {
	sentences, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	processedCount := 0
	errorCount := 0

	for i, sentence := range sentences {
		fmt.Printf("Processing %d/%d: %s\n", i+1, len(sentences), sentence)

		if _, err := p.pipeline.GetOrCreate(ctx, sentence); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", sentence, err)
			errorCount++
			continue
		}
		processedCount++
	}

	fmt.Printf("\n=== Batch Summary ===\n")
	fmt.Printf("Total sentences: %d\n", len(sentences))
	fmt.Printf("Processed: %d\n", processedCount)
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("=====================\n")

	return nil
}

// ListTranslations prints all cached records in insertion order.
func (p *Processor) ListTranslations(ctx context.Context) error {
	records, err := p.pipeline.ListAll(ctx)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No cached translations.")
		return nil
	}

	for _, rec := range records {
		fmt.Printf("%d. %s\n", rec.ID, rec.Key)
		fmt.Printf("   Japanese: %s\n", rec.Japanese)
		fmt.Printf("   Romaji:   %s\n", rec.Romaji)
		if rec.AudioRef != "" {
			fmt.Printf("   Audio:    %s\n", rec.AudioRef)
		} else {
			fmt.Printf("   Audio:    %d bytes\n", len(rec.Audio))
		}
	}
	return nil
}

func (p *Processor) saveAudio(rec *store.Record) error {
	dir := filepath.Dir(p.flags.SaveAudio)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(p.flags.SaveAudio, rec.Audio, 0644); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}
