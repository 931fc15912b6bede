package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ESpeakProvider implements Provider using the espeak-ng binary. Output is
// always wav; espeak-ng writes to a file, so synthesis goes through a
// temporary file that is read back and removed.
type ESpeakProvider struct {
	speed int
}

// NewESpeakProvider creates a new espeak-ng provider. espeak-ng can only
// write wav, so any other configured format is rejected up front instead
// of storing wav bytes under a misleading file extension.
func NewESpeakProvider(config *Config) (*ESpeakProvider, error) {
	if config.OutputFormat != "" && !strings.EqualFold(config.OutputFormat, "wav") {
		return nil, fmt.Errorf("espeak produces wav audio only, got format %q", config.OutputFormat)
	}
	if err := checkESpeakInstalled(); err != nil {
		return nil, err
	}

	speed := config.ESpeakSpeed
	if speed == 0 {
		speed = 150
	}
	return &ESpeakProvider{speed: speed}, nil
}

// Synthesize generates audio bytes using espeak-ng.
func (p *ESpeakProvider) Synthesize(ctx context.Context, text, languageCode string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text cannot be empty", ErrFailed)
	}

	tmpDir, err := os.MkdirTemp("", "kotoba_espeak_*")
	if err != nil {
		return nil, fmt.Errorf("%w: create temp directory: %v", ErrFailed, err)
	}
	defer os.RemoveAll(tmpDir)

	outputFile := filepath.Join(tmpDir, "audio.wav")
	args := []string{
		"-v", languageCode,
		"-s", fmt.Sprintf("%d", p.speed),
		"-w", outputFile,
		text,
	}

	cmd := exec.CommandContext(ctx, "espeak-ng", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%w: espeak-ng failed: %v\nOutput: %s", ErrFailed, err, string(output))
	}

	audio, err := os.ReadFile(outputFile)
	if err != nil {
		return nil, fmt.Errorf("%w: read espeak-ng output: %v", ErrFailed, err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: espeak-ng produced no audio", ErrFailed)
	}

	return audio, nil
}

// Name returns the provider name.
func (p *ESpeakProvider) Name() string {
	return "espeak-ng"
}

// IsAvailable checks if espeak-ng is installed.
func (p *ESpeakProvider) IsAvailable() error {
	return checkESpeakInstalled()
}

// checkESpeakInstalled verifies the espeak-ng binary is on the PATH.
func checkESpeakInstalled() error {
	if _, err := exec.LookPath("espeak-ng"); err != nil {
		return fmt.Errorf("%w: espeak-ng not found in PATH", ErrUnavailable)
	}
	return nil
}

var _ Provider = (*ESpeakProvider)(nil)
