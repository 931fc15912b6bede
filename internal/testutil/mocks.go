package testutil

import (
	"context"
	"fmt"
	"sync"
)

// MockTranslator mocks the translation collaborator.
type MockTranslator struct {
	Translations map[string]string
	Err          error

	mu    sync.Mutex
	Calls []string
}

// Translate returns the configured translation for the input sentence.
func (m *MockTranslator) Translate(ctx context.Context, english string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, english)
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	if translation, ok := m.Translations[english]; ok {
		return translation, nil
	}
	return fmt.Sprintf("mock translation of %s", english), nil
}

// MockTransliterator mocks the transliteration collaborator.
type MockTransliterator struct {
	Readings map[string]string
	Err      error

	mu    sync.Mutex
	Calls []string
}

// Transliterate returns the configured reading for the input text.
func (m *MockTransliterator) Transliterate(ctx context.Context, japanese string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, japanese)
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	if reading, ok := m.Readings[japanese]; ok {
		return reading, nil
	}
	return fmt.Sprintf("mock reading of %s", japanese), nil
}

// MockSpeechProvider mocks the speech synthesis collaborator.
type MockSpeechProvider struct {
	Audio        []byte
	Err          error
	AvailableErr error

	mu    sync.Mutex
	Calls []string
}

// Synthesize returns the configured audio bytes.
func (m *MockSpeechProvider) Synthesize(ctx context.Context, text, languageCode string) ([]byte, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, fmt.Sprintf("%s [%s]", text, languageCode))
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if m.Audio != nil {
		return m.Audio, nil
	}
	return MockAudioData(), nil
}

// Name returns the provider name.
func (m *MockSpeechProvider) Name() string {
	return "mock"
}

// IsAvailable reports the configured availability.
func (m *MockSpeechProvider) IsAvailable() error {
	return m.AvailableErr
}

// MockAudioData returns bytes resembling an MP3 frame header.
func MockAudioData() []byte {
	return []byte{0xFF, 0xFB, 0x90, 0x00, 0x00, 0x00, 0x00, 0x00}
}
