// Package speech synthesizes spoken audio from text using OpenAI TTS or
// espeak-ng, behind a common Provider interface with fallback and circuit
// breaker decorators.
package speech
