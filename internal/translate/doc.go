// Package translate provides English to Japanese translation via the
// OpenAI or Gemini APIs, behind a single Translator interface with a
// circuit breaker decorator for paid collaborators.
package translate
