// Package romaji converts Japanese text to Hepburn romanization. A
// deterministic table-driven converter handles pure kana text; an
// OpenAI-backed engine resolves readings for text containing kanji.
package romaji
