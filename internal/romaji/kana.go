package romaji

import (
	"context"
	"fmt"
	"strings"
)

// kanaDigraphs maps two-rune yōon combinations to Hepburn syllables. These
// are checked before single kana (longest match first).
var kanaDigraphs = map[string]string{
	"きゃ": "kya", "きゅ": "kyu", "きょ": "kyo",
	"ぎゃ": "gya", "ぎゅ": "gyu", "ぎょ": "gyo",
	"しゃ": "sha", "しゅ": "shu", "しょ": "sho",
	"じゃ": "ja", "じゅ": "ju", "じょ": "jo",
	"ちゃ": "cha", "ちゅ": "chu", "ちょ": "cho",
	"ぢゃ": "ja", "ぢゅ": "ju", "ぢょ": "jo",
	"にゃ": "nya", "にゅ": "nyu", "にょ": "nyo",
	"ひゃ": "hya", "ひゅ": "hyu", "ひょ": "hyo",
	"びゃ": "bya", "びゅ": "byu", "びょ": "byo",
	"ぴゃ": "pya", "ぴゅ": "pyu", "ぴょ": "pyo",
	"みゃ": "mya", "みゅ": "myu", "みょ": "myo",
	"りゃ": "rya", "りゅ": "ryu", "りょ": "ryo",
	"うぃ": "wi", "うぇ": "we", "うぉ": "wo",
	"ふぁ": "fa", "ふぃ": "fi", "ふぇ": "fe", "ふぉ": "fo",
	"てぃ": "ti", "でぃ": "di", "とぅ": "tu", "どぅ": "du",
	"ちぇ": "che", "しぇ": "she", "じぇ": "je", "いぇ": "ye",
	"つぁ": "tsa", "つぃ": "tsi", "つぇ": "tse", "つぉ": "tso",
	"ゔぁ": "va", "ゔぃ": "vi", "ゔぇ": "ve", "ゔぉ": "vo",
}

// kanaSingles maps single kana to Hepburn syllables.
var kanaSingles = map[rune]string{
	'あ': "a", 'い': "i", 'う': "u", 'え': "e", 'お': "o",
	'か': "ka", 'き': "ki", 'く': "ku", 'け': "ke", 'こ': "ko",
	'が': "ga", 'ぎ': "gi", 'ぐ': "gu", 'げ': "ge", 'ご': "go",
	'さ': "sa", 'し': "shi", 'す': "su", 'せ': "se", 'そ': "so",
	'ざ': "za", 'じ': "ji", 'ず': "zu", 'ぜ': "ze", 'ぞ': "zo",
	'た': "ta", 'ち': "chi", 'つ': "tsu", 'て': "te", 'と': "to",
	'だ': "da", 'ぢ': "ji", 'づ': "zu", 'で': "de", 'ど': "do",
	'な': "na", 'に': "ni", 'ぬ': "nu", 'ね': "ne", 'の': "no",
	'は': "ha", 'ひ': "hi", 'ふ': "fu", 'へ': "he", 'ほ': "ho",
	'ば': "ba", 'び': "bi", 'ぶ': "bu", 'べ': "be", 'ぼ': "bo",
	'ぱ': "pa", 'ぴ': "pi", 'ぷ': "pu", 'ぺ': "pe", 'ぽ': "po",
	'ま': "ma", 'み': "mi", 'む': "mu", 'め': "me", 'も': "mo",
	'や': "ya", 'ゆ': "yu", 'よ': "yo",
	'ら': "ra", 'り': "ri", 'る': "ru", 'れ': "re", 'ろ': "ro",
	'わ': "wa", 'ゐ': "i", 'ゑ': "e", 'を': "o",
	'ゔ': "vu",
	'ぁ': "a", 'ぃ': "i", 'ぅ': "u", 'ぇ': "e", 'ぉ': "o",
	'ゃ': "ya", 'ゅ': "yu", 'ょ': "yo",
}

// kanaPunctuation maps Japanese punctuation to Latin equivalents.
var kanaPunctuation = map[rune]string{
	'、': ", ", '。': ". ", '・': " ", '　': " ",
	'「': "\"", '」': "\"", '『': "\"", '』': "\"",
	'！': "!", '？': "?",
}

// KanaTransliterator is a deterministic Hepburn converter for hiragana and
// katakana text. It rejects text containing kanji or anything else it
// cannot read; callers pair it with a dictionary-backed engine for mixed
// text.
type KanaTransliterator struct{}

// NewKanaTransliterator creates a new kana-only Hepburn converter.
func NewKanaTransliterator() *KanaTransliterator {
	return &KanaTransliterator{}
}

// Transliterate converts kana text to Hepburn romaji. Sokuon geminates the
// following consonant (っち -> tchi), chōon repeats the preceding vowel.
// The conversion is local, so the context is unused.
func (k *KanaTransliterator) Transliterate(_ context.Context, japanese string) (string, error) {
	runes := []rune(toHiragana(japanese))

	var b strings.Builder
	geminate := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case r == 'っ':
			geminate = true
			continue

		case r == 'ー':
			// Long vowel: repeat the last vowel written so far.
			if v := lastVowel(b.String()); v != 0 {
				b.WriteRune(v)
			}
			continue

		case r == 'ん':
			b.WriteString("n")
			// Hepburn separates syllabic n from a following vowel or y.
			if i+1 < len(runes) {
				if s, ok := kanaSingles[runes[i+1]]; ok && strings.ContainsAny(s[:1], "aiueoy") {
					b.WriteString("'")
				}
			}
			continue

		case r == ' ' || r == '\n' || r == '\t':
			b.WriteRune(r)
			continue
		}

		var syllable string
		if i+1 < len(runes) {
			if s, ok := kanaDigraphs[string(runes[i:i+2])]; ok {
				syllable = s
				i++
			}
		}
		if syllable == "" {
			if s, ok := kanaSingles[r]; ok {
				syllable = s
			} else if s, ok := kanaPunctuation[r]; ok {
				b.WriteString(s)
				geminate = false
				continue
			} else {
				return "", fmt.Errorf("%w: unreadable character %q", ErrMalformed, string(r))
			}
		}

		if geminate {
			b.WriteString(geminatePrefix(syllable))
			geminate = false
		}
		b.WriteString(syllable)
	}

	result := strings.TrimSpace(b.String())
	if result == "" {
		return "", fmt.Errorf("%w: nothing to transliterate", ErrMalformed)
	}
	return result, nil
}

// toHiragana folds katakana runes into their hiragana equivalents so a
// single lookup table covers both scripts. The chōon mark passes through.
func toHiragana(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'ァ' && r <= 'ヶ' {
			r -= 0x60
		}
		b.WriteRune(r)
	}
	return b.String()
}

// geminatePrefix returns the consonant doubling for a sokuon. Hepburn
// writes っち as tchi, not cchi.
func geminatePrefix(syllable string) string {
	if strings.HasPrefix(syllable, "ch") {
		return "t"
	}
	return syllable[:1]
}

// lastVowel returns the last vowel rune in s, or 0 if there is none.
func lastVowel(s string) rune {
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		switch runes[i] {
		case 'a', 'i', 'u', 'e', 'o':
			return runes[i]
		}
	}
	return 0
}

var _ Transliterator = (*KanaTransliterator)(nil)
