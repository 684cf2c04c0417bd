package engine

import (
	_ "embed"
	"strings"
)

// Dictionaries are static, read-only sets loaded once at package init and
// shared (read-only) across every Engine instance (§4.3, §6.3 — no
// runtime file reads; content is compile-time embedded).
//
//go:embed data/vietnamese_syllables.txt
var vietnameseSyllablesRaw string

//go:embed data/english_words.txt
var englishWordsRaw string

//go:embed data/telex_exceptions.txt
var telexExceptionsRaw string

func parseWordSet(raw string) map[string]bool {
	lines := strings.Split(raw, "\n")
	set := make(map[string]bool, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		set[line] = true
	}
	return set
}

var (
	// vietnameseSyllables is the inventory of orthographically valid
	// Vietnamese syllables used to gate transforms (§4.3, §4.4 step 8).
	// Built by phonological combination of the onset/nucleus/coda/tone
	// rules of §4.2 rather than hand-curated from a corpus.
	vietnameseSyllables = parseWordSet(vietnameseSyllablesRaw)

	// englishWords is used by English auto-restore (§4.3, §4.6(f)).
	englishWords = parseWordSet(englishWordsRaw)

	// telexExceptionPrefixes suppresses the w/aw/ow/uw substitutions for
	// words that start with one of these ASCII prefixes (§4.3).
	telexExceptionPrefixes = parseWordSet(telexExceptionsRaw)

	// syllablePrefixes holds every prefix of every valid syllable so
	// IsVietnameseSyllablePrefix is an O(1) lookup instead of a full scan
	// over the dictionary on every keystroke (§5: effectively-constant
	// per-key cost).
	syllablePrefixes = buildPrefixSet(vietnameseSyllables)
)

func buildPrefixSet(words map[string]bool) map[string]bool {
	prefixes := make(map[string]bool, len(words)*4)
	for w := range words {
		runes := []rune(w)
		for i := 1; i <= len(runes); i++ {
			prefixes[string(runes[:i])] = true
		}
	}
	return prefixes
}

// IsVietnameseSyllable reports whether s (already lowercase, NFC) is a
// member of the embedded syllable inventory.
func IsVietnameseSyllable(s string) bool { return vietnameseSyllables[strings.ToLower(s)] }

// IsVietnameseSyllablePrefix reports whether s is a prefix of some member
// of the syllable inventory — used by is_plausible in "soft" prefix mode
// while a syllable is still being typed (§4.4).
func IsVietnameseSyllablePrefix(s string) bool {
	s = strings.ToLower(s)
	if s == "" {
		return true
	}
	return syllablePrefixes[s]
}

// IsEnglishWord reports whether s (lowercase) is a known English word.
func IsEnglishWord(s string) bool { return englishWords[strings.ToLower(s)] }

// HasTelexException reports whether s (lowercase) starts with a prefix
// that suppresses Telex w/aw/ow/uw substitution.
func HasTelexException(s string) bool {
	s = strings.ToLower(s)
	for p := range telexExceptionPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
