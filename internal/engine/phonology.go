package engine

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Precomposed vowel-with-tone table (§4.2). Indexed by the lowercase base
// vowel (already carrying any Mark) and the Tone to apply; the uppercase
// form is looked up separately because several entries (e.g. ả -> Ả) are
// not a simple ASCII-style case shift in NFC.
var vowelTones = map[rune]map[Tone]rune{
	'a': {ToneNone: 'a', ToneSac: 'á', ToneHuyen: 'à', ToneHoi: 'ả', ToneNga: 'ã', ToneNang: 'ạ'},
	'ă': {ToneNone: 'ă', ToneSac: 'ắ', ToneHuyen: 'ằ', ToneHoi: 'ẳ', ToneNga: 'ẵ', ToneNang: 'ặ'},
	'â': {ToneNone: 'â', ToneSac: 'ấ', ToneHuyen: 'ầ', ToneHoi: 'ẩ', ToneNga: 'ẫ', ToneNang: 'ậ'},
	'e': {ToneNone: 'e', ToneSac: 'é', ToneHuyen: 'è', ToneHoi: 'ẻ', ToneNga: 'ẽ', ToneNang: 'ẹ'},
	'ê': {ToneNone: 'ê', ToneSac: 'ế', ToneHuyen: 'ề', ToneHoi: 'ể', ToneNga: 'ễ', ToneNang: 'ệ'},
	'i': {ToneNone: 'i', ToneSac: 'í', ToneHuyen: 'ì', ToneHoi: 'ỉ', ToneNga: 'ĩ', ToneNang: 'ị'},
	'o': {ToneNone: 'o', ToneSac: 'ó', ToneHuyen: 'ò', ToneHoi: 'ỏ', ToneNga: 'õ', ToneNang: 'ọ'},
	'ô': {ToneNone: 'ô', ToneSac: 'ố', ToneHuyen: 'ồ', ToneHoi: 'ổ', ToneNga: 'ỗ', ToneNang: 'ộ'},
	'ơ': {ToneNone: 'ơ', ToneSac: 'ớ', ToneHuyen: 'ờ', ToneHoi: 'ở', ToneNga: 'ỡ', ToneNang: 'ợ'},
	'u': {ToneNone: 'u', ToneSac: 'ú', ToneHuyen: 'ù', ToneHoi: 'ủ', ToneNga: 'ũ', ToneNang: 'ụ'},
	'ư': {ToneNone: 'ư', ToneSac: 'ứ', ToneHuyen: 'ừ', ToneHoi: 'ử', ToneNga: 'ữ', ToneNang: 'ự'},
	'y': {ToneNone: 'y', ToneSac: 'ý', ToneHuyen: 'ỳ', ToneHoi: 'ỷ', ToneNga: 'ỹ', ToneNang: 'ỵ'},
}

var vowelTonesUpper = map[rune]map[Tone]rune{
	'A': {ToneNone: 'A', ToneSac: 'Á', ToneHuyen: 'À', ToneHoi: 'Ả', ToneNga: 'Ã', ToneNang: 'Ạ'},
	'Ă': {ToneNone: 'Ă', ToneSac: 'Ắ', ToneHuyen: 'Ằ', ToneHoi: 'Ẳ', ToneNga: 'Ẵ', ToneNang: 'Ặ'},
	'Â': {ToneNone: 'Â', ToneSac: 'Ấ', ToneHuyen: 'Ầ', ToneHoi: 'Ẩ', ToneNga: 'Ẫ', ToneNang: 'Ậ'},
	'E': {ToneNone: 'E', ToneSac: 'É', ToneHuyen: 'È', ToneHoi: 'Ẻ', ToneNga: 'Ẽ', ToneNang: 'Ẹ'},
	'Ê': {ToneNone: 'Ê', ToneSac: 'Ế', ToneHuyen: 'Ề', ToneHoi: 'Ể', ToneNga: 'Ễ', ToneNang: 'Ệ'},
	'I': {ToneNone: 'I', ToneSac: 'Í', ToneHuyen: 'Ì', ToneHoi: 'Ỉ', ToneNga: 'Ĩ', ToneNang: 'Ị'},
	'O': {ToneNone: 'O', ToneSac: 'Ó', ToneHuyen: 'Ò', ToneHoi: 'Ỏ', ToneNga: 'Õ', ToneNang: 'Ọ'},
	'Ô': {ToneNone: 'Ô', ToneSac: 'Ố', ToneHuyen: 'Ồ', ToneHoi: 'Ổ', ToneNga: 'Ỗ', ToneNang: 'Ộ'},
	'Ơ': {ToneNone: 'Ơ', ToneSac: 'Ớ', ToneHuyen: 'Ờ', ToneHoi: 'Ở', ToneNga: 'Ỡ', ToneNang: 'Ợ'},
	'U': {ToneNone: 'U', ToneSac: 'Ú', ToneHuyen: 'Ù', ToneHoi: 'Ủ', ToneNga: 'Ũ', ToneNang: 'Ụ'},
	'Ư': {ToneNone: 'Ư', ToneSac: 'Ứ', ToneHuyen: 'Ừ', ToneHoi: 'Ử', ToneNga: 'Ữ', ToneNang: 'Ự'},
	'Y': {ToneNone: 'Y', ToneSac: 'Ý', ToneHuyen: 'Ỳ', ToneHoi: 'Ỷ', ToneNga: 'Ỹ', ToneNang: 'Ỵ'},
}

// vowelMarkFor maps (lowercase base letter, Mark) -> resulting lowercase
// vowel. Only a, e, o, u accept a mark; i and y never do.
var vowelMarkFor = map[rune]map[Mark]rune{
	'a': {MarkCircumflex: 'â', MarkHorn: 'ă'},
	'e': {MarkCircumflex: 'ê'},
	'o': {MarkCircumflex: 'ô', MarkHorn: 'ơ'},
	'u': {MarkHorn: 'ư'},
}

// init guards the precomposed vowel tables against an accidentally
// decomposed Unicode literal slipping into the source (e.g. "a" + combining
// acute instead of the single scalar á) — every entry must already be its
// own NFC normal form, or every cell in a Buffer would stop being the
// single rune renderCell assumes it is.
func init() {
	assertNFC(vowelTones)
	assertNFC(vowelTonesUpper)
}

func assertNFC(table map[rune]map[Tone]rune) {
	for _, tones := range table {
		for _, r := range tones {
			s := string(r)
			if norm.NFC.String(s) != s {
				panic(fmt.Sprintf("phonology: %q is not NFC-normalized", s))
			}
		}
	}
}

// ApplyMark resolves the base rune for letter key under the given mark,
// preserving case.
func ApplyMark(key KeyId, mark Mark, upper bool) rune {
	lower := KeyToBaseChar(key, false)
	result := lower
	if mark != MarkNone {
		if marks, ok := vowelMarkFor[lower]; ok {
			if r, ok := marks[mark]; ok {
				result = r
			}
		}
	}
	if upper {
		return unicode.ToUpper(result)
	}
	return result
}

// ApplyTone composes a base vowel (already mark-applied) with a tone,
// preserving case.
func ApplyTone(base rune, tone Tone) rune {
	if unicode.IsUpper(base) {
		if m, ok := vowelTonesUpper[base]; ok {
			if r, ok := m[tone]; ok {
				return r
			}
		}
		return base
	}
	if m, ok := vowelTones[base]; ok {
		if r, ok := m[tone]; ok {
			return r
		}
	}
	return base
}

// IsMarkedVowel reports whether r is ă, â, ê, ô, ơ or ư (any case) — a
// vowel already carrying a Mark.
func IsMarkedVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'ă', 'â', 'ê', 'ô', 'ơ', 'ư':
		return true
	}
	return false
}

// StripTone returns the Tone-free base letter for a precomposed vowel,
// along with the Tone it carried. Non-vowels are returned unchanged with
// ToneNone.
func StripTone(r rune) (rune, Tone) {
	lower := unicode.IsLower(r)
	table := vowelTones
	if !lower {
		table = vowelTonesUpper
	}
	for base, tones := range table {
		for tone, ch := range tones {
			if ch == r {
				return base, tone
			}
		}
	}
	return r, ToneNone
}

// StripMark returns the bare base letter (a/e/i/o/u/y) for a vowel that
// may be carrying a Mark (ă/â/ê/ô/ơ/ư), and the Mark it carried.
func StripMark(r rune) (rune, Mark) {
	lower := unicode.ToLower(r)
	upper := unicode.IsUpper(r)
	restore := func(b rune) rune {
		if upper {
			return unicode.ToUpper(b)
		}
		return b
	}
	switch lower {
	case 'ă':
		return restore('a'), MarkHorn
	case 'â':
		return restore('a'), MarkCircumflex
	case 'ê':
		return restore('e'), MarkCircumflex
	case 'ô':
		return restore('o'), MarkCircumflex
	case 'ơ':
		return restore('o'), MarkHorn
	case 'ư':
		return restore('u'), MarkHorn
	}
	return r, MarkNone
}

// --- Initial / final consonant inventory (§4.2) ---

var validInitials = map[string]bool{
	"ngh": true,
	"ch": true, "gh": true, "gi": true, "kh": true, "ng": true,
	"nh": true, "ph": true, "qu": true, "th": true, "tr": true,
	"b": true, "c": true, "d": true, "đ": true, "g": true, "h": true,
	"k": true, "l": true, "m": true, "n": true, "p": true, "q": true,
	"r": true, "s": true, "t": true, "v": true, "x": true,
}

// foreignInitials are accepted additionally when free-tone / foreign
// initials mode is enabled (§4.2).
var foreignInitials = map[string]bool{"f": true, "j": true, "w": true, "z": true}

var validFinals = map[string]bool{
	"ch": true, "ng": true, "nh": true,
	"c": true, "m": true, "n": true, "p": true, "t": true, "i": true, "y": true, "o": true, "u": true,
}

// stopFinals restrict tone to acute or dot-below (§4.2).
var stopFinals = map[string]bool{"p": true, "t": true, "c": true, "ch": true}

// --- Vowel nucleus inventory, longest match first (§4.2) ---

var nucleiTriples = []string{
	"uyê", "uya", "uyu", "oai", "oay", "oao", "uây", "iêu", "yêu", "uôi", "ươi", "ươu", "oeo",
}

var nucleiDoubles = []string{
	"ia", "ua", "ưa", "iê", "yê", "uô", "ươ",
	"oa", "oă", "oe", "oo", "uy", "uê", "ay", "ây",
	"ai", "ao", "au", "âu", "eo", "êu", "oi", "ôi", "ơi", "ui", "ưi", "ưu", "iu", "ưu",
}

var nucleiSingles = map[string]bool{
	"a": true, "ă": true, "â": true, "e": true, "ê": true, "i": true,
	"o": true, "ô": true, "ơ": true, "u": true, "ư": true, "y": true,
}

var risingDiphthongs = map[string]bool{"uô": true, "ươ": true, "iê": true, "yê": true}

var fallingDiphthongs = map[string]bool{
	"ai": true, "ao": true, "au": true, "ay": true, "âu": true, "ây": true,
	"eo": true, "êu": true, "oi": true, "ôi": true, "ơi": true, "ui": true,
	"ưi": true, "ưu": true,
}

var medialGlidePairs = map[string]bool{"oa": true, "oe": true, "uy": true, "uê": true}

func lowerASCIIFold(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return string(runes)
}

// TonePlacement implements §4.6.1: given the mark-applied nucleus vowels
// (lowercase, oldest first), whether a final consonant follows, whether
// the syllable's onset is the atomic "qu-" initial, and whether modern
// tone placement is in effect, returns the index within nucleus that
// should carry the tone.
func TonePlacement(nucleus []rune, hasFinalConsonant, hasQu, modern bool) int {
	switch len(nucleus) {
	case 0:
		return 0
	case 1:
		return 0
	case 2:
		return tonePlacementPair(nucleus, hasFinalConsonant, hasQu, modern)
	default:
		return tonePlacementTriple(nucleus)
	}
}

func tonePlacementPair(nucleus []rune, hasFinalConsonant, hasQu, modern bool) int {
	v0, v1 := nucleus[0], nucleus[1]
	pair := lowerASCIIFold(string(v0) + string(v1))

	if hasFinalConsonant {
		return 1
	}

	m0, m1 := IsMarkedVowel(v0), IsMarkedVowel(v1)
	if m0 != m1 {
		if m0 {
			return 0
		}
		return 1
	}

	isQuUA := pair == "ua" && hasQu
	if medialGlidePairs[pair] || isQuUA {
		if modern {
			return 1
		}
		return 0
	}
	if risingDiphthongs[pair] {
		return 1
	}
	if fallingDiphthongs[pair] {
		return 0
	}
	if pair == "ua" && !hasQu {
		return 0
	}
	return 1
}

func tonePlacementTriple(nucleus []rune) int {
	if IsMarkedVowel(nucleus[1]) {
		return 1
	}
	if IsMarkedVowel(nucleus[2]) {
		return 2
	}
	triple := lowerASCIIFold(string(nucleus[0]) + string(nucleus[1]) + string(nucleus[2]))
	switch triple {
	case "ươi", "uôi", "oai", "oay", "uây":
		return 1
	case "uyê":
		return 2
	case "yêu", "iêu":
		return 1
	}
	return 1
}
