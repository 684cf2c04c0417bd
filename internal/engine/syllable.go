package engine

import "unicode"

// Syllable is the parsed phonological structure of a buffer (§3, §4.4).
type Syllable struct {
	Onset   string
	Nucleus []rune // canonical, tone-stripped, mark-applied vowel letters
	Coda    string
	Tone    Tone
	HasQu   bool
	HasGi   bool
}

// canonicalRunes derives the tone-stripped, mark-applied, lowercase
// canonical letter sequence for a buffer (§4.4 step 1). Each cell maps to
// exactly one canonical rune because modifier keystrokes mutate an
// existing cell rather than appending a new one (§4.6).
func canonicalRunes(cells []Char) []rune {
	out := make([]rune, len(cells))
	for i, c := range cells {
		if c.Key == KeyD {
			if c.DStroke {
				out[i] = 'đ'
			} else {
				out[i] = 'd'
			}
			continue
		}
		if IsVowel(c.Key) {
			out[i] = ApplyMark(c.Key, c.Mark, false)
			continue
		}
		out[i] = KeyToBaseChar(c.Key, false)
	}
	return out
}

func bareVowel(r rune) bool {
	switch r {
	case 'a', 'ă', 'â', 'e', 'ê', 'i', 'o', 'ô', 'ơ', 'u', 'ư', 'y':
		return true
	}
	return false
}

func hasForbiddenLetter(s []rune, foreignOK bool) bool {
	if foreignOK {
		return false
	}
	for _, r := range s {
		switch r {
		case 'f', 'j', 'w', 'z':
			return true
		}
	}
	return false
}

// splitInitial performs longest-match initial extraction (§4.4 step 3-4).
func splitInitial(s []rune, foreignOK bool) (onset string, rest []rune, hasQu, hasGi bool) {
	if len(s) >= 3 && string(s[:3]) == "ngh" {
		return "ngh", s[3:], false, false
	}
	if len(s) >= 2 {
		pair := string(s[:2])
		if pair == "qu" {
			return "qu", s[2:], true, false
		}
		if pair == "gi" {
			tail := s[2:]
			hasVowelAfter := false
			for _, r := range tail {
				if bareVowel(r) {
					hasVowelAfter = true
					break
				}
			}
			if hasVowelAfter {
				return "gi", tail, false, true
			}
			// "gì", "gỉ": the i serves as nucleus, onset is just "g".
			return "g", s[1:], false, false
		}
		switch pair {
		case "ch", "gh", "kh", "ng", "nh", "ph", "th", "tr":
			return pair, s[2:], false, false
		}
	}
	if len(s) >= 1 {
		c := s[0]
		single := string(c)
		if validInitials[single] || (foreignOK && foreignInitials[single]) {
			return single, s[1:], false, false
		}
	}
	return "", s, false, false
}

// splitNucleus performs longest-match nucleus extraction, triple then
// double then single (§4.2, §4.4 step 5).
func splitNucleus(s []rune) (nucleus []rune, rest []rune) {
	lower := make([]rune, len(s))
	for i, r := range s {
		lower[i] = unicode.ToLower(r)
	}
	if len(s) >= 3 {
		cand := string(lower[:3])
		for _, t := range nucleiTriples {
			if t == cand {
				return s[:3], s[3:]
			}
		}
	}
	if len(s) >= 2 {
		cand := string(lower[:2])
		for _, d := range nucleiDoubles {
			if d == cand {
				return s[:2], s[2:]
			}
		}
	}
	if len(s) >= 1 && nucleiSingles[string(lower[:1])] {
		return s[:1], s[1:]
	}
	return nil, s
}

// splitCoda performs longest-match final-consonant extraction (§4.4 step
// 6).
func splitCoda(s []rune) (coda string, rest []rune) {
	lower := make([]rune, len(s))
	for i, r := range s {
		lower[i] = unicode.ToLower(r)
	}
	if len(s) >= 2 {
		pair := string(lower[:2])
		if validFinals[pair] {
			return pair, s[2:]
		}
	}
	if len(s) >= 1 {
		single := string(lower[:1])
		if validFinals[single] {
			return single, s[1:]
		}
	}
	return "", s
}

var spellingViolations = map[string]bool{
	"ce": true, "ci": true, "cy": true,
	"ka": true, "ko": true, "ku": true,
	"ge": true, "nge": true, "ngi": true,
	"gha": true, "gho": true, "ghu": true,
	"ngha": true, "ngho": true, "nghu": true,
}

// crossValidate applies §4.4 step 7's orthographic cross-checks.
func crossValidate(onset string, nucleus []rune, coda string, tone Tone) bool {
	if len(nucleus) > 0 {
		combo := onset + string(unicode.ToLower(nucleus[0]))
		if spellingViolations[combo] {
			return false
		}
	}
	if coda == "ch" || coda == "nh" {
		if len(nucleus) == 0 {
			return false
		}
		last := unicode.ToLower(nucleus[len(nucleus)-1])
		switch last {
		case 'a', 'ă', 'ê', 'i', 'y':
		default:
			return false
		}
	}
	if coda == "ng" && len(nucleus) > 0 {
		last := unicode.ToLower(nucleus[len(nucleus)-1])
		if last == 'e' || last == 'ê' {
			return false
		}
	}
	if stopFinals[coda] {
		switch tone {
		case ToneNone, ToneSac, ToneNang:
		default:
			return false
		}
	}
	return true
}

// ParseOptions controls the dictionary/foreign-initial leniency of a
// parse (mirrors the Engine's free-tone and strict-validation settings).
type ParseOptions struct {
	ForeignInitials  bool // "free tone" mode: allow f/j/w/z onsets
	EnableValidation bool // gate on the syllable dictionary
}

// ParseSyllable implements §4.4's parse(buffer) -> Option<Syllable>. ok is
// false if the buffer cannot be parsed as a plausible Vietnamese syllable.
func ParseSyllable(cells []Char, opts ParseOptions) (Syllable, bool) {
	if len(cells) == 0 {
		return Syllable{}, false
	}
	canon := canonicalRunes(cells)
	if hasForbiddenLetter(canon, opts.ForeignInitials) {
		return Syllable{}, false
	}

	onset, rest, hasQu, hasGi := splitInitial(canon, opts.ForeignInitials)
	nucleus, rest := splitNucleus(rest)
	if len(nucleus) == 0 {
		return Syllable{}, false
	}
	coda, rest := splitCoda(rest)
	if len(rest) != 0 {
		return Syllable{}, false
	}

	var tone Tone
	for _, c := range cells {
		if c.Tone != ToneNone {
			tone = c.Tone
			break
		}
	}

	if !crossValidate(onset, nucleus, coda, tone) {
		return Syllable{}, false
	}

	syl := Syllable{Onset: onset, Nucleus: nucleus, Coda: coda, Tone: tone, HasQu: hasQu, HasGi: hasGi}

	if opts.EnableValidation {
		composed := composeSyllable(syl)
		if !IsVietnameseSyllable(composed) {
			base := onset + string(nucleus) + coda
			if !IsVietnameseSyllable(base) {
				return Syllable{}, false
			}
		}
	}

	return syl, true
}

// composeSyllable renders onset+nucleus(with tone placed)+coda lowercase,
// for dictionary lookups.
func composeSyllable(syl Syllable) string {
	if len(syl.Nucleus) == 0 {
		return syl.Onset + syl.Coda
	}
	idx := TonePlacement(syl.Nucleus, syl.Coda != "", syl.HasQu, true)
	out := make([]rune, len(syl.Nucleus))
	copy(out, syl.Nucleus)
	out[idx] = ApplyTone(unicode.ToLower(out[idx]), syl.Tone)
	return syl.Onset + string(out) + syl.Coda
}

// IsPlausible is the prefix-relaxed predicate used to gate in-flight
// transforms while a syllable is still being typed (§4.4, last
// paragraph): the parse predicate with the dictionary check done in
// prefix mode.
func IsPlausible(cells []Char, opts ParseOptions) bool {
	if len(cells) == 0 {
		return false
	}
	canon := canonicalRunes(cells)
	if hasForbiddenLetter(canon, opts.ForeignInitials) {
		return false
	}
	onset, rest, hasQu, hasGi := splitInitial(canon, opts.ForeignInitials)
	nucleus, rest := splitNucleus(rest)
	if len(nucleus) == 0 {
		// No vowel parsed yet: plausible only if what we have so far could
		// still be a valid onset-in-progress.
		return onset != "" || len(rest) == 0
	}
	coda, rest := splitCoda(rest)
	if len(rest) != 0 {
		return false
	}
	var tone Tone
	for _, c := range cells {
		if c.Tone != ToneNone {
			tone = c.Tone
			break
		}
	}
	if !crossValidate(onset, nucleus, coda, tone) {
		return false
	}
	_ = hasQu
	_ = hasGi
	if !opts.EnableValidation {
		return true
	}
	base := onset + string(nucleus) + coda
	return IsVietnameseSyllablePrefix(base) || IsVietnameseSyllable(base)
}
