package engine

// TelexMethod implements the Telex keyboard convention: tone marks on
// s/f/r/x/j, vowel marks on doubled letters and 'w', z to strip tones, dd
// for đ (§4.1, §4.5).
type TelexMethod struct{}

// NewTelexMethod returns a stateless Telex Method.
func NewTelexMethod() TelexMethod { return TelexMethod{} }

func (TelexMethod) Name() string { return "Telex" }

func (TelexMethod) ClassifyMark(key KeyId) (Tone, bool) {
	switch key {
	case KeyS:
		return ToneSac, true
	case KeyF:
		return ToneHuyen, true
	case KeyR:
		return ToneHoi, true
	case KeyX:
		return ToneNga, true
	case KeyJ:
		return ToneNang, true
	}
	return ToneNone, false
}

func (TelexMethod) ClassifyRemove(key KeyId) bool { return key == KeyZ }

// SuppressesVowelMark checks word against the Telex exception list: a bare
// 'w' after a vowel in a word like "world" or "wifi" is an ordinary letter,
// not a horn trigger, so the mark must not fire for it.
func (TelexMethod) SuppressesVowelMark(word []rune) bool {
	return HasTelexException(string(word))
}

// ClassifyTone recognizes the doubled-letter circumflex triggers (aa, ee,
// oo) and the horn trigger 'w' (aw/ow/uw), each acting on the single cell
// immediately preceding the trigger keystroke.
func (TelexMethod) ClassifyTone(key KeyId, tail []Char) (Mark, KeyId, bool) {
	if len(tail) == 0 {
		return MarkNone, 0, false
	}
	last := tail[len(tail)-1]
	switch key {
	case KeyA, KeyE, KeyO:
		if last.Key == key && last.Mark == MarkNone {
			return MarkCircumflex, last.Key, true
		}
	case KeyW:
		switch last.Key {
		case KeyA, KeyO, KeyU:
			if last.Mark == MarkNone {
				return MarkHorn, last.Key, true
			}
		}
	}
	return MarkNone, 0, false
}

// ClassifyDTrigger recognizes the second 'd' in "dd" immediately following
// an un-struck 'd' cell.
func (TelexMethod) ClassifyDTrigger(key KeyId, tail []Char) bool {
	if key != KeyD || len(tail) == 0 {
		return false
	}
	last := tail[len(tail)-1]
	return last.Key == KeyD && !last.DStroke
}

// ClassifyDelayedD never applies in Telex: đ is always produced by the
// immediately-adjacent "dd" pair, never a deferred trigger.
func (TelexMethod) ClassifyDelayedD(key KeyId, buf []Char) (int, bool) { return 0, false }

func (TelexMethod) IsTriggerKey(key KeyId) bool {
	switch key {
	case KeyS, KeyF, KeyR, KeyX, KeyJ, KeyZ, KeyA, KeyE, KeyO, KeyW, KeyD:
		return true
	}
	return false
}
