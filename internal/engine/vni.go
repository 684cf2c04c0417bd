package engine

// VNIMethod implements the VNI keyboard convention: digits 1-5 place
// tones, 0 strips them, 6/7/8 place vowel marks, 9 strikes đ (§4.1, §4.5).
type VNIMethod struct{}

// NewVNIMethod returns a stateless VNI Method.
func NewVNIMethod() VNIMethod { return VNIMethod{} }

func (VNIMethod) Name() string { return "VNI" }

func (VNIMethod) ClassifyMark(key KeyId) (Tone, bool) {
	switch key {
	case Key1:
		return ToneSac, true
	case Key2:
		return ToneHuyen, true
	case Key3:
		return ToneHoi, true
	case Key4:
		return ToneNga, true
	case Key5:
		return ToneNang, true
	}
	return ToneNone, false
}

func (VNIMethod) ClassifyRemove(key KeyId) bool { return key == Key0 }

// SuppressesVowelMark is always false: VNI's digit triggers have no
// brand-name-style exception list.
func (VNIMethod) SuppressesVowelMark(word []rune) bool { return false }

// ClassifyTone recognizes 6 (circumflex on a/e/o), 7 (horn on o/u) and 8
// (breve on a), each acting on the cell immediately preceding the digit.
// The compound "uo" -> "ươ" widening (both cells take the horn) is applied
// by the transform layer once it resolves this single target, not here.
func (VNIMethod) ClassifyTone(key KeyId, tail []Char) (Mark, KeyId, bool) {
	if len(tail) == 0 {
		return MarkNone, 0, false
	}
	last := tail[len(tail)-1]
	switch key {
	case Key6:
		switch last.Key {
		case KeyA, KeyE, KeyO:
			if last.Mark == MarkNone {
				return MarkCircumflex, last.Key, true
			}
		}
	case Key7:
		switch last.Key {
		case KeyO, KeyU:
			if last.Mark == MarkNone {
				return MarkHorn, last.Key, true
			}
		}
	case Key8:
		if last.Key == KeyA && last.Mark == MarkNone {
			return MarkHorn, last.Key, true
		}
	}
	return MarkNone, 0, false
}

// ClassifyDTrigger recognizes 9 immediately following an un-struck 'd'.
func (VNIMethod) ClassifyDTrigger(key KeyId, tail []Char) bool {
	if key != Key9 || len(tail) == 0 {
		return false
	}
	last := tail[len(tail)-1]
	return last.Key == KeyD && !last.DStroke
}

// ClassifyDelayedD recognizes 9 arriving after the nucleus has already been
// typed (e.g. "do" then "9" for "đo"): it scans back through the current
// word for the most recent un-struck 'd' cell.
func (VNIMethod) ClassifyDelayedD(key KeyId, buf []Char) (int, bool) {
	if key != Key9 {
		return 0, false
	}
	for i := len(buf) - 1; i >= 0; i-- {
		c := buf[i]
		if IsWordBreak(c.Key) {
			break
		}
		if c.Key == KeyD {
			if c.DStroke {
				return 0, false
			}
			return i, true
		}
	}
	return 0, false
}

func (VNIMethod) IsTriggerKey(key KeyId) bool {
	return IsDigit(key)
}
