package engine

// KeyId is an opaque, stable identifier for a physical key position. The
// engine never interprets OS keycodes directly; hosts translate their own
// keycode space (X11 keysym, Win32 VK, evdev, …) into this space once, at
// the edge. The numbering mirrors a fixed ANSI keyboard layout — it is part
// of the package's exported contract, not an accident of iota ordering, so
// the values are spelled out rather than derived.
type KeyId uint16

// Letter keys. Values follow a real physical-key ordering (not alphabetic),
// the way a host's keycode table actually looks.
const (
	KeyA KeyId = 0x00
	KeyS KeyId = 0x01
	KeyD KeyId = 0x02
	KeyF KeyId = 0x03
	KeyH KeyId = 0x04
	KeyG KeyId = 0x05
	KeyZ KeyId = 0x06
	KeyX KeyId = 0x07
	KeyC KeyId = 0x08
	KeyV KeyId = 0x09
	KeyB KeyId = 0x0B
	KeyQ KeyId = 0x0C
	KeyW KeyId = 0x0D
	KeyE KeyId = 0x0E
	KeyR KeyId = 0x0F
	KeyY KeyId = 0x10
	KeyT KeyId = 0x11
	KeyO KeyId = 0x1F
	KeyU KeyId = 0x20
	KeyI KeyId = 0x22
	KeyP KeyId = 0x23
	KeyL KeyId = 0x25
	KeyJ KeyId = 0x26
	KeyK KeyId = 0x28
	KeyN KeyId = 0x2D
	KeyM KeyId = 0x2E
)

// Digit keys.
const (
	Key1 KeyId = 0x12
	Key2 KeyId = 0x13
	Key3 KeyId = 0x14
	Key4 KeyId = 0x15
	Key6 KeyId = 0x16
	Key5 KeyId = 0x17
	Key9 KeyId = 0x19
	Key7 KeyId = 0x1A
	Key8 KeyId = 0x1C
	Key0 KeyId = 0x1D
)

// Control and punctuation keys legal mid-word or as word breaks.
const (
	KeyReturn       KeyId = 0x24
	KeyTab          KeyId = 0x30
	KeySpace        KeyId = 0x31
	KeyBackspace    KeyId = 0x33
	KeyEscape       KeyId = 0x35
	KeyQuote        KeyId = 0x27 // '
	KeySemicolon    KeyId = 0x29 // ;
	KeyBackslash    KeyId = 0x2A
	KeyComma        KeyId = 0x2B // ,
	KeySlash        KeyId = 0x2C // /
	KeyPeriod       KeyId = 0x2F // .
	KeyGrave        KeyId = 0x32 // `
	KeyMinus        KeyId = 0x1B // -
	KeyEqual        KeyId = 0x18 // =
	KeyLeftBracket  KeyId = 0x21 // [
	KeyRightBracket KeyId = 0x1E // ]
	// KeyUnmapped is a reserved KeyId for keys the engine never needs to
	// see (function keys, modifier taps, arrow keys, …). It maps to no base
	// character.
	KeyUnmapped KeyId = 0xFFFF
)

var keyToLower = map[KeyId]rune{
	KeyA: 'a', KeyB: 'b', KeyC: 'c', KeyD: 'd', KeyE: 'e', KeyF: 'f', KeyG: 'g',
	KeyH: 'h', KeyI: 'i', KeyJ: 'j', KeyK: 'k', KeyL: 'l', KeyM: 'm', KeyN: 'n',
	KeyO: 'o', KeyP: 'p', KeyQ: 'q', KeyR: 'r', KeyS: 's', KeyT: 't', KeyU: 'u',
	KeyV: 'v', KeyW: 'w', KeyX: 'x', KeyY: 'y', KeyZ: 'z',
	Key0: '0', Key1: '1', Key2: '2', Key3: '3', Key4: '4',
	Key5: '5', Key6: '6', Key7: '7', Key8: '8', Key9: '9',
	KeyQuote: '\'', KeySemicolon: ';', KeyBackslash: '\\', KeyComma: ',',
	KeySlash: '/', KeyGrave: '`', KeyMinus: '-', KeyEqual: '=',
	KeyLeftBracket: '[', KeyRightBracket: ']',
}

var lowerToKey = func() map[rune]KeyId {
	m := make(map[rune]KeyId, len(keyToLower))
	for k, r := range keyToLower {
		m[r] = k
	}
	return m
}()

// KeyFromBaseChar maps an ASCII base character back to its KeyId. Used by
// tests and by hosts that only know the character, not the physical key.
func KeyFromBaseChar(ch rune) (KeyId, bool) {
	k, ok := lowerToKey[toLowerRune(ch)]
	return k, ok
}

// KeyToBaseChar returns the base character a key normally produces.
// upper selects the shifted/caps-locked form for letters; digits and
// punctuation ignore it (callers resolve shifted punctuation themselves via
// KeyInput.CharOverride).
func KeyToBaseChar(key KeyId, upper bool) rune {
	r, ok := keyToLower[key]
	if !ok {
		return 0
	}
	if upper && r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

var vowelKeys = map[KeyId]bool{
	KeyA: true, KeyE: true, KeyI: true, KeyO: true, KeyU: true, KeyY: true,
}

var consonantKeys = map[KeyId]bool{
	KeyB: true, KeyC: true, KeyD: true, KeyG: true, KeyH: true, KeyK: true,
	KeyL: true, KeyM: true, KeyN: true, KeyP: true, KeyQ: true, KeyR: true,
	KeyS: true, KeyT: true, KeyV: true, KeyX: true,
	// Foreign-initial letters; valid only when the input method's
	// foreign-initials mode is enabled, but still classified as consonants
	// at the key-codec level.
	KeyF: true, KeyJ: true, KeyW: true, KeyZ: true,
}

var digitKeys = map[KeyId]bool{
	Key0: true, Key1: true, Key2: true, Key3: true, Key4: true,
	Key5: true, Key6: true, Key7: true, Key8: true, Key9: true,
}

var wordBreakKeys = map[KeyId]bool{
	KeySpace: true, KeyReturn: true, KeyTab: true,
	KeyComma: true, KeyPeriod: true, KeySemicolon: true, KeyQuote: true,
	KeySlash: true, KeyBackslash: true, KeyGrave: true,
	KeyLeftBracket: true, KeyRightBracket: true,
}

// IsVowel reports whether key is one of the 6 Vietnamese Latin vowel
// letters (a, e, i, o, u, y).
func IsVowel(key KeyId) bool { return vowelKeys[key] }

// IsConsonant reports whether key is a Latin consonant letter.
func IsConsonant(key KeyId) bool { return consonantKeys[key] }

// IsLetter reports whether key produces a Latin letter at all.
func IsLetter(key KeyId) bool { return vowelKeys[key] || consonantKeys[key] }

// IsDigit reports whether key is a digit key (0-9).
func IsDigit(key KeyId) bool { return digitKeys[key] }

// IsWordBreak reports whether key ends the current word: space, return,
// tab, or mid-word-illegal punctuation. Hyphen and the equals sign are not
// word breaks here. Period and apostrophe are; a period also arms the
// auto-capitalize latch (see IsSentenceEnd).
func IsWordBreak(key KeyId) bool { return wordBreakKeys[key] }

// IsEsc reports whether key is the Escape key.
func IsEsc(key KeyId) bool { return key == KeyEscape }

// IsBackspace reports whether key is the Backspace key.
func IsBackspace(key KeyId) bool { return key == KeyBackspace }

// IsSentenceEnd reports whether key is punctuation that arms the
// auto-capitalize latch (§4.6(f), §9 open question): period, question
// mark, exclamation mark, ellipsis and Return all arm it; comma, semicolon
// and quotes do not.
func IsSentenceEnd(key KeyId, charOverride rune) bool {
	switch key {
	case KeyReturn:
		return true
	case KeyPeriod:
		return true
	}
	switch charOverride {
	case '!', '?', '…':
		return true
	}
	return false
}
