package main

import "github.com/username/vietime/internal/engine"

// X11 modifier flags, as delivered by Fcitx5's key-event callback.
const (
	modShift   uint32 = 1 << 0
	modLock    uint32 = 1 << 1 // Caps Lock
	modControl uint32 = 1 << 2
	modMod1    uint32 = 1 << 3 // Alt
)

// X11 keysyms for the non-printable keys the engine cares about.
const (
	keysymBackspace uint32 = 0xff08
	keysymTab       uint32 = 0xff09
	keysymReturn    uint32 = 0xff0d
	keysymEscape    uint32 = 0xff1b
	keysymSpace     uint32 = 0x0020
)

// keysymToRune converts an X11 keysym to the Unicode scalar it represents,
// the way Fcitx5 frontends report it, following the same ranges the teacher
// used for its own keysym decoding.
func keysymToRune(keysym uint32) rune {
	switch {
	case keysym >= 0x0020 && keysym <= 0x007e: // ASCII printable
		return rune(keysym)
	case keysym >= 0x00a0 && keysym <= 0x00ff: // Latin-1 supplement
		return rune(keysym)
	case keysym >= 0x01000000: // Unicode keysyms: 0x01000000 + codepoint
		return rune(keysym - 0x01000000)
	}
	return 0
}

// translateKey maps one X11 key event to an engine.KeyInput. ok is false
// for keys the engine has no opinion about (function keys, arrows, media
// keys, …) — the daemon lets Fcitx5 handle those itself.
func translateKey(keysym uint32, modifiers uint32) (engine.KeyInput, bool) {
	switch keysym {
	case keysymBackspace:
		return engine.KeyInput{Key: engine.KeyBackspace}, true
	case keysymReturn:
		return engine.KeyInput{Key: engine.KeyReturn}, true
	case keysymEscape:
		return engine.KeyInput{Key: engine.KeyEscape}, true
	case keysymTab:
		return engine.KeyInput{Key: engine.KeyTab}, true
	case keysymSpace:
		return engine.KeyInput{Key: engine.KeySpace}, true
	}

	ch := keysymToRune(keysym)
	if ch == 0 {
		return engine.KeyInput{}, false
	}

	// Sentence-ending punctuation that only exists as a shifted glyph: ride
	// on the physical period key (already a word break and sentence-end
	// trigger) and let CharOverride carry the real glyph through to commit.
	switch ch {
	case '!', '?', '…':
		return engine.KeyInput{Key: engine.KeyPeriod, CharOverride: ch}, true
	}

	key, ok := engine.KeyFromBaseChar(ch)
	if !ok {
		return engine.KeyInput{}, false
	}

	in := engine.KeyInput{
		Key:      key,
		CapsLock: modifiers&modLock != 0,
	}
	if ch >= 'A' && ch <= 'Z' {
		in.Shift = true
	} else {
		in.Shift = modifiers&modShift != 0
	}
	return in, true
}
