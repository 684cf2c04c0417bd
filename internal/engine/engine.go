package engine

// Engine is the composition engine facade (§3, §4.8). It is not safe for
// concurrent use from multiple goroutines without external synchronization
// — exactly one text field is ever being composed at a time.
type Engine struct {
	buf           *Buffer
	raw           []rune // literal ASCII typed for the current word
	rendered      []rune // last text the host was told to display for it
	lastTransform LastTransform
	suppressed    bool // true after ESC-restore, until the next word break

	method             Method
	modernTone         bool
	enabled            bool
	escRestore         bool
	freeTone           bool
	strictValidation   bool
	englishAutoRestore bool
	autoCapitalize     bool
	capitalizeArmed    bool

	shortcuts *ShortcutTable
}

// New returns an Engine using the given input method, with the engine's
// documented defaults: modern tone placement, enabled, ESC-restore on,
// free-tone (foreign initials) off, English auto-restore on,
// auto-capitalize off.
func New(method Method) *Engine {
	return &Engine{
		buf:                NewBuffer(),
		method:             method,
		modernTone:         true,
		enabled:            true,
		escRestore:         true,
		englishAutoRestore: true,
		shortcuts:          NewShortcutTable(),
	}
}

// OnKey is the engine's single entry point: it consumes one physical
// keystroke and returns the edit the host must apply (§4.6).
func (e *Engine) OnKey(in KeyInput) Result {
	if !e.enabled {
		return noneResult()
	}
	key := in.Key

	if IsBackspace(key) {
		return e.handleBackspace()
	}
	if IsEsc(key) {
		if !e.escRestore {
			return noneResult()
		}
		return e.handleEscape()
	}
	if IsWordBreak(key) || key == KeyReturn {
		return e.handleWordBreak(in)
	}
	if e.suppressed {
		return e.handleSuppressedLiteral(in)
	}

	// Every keystroke that reaches here contributes one literal character
	// to the word's raw typed form, whatever it ends up doing to the
	// buffer — ESC-restore must reproduce exactly what was typed, not just
	// the literal subset of it that wasn't absorbed into a transform.
	if in.CharOverride != 0 {
		e.raw = append(e.raw, in.CharOverride)
	} else {
		e.raw = append(e.raw, keyLiteral(key, in.Upper()))
	}

	// A repeated trigger key immediately undoes its own prior transform
	// (§4.6(h)) — this takes priority over reclassifying the key.
	lt := e.lastTransform
	if lt.Kind != TransformNone && lt.Kind != TransformShortcut && lt.TriggerKey == key && lt.Valid(e.buf) {
		return e.handleRevert(in)
	}

	if tone, ok := e.method.ClassifyMark(key); ok {
		if res, handled := e.handleMarkTrigger(key, tone); handled {
			return res
		}
	}

	if e.method.ClassifyRemove(key) {
		if res, handled := e.handleRemoveTone(key); handled {
			return res
		}
	}

	if mark, target, ok := e.method.ClassifyTone(key, e.buf.Tail(1)); ok && !e.method.SuppressesVowelMark(e.raw) {
		if res, handled := e.handleVowelMarkTrigger(key, mark, target, in); handled {
			return res
		}
	}

	if e.method.ClassifyDTrigger(key, e.buf.Tail(1)) {
		if res, handled := e.handleDStroke(key, -1); handled {
			return res
		}
	} else if idx, ok := e.method.ClassifyDelayedD(key, e.buf.All()); ok {
		if res, handled := e.handleDStroke(key, idx); handled {
			return res
		}
	}

	return e.handleLiteral(in)
}

// Clear discards the in-progress word without touching configuration.
func (e *Engine) Clear() { e.resetWord() }

// ClearAll discards the in-progress word and disarms the auto-capitalize
// latch — for use on focus changes, where no sentence context carries
// over.
func (e *Engine) ClearAll() {
	e.resetWord()
	e.capitalizeArmed = false
}

// RestoreWord force-restores the in-progress word to its raw typed form,
// identically to pressing ESC, regardless of the EscRestore setting.
func (e *Engine) RestoreWord() Result {
	if e.buf.Len() == 0 && !e.suppressed {
		return noneResult()
	}
	word := append([]rune{}, e.raw...)
	backspace := len(e.rendered)
	e.buf.Clear()
	e.lastTransform = LastTransform{}
	e.rendered = append([]rune{}, word...)
	e.suppressed = true
	return restoreResult(backspace, word)
}

// GetBuffer returns the current composed text of the in-progress word.
func (e *Engine) GetBuffer() string { return string(composeWord(e.buf.All())) }

// SetMethod switches the active Telex/VNI variant. Takes effect from the
// next keystroke; cells already in the buffer are not reinterpreted.
func (e *Engine) SetMethod(m Method) { e.method = m }

// SetModernTone toggles modern (oa/oe/uy take the tone on the second
// vowel) vs. traditional tone placement (§4.6.1).
func (e *Engine) SetModernTone(modern bool) { e.modernTone = modern }

// SetEnabled toggles the engine. While disabled, OnKey is a no-op and
// every keystroke passes through untouched. Disabling clears whatever word
// was in flight, matching how a host's enable hotkey is expected to behave.
func (e *Engine) SetEnabled(enabled bool) {
	e.enabled = enabled
	if !enabled {
		e.resetWord()
	}
}

// SetEscRestore toggles whether Escape reverts the in-progress word.
func (e *Engine) SetEscRestore(on bool) { e.escRestore = on }

// SetFreeTone toggles acceptance of f/j/w/z as initials (§4.2).
func (e *Engine) SetFreeTone(on bool) { e.freeTone = on }

// SetStrictValidation toggles whether the Vietnamese-syllable dictionary
// (C3) participates in is_plausible's gating of mark/tone triggers (§4.4
// step 8). With it off, triggers are still gated on phonological shape
// alone (nucleus/coda parse, cross-validation, stop-final compatibility).
func (e *Engine) SetStrictValidation(on bool) { e.strictValidation = on }

// parseOptions builds the ParseOptions that reflect the engine's current
// free-tone and strict-validation settings.
func (e *Engine) parseOptions() ParseOptions {
	return ParseOptions{ForeignInitials: e.freeTone, EnableValidation: e.strictValidation}
}

// SetEnglishAutoRestore toggles auto-restoring words that transformed but
// match a known English word (§4.6(f)).
func (e *Engine) SetEnglishAutoRestore(on bool) { e.englishAutoRestore = on }

// SetAutoCapitalize toggles capitalizing the first letter after sentence
// punctuation (§4.6(f)).
func (e *Engine) SetAutoCapitalize(on bool) {
	e.autoCapitalize = on
	if !on {
		e.capitalizeArmed = false
	}
}

// AddShortcut registers a user text-expansion shortcut (§4.6(i)).
func (e *Engine) AddShortcut(trigger, replacement string, immediate bool) error {
	return e.shortcuts.Add(trigger, replacement, immediate)
}

// RemoveShortcut deletes a shortcut by trigger.
func (e *Engine) RemoveShortcut(trigger string) { e.shortcuts.Remove(trigger) }

// ClearShortcuts removes every registered shortcut.
func (e *Engine) ClearShortcuts() { e.shortcuts.Clear() }

// Shortcuts returns every registered shortcut, in no particular order.
func (e *Engine) Shortcuts() []Shortcut { return e.shortcuts.All() }
