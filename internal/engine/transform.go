package engine

import "unicode"

// renderCell returns the single Unicode scalar a cell currently displays.
// Every cell renders as exactly one rune, precomposed — this is what lets
// handleBackspace and handleRevert reason about edits one rune at a time.
func renderCell(c Char) rune {
	if c.Key == KeyD {
		base := rune('d')
		if c.DStroke {
			base = 'đ'
		}
		if c.IsUpper {
			return unicode.ToUpper(base)
		}
		return base
	}
	if IsVowel(c.Key) {
		base := ApplyMark(c.Key, c.Mark, c.IsUpper)
		return ApplyTone(base, c.Tone)
	}
	return KeyToBaseChar(c.Key, c.IsUpper)
}

func composeWord(cells []Char) []rune {
	out := make([]rune, len(cells))
	for i, c := range cells {
		out[i] = renderCell(c)
	}
	return out
}

func keyLiteral(key KeyId, upper bool) rune { return KeyToBaseChar(key, upper) }

func commonPrefixLen(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// locateSyllable re-parses the structure of the word currently in the
// buffer enough to place a tone (§4.4, §4.6.1): the nucleus cell range,
// its trailing coda (if any) and whether the onset is the atomic "qu-".
func locateSyllable(cells []Char, foreignOK bool) (nucleusStart, nucleusEnd int, coda string, hasQu bool, ok bool) {
	if len(cells) == 0 {
		return 0, 0, "", false, false
	}
	canon := canonicalRunes(cells)
	_, rest, hq, _ := splitInitial(canon, foreignOK)
	onsetLen := len(canon) - len(rest)
	nucleus, rest2 := splitNucleus(rest)
	if len(nucleus) == 0 {
		return 0, 0, "", false, false
	}
	nucleusStart = onsetLen
	nucleusEnd = onsetLen + len(nucleus)
	coda, _ = splitCoda(rest2)
	return nucleusStart, nucleusEnd, coda, hq, true
}

// emit finalizes a transform by diffing the newly rendered word against
// what the host was last told to display, producing the minimal edit
// (§4.6.2). When consumed is false the host's own normal key handling
// already matches newRendered, so no edit needs to be sent at all.
func (e *Engine) emit(newRendered []rune, consumed bool) Result {
	prev := e.rendered
	e.rendered = append([]rune{}, newRendered...)
	if !consumed {
		return noneResult()
	}
	common := commonPrefixLen(prev, newRendered)
	chars := append([]rune{}, newRendered[common:]...)
	return sendResult(len(prev)-common, chars, true)
}

// handleRevert undoes the single most recent transform and absorbs the
// repeated trigger key as a literal character (§4.6(h)).
func (e *Engine) handleRevert(in KeyInput) Result {
	lt := e.lastTransform
	c := e.buf.At(lt.TargetIndex)
	switch lt.Kind {
	case TransformMark:
		c.Tone = lt.PrevTone
	case TransformTone:
		c.Mark = lt.PrevMark
	case TransformDStroke:
		c.DStroke = lt.PrevDStroke
	}
	e.buf.Set(lt.TargetIndex, c)
	e.lastTransform = LastTransform{}
	e.buf.Append(Char{Key: in.Key, IsUpper: in.Upper()})
	return e.emit(composeWord(e.buf.All()), true)
}

// handleMarkTrigger places a tone on the syllable currently in the buffer
// (§4.6(b), §4.6.1).
func (e *Engine) handleMarkTrigger(key KeyId, tone Tone) (Result, bool) {
	nucleusStart, nucleusEnd, coda, hasQu, ok := locateSyllable(e.buf.All(), e.freeTone)
	if !ok {
		return Result{}, false
	}
	if stopFinals[coda] {
		switch tone {
		case ToneSac, ToneNang:
		default:
			return Result{}, false
		}
	}
	canon := canonicalRunes(e.buf.All())
	nucleus := append([]rune{}, canon[nucleusStart:nucleusEnd]...)
	offset := TonePlacement(nucleus, coda != "", hasQu, e.modernTone)
	targetIdx := nucleusStart + offset

	// §4.4 step 8 / §4.6(b): the candidate result must still parse as a
	// plausible Vietnamese syllable (dictionary-gated in strict mode),
	// unless free-tone mode waives the check entirely.
	if !e.freeTone {
		candidate := append([]Char{}, e.buf.All()...)
		c := candidate[targetIdx]
		c.Tone = tone
		candidate[targetIdx] = c
		if !IsPlausible(candidate, e.parseOptions()) {
			return Result{}, false
		}
	}

	target := e.buf.At(targetIdx)
	prevTone := target.Tone
	target.Tone = tone
	e.buf.Set(targetIdx, target)
	e.lastTransform = LastTransform{
		Kind: TransformMark, TriggerKey: key,
		TargetIndex: targetIdx, TargetKey: target.Key,
		AppliedTone: tone, PrevTone: prevTone,
	}
	return e.emit(composeWord(e.buf.All()), true), true
}

// handleRemoveTone clears every tone currently in the buffer (§4.6(d)).
func (e *Engine) handleRemoveTone(key KeyId) (Result, bool) {
	changed := false
	for i := 0; i < e.buf.Len(); i++ {
		c := e.buf.At(i)
		if c.Tone != ToneNone {
			c.Tone = ToneNone
			e.buf.Set(i, c)
			changed = true
		}
	}
	if !changed {
		return Result{}, false
	}
	e.lastTransform = LastTransform{}
	return e.emit(composeWord(e.buf.All()), true), true
}

// replaceTone re-places an existing tone after the nucleus shape changed
// underneath it, e.g. typing "uo" then the horn trigger widens the
// nucleus to "ươ" and the tone (if any) moves with it (§4.6.1).
func (e *Engine) replaceTone() {
	nucleusStart, nucleusEnd, coda, hasQu, ok := locateSyllable(e.buf.All(), e.freeTone)
	if !ok {
		return
	}
	oldIdx := -1
	var tone Tone
	for i := nucleusStart; i < nucleusEnd; i++ {
		if c := e.buf.At(i); c.Tone != ToneNone {
			tone = c.Tone
			oldIdx = i
			break
		}
	}
	if oldIdx == -1 {
		return
	}
	canon := canonicalRunes(e.buf.All())
	nucleus := append([]rune{}, canon[nucleusStart:nucleusEnd]...)
	newIdx := nucleusStart + TonePlacement(nucleus, coda != "", hasQu, e.modernTone)
	if newIdx == oldIdx {
		return
	}
	old := e.buf.At(oldIdx)
	old.Tone = ToneNone
	e.buf.Set(oldIdx, old)
	nw := e.buf.At(newIdx)
	nw.Tone = tone
	e.buf.Set(newIdx, nw)
}

// handleVowelMarkTrigger applies a circumflex/horn/breve mark to the cell
// the method classified as its target (§4.6(c)).
func (e *Engine) handleVowelMarkTrigger(key KeyId, mark Mark, targetKey KeyId, in KeyInput) (Result, bool) {
	idx := e.buf.Len() - 1
	if idx < 0 || e.buf.At(idx).Key != targetKey {
		return Result{}, false
	}

	candidate := append([]Char{}, e.buf.All()...)
	c := candidate[idx]
	prevMark := c.Mark
	c.Mark = mark
	candidate[idx] = c

	// "uo" + horn widens to "ươ": both cells take the mark.
	widenedPrev := false
	if mark == MarkHorn && targetKey == KeyO && idx > 0 {
		if prev := candidate[idx-1]; prev.Key == KeyU && prev.Mark == MarkNone {
			prev.Mark = MarkHorn
			candidate[idx-1] = prev
			widenedPrev = true
		}
	}

	// As with the mark trigger, the resulting syllable must still be
	// plausible (dictionary-gated in strict mode) unless free-tone waives
	// the check, so a widened "uo" that can never form a valid nucleus
	// doesn't silently commit.
	if !e.freeTone {
		if _, ok := ParseSyllable(candidate, e.parseOptions()); !ok {
			return Result{}, false
		}
	}

	e.buf.Set(idx, candidate[idx])
	if widenedPrev {
		e.buf.Set(idx-1, candidate[idx-1])
	}

	e.replaceTone()

	e.lastTransform = LastTransform{
		Kind: TransformTone, TriggerKey: key,
		TargetIndex: idx, TargetKey: targetKey,
		AppliedMark: mark, PrevMark: prevMark,
	}
	return e.emit(composeWord(e.buf.All()), true), true
}

// handleDStroke strikes a 'd' cell into 'đ'. explicitIdx selects a
// specific earlier cell for VNI's delayed-9 case; -1 means "the
// immediately preceding cell" (Telex "dd", VNI adjacent "d9").
func (e *Engine) handleDStroke(key KeyId, explicitIdx int) (Result, bool) {
	idx := explicitIdx
	if idx < 0 {
		idx = e.buf.Len() - 1
		if idx < 0 {
			return Result{}, false
		}
	}
	c := e.buf.At(idx)
	if c.Key != KeyD || c.DStroke {
		return Result{}, false
	}
	c.DStroke = true
	e.buf.Set(idx, c)
	e.lastTransform = LastTransform{Kind: TransformDStroke, TriggerKey: key, TargetIndex: idx, TargetKey: KeyD, PrevDStroke: false}
	return e.emit(composeWord(e.buf.All()), true), true
}

// handleLiteral appends a plain, untransformed keystroke (§4.6(a)) and
// applies the auto-capitalize latch when armed.
func (e *Engine) handleLiteral(in KeyInput) Result {
	key := in.Key
	if in.CharOverride != 0 {
		e.rendered = append(e.rendered, in.CharOverride)
		return noneResult()
	}

	e.lastTransform = LastTransform{}

	upper := in.Upper()
	overridden := false
	if e.autoCapitalize && e.capitalizeArmed && e.buf.Len() == 0 && IsLetter(key) {
		upper = true
		overridden = true
		e.capitalizeArmed = false
	}

	e.buf.Append(Char{Key: key, IsUpper: upper})

	if sc, ok := e.shortcuts.MatchImmediateSuffix(string(e.raw)); ok {
		return e.expandShortcut(sc)
	}

	return e.emit(composeWord(e.buf.All()), overridden)
}

// expandShortcut replaces the word typed so far with sc.Replacement
// (§4.6(i)). The replacement text is treated as opaque output, not
// further subject to Vietnamese composition.
func (e *Engine) expandShortcut(sc Shortcut) Result {
	backspace := len(e.rendered)
	chars := []rune(sc.Replacement)
	e.lastTransform = LastTransform{Kind: TransformShortcut, ConsumedLen: backspace, EmittedLen: len(chars)}
	e.buf.Clear()
	e.raw = e.raw[:0]
	e.rendered = nil
	return sendResult(backspace, chars, true)
}

// handleSuppressedLiteral is used after an ESC-restore, for the remainder
// of the word: composition is off, but raw/rendered tracking continues so
// word-boundary bookkeeping (English-restore, shortcuts) stays consistent.
func (e *Engine) handleSuppressedLiteral(in KeyInput) Result {
	ch := in.CharOverride
	if ch == 0 {
		ch = keyLiteral(in.Key, in.Upper())
	}
	e.raw = append(e.raw, ch)
	e.rendered = append(e.rendered, ch)
	return noneResult()
}

// handleBackspace pops the last cell. Because every cell renders as
// exactly one rune, the host's own backspace already does the right
// thing — the engine only needs to keep its bookkeeping in sync.
func (e *Engine) handleBackspace() Result {
	if _, ok := e.buf.PopBack(); ok {
		if len(e.raw) > 0 {
			e.raw = e.raw[:len(e.raw)-1]
		}
		if len(e.rendered) > 0 {
			e.rendered = e.rendered[:len(e.rendered)-1]
		}
		e.lastTransform = LastTransform{}
		if e.buf.Len() == 0 {
			e.suppressed = false
		}
		return noneResult()
	}
	if len(e.raw) > 0 {
		e.raw = e.raw[:len(e.raw)-1]
	}
	return noneResult()
}

// handleEscape reverts the current word to exactly what was typed,
// discarding every transform applied to it (§4.6(g)).
func (e *Engine) handleEscape() Result {
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

func (e *Engine) armCapitalize(in KeyInput) {
	if !e.autoCapitalize {
		return
	}
	switch {
	case IsSentenceEnd(in.Key, in.CharOverride):
		e.capitalizeArmed = true
	case in.Key == KeySpace:
		// A bare space neither arms nor disarms — it lets "Foo.  Bar" keep
		// the arm across the inter-sentence gap.
	default:
		e.capitalizeArmed = false
	}
}

func (e *Engine) resetWord() {
	e.buf.Clear()
	e.raw = e.raw[:0]
	e.rendered = nil
	e.lastTransform = LastTransform{}
	e.suppressed = false
}

// handleWordBreak runs the end-of-word pipeline: shortcuts, then
// English auto-restore, then the auto-capitalize latch, then a full reset
// of the per-word state (§4.6(f)).
func (e *Engine) handleWordBreak(in KeyInput) Result {
	word := string(e.raw)
	boundary := in.CharOverride
	if boundary == 0 {
		switch in.Key {
		case KeyReturn:
			boundary = '\n'
		case KeyTab:
			boundary = '\t'
		case KeySpace:
			boundary = ' '
		default:
			boundary = keyLiteral(in.Key, in.Upper())
		}
	}

	defer e.resetWord()

	if sc, ok := e.shortcuts.MatchWord(word); ok && !sc.Immediate {
		backspace := len(e.rendered)
		chars := append([]rune(sc.Replacement), boundary)
		e.armCapitalize(in)
		return sendResult(backspace, chars, true)
	}

	if e.englishAutoRestore && !e.suppressed && word != "" &&
		string(e.rendered) != word && IsEnglishWord(word) {
		backspace := len(e.rendered)
		chars := append(append([]rune{}, []rune(word)...), boundary)
		e.armCapitalize(in)
		return restoreResult(backspace, chars)
	}

	e.armCapitalize(in)
	return noneResult()
}
