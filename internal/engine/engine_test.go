package engine

import "testing"

// typeWord feeds an ASCII Telex/VNI string through a fresh Engine and
// returns the final composed text of the word.
func typeWord(t *testing.T, m Method, word string) string {
	t.Helper()
	e := New(m)
	for _, ch := range word {
		key, ok := KeyFromBaseChar(ch)
		if !ok {
			t.Fatalf("typeWord(%q): no key for rune %q", word, ch)
		}
		e.OnKey(KeyInput{Key: key})
	}
	return e.GetBuffer()
}

func TestTelexToneAndMarks(t *testing.T) {
	m := NewTelexMethod()
	cases := []struct{ in, want string }{
		{"as", "á"},
		{"af", "à"},
		{"ar", "ả"},
		{"ax", "ã"},
		{"aj", "ạ"},
		{"tooi", "tôi"},
		{"ddoong", "đông"},
		{"vieejt", "việt"},
		{"nuwowcs", "nước"},
		{"hoa", "hoa"},
		{"hoaf", "hoà"},
		{"chafo", "chào"},
		{"ngoaif", "ngoài"},
	}
	for _, c := range cases {
		if got := typeWord(t, m, c.in); got != c.want {
			t.Errorf("telex %q = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestVNIToneAndMarks(t *testing.T) {
	m := NewVNIMethod()
	cases := []struct{ in, want string }{
		{"a1", "á"},
		{"a2", "à"},
		{"to6i", "tôi"},
		{"d9ong6", "đông"},
		{"vie6t5", "việt"},
	}
	for _, c := range cases {
		if got := typeWord(t, m, c.in); got != c.want {
			t.Errorf("vni %q = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestVNIDelayedDStroke(t *testing.T) {
	m := NewVNIMethod()
	// '9' arrives after the nucleus has already been typed.
	if got := typeWord(t, m, "do9i"); got != "đoi" {
		t.Errorf("do9i = %q, want đoi", got)
	}
}

func TestTelexDoubleKeyRevert(t *testing.T) {
	m := NewTelexMethod()
	// "as" then "s" again reverts the tone and appends the literal 's'.
	if got := typeWord(t, m, "ass"); got != "as" {
		t.Errorf("double revert: got %q, want %q", got, "as")
	}
	// "aa" merges into "â"; the third 'a' reverts it back to the two
	// literal letters it came from, rather than adding a third.
	if got := typeWord(t, m, "aaa"); got != "aa" {
		t.Errorf("double revert on mark: got %q, want %q", got, "aa")
	}
	if got := typeWord(t, m, "ddd"); got != "dd" {
		t.Errorf("double revert on dstroke: got %q, want %q", got, "dd")
	}
}

func TestDStrokeAppliesToOnsetD(t *testing.T) {
	m := NewTelexMethod()
	if got := typeWord(t, m, "ddi"); got != "đi" {
		t.Errorf("ddi = %q, want đi", got)
	}
}

func TestToneRejectedWithoutNucleus(t *testing.T) {
	m := NewTelexMethod()
	// 's' with nothing typed yet has no vowel to apply to — it is a
	// literal keystroke.
	if got := typeWord(t, m, "s"); got != "s" {
		t.Errorf("bare s = %q, want literal s", got)
	}
}

func TestStopFinalRejectsIncompatibleTone(t *testing.T) {
	m := NewTelexMethod()
	// "f" (huyền) is incompatible with a stop final like "c"; typed after
	// the coda is already present it must not apply.
	if got := typeWord(t, m, "tacf"); got == "tàc" {
		t.Errorf("tacf incorrectly accepted huyền on a stop final: %q", got)
	}
}

func TestEscRestore(t *testing.T) {
	e := New(NewTelexMethod())
	for _, ch := range "vieejt" {
		key, _ := KeyFromBaseChar(ch)
		e.OnKey(KeyInput{Key: key})
	}
	res := e.OnKey(KeyInput{Key: KeyEscape})
	if res.Action != ActionRestore {
		t.Fatalf("expected ActionRestore, got %v", res.Action)
	}
	if string(res.Chars) != "vieejt" {
		t.Errorf("esc restore chars = %q, want %q", string(res.Chars), "vieejt")
	}
}

func TestAutoCapitalize(t *testing.T) {
	e := New(NewTelexMethod())
	e.SetAutoCapitalize(true)
	e.ClearAll()
	// Force the latch armed, as if a sentence just ended.
	e.armCapitalize(KeyInput{Key: KeyPeriod})
	keyT, _ := KeyFromBaseChar('t')
	res := e.OnKey(KeyInput{Key: keyT})
	if res.Action != ActionSend || string(res.Chars) != "T" {
		t.Errorf("auto-capitalize: got action=%v chars=%q, want Send \"T\"", res.Action, string(res.Chars))
	}
}

func TestShortcutOnWordBoundary(t *testing.T) {
	e := New(NewTelexMethod())
	if err := e.AddShortcut("vn", "Việt Nam", false); err != nil {
		t.Fatal(err)
	}
	for _, ch := range "vn" {
		key, _ := KeyFromBaseChar(ch)
		e.OnKey(KeyInput{Key: key})
	}
	res := e.OnKey(KeyInput{Key: KeySpace})
	if res.Action != ActionSend {
		t.Fatalf("expected shortcut expansion, got %v", res.Action)
	}
	if string(res.Chars) != "Việt Nam " {
		t.Errorf("shortcut chars = %q, want %q", string(res.Chars), "Việt Nam ")
	}
}

func TestShortcutRejectsWhitespaceTrigger(t *testing.T) {
	e := New(NewTelexMethod())
	if err := e.AddShortcut("va n", "x", false); err != ErrWhitespaceTrigger {
		t.Errorf("expected ErrWhitespaceTrigger, got %v", err)
	}
	if err := e.AddShortcut("", "x", false); err != ErrEmptyTrigger {
		t.Errorf("expected ErrEmptyTrigger, got %v", err)
	}
}

func TestEnglishAutoRestore(t *testing.T) {
	e := New(NewTelexMethod())
	for _, ch := range "of" {
		key, _ := KeyFromBaseChar(ch)
		e.OnKey(KeyInput{Key: key})
	}
	res := e.OnKey(KeyInput{Key: KeySpace})
	if res.Action != ActionRestore {
		t.Fatalf("expected english auto-restore to fire, got %v", res.Action)
	}
	if string(res.Chars) != "of " {
		t.Errorf("restored chars = %q, want %q", string(res.Chars), "of ")
	}
}

func TestTelexExceptionListSuppressesHornTrigger(t *testing.T) {
	// In "wow" the second 'w' follows an 'o' cell, which is exactly the
	// horn trigger's shape (§4.3); the exception list stops it firing.
	m := NewTelexMethod()
	if got := typeWord(t, m, "wow"); got != "wow" {
		t.Errorf("telex %q = %q, want %q (exception list should suppress the horn trigger)", "wow", got, "wow")
	}
}

func TestStrictValidationRejectsNonDictionaryVowelMark(t *testing.T) {
	m := NewTelexMethod()

	// "nghô" passes the phonological shape checks (the spelling rule only
	// rejects ngh before a plain a, o or u), but it isn't in the syllable
	// dictionary — ngh only ever precedes a front vowel in practice and
	// this combination never occurs. Non-strict mode composes it on shape
	// alone.
	if got := typeWord(t, m, "nghooi"); got != "nghôi" {
		t.Fatalf("non-strict nghooi = %q, want %q", got, "nghôi")
	}

	e := New(m)
	e.SetStrictValidation(true)
	for _, ch := range "nghooi" {
		key, _ := KeyFromBaseChar(ch)
		e.OnKey(KeyInput{Key: key})
	}
	if got := e.GetBuffer(); got != "nghooi" {
		t.Errorf("strict nghooi = %q, want literal %q (circumflex trigger rejected)", got, "nghooi")
	}
}

func TestStrictValidationRejectsNonDictionaryTone(t *testing.T) {
	m := NewTelexMethod()

	if got := typeWord(t, m, "phuowus"); got == "phuowus" {
		t.Fatalf("non-strict phuowus: tone trigger unexpectedly rejected, got literal %q", got)
	}

	e := New(m)
	e.SetStrictValidation(true)
	for _, ch := range "phuowus" {
		key, _ := KeyFromBaseChar(ch)
		e.OnKey(KeyInput{Key: key})
	}
	if got := e.GetBuffer(); got != "phươus" {
		t.Errorf("strict phuowus = %q, want %q (tone trigger rejected, s literal)", got, "phươus")
	}
}

func TestDisabledEnginePassesThrough(t *testing.T) {
	e := New(NewTelexMethod())
	e.SetEnabled(false)
	keyA, _ := KeyFromBaseChar('a')
	res := e.OnKey(KeyInput{Key: keyA})
	if res.Action != ActionNone {
		t.Errorf("disabled engine should be a no-op, got %v", res.Action)
	}
}
