package engine

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

// TestComposedOutputIsNFC exercises the idempotence property from §8: every
// word the engine composes must already be in Unicode Normalization Form C,
// so re-normalizing it is a no-op and hosts that NFC-normalize text on
// commit never see a diff.
func TestComposedOutputIsNFC(t *testing.T) {
	words := []string{"tooi", "vieejt", "nuwowcs", "ddoong", "ngoaif", "chafo"}
	for _, w := range words {
		m := NewTelexMethod()
		e := New(m)
		for _, ch := range w {
			key, ok := KeyFromBaseChar(ch)
			if !ok {
				t.Fatalf("no key for %q in %q", ch, w)
			}
			e.OnKey(KeyInput{Key: key})
		}
		got := e.GetBuffer()
		if want := norm.NFC.String(got); got != want {
			t.Errorf("composed %q is not NFC: normalized form is %q", got, want)
		}
	}
}

func TestVowelToneTableEntriesAreNFC(t *testing.T) {
	for _, table := range []map[rune]map[Tone]rune{vowelTones, vowelTonesUpper} {
		for _, tones := range table {
			for tone, r := range tones {
				s := string(r)
				if norm.NFC.String(s) != s {
					t.Errorf("tone %v rune %q is not NFC-normalized", tone, r)
				}
			}
		}
	}
}
