package main

import (
	"testing"

	"github.com/username/vietime/internal/engine"
)

func TestTranslateKeyLetters(t *testing.T) {
	in, ok := translateKey('a', 0)
	if !ok || in.Key != engine.KeyA || in.Shift {
		t.Fatalf("lowercase a: got %+v ok=%v", in, ok)
	}

	in, ok = translateKey('A', 0)
	if !ok || in.Key != engine.KeyA || !in.Shift {
		t.Fatalf("uppercase A: got %+v ok=%v", in, ok)
	}
}

func TestTranslateKeySpecials(t *testing.T) {
	cases := []struct {
		keysym uint32
		want   engine.KeyId
	}{
		{keysymBackspace, engine.KeyBackspace},
		{keysymReturn, engine.KeyReturn},
		{keysymEscape, engine.KeyEscape},
		{keysymTab, engine.KeyTab},
		{keysymSpace, engine.KeySpace},
	}
	for _, c := range cases {
		in, ok := translateKey(c.keysym, 0)
		if !ok || in.Key != c.want {
			t.Errorf("keysym %#x: got %+v ok=%v, want key %v", c.keysym, in, ok, c.want)
		}
	}
}

func TestTranslateKeySentenceEndPunctuation(t *testing.T) {
	for _, ch := range []rune{'!', '?'} {
		in, ok := translateKey(uint32(ch), 0)
		if !ok || in.Key != engine.KeyPeriod || in.CharOverride != ch {
			t.Errorf("punctuation %q: got %+v ok=%v", ch, in, ok)
		}
		if !engine.IsSentenceEnd(in.Key, in.CharOverride) {
			t.Errorf("punctuation %q should arm auto-capitalize", ch)
		}
	}
}

func TestTranslateKeyUnmapped(t *testing.T) {
	// 0xff51 is the X11 keysym for the Left arrow; the engine has no
	// opinion about it.
	if _, ok := translateKey(0xff51, 0); ok {
		t.Error("arrow key should not translate")
	}
}
