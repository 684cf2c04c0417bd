package main

import (
	"bytes"
	"testing"
)

func TestTypeCommandComposesVietnamese(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"type", "vieejt"})

	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := out.String(); got != "việt\n" {
		t.Errorf("type vieejt = %q, want %q", got, "việt\n")
	}
}

func TestTypeCommandRejectsUnmappableRune(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := newRootCmd()
	root.SetArgs([]string{"type", "a@"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	if err := root.Execute(); err == nil {
		t.Fatal("expected an error for an unmappable rune")
	}
}
