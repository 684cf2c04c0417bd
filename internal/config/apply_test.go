package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEngineAppliesShortcuts(t *testing.T) {
	cfg := Default()
	cfg.Shortcuts = []ShortcutDef{{Trigger: "vn", Replacement: "Việt Nam", Immediate: false}}

	e := cfg.NewEngine()
	shortcuts := e.Shortcuts()
	require.Len(t, shortcuts, 1)
	require.Equal(t, "vn", shortcuts[0].Trigger)
	require.Equal(t, "Việt Nam", shortcuts[0].Replacement)
}

func TestApplyToReplacesExistingShortcuts(t *testing.T) {
	cfg := Default()
	e := cfg.NewEngine()
	require.NoError(t, e.AddShortcut("stale", "x", false))

	cfg.Shortcuts = []ShortcutDef{{Trigger: "fresh", Replacement: "y", Immediate: true}}
	cfg.ApplyTo(e)

	shortcuts := e.Shortcuts()
	require.Len(t, shortcuts, 1)
	require.Equal(t, "fresh", shortcuts[0].Trigger)
}
