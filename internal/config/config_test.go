package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSeedsDefaultOnFirstRun(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	require.FileExists(t, ConfigPath())
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Method = MethodVNI
	cfg.ModernTone = false
	cfg.StrictValidation = true
	cfg.Shortcuts = []ShortcutDef{
		{Trigger: "vn", Replacement: "Việt Nam", Immediate: false},
		{Trigger: "btw", Replacement: "by the way", Immediate: true},
	}
	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestConfigPathIsUnderVietimeDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdgtest")
	require.Equal(t, filepath.Join("/tmp/xdgtest", "vietime", "config.toml"), ConfigPath())
}
