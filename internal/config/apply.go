package config

import "github.com/username/vietime/internal/engine"

// methodFor resolves a persisted method name to a Method value, defaulting
// to Telex for anything unrecognized.
func methodFor(name string) engine.Method {
	if name == MethodVNI {
		return engine.NewVNIMethod()
	}
	return engine.NewTelexMethod()
}

// NewEngine builds an Engine from the config and loads its shortcuts,
// mirroring how miken90-fkey's tray applies settings to the running bridge.
func (c *Config) NewEngine() *engine.Engine {
	e := engine.New(methodFor(c.Method))
	c.ApplyTo(e)
	return e
}

// ApplyTo pushes every persisted setting onto a live engine, including a
// full reload of its shortcut table. NewEngine uses it to configure every
// engine it builds.
func (c *Config) ApplyTo(e *engine.Engine) {
	e.SetMethod(methodFor(c.Method))
	e.SetModernTone(c.ModernTone)
	e.SetEnabled(c.Enabled)
	e.SetEscRestore(c.EscRestore)
	e.SetFreeTone(c.FreeTone)
	e.SetStrictValidation(c.StrictValidation)
	e.SetEnglishAutoRestore(c.EnglishAutoRestore)
	e.SetAutoCapitalize(c.AutoCapitalize)

	e.ClearShortcuts()
	for _, s := range c.Shortcuts {
		e.AddShortcut(s.Trigger, s.Replacement, s.Immediate)
	}
}
