package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/username/vietime/internal/config"
	"github.com/username/vietime/internal/engine"
)

const (
	serviceName = "com.github.vietime.ime"
	objectPath  = "/Engine"
)

// InputEngine is the D-Bus object Fcitx5 talks to. One InputEngine serves
// one logged-in user's session; vietime-daemon exports a single instance.
type InputEngine struct {
	engine *engine.Engine
	cfg    *config.Config
	logger *log.Logger
}

// NewInputEngine builds an InputEngine from the user's persisted settings.
func NewInputEngine(cfg *config.Config, logger *log.Logger) *InputEngine {
	return &InputEngine{engine: cfg.NewEngine(), cfg: cfg, logger: logger}
}

// ProcessKey handles one key event from the Fcitx5 frontend.
//
// Input: keysym (X11 keysym), modifiers (Shift/Ctrl/Alt/CapsLock state).
// Output: action (engine.Action), backspace (runes to delete before
// inserting commit), commit (text to insert), keyConsumed (whether Fcitx5
// should swallow the physical keystroke instead of typing it itself).
func (e *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (action byte, backspace int32, commit string, keyConsumed bool, dbusErr *dbus.Error) {
	in, ok := translateKey(keysym, modifiers)
	if !ok {
		return byte(engine.ActionNone), 0, "", false, nil
	}

	result := e.engine.OnKey(in)

	if e.logger != nil {
		e.logger.Printf("key=%#x mods=%#x -> action=%d backspace=%-2d commit=%-12q consumed=%v preedit=%q",
			keysym, modifiers, result.Action, result.Backspace, string(result.Chars),
			result.KeyConsumed, e.engine.GetBuffer())
	}

	return byte(result.Action), int32(result.Backspace), string(result.Chars), result.KeyConsumed, nil
}

// Reset discards the in-progress word and the auto-capitalize latch, for
// use on focus changes.
func (e *InputEngine) Reset() *dbus.Error {
	e.engine.ClearAll()
	return nil
}

// SetEnabled toggles the engine and persists the change.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	e.engine.SetEnabled(enabled)
	e.cfg.Enabled = enabled
	if err := config.Save(e.cfg); err != nil {
		return dbus.MakeFailedError(err)
	}
	fmt.Printf(">>> [vietime] engine enabled: %v\n", enabled)
	return nil
}

// GetPreedit returns the current composition string.
func (e *InputEngine) GetPreedit() (string, *dbus.Error) {
	return e.engine.GetBuffer(), nil
}

func main() {
	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to request name:", err)
		os.Exit(1)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "Name already taken - another instance may be running")
		os.Exit(1)
	}

	logFile, err := os.OpenFile("typing.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	var logger *log.Logger
	if err == nil {
		logger = log.New(logFile, "", log.LstdFlags)
		fmt.Println(">>> [vietime] logging to typing.log")
	} else {
		fmt.Fprintf(os.Stderr, ">>> [vietime] failed to open log file: %v\n", err)
	}
	defer logFile.Close()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	inputEngine := NewInputEngine(cfg, logger)

	if err := conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to export object:", err)
		os.Exit(1)
	}

	fmt.Println("================================================")
	fmt.Println("vietime-daemon is running")
	fmt.Println("================================================")
	fmt.Printf("  Service:       %s\n", serviceName)
	fmt.Printf("  Object Path:   %s\n", objectPath)
	fmt.Printf("  Input Method:  %s\n", cfg.Method)
	fmt.Printf("  Modern Tone:   %v\n", cfg.ModernTone)
	fmt.Println("------------------------------------------------")
	fmt.Println("Waiting for key events...")
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	fmt.Println("\n>>> [vietime] shutting down...")
}
