package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/username/vietime/internal/engine"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal demo: type and watch the engine compose live",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runTUI(cfg.NewEngine())
		},
	}
}

// runTUI drives a tcell screen as a stand-in for the out-of-scope OS text
// injection layer (§1 non-goals): every keystroke is fed to the engine and
// the resulting edit is replayed against a single in-memory line, letting a
// developer watch composition happen without Fcitx5 or a D-Bus host.
func runTUI(e *engine.Engine) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	var line []rune
	draw := func() {
		screen.Clear()
		drawString(screen, 0, 0, "vietime tui — Ctrl-C to quit, Ctrl-R to reset")
		drawString(screen, 0, 2, string(line))
		screen.ShowCursor(len([]rune(string(line))), 2)
		screen.Show()
	}
	draw()

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			if ev.Key() == tcell.KeyCtrlR {
				line = nil
				e.ClearAll()
				draw()
				continue
			}

			in, ok := tcellKeyToInput(ev)
			if !ok {
				continue
			}
			if engine.IsEsc(in.Key) {
				// ESC restores the in-flight word rather than quitting, so
				// the demo can actually exercise §4.6(g).
				res := e.OnKey(in)
				applyResult(&line, in, res)
				draw()
				continue
			}

			res := e.OnKey(in)
			applyResult(&line, in, res)
			draw()
		}
	}
}

func applyResult(line *[]rune, in engine.KeyInput, res engine.Result) {
	switch res.Action {
	case engine.ActionSend, engine.ActionRestore:
		l := *line
		cut := len(l) - res.Backspace
		if cut < 0 {
			cut = 0
		}
		*line = append(l[:cut], res.Chars...)
		return
	}
	if res.KeyConsumed {
		return
	}
	// The engine declined the edit — its own host-native handling applies.
	if engine.IsBackspace(in.Key) {
		if l := *line; len(l) > 0 {
			*line = l[:len(l)-1]
		}
		return
	}
	if ch := literalRune(in); ch != 0 {
		*line = append(*line, ch)
	}
}

func literalRune(in engine.KeyInput) rune {
	if in.CharOverride != 0 {
		return in.CharOverride
	}
	return engine.KeyToBaseChar(in.Key, in.Upper())
}

// tcellKeyToInput maps a tcell key event to an engine.KeyInput. ok is false
// for keys the engine has no opinion about.
func tcellKeyToInput(ev *tcell.EventKey) (engine.KeyInput, bool) {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return engine.KeyInput{Key: engine.KeyBackspace}, true
	case tcell.KeyEnter:
		return engine.KeyInput{Key: engine.KeyReturn}, true
	case tcell.KeyEscape:
		return engine.KeyInput{Key: engine.KeyEscape}, true
	case tcell.KeyTab:
		return engine.KeyInput{Key: engine.KeyTab}, true
	case tcell.KeyRune:
		ch := ev.Rune()
		if ch == ' ' {
			return engine.KeyInput{Key: engine.KeySpace}, true
		}
		switch ch {
		case '!', '?', '…':
			return engine.KeyInput{Key: engine.KeyPeriod, CharOverride: ch}, true
		}
		key, ok := engine.KeyFromBaseChar(ch)
		if !ok {
			return engine.KeyInput{}, false
		}
		return engine.KeyInput{Key: key, Shift: ch >= 'A' && ch <= 'Z'}, true
	}
	return engine.KeyInput{}, false
}

func drawString(s tcell.Screen, x, y int, str string) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
