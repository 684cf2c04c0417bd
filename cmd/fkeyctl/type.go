package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/vietime/internal/engine"
)

var flagTrace bool

func newTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type <ascii>",
		Short: "Replay an ASCII Telex/VNI string through the engine and print the composed text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			e := cfg.NewEngine()

			for _, ch := range args[0] {
				in, ok := runeToKeyInput(ch)
				if !ok {
					return fmt.Errorf("no key mapping for %q", ch)
				}
				res := e.OnKey(in)
				if flagTrace {
					fmt.Fprintf(cmd.OutOrStdout(), "%q -> action=%v backspace=%d chars=%q consumed=%v buffer=%q\n",
						ch, res.Action, res.Backspace, string(res.Chars), res.KeyConsumed, e.GetBuffer())
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.GetBuffer())
			return nil
		},
	}
	cmd.Flags().BoolVar(&flagTrace, "trace", false, "print the Result of every keystroke")
	return cmd
}

// runeToKeyInput resolves a plain ASCII letter/digit to the KeyInput the
// engine expects, for this CLI, which only has the character the user
// typed, not a physical keycode.
func runeToKeyInput(ch rune) (engine.KeyInput, bool) {
	key, ok := engine.KeyFromBaseChar(ch)
	if !ok {
		return engine.KeyInput{}, false
	}
	upper := ch >= 'A' && ch <= 'Z'
	return engine.KeyInput{Key: key, Shift: upper}, true
}
