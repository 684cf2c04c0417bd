package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/vietime/internal/config"
)

func newShortcutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shortcut",
		Short: "Manage persisted text-expansion shortcuts",
	}
	cmd.AddCommand(newShortcutListCmd())
	cmd.AddCommand(newShortcutAddCmd())
	cmd.AddCommand(newShortcutRemoveCmd())
	return cmd
}

func newShortcutListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every persisted shortcut",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range cfg.Shortcuts {
				mode := "word-boundary"
				if s.Immediate {
					mode = "immediate"
				}
				fmt.Fprintf(out, "%-16s -> %-24s (%s)\n", s.Trigger, s.Replacement, mode)
			}
			return nil
		},
	}
}

func newShortcutAddCmd() *cobra.Command {
	var immediate bool
	cmd := &cobra.Command{
		Use:   "add <trigger> <replacement>",
		Short: "Add or replace a shortcut and persist it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			// Round-trip through a live engine so the same validation used
			// at runtime (empty/whitespace triggers) rejects a bad entry
			// before it is persisted.
			e := cfg.NewEngine()
			if err := e.AddShortcut(args[0], args[1], immediate); err != nil {
				return err
			}
			cfg.Shortcuts = append(dropShortcut(cfg.Shortcuts, args[0]), config.ShortcutDef{
				Trigger: args[0], Replacement: args[1], Immediate: immediate,
			})
			return config.Save(cfg)
		},
	}
	cmd.Flags().BoolVar(&immediate, "immediate", false, "expand as soon as the trigger's last character is typed")
	return cmd
}

func newShortcutRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <trigger>",
		Short: "Remove a persisted shortcut",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg.Shortcuts = dropShortcut(cfg.Shortcuts, args[0])
			return config.Save(cfg)
		},
	}
}

func dropShortcut(shortcuts []config.ShortcutDef, trigger string) []config.ShortcutDef {
	out := make([]config.ShortcutDef, 0, len(shortcuts))
	for _, s := range shortcuts {
		if s.Trigger != trigger {
			out = append(out, s)
		}
	}
	return out
}
