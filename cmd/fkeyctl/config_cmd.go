package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/username/vietime/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or edit persisted vietime settings",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current settings and their file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:                  %s\n", config.ConfigPath())
			fmt.Fprintf(out, "enabled:               %v\n", cfg.Enabled)
			fmt.Fprintf(out, "method:                %s\n", cfg.Method)
			fmt.Fprintf(out, "modern_tone:           %v\n", cfg.ModernTone)
			fmt.Fprintf(out, "esc_restore:           %v\n", cfg.EscRestore)
			fmt.Fprintf(out, "free_tone:             %v\n", cfg.FreeTone)
			fmt.Fprintf(out, "strict_validation:     %v\n", cfg.StrictValidation)
			fmt.Fprintf(out, "english_auto_restore:  %v\n", cfg.EnglishAutoRestore)
			fmt.Fprintf(out, "auto_capitalize:       %v\n", cfg.AutoCapitalize)
			fmt.Fprintf(out, "shortcuts:             %d defined\n", len(cfg.Shortcuts))
			return nil
		},
	}
}

// settableBoolFields are the Config fields config set can flip.
var settableBoolFields = map[string]func(*config.Config, bool){
	"enabled":              func(c *config.Config, v bool) { c.Enabled = v },
	"modern_tone":          func(c *config.Config, v bool) { c.ModernTone = v },
	"esc_restore":          func(c *config.Config, v bool) { c.EscRestore = v },
	"free_tone":            func(c *config.Config, v bool) { c.FreeTone = v },
	"strict_validation":    func(c *config.Config, v bool) { c.StrictValidation = v },
	"english_auto_restore": func(c *config.Config, v bool) { c.EnglishAutoRestore = v },
	"auto_capitalize":      func(c *config.Config, v bool) { c.AutoCapitalize = v },
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a single setting and persist it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			key, value := args[0], args[1]

			if key == "method" {
				switch value {
				case config.MethodTelex, config.MethodVNI:
					cfg.Method = value
				default:
					return fmt.Errorf("method must be %q or %q", config.MethodTelex, config.MethodVNI)
				}
			} else if set, ok := settableBoolFields[key]; ok {
				b, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("%s takes a bool, got %q", key, value)
				}
				set(cfg, b)
			} else {
				return fmt.Errorf("unknown setting %q", key)
			}

			return config.Save(cfg)
		},
	}
}
