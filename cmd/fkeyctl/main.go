// Command fkeyctl is a development and test harness for the vietime
// composition engine: it replays keystrokes, inspects the live buffer and
// manages settings/shortcuts without a running D-Bus host (§1 non-goals —
// it performs no OS-level keyboard interception or text injection).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/vietime/internal/config"
)

var (
	flagMethod     string
	flagModernTone bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fkeyctl",
		Short:         "Inspect and drive the vietime composition engine from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&flagMethod, "method", "", "input method override (telex|vni)")
	root.PersistentFlags().BoolVar(&flagModernTone, "modern-tone", true, "modern tone placement (oa/oe/uy take the tone on the second vowel)")

	root.AddCommand(newTypeCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newShortcutCmd())
	root.AddCommand(newTUICmd())
	return root
}

// loadConfig loads the persisted settings and layers the command's
// persistent flags on top, the way miken90-fkey's tray re-applies edited
// settings to the running bridge.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("method") {
		switch flagMethod {
		case config.MethodTelex, config.MethodVNI:
			cfg.Method = flagMethod
		default:
			return nil, fmt.Errorf("unknown --method %q (want %q or %q)", flagMethod, config.MethodTelex, config.MethodVNI)
		}
	}
	if cmd.Flags().Changed("modern-tone") {
		cfg.ModernTone = flagModernTone
	}
	return cfg, nil
}
