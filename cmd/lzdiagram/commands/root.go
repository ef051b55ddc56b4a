// Package commands defines the CLI command structure and flag bindings.
//
// Each command only parses flags and hands off to the config and
// generator packages, so the CLI and the Terraform provider share the
// same rendering path.
package commands

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

const defaultLogLevel = "warn"

// Root returns the root command for the lzdiagram CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lzdiagram",
		Short:         "Render landing zone architecture diagrams",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log-level", defaultLogLevel, "Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(Render())
	cmd.AddCommand(Catalog())
	cmd.AddCommand(Version())

	return cmd
}

// newLogger builds the stderr logger from the --log-level flag
func newLogger(cmd *cobra.Command) (hclog.Logger, error) {
	level := defaultLogLevel
	if flag := cmd.Flags().Lookup("log-level"); flag != nil {
		level = flag.Value.String()
	}

	parsed := hclog.LevelFromString(level)
	if parsed == hclog.NoLevel {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "lzdiagram",
		Level:  parsed,
		Output: cmd.ErrOrStderr(),
	}), nil
}
