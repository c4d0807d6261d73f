// Package commands provides the command-line interface for the hillc tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - key inspection
//   - key generation
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idelchi/hillc/internal/config"
	"github.com/idelchi/hillc/internal/logic"
)

// session is shared by the root command and its subcommands.
type session struct {
	cfg      *config.Config
	logger   *zap.Logger
	settings func() map[string]any
}

// preRun returns a PreRunE handler that records the mode, resolves positional args into cfg.Files
// and validates the configuration.
func preRun(s *session, mode config.Mode) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		s.cfg.Mode = mode
		s.cfg.Files = args

		if s.cfg.Show {
			return nil
		}

		return s.cfg.Validate()
	}
}

// run returns a RunE handler that shows the configuration instead of running fn when --show is set.
func run(s *session, fn func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if s.cfg.Show {
			return showConfig(cmd.OutOrStdout(), s)
		}

		return fn(cmd)
	}
}

func streams(cmd *cobra.Command) logic.IO {
	return logic.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
}
