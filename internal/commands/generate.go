package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/hillc/internal/config"
	"github.com/idelchi/hillc/internal/logic"
)

// NewGenerateCommand creates a new cobra command for the generate subcommand.
func NewGenerateCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate [flags]",
		Aliases: []string{"gen"},
		Short:   "Generate random keys with invertible matrices",
		Args:    cobra.NoArgs,
		PreRunE: preRun(s, config.ModeGenerate),
		RunE: run(s, func(cmd *cobra.Command) error {
			return logic.RunGenerate(s.cfg, streams(cmd))
		}),
	}

	cmd.Flags().IntP("count", "n", 1, "Number of keys to generate")

	return cmd
}
