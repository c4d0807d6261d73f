package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/hillc/internal/config"
	"github.com/idelchi/hillc/internal/logic"
)

// NewInspectCommand creates a new cobra command for the inspect subcommand.
func NewInspectCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inspect [flags]",
		Aliases: []string{"show"},
		Short:   "Show the key matrix, its determinant and inverse",
		Args:    cobra.NoArgs,
		PreRunE: preRun(s, config.ModeInspect),
		RunE: run(s, func(cmd *cobra.Command) error {
			return logic.RunInspect(s.cfg, s.logger, streams(cmd))
		}),
	}

	cmd.Flags().String("format", "table", "Output format: table or yaml")

	return cmd
}
