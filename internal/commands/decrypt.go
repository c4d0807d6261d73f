package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/hillc/internal/config"
	"github.com/idelchi/hillc/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] [files/directories...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt text or files",
		Long: `Decrypt text from --text or stdin, or decrypt files.
Keys are never repaired here: use the key reported when encrypting.`,
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(s, config.ModeDecrypt),
		RunE: run(s, func(cmd *cobra.Command) error {
			return logic.Run(s.cfg, s.logger, streams(cmd))
		}),
	}

	addFileFlags(cmd)

	return cmd
}
