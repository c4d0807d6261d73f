package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/hillc/internal/config"
	"github.com/idelchi/hillc/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] [files/directories...]",
		Aliases: []string{"enc"},
		Short:   "Encrypt text or files",
		Long: `Encrypt text from --text or stdin, or encrypt files.
A singular key is repaired automatically: the key to decrypt with is reported on stderr
and can be stored with --save-key.`,
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(s, config.ModeEncrypt),
		RunE: run(s, func(cmd *cobra.Command) error {
			return logic.Run(s.cfg, s.logger, streams(cmd))
		}),
	}

	addFileFlags(cmd)
	cmd.Flags().String("save-key", "", "Save the key to decrypt with as a JSONC profile at this path")

	return cmd
}
