package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/hillc/internal/config"
	"github.com/idelchi/hillc/internal/logging"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	v := viper.New()
	s := &session{cfg: cfg, settings: v.AllSettings}

	root := &cobra.Command{
		Use:   "hillc [flags] command [flags]",
		Short: "Hill cipher utility",
		Long: `A Hill cipher over 3x3 key matrices with automatic repair of singular keys.
Provides commands for encryption, decryption, key inspection and key generation.
Every flag can also be set through the environment as HILLC_<FLAG>.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v.SetEnvPrefix("HILLC")
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()

			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}

			if err := v.Unmarshal(cfg); err != nil {
				return fmt.Errorf("parsing config: %w", err)
			}

			logger, err := logging.New(cfg.Verbose, cfg.Quiet)
			if err != nil {
				return err
			}

			s.logger = logger

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if s.logger != nil {
				_ = s.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()

	flags.StringP("key", "k", "", "Key string, 9 symbols fill the 3x3 matrix row by row")
	flags.StringP("key-file", "f", "", "Path to a JSONC key profile or a file holding the bare key")
	flags.StringP("alphabet", "a", "", "Alphabet: alnum (0-9A-Z, mod 36) or letters (A-Z, mod 26), defaults to the key profile's or alnum")
	flags.String("padding", "", "Padding symbol, defaults to 0 for alnum and X for letters")
	flags.String("policy", "", "Short key policy: strict or lenient, defaults to lenient for alnum and strict for letters")
	flags.String("scheme", "", "Twist scheme: marker or tag, defaults to the key profile's or marker")
	flags.Bool("no-heal", false, "Fail on a singular key instead of repairing it")
	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.String("metrics-file", "", "Write Prometheus metrics in textfile format to this path after the run")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.String("encrypt-ext", ".hill", "Suffix to append to encrypted files")
	flags.String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	root.AddCommand(
		NewEncryptCommand(s),
		NewDecryptCommand(s),
		NewInspectCommand(s),
		NewGenerateCommand(s),
	)

	return root
}

// addFileFlags adds the flags shared by encrypt and decrypt.
func addFileFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("text", "t", "", "Text to process instead of files or stdin")
	cmd.Flags().BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	cmd.Flags().Bool("dry", false, "Show which files would be processed and exit")
	cmd.Flags().Bool("stats", false, "Print statistics after processing files")
	cmd.Flags().Bool("preserve-timestamps", false, "Copy the modification time of each input to its output")
	cmd.Flags().StringSliceP("include", "i", nil, "Glob patterns (find -path semantics) selecting files in walked directories")
	cmd.Flags().StringSliceP("exclude", "e", nil, "Glob patterns (find -path semantics) skipping files in walked directories")
	cmd.Flags().String("include-from", "", "Path to a JSONC array of include patterns")
	cmd.Flags().String("exclude-from", "", "Path to a JSONC array of exclude patterns")
}
