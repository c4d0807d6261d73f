// Package config holds the runtime configuration of hillc and its validation.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/idelchi/hillc/pkg/hill"
)

// Mode is the operation a command runs.
type Mode string

const (
	// ModeEncrypt encrypts text or files.
	ModeEncrypt Mode = "encrypt"
	// ModeDecrypt decrypts text or files.
	ModeDecrypt Mode = "decrypt"
	// ModeInspect prints the prepared key matrix.
	ModeInspect Mode = "inspect"
	// ModeGenerate prints random invertible keys.
	ModeGenerate Mode = "generate"
)

var (
	// ErrMissingKey is returned when neither --key nor --key-file is set.
	ErrMissingKey = errors.New("a key is required: set --key or --key-file")
	// ErrTextWithFiles is returned when --text is combined with file arguments.
	ErrTextWithFiles = errors.New("--text cannot be combined with file arguments")
)

// DefaultAlphabet applies when neither --alphabet nor a key profile names an alphabet.
const DefaultAlphabet = "alnum"

// Key selects where the key comes from.
type Key struct {
	// String is the key given on the command line.
	String string `label:"--key" mapstructure:"key" validate:"exclusive=File"`

	// File is a path to a key profile.
	File string `label:"--key-file" mapstructure:"key-file"`
}

// Suffixes name the output files in file mode.
type Suffixes struct {
	Encrypt string `label:"--encrypt-ext" mapstructure:"encrypt-ext" validate:"required"`
	Decrypt string `label:"--decrypt-ext" mapstructure:"decrypt-ext"`
}

type Config struct {
	// Key source
	Key Key `mapstructure:",squash"`

	// Cipher options
	Alphabet string `label:"--alphabet" validate:"omitempty,alphabet"`
	Padding  string `label:"--padding" validate:"omitempty,len=1"`
	Policy   string `label:"--policy" validate:"omitempty,oneof=strict lenient"`
	Scheme   string `label:"--scheme" validate:"omitempty,oneof=marker tag"`
	NoHeal   bool   `mapstructure:"no-heal"`

	// Output and observability
	Show        bool
	Quiet       bool
	Verbose     bool
	MetricsFile string `mapstructure:"metrics-file"`

	// Encrypt/decrypt flags
	Text               string
	Parallel           int `label:"--parallel" validate:"min=1"`
	Stats              bool
	Dry                bool
	Delete             bool
	PreserveTimestamps bool     `mapstructure:"preserve-timestamps"`
	Suffixes           Suffixes `mapstructure:",squash"`
	SaveKey            string   `mapstructure:"save-key"`

	// Directory walk filters
	Include     []string
	Exclude     []string
	IncludeFrom string `mapstructure:"include-from"`
	ExcludeFrom string `mapstructure:"exclude-from"`

	// Inspect/generate flags
	Format string `label:"--format" validate:"omitempty,oneof=table yaml"`
	Count  int    `label:"--count" validate:"min=0,max=1000"`

	// Set by the command, not by flags
	Mode  Mode     `mapstructure:"-"`
	Files []string `mapstructure:"-"`
}

// TextMode reports whether input comes from --text or stdin instead of files.
func (c *Config) TextMode() bool {
	return c.Text != "" || len(c.Files) == 0
}

// Validate validates the configuration against the struct tags and the rules between flags.
func (c *Config) Validate() error {
	validate := validator.New()

	if err := registerValidators(validate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	if c.Mode != ModeGenerate && c.Key.String == "" && c.Key.File == "" {
		return fmt.Errorf("validating configuration: %w", ErrMissingKey)
	}

	if c.Text != "" && len(c.Files) > 0 {
		return fmt.Errorf("validating configuration: %w", ErrTextWithFiles)
	}

	return nil
}

// AlphabetName returns the configured alphabet or DefaultAlphabet.
func (c *Config) AlphabetName() string {
	if c.Alphabet == "" {
		return DefaultAlphabet
	}

	return c.Alphabet
}

// EngineOptions converts the cipher flags into engine options. Empty padding and policy keep the
// alphabet's defaults, an empty scheme means marker.
func (c *Config) EngineOptions() (hill.Options, error) {
	alphabet, err := hill.ParseAlphabet(c.AlphabetName())
	if err != nil {
		return hill.Options{}, err
	}

	opts := hill.DefaultOptions(alphabet)

	if c.Padding != "" {
		opts.Padding = []rune(c.Padding)[0]
	}

	if c.Policy != "" {
		if opts.Policy, err = hill.ParseKeyPolicy(c.Policy); err != nil {
			return hill.Options{}, err
		}
	}

	if c.Scheme != "" {
		if opts.Scheme, err = hill.ParseScheme(c.Scheme); err != nil {
			return hill.Options{}, err
		}
	}

	opts.DisableHeal = c.NoHeal

	return opts, nil
}
