package encryption

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/hillc/internal/config"
	"github.com/idelchi/hillc/internal/fileutil"
)

// ErrOutputIsInput is returned when a file's output path resolves to the file itself.
var ErrOutputIsInput = errors.New("output path is the input file")

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// cipher applies the prepared key
	cipher *Cipher

	// stdout receives progress lines, stderr per-file errors
	stdout, stderr io.Writer

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// NewProcessor creates a Processor for the files in cfg.
func NewProcessor(cfg *config.Config, cipher *Cipher, stdout, stderr io.Writer) *Processor {
	return &Processor{
		cfg:     cfg,
		cipher:  cipher,
		stdout:  stdout,
		stderr:  stderr,
		results: make(chan Result, len(cfg.Files)),
	}
}

// ProcessFiles concurrently processes all files specified in the configuration.
// Returns the number of successfully processed files, the number of errors and the total output size.
//
//nolint:cyclop,gocognit
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(p.stderr, "Error processing %q: %v\n", result.Input, result.Error)
			} else {
				processed++

				totalSize += result.OutputSize

				if !p.cfg.Quiet {
					fmt.Fprintf(p.stdout, "Processed %q -> %q\n", result.Input, result.Output)
				}
			}

			if p.cfg.Delete && result.Error == nil {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(p.stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Fprintf(p.stdout, "Deleted %q\n", result.Input)
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := OutputPath(file, p.cfg)

			size, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile encrypts or decrypts a whole file and writes the result, followed by a newline,
// through a temporary file renamed over outPath.
func (p *Processor) processFile(filename, outPath string) (size int64, err error) {
	if samePath(filename, outPath) {
		return 0, fmt.Errorf("%w: %q (missing %q suffix?)", ErrOutputIsInput, outPath, p.cfg.Suffixes.Encrypt)
	}

	info, err := os.Stat(filename)
	if err != nil {
		return 0, fmt.Errorf("getting file info for %q: %w", filename, err)
	}

	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return 0, fmt.Errorf("reading input file: %w", err)
	}

	out, err := p.cipher.Apply(string(data))
	if err != nil {
		return 0, fmt.Errorf("applying %s: %w", p.cipher.Operation(), err)
	}

	tc, err := fileutil.NewTempContext(outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	if _, err = tc.TmpFile.WriteString(out + "\n"); err != nil {
		return 0, fmt.Errorf("writing output: %w", err)
	}

	const ownerReadWrite = 0o600

	if err = tc.Commit(ownerReadWrite); err != nil {
		return 0, err
	}

	size, err = fileutil.FinalizeOutput(outPath, p.cfg.PreserveTimestamps, info.ModTime())
	if err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	p.cipher.logger().Debug("Wrote file", zap.String("input", filename), zap.String("output", outPath))

	return size, nil
}

// OutputPath generates the output file path based on the input filename
// and the configured suffixes for encryption/decryption.
func OutputPath(filename string, cfg *config.Config) string {
	ext := cfg.Suffixes.Encrypt

	if cfg.Mode == config.ModeDecrypt {
		filename = strings.TrimSuffix(filename, cfg.Suffixes.Encrypt)
		ext = cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}

// samePath reports whether a and b name the same location.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)

	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}

	return absA == absB
}
