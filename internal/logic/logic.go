// Package logic implements the core business logic for encryption and decryption runs.
package logic

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idelchi/hillc/internal/config"
	"github.com/idelchi/hillc/internal/encryption"
	"github.com/idelchi/hillc/internal/keyfile"
	"github.com/idelchi/hillc/internal/metrics"
)

// IO bundles the streams a run reads from and writes to.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run is the main logic of the application: it encrypts or decrypts text or files according to cfg.
func Run(cfg *config.Config, logger *zap.Logger, streams IO) (err error) {
	start := time.Now()

	logger = logger.With(zap.String("run", uuid.NewString()), zap.String("mode", string(cfg.Mode)))
	reg := metrics.NewRegistry()

	if cfg.MetricsFile != "" {
		defer func() {
			if werr := reg.WriteTextfile(cfg.MetricsFile); werr != nil {
				err = errors.Join(err, werr)
			}
		}()
	}

	if cfg.TextMode() {
		cipher, err := newCipher(cfg, logger, reg)
		if err != nil {
			return err
		}

		return runText(cfg, cipher, streams)
	}

	scanned, excluded, done, err := preamble(cfg, streams, start)
	if done || err != nil {
		return err
	}

	cipher, err := newCipher(cfg, logger, reg)
	if err != nil {
		return err
	}

	proc := encryption.NewProcessor(cfg, cipher, streams.Out, streams.Err)

	processed, errored, totalSize, err := proc.ProcessFiles()

	if processed > 0 {
		err = errors.Join(err, saveKey(cfg, cipher))
	}

	logger.Debug("Run finished",
		zap.Int("processed", processed),
		zap.Int("errored", errored),
		zap.Duration("took", time.Since(start)))

	if cfg.Stats {
		printStats(streams.Err, scanned, excluded, processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// newCipher loads or prepares the key for the configured direction.
func newCipher(cfg *config.Config, logger *zap.Logger, reg *metrics.Registry) (*encryption.Cipher, error) {
	engine, keyString, err := loadEngine(cfg)
	if err != nil {
		return nil, err
	}

	cipher := &encryption.Cipher{
		Engine:     engine,
		Decrypting: cfg.Mode == config.ModeDecrypt,
		Metrics:    reg,
		Logger:     logger,
	}

	if cipher.Decrypting {
		if cipher.Key, err = engine.LoadKey(keyString); err != nil {
			return nil, fmt.Errorf("loading key: %w", err)
		}

		return cipher, nil
	}

	if cipher.Key, err = prepareKey(engine, keyString, logger, reg); err != nil {
		return nil, err
	}

	return cipher, nil
}

// saveKey writes the key profile of an encryption run when --save-key is set.
// It is called only after something was encrypted.
func saveKey(cfg *config.Config, cipher *encryption.Cipher) error {
	if cfg.SaveKey == "" || cipher.Decrypting {
		return nil
	}

	if err := keyfile.Save(cfg.SaveKey, keyfile.FromKey(cipher.Key, cipher.Engine.Options())); err != nil {
		return err
	}

	cipher.Logger.Info("Saved key profile", zap.String("path", cfg.SaveKey), zap.String("key", cipher.Key.Used))

	return nil
}

// runText reads the input from --text or stdin and writes the result to stdout.
// Encryption also reports the twist and the key to decrypt with on stderr.
func runText(cfg *config.Config, cipher *encryption.Cipher, streams IO) error {
	text := cfg.Text

	if text == "" {
		data, err := io.ReadAll(streams.In)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		text = string(data)
	}

	if cipher.Decrypting {
		result, err := cipher.Decrypt(text)
		if err != nil {
			return fmt.Errorf("decrypting: %w", err)
		}

		fmt.Fprintln(streams.Out, result.Plaintext)

		return nil
	}

	result, err := cipher.Encrypt(text)
	if err != nil {
		return fmt.Errorf("encrypting: %w", err)
	}

	fmt.Fprintln(streams.Out, result.Ciphertext)

	if err := saveKey(cfg, cipher); err != nil {
		return err
	}

	if !cfg.Quiet {
		fmt.Fprintf(streams.Err, "Twist:    %s\n", result.Log)
		fmt.Fprintf(streams.Err, "Used key: %s (%s)\n", result.UsedKey, result.Status)
	}

	return nil
}

// preamble resolves files and handles dry run. Returns done=true if dry run was executed.
func preamble(cfg *config.Config, streams IO, start time.Time) (int, int, bool, error) {
	scanned, err := resolveFiles(cfg)
	if err != nil {
		return 0, 0, false, fmt.Errorf("resolving files: %w", err)
	}

	excluded := scanned - len(cfg.Files)

	if cfg.Dry {
		dryRun(cfg, streams, scanned, excluded, start)

		return scanned, excluded, true, nil
	}

	return scanned, excluded, false, nil
}

// dryRun previews what would be processed without actually encrypting/decrypting.
func dryRun(cfg *config.Config, streams IO, scanned, excluded int, start time.Time) {
	var totalSize int64

	for _, file := range cfg.Files {
		if !cfg.Quiet {
			fmt.Fprintf(streams.Out, "Would process %q -> %q\n", file, encryption.OutputPath(file, cfg))
		}

		if cfg.Stats {
			if info, err := os.Stat(file); err == nil {
				totalSize += info.Size()
			}
		}
	}

	if cfg.Stats {
		printStats(streams.Err, scanned, excluded, len(cfg.Files), 0, totalSize, time.Since(start))
	}
}

func printStats(w io.Writer, scanned, excluded, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Scanned:   %s\n", humanize.Comma(int64(scanned)))
	fmt.Fprintf(w, "  Excluded:  %s\n", humanize.Comma(int64(excluded)))
	fmt.Fprintf(w, "  Processed: %s\n", humanize.Comma(int64(processed)))
	fmt.Fprintf(w, "  Errors:    %s\n", humanize.Comma(int64(errored)))
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
