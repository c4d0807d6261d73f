package logic

import (
	"crypto/rand"
	"fmt"

	"github.com/idelchi/hillc/internal/config"
	"github.com/idelchi/hillc/pkg/hill"
)

// RunGenerate prints cfg.Count random keys with invertible matrices, one per line.
func RunGenerate(cfg *config.Config, streams IO) error {
	alphabet, err := hill.ParseAlphabet(cfg.AlphabetName())
	if err != nil {
		return err
	}

	for range max(cfg.Count, 1) {
		key, err := hill.GenerateKey(rand.Reader, alphabet)
		if err != nil {
			return fmt.Errorf("generating key: %w", err)
		}

		fmt.Fprintln(streams.Out, key)
	}

	return nil
}
