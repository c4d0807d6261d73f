package logic

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/idelchi/hillc/internal/config"
	"github.com/idelchi/hillc/internal/keyfile"
	"github.com/idelchi/hillc/internal/metrics"
	"github.com/idelchi/hillc/pkg/hill"
)

// ErrProfileMismatch is returned when a key profile contradicts --alphabet or --scheme.
var ErrProfileMismatch = errors.New("key profile does not match the configured cipher")

// loadEngine builds the engine from the cipher flags and returns the key string from --key or
// --key-file. Settings left unset by flags are taken from the key profile.
func loadEngine(cfg *config.Config) (*hill.Engine, string, error) {
	effective := *cfg
	key := cfg.Key.String

	if cfg.Key.File != "" {
		profile, err := keyfile.Load(cfg.Key.File)
		if err != nil {
			return nil, "", err
		}

		if err := applyProfile(&effective, profile); err != nil {
			return nil, "", fmt.Errorf("key file %q: %w", cfg.Key.File, err)
		}

		key = profile.Key
	}

	opts, err := effective.EngineOptions()
	if err != nil {
		return nil, "", err
	}

	engine, err := hill.New(opts)
	if err != nil {
		return nil, "", fmt.Errorf("creating engine: %w", err)
	}

	return engine, key, nil
}

// applyProfile fills alphabet, scheme and padding from profile where cfg leaves them empty.
// An alphabet or scheme set on both sides must agree. Explicit padding wins.
func applyProfile(cfg *config.Config, profile *keyfile.Profile) error {
	if profile.Alphabet != "" {
		saved, err := hill.ParseAlphabet(profile.Alphabet)
		if err != nil {
			return err
		}

		if cfg.Alphabet == "" {
			cfg.Alphabet = saved.Name()
		} else if configured, err := hill.ParseAlphabet(cfg.Alphabet); err != nil {
			return err
		} else if configured != saved {
			return fmt.Errorf("%w: profile holds a %s key, running with %s",
				ErrProfileMismatch, saved.Name(), configured.Name())
		}
	}

	if profile.Scheme != "" {
		saved, err := hill.ParseScheme(profile.Scheme)
		if err != nil {
			return err
		}

		if cfg.Scheme == "" {
			cfg.Scheme = saved.String()
		} else if configured, err := hill.ParseScheme(cfg.Scheme); err != nil {
			return err
		} else if configured != saved {
			return fmt.Errorf("%w: profile uses the %s scheme, running with %s",
				ErrProfileMismatch, saved, configured)
		}
	}

	if cfg.Padding == "" {
		cfg.Padding = profile.Padding
	}

	return nil
}

// prepareKey prepares an encryption key and warns when it had to be healed. reg may be nil.
func prepareKey(engine *hill.Engine, keyString string, logger *zap.Logger, reg *metrics.Registry) (*hill.Key, error) {
	key, err := engine.PrepareKey(keyString)
	if err != nil {
		if reg != nil && errors.Is(err, hill.ErrNonInvertibleKey) && !engine.Options().DisableHeal {
			reg.RecordHeal(false)
		}

		return nil, fmt.Errorf("preparing key: %w", err)
	}

	if key.Status == hill.StatusAutoFixed {
		if reg != nil {
			reg.RecordHeal(true)
		}

		logger.Warn("Key matrix was not invertible and has been auto-fixed, decrypt with the used key",
			zap.String("key", key.Input),
			zap.String("used", key.Used),
			zap.Int("determinant", key.Determinant))
	}

	return key, nil
}
