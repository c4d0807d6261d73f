// Package logging builds the zap logger used by hillc.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger on stderr. verbose enables debug output, quiet limits output to
// errors. quiet wins when both are set.
func New(verbose, quiet bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.DisableStacktrace = true
	config.DisableCaller = !verbose
	config.Sampling = nil

	switch {
	case quiet:
		config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	case verbose:
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	return logger, nil
}
