package logic

import (
	"fmt"

	"github.com/idelchi/hillc/internal/config"
	"github.com/idelchi/hillc/internal/filter"
	"github.com/idelchi/hillc/pkg/pathmatch"
)

// resolveFiles replaces cfg.Files with the files to process and returns the number of files
// scanned. Directory walks apply --include/--exclude. Without includes, decryption walks select
// files with the encrypted suffix; encryption walks always skip them.
func resolveFiles(cfg *config.Config) (int, error) {
	includes, excludes, err := loadPatterns(cfg)
	if err != nil {
		return 0, err
	}

	encrypted := "*" + pathmatch.Escape(cfg.Suffixes.Encrypt)

	switch {
	case cfg.Mode != config.ModeDecrypt:
		excludes = append(excludes, encrypted)
	case len(includes) == 0:
		includes = append(includes, encrypted)
	}

	flt, err := filter.New(includes, excludes)
	if err != nil {
		return 0, err
	}

	files, scanned, err := filter.Resolve(cfg.Files, flt)
	if err != nil {
		return scanned, err
	}

	cfg.Files = files

	return scanned, nil
}

// loadPatterns merges the pattern flags with the pattern files.
func loadPatterns(cfg *config.Config) (includes, excludes []string, err error) {
	includes = append(includes, cfg.Include...)
	excludes = append(excludes, cfg.Exclude...)

	if cfg.IncludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.IncludeFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("loading include patterns: %w", err)
		}

		includes = append(includes, patterns...)
	}

	if cfg.ExcludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.ExcludeFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("loading exclude patterns: %w", err)
		}

		excludes = append(excludes, patterns...)
	}

	return includes, excludes, nil
}
