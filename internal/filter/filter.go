// Package filter selects the files a run processes from positional arguments and
// include/exclude patterns with find -path semantics.
package filter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/hillc/pkg/pathmatch"
)

// ErrNoFiles is returned when the arguments select no file.
var ErrNoFiles = errors.New("no files to process")

// Filter decides which walked files are selected. Without include patterns every file is a
// candidate. Excludes always win.
type Filter struct {
	includes *pathmatch.Matcher
	excludes *pathmatch.Matcher
}

// New compiles include and exclude patterns. A leading "./" is stripped so patterns match
// cleaned paths.
func New(includes, excludes []string) (*Filter, error) {
	inc, err := pathmatch.NewMatcher(normalize(includes))
	if err != nil {
		return nil, fmt.Errorf("compiling include patterns: %w", err)
	}

	exc, err := pathmatch.NewMatcher(normalize(excludes))
	if err != nil {
		return nil, fmt.Errorf("compiling exclude patterns: %w", err)
	}

	return &Filter{includes: inc, excludes: exc}, nil
}

// Match reports whether path is selected.
func (f *Filter) Match(path string) bool {
	path = filepath.ToSlash(filepath.Clean(path))

	if !f.includes.Empty() && !f.includes.MatchAny(path) {
		return false
	}

	return !f.excludes.MatchAny(path)
}

func normalize(patterns []string) []string {
	out := make([]string, len(patterns))

	for i, p := range patterns {
		out[i] = strings.TrimPrefix(p, "./")
	}

	return out
}

// Resolve expands positional arguments into files. Explicit files are kept as given, bypassing
// the filter. Directories are walked and their files filtered. Duplicates are dropped.
// It returns the selected files and the number of files scanned.
func Resolve(args []string, flt *Filter) (files []string, scanned int, err error) {
	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			add(arg)

			continue
		}

		walked, total, err := walk(arg, flt)
		if err != nil {
			return nil, 0, err
		}

		scanned += total

		for _, path := range walked {
			add(path)
		}
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("%w: %v", ErrNoFiles, args)
	}

	return files, scanned, nil
}

// walk returns the files below root that pass the filter and the number of files seen.
func walk(root string, flt *Filter) (files []string, total int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		total++

		if flt.Match(path) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walking %q: %w", root, err)
	}

	return files, total, nil
}
