// Package pathmatch matches file paths against glob patterns with find -path semantics.
//
// Patterns follow fnmatch(3) without FNM_PATHNAME:
//   - * matches any run of characters, / included
//   - ? matches exactly one character, / included
//   - [...] matches one character from the set, [!...] negates it
//   - \ makes the next character literal
//
// Unlike filepath.Match, a single * crosses directory separators, so "*.hill" selects every
// encrypted file below a walked directory.
package pathmatch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

var (
	// ErrUnclosedClass is returned for a [ without a matching ].
	ErrUnclosedClass = errors.New("unclosed character class")
	// ErrTrailingEscape is returned for a pattern ending in a single backslash.
	ErrTrailingEscape = errors.New("trailing backslash")
)

// Match reports whether path matches pattern.
func Match(pattern, path string) (bool, error) {
	re, err := compile(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(path), nil
}

// Escape quotes the pattern metacharacters in s so that it matches itself literally.
func Escape(s string) string {
	var sb strings.Builder

	for _, r := range s {
		if strings.ContainsRune(`*?[\`, r) {
			sb.WriteByte('\\')
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// Matcher holds compiled patterns for matching many paths.
type Matcher struct {
	patterns []string
	compiled []*regexp.Regexp
}

// NewMatcher compiles patterns. An empty list yields a matcher that matches nothing.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{
		patterns: append([]string(nil), patterns...),
		compiled: make([]*regexp.Regexp, 0, len(patterns)),
	}

	for _, p := range patterns {
		re, err := compile(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}

		m.compiled = append(m.compiled, re)
	}

	return m, nil
}

// Empty reports whether the matcher holds no patterns.
func (m *Matcher) Empty() bool {
	return len(m.compiled) == 0
}

// Patterns returns the source patterns in order.
func (m *Matcher) Patterns() []string {
	return append([]string(nil), m.patterns...)
}

// MatchAny reports whether path matches at least one pattern.
func (m *Matcher) MatchAny(path string) bool {
	for _, re := range m.compiled {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

var cache sync.Map //nolint:gochecknoglobals // compiled patterns are shared across matchers

// compile translates a pattern and caches the result.
func compile(pattern string) (*regexp.Regexp, error) {
	if v, ok := cache.Load(pattern); ok {
		re, _ := v.(*regexp.Regexp) //nolint:errcheck // only *regexp.Regexp is stored

		return re, nil
	}

	expr, err := translate(pattern)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}

	cache.Store(pattern, re)

	return re, nil
}

// translate turns a glob pattern into an anchored regular expression.
func translate(pattern string) (string, error) {
	var sb strings.Builder

	sb.WriteByte('^')

	for i := 0; i < len(pattern); {
		switch c := pattern[i]; c {
		case '*':
			sb.WriteString(".*")
			i++
		case '?':
			sb.WriteByte('.')
			i++
		case '[':
			end, err := classEnd(pattern, i)
			if err != nil {
				return "", err
			}

			class := pattern[i : end+1]
			if strings.HasPrefix(class, "[!") && len(class) > 3 { //nolint:mnd
				class = "[^" + class[2:]
			}

			sb.WriteString(class)
			i = end + 1
		case '\\':
			if i+1 == len(pattern) {
				return "", fmt.Errorf("%w in pattern %q", ErrTrailingEscape, pattern)
			}

			sb.WriteString(regexp.QuoteMeta(pattern[i+1 : i+2]))
			i += 2
		default:
			sb.WriteString(regexp.QuoteMeta(pattern[i : i+1]))
			i++
		}
	}

	sb.WriteByte('$')

	return sb.String(), nil
}

// classEnd returns the index of the ] closing the class opened at start. A ] right after the
// opening bracket (or after a leading !) is a literal member.
func classEnd(pattern string, start int) (int, error) {
	i := start + 1

	if i < len(pattern) && pattern[i] == '!' {
		i++
	}

	if i < len(pattern) && pattern[i] == ']' {
		i++
	}

	if end := strings.IndexByte(pattern[i:], ']'); end >= 0 {
		return i + end, nil
	}

	return 0, fmt.Errorf("%w in pattern %q", ErrUnclosedClass, pattern)
}
