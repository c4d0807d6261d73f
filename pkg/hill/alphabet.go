package hill

import (
	"fmt"
	"strings"
	"unicode"
)

// Alphabet is an ordered set of unique symbols. Its size is the modulus of all arithmetic.
type Alphabet struct {
	name    string
	symbols []rune
	index   map[rune]int
}

//nolint:gochecknoglobals
var (
	// Letters26 is the uppercase Latin alphabet, A=0 through Z=25.
	Letters26 = mustAlphabet("letters", "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	// Alphanumeric36 is the digits followed by the uppercase letters, 0=0 through Z=35.
	Alphanumeric36 = mustAlphabet("alnum", "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ")
)

// NewAlphabet builds an alphabet from a string of unique, uppercase, non-space symbols.
// Lookups uppercase their input, so lowercase text maps onto the same residues.
func NewAlphabet(name, symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) < 2 { //nolint:mnd
		return nil, fmt.Errorf("%w: %q needs at least two symbols", ErrInvalidAlphabet, name)
	}

	index := make(map[rune]int, len(runes))

	for i, r := range runes {
		if unicode.IsSpace(r) {
			return nil, fmt.Errorf("%w: %q contains whitespace", ErrInvalidAlphabet, name)
		}

		if unicode.ToUpper(r) != r {
			return nil, fmt.Errorf("%w: %q has non-uppercase symbol %q", ErrInvalidAlphabet, name, r)
		}

		if _, ok := index[r]; ok {
			return nil, fmt.Errorf("%w: %q repeats symbol %q", ErrInvalidAlphabet, name, r)
		}

		index[r] = i
	}

	return &Alphabet{name: name, symbols: runes, index: index}, nil
}

func mustAlphabet(name, symbols string) *Alphabet {
	a, err := NewAlphabet(name, symbols)
	if err != nil {
		panic(err)
	}

	return a
}

// ParseAlphabet resolves a built-in alphabet by name.
func ParseAlphabet(name string) (*Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "alnum", "alphanumeric", "alphanumeric36":
		return Alphanumeric36, nil
	case "letters", "letters26", "alpha":
		return Letters26, nil
	default:
		return nil, fmt.Errorf("%w: unknown alphabet %q", ErrInvalidAlphabet, name)
	}
}

// Name returns the alphabet's short name.
func (a *Alphabet) Name() string { return a.name }

// Modulus returns the number of symbols.
func (a *Alphabet) Modulus() int { return len(a.symbols) }

// String returns the symbols in order.
func (a *Alphabet) String() string { return string(a.symbols) }

// Filler is the symbol used to pad short lenient keys: the symbol with residue 0.
func (a *Alphabet) Filler() rune { return a.symbols[0] }

// Index reports the residue of r after uppercasing, and whether r belongs to the alphabet.
func (a *Alphabet) Index(r rune) (int, bool) {
	n, ok := a.index[unicode.ToUpper(r)]

	return n, ok
}

// Contains reports whether r (after uppercasing) is part of the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.Index(r)

	return ok
}

// Residue maps a symbol to its residue. Symbols outside the alphabet map to 0.
func (a *Alphabet) Residue(r rune) int {
	n, _ := a.Index(r)

	return n
}

// Symbol maps any integer to its symbol, reducing it modulo the alphabet size first.
func (a *Alphabet) Symbol(n int) rune {
	return a.symbols[Mod(n, a.Modulus())]
}

// Clean uppercases s and drops every symbol that is not part of the alphabet.
func (a *Alphabet) Clean(s string) []rune {
	out := make([]rune, 0, len(s))

	for _, r := range s {
		if up := unicode.ToUpper(r); a.Contains(up) {
			out = append(out, up)
		}
	}

	return out
}

// Residues maps symbols to residues.
func (a *Alphabet) Residues(symbols []rune) []int {
	out := make([]int, len(symbols))

	for i, r := range symbols {
		out[i] = a.Residue(r)
	}

	return out
}

// Encode maps residues back to a string.
func (a *Alphabet) Encode(residues []int) string {
	var sb strings.Builder

	sb.Grow(len(residues))

	for _, n := range residues {
		sb.WriteRune(a.Symbol(n))
	}

	return sb.String()
}
