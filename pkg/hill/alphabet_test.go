package hill_test

import (
	"errors"
	"testing"

	"github.com/idelchi/hillc/pkg/hill"
)

func TestAlphabetResidues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		alphabet *hill.Alphabet
		symbol   rune
		residue  int
		known    bool
	}{
		{hill.Alphanumeric36, '0', 0, true},
		{hill.Alphanumeric36, '9', 9, true},
		{hill.Alphanumeric36, 'A', 10, true},
		{hill.Alphanumeric36, 'z', 35, true},
		{hill.Alphanumeric36, '!', 0, false},
		{hill.Letters26, 'A', 0, true},
		{hill.Letters26, 'q', 16, true},
		{hill.Letters26, '7', 0, false},
	}

	for _, tc := range tests {
		got, ok := tc.alphabet.Index(tc.symbol)
		if got != tc.residue || ok != tc.known {
			t.Errorf("%s.Index(%q) = (%d, %v), want (%d, %v)", tc.alphabet.Name(), tc.symbol, got, ok, tc.residue, tc.known)
		}

		if r := tc.alphabet.Residue(tc.symbol); r != tc.residue {
			t.Errorf("%s.Residue(%q) = %d, want %d", tc.alphabet.Name(), tc.symbol, r, tc.residue)
		}
	}
}

func TestAlphabetSymbolWraps(t *testing.T) {
	t.Parallel()

	tests := map[int]rune{0: '0', 35: 'Z', 36: '0', -1: 'Z', 73: '1'}

	for n, want := range tests {
		if got := hill.Alphanumeric36.Symbol(n); got != want {
			t.Errorf("Symbol(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestAlphabetRoundTrip(t *testing.T) {
	t.Parallel()

	for _, a := range []*hill.Alphabet{hill.Letters26, hill.Alphanumeric36} {
		for n := range a.Modulus() {
			if got := a.Residue(a.Symbol(n)); got != n {
				t.Errorf("%s: Residue(Symbol(%d)) = %d", a.Name(), n, got)
			}
		}
	}
}

func TestAlphabetClean(t *testing.T) {
	t.Parallel()

	if got := string(hill.Alphanumeric36.Clean("Hi, 5 wörld!")); got != "HI5WRLD" {
		t.Errorf("Alphanumeric36.Clean = %q, want %q", got, "HI5WRLD")
	}

	if got := string(hill.Letters26.Clean("R2-D2 & c3po")); got != "RDCPO" {
		t.Errorf("Letters26.Clean = %q, want %q", got, "RDCPO")
	}
}

func TestNewAlphabetRejects(t *testing.T) {
	t.Parallel()

	for _, symbols := range []string{"", "A", "ABCA", "AB C", "ABc"} {
		if _, err := hill.NewAlphabet("bad", symbols); !errors.Is(err, hill.ErrInvalidAlphabet) {
			t.Errorf("NewAlphabet(%q) error = %v, want ErrInvalidAlphabet", symbols, err)
		}
	}
}

func TestParseAlphabet(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]*hill.Alphabet{
		"alnum":        hill.Alphanumeric36,
		"Alphanumeric": hill.Alphanumeric36,
		"letters":      hill.Letters26,
		" LETTERS26 ":  hill.Letters26,
	} {
		got, err := hill.ParseAlphabet(name)
		if err != nil || got != want {
			t.Errorf("ParseAlphabet(%q) = (%v, %v), want %v", name, got, err, want)
		}
	}

	if _, err := hill.ParseAlphabet("greek"); !errors.Is(err, hill.ErrInvalidAlphabet) {
		t.Errorf("ParseAlphabet(greek) error = %v, want ErrInvalidAlphabet", err)
	}
}
