package hill

import (
	"fmt"
	"strings"
)

// KeyPolicy decides what happens to keys with fewer than 9 alphabet symbols.
type KeyPolicy int

const (
	// Lenient pads short keys with the alphabet's filler symbol.
	Lenient KeyPolicy = iota
	// Strict rejects short keys with ErrInvalidKey.
	Strict
)

// String returns the policy name.
func (p KeyPolicy) String() string {
	if p == Strict {
		return "strict"
	}

	return "lenient"
}

// ParseKeyPolicy resolves "strict" or "lenient".
func ParseKeyPolicy(s string) (KeyPolicy, error) {
	switch strings.ToLower(s) {
	case "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	default:
		return 0, fmt.Errorf("%w: unknown key policy %q", ErrInvalidOptions, s)
	}
}

// Scheme selects how the twist is recorded in the ciphertext.
type Scheme int

const (
	// SchemeMarker applies the twist to the stream and appends a one-symbol marker.
	SchemeMarker Scheme = iota
	// SchemeTag leaves the stream untouched and appends a 3-symbol informational tag.
	SchemeTag
)

// String returns the scheme name.
func (s Scheme) String() string {
	if s == SchemeTag {
		return "tag"
	}

	return "marker"
}

// ParseScheme resolves "marker" or "tag".
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(s) {
	case "marker":
		return SchemeMarker, nil
	case "tag":
		return SchemeTag, nil
	default:
		return 0, fmt.Errorf("%w: unknown scheme %q", ErrInvalidOptions, s)
	}
}

// Options configures an Engine.
type Options struct {
	// Alphabet defines the symbols and the modulus.
	Alphabet *Alphabet

	// Padding is appended to plaintext to fill the last block and stripped after decryption.
	Padding rune

	// Policy controls short keys.
	Policy KeyPolicy

	// Scheme controls how the twist is recorded.
	Scheme Scheme

	// DisableHeal makes singular keys fail with ErrNonInvertibleKey instead of being repaired.
	DisableHeal bool
}

// DefaultOptions returns the defaults for a built-in alphabet: "0" padding and lenient keys for
// Alphanumeric36, "X" padding and strict keys for Letters26.
// Other alphabets get their filler symbol as padding and lenient keys.
func DefaultOptions(a *Alphabet) Options {
	opts := Options{
		Alphabet: a,
		Padding:  a.Filler(),
		Policy:   Lenient,
		Scheme:   SchemeMarker,
	}

	if a == Letters26 {
		opts.Padding = 'X'
		opts.Policy = Strict
	}

	return opts
}

func (o Options) validate() error {
	if o.Alphabet == nil {
		return fmt.Errorf("%w: no alphabet", ErrInvalidOptions)
	}

	if !o.Alphabet.Contains(o.Padding) {
		return fmt.Errorf("%w: padding symbol %q is not in alphabet %q", ErrInvalidOptions, o.Padding, o.Alphabet.Name())
	}

	if o.Policy != Strict && o.Policy != Lenient {
		return fmt.Errorf("%w: key policy %d", ErrInvalidOptions, o.Policy)
	}

	if o.Scheme != SchemeMarker && o.Scheme != SchemeTag {
		return fmt.Errorf("%w: scheme %d", ErrInvalidOptions, o.Scheme)
	}

	return nil
}
