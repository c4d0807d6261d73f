package hill

import (
	"fmt"
)

// keyLength is the number of symbols consumed from a key string.
const keyLength = Size * Size

// Status reports whether a key was used as given or repaired.
type Status int

const (
	// StatusNormal means the key matrix was invertible as built.
	StatusNormal Status = iota
	// StatusAutoFixed means the key matrix was healed; the caller must keep the used key.
	StatusAutoFixed
)

// String returns "normal" or "auto-fixed".
func (s Status) String() string {
	if s == StatusAutoFixed {
		return "auto-fixed"
	}

	return "normal"
}

// Key is a prepared, invertible key matrix. It is read-only after construction.
type Key struct {
	// Matrix is the key matrix actually used.
	Matrix Matrix

	// Inverse is Matrix inverted modulo the alphabet size.
	Inverse Matrix

	// Determinant is the determinant of Matrix, reduced.
	Determinant int

	// Input is the cleaned 9-symbol key the matrix was built from.
	Input string

	// Used is the key string that reproduces Matrix. It differs from Input after healing.
	Used string

	// Status tells whether the key was healed.
	Status Status
}

// BuildMatrix derives a key matrix from a key string. Symbols outside the alphabet are dropped
// and the rest uppercased. Under Strict policy fewer than 9 symbols is an error; under Lenient
// policy the key is padded with the alphabet's filler symbol. The first 9 symbols fill the
// matrix row by row. The cleaned 9-symbol key is returned alongside.
func BuildMatrix(key string, a *Alphabet, policy KeyPolicy) (Matrix, string, error) {
	symbols := a.Clean(key)

	if len(symbols) < keyLength {
		if policy == Strict {
			return Matrix{}, "", fmt.Errorf("%w: need at least %d symbols from %q, got %d",
				ErrInvalidKey, keyLength, a.String(), len(symbols))
		}

		for len(symbols) < keyLength {
			symbols = append(symbols, a.Filler())
		}
	}

	symbols = symbols[:keyLength]

	var m Matrix

	for i, r := range symbols {
		m[i/Size][i%Size] = a.Residue(r)
	}

	return m, string(symbols), nil
}

// healOrder is the order in which diagonal entries are perturbed.
//
//nolint:gochecknoglobals
var healOrder = [...][2]int{{2, 2}, {1, 1}, {0, 0}}

// Heal repairs a singular matrix by incrementing diagonal entries modulo mod: first the
// bottom-right entry, then the center, then the top-left. Each phase makes mod+1 attempts, a full
// residue cycle, so a failed phase leaves its entry one step past where it started. The result is
// deterministic. m is not modified. Heal reports false when every phase is exhausted.
func Heal(m Matrix, mod int) (Matrix, bool) {
	for _, cell := range healOrder {
		row, col := cell[0], cell[1]

		for range mod + 1 {
			if m.Invertible(mod) {
				return m, true
			}

			m[row][col] = Mod(m[row][col]+1, mod)
		}
	}

	return Matrix{}, false
}

// newKey completes a Key from an invertible matrix.
func newKey(m Matrix, a *Alphabet, input string, status Status) (*Key, error) {
	mod := a.Modulus()

	inv, ok := m.Inverse(mod)
	if !ok {
		return nil, fmt.Errorf("%w: determinant %d shares a factor with %d", ErrNonInvertibleKey, m.Determinant(mod), mod)
	}

	return &Key{
		Matrix:      m,
		Inverse:     inv,
		Determinant: m.Determinant(mod),
		Input:       input,
		Used:        m.Symbols(a),
		Status:      status,
	}, nil
}
