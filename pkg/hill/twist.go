package hill

import (
	"fmt"
)

// Twist is the scalar operation applied to the encrypted stream.
type Twist byte

const (
	// TwistAdd adds the determinant to every residue.
	TwistAdd Twist = iota + 1
	// TwistSubtract subtracts the determinant from every residue.
	TwistSubtract
	// TwistMultiply multiplies every residue by the determinant.
	TwistMultiply
)

// Twists lists every twist.
//
//nolint:gochecknoglobals
var Twists = []Twist{TwistAdd, TwistSubtract, TwistMultiply}

// Classify picks the twist from the last three residues of the padded plaintext:
// at most one even residue selects Add, exactly two Subtract, three Multiply.
// Shorter inputs are counted as they are.
func Classify(residues []int) Twist {
	tail := residues[max(0, len(residues)-Size):]

	even := 0

	for _, n := range tail {
		if n%2 == 0 {
			even++
		}
	}

	switch {
	case even <= 1:
		return TwistAdd
	case even == 2: //nolint:mnd
		return TwistSubtract
	default:
		return TwistMultiply
	}
}

// String returns the operation name.
func (t Twist) String() string {
	switch t {
	case TwistAdd:
		return "Add"
	case TwistSubtract:
		return "Subtract"
	case TwistMultiply:
		return "Multiply"
	default:
		return fmt.Sprintf("Twist(%d)", byte(t))
	}
}

// Describe renders the operation with its operand, e.g. "Add (+5)".
func (t Twist) Describe(det int) string {
	switch t {
	case TwistAdd:
		return fmt.Sprintf("Add (+%d)", det)
	case TwistSubtract:
		return fmt.Sprintf("Subtract (-%d)", det)
	case TwistMultiply:
		return fmt.Sprintf("Multiply (x%d)", det)
	default:
		return t.String()
	}
}

// Marker returns the symbol appended to the ciphertext for this twist.
// The markers belong to both built-in alphabets.
func (t Twist) Marker() rune {
	switch t {
	case TwistAdd:
		return 'A'
	case TwistSubtract:
		return 'S'
	case TwistMultiply:
		return 'M'
	default:
		return 0
	}
}

// ParseMarker decodes a trailing marker symbol.
func ParseMarker(r rune) (Twist, error) {
	for _, t := range Twists {
		if t.Marker() == r {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownTwistFlag, r)
}

// Tag returns the decorative 3-symbol tag built around s, the second symbol of the padded
// plaintext. It does not carry enough information to be reversed.
func (t Twist) Tag(s rune) string {
	switch t {
	case TwistAdd:
		return "R" + string(s) + "N"
	case TwistSubtract:
		return "QO" + string(s)
	default:
		return string(s) + "UT"
	}
}

// Apply returns the residues with the twist applied, each reduced modulo mod.
func (t Twist) Apply(residues []int, det, mod int) []int {
	out := make([]int, len(residues))

	for i, n := range residues {
		switch t {
		case TwistAdd:
			out[i] = Mod(n+det, mod)
		case TwistSubtract:
			out[i] = Mod(n-det, mod)
		case TwistMultiply:
			out[i] = Mod(n*det, mod)
		default:
			out[i] = Mod(n, mod)
		}
	}

	return out
}

// Undo reverses Apply. Multiply needs the inverse of det modulo mod.
func (t Twist) Undo(residues []int, det, mod int) ([]int, error) {
	switch t {
	case TwistAdd:
		return TwistSubtract.Apply(residues, det, mod), nil
	case TwistSubtract:
		return TwistAdd.Apply(residues, det, mod), nil
	case TwistMultiply:
		inv, ok := ModInverse(det, mod)
		if !ok {
			return nil, fmt.Errorf("%w: %d modulo %d", ErrNonInvertibleDeterminant, det, mod)
		}

		return TwistMultiply.Apply(residues, inv, mod), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTwistFlag, byte(t))
	}
}
