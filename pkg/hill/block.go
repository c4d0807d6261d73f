package hill

import "fmt"

// EncryptBlocks multiplies each consecutive triple of residues by key, modulo mod.
// The input length must be a multiple of the block size.
func EncryptBlocks(residues []int, key Matrix, mod int) ([]int, error) {
	return applyBlocks(residues, key, mod)
}

// DecryptBlocks is EncryptBlocks with the inverse key matrix.
func DecryptBlocks(residues []int, inverse Matrix, mod int) ([]int, error) {
	return applyBlocks(residues, inverse, mod)
}

func applyBlocks(residues []int, m Matrix, mod int) ([]int, error) {
	if len(residues)%Size != 0 {
		return nil, fmt.Errorf("%w: %d residues is not a multiple of %d", ErrMalformedCiphertext, len(residues), Size)
	}

	out := make([]int, 0, len(residues))

	for i := 0; i < len(residues); i += Size {
		block := m.MulVec([Size]int(residues[i:i+Size]), mod)
		out = append(out, block[:]...)
	}

	return out, nil
}

// pad right-pads symbols with p to a multiple of the block size.
func pad(symbols []rune, p rune) []rune {
	for len(symbols)%Size != 0 {
		symbols = append(symbols, p)
	}

	return symbols
}
