package hill

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// maxGenerateDraws bounds GenerateKey. Roughly a fifth of random 3x3 matrices are invertible
// modulo 36 and a third modulo 26, so a working random source never reaches the bound.
const maxGenerateDraws = 1000

// GenerateKey draws uniformly random 9-symbol keys from rnd until one yields an invertible matrix.
// Pass crypto/rand.Reader for rnd in normal use.
func GenerateKey(rnd io.Reader, a *Alphabet) (string, error) {
	mod := a.Modulus()
	limit := big.NewInt(int64(mod))

	for range maxGenerateDraws {
		var m Matrix

		for i := range keyLength {
			n, err := rand.Int(rnd, limit)
			if err != nil {
				return "", fmt.Errorf("drawing key symbol: %w", err)
			}

			m[i/Size][i%Size] = int(n.Int64())
		}

		if m.Invertible(mod) {
			return m.Symbols(a), nil
		}
	}

	return "", fmt.Errorf("%w: no invertible key after %d draws", ErrNonInvertibleKey, maxGenerateDraws)
}
