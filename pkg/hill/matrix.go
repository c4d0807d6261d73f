package hill

import (
	"fmt"
	"strings"
)

// Size is the dimension of the key matrix and the length of a block.
const Size = 3

// Matrix is a 3x3 integer matrix in row-major order.
// It is a value type: assignment copies it.
type Matrix [Size][Size]int

// Identity returns the 3x3 identity matrix.
func Identity() Matrix {
	return Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Mod returns x reduced into [0, m).
func Mod(x, m int) int {
	return ((x % m) + m) % m
}

// gcd returns the greatest common divisor of |a| and |b|.
func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}

	if b < 0 {
		b = -b
	}

	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// ModInverse returns the multiplicative inverse of a modulo m using the extended Euclidean
// algorithm. It reports false when gcd(a, m) != 1.
func ModInverse(a, m int) (int, bool) {
	oldR, r := Mod(a, m), m
	oldS, s := 1, 0

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}

	if oldR != 1 {
		return 0, false
	}

	return Mod(oldS, m), true
}

// minor returns the determinant of the 2x2 matrix left after removing row and col.
func (m Matrix) minor(row, col int) int {
	var cells [4]int

	k := 0

	for r := range Size {
		if r == row {
			continue
		}

		for c := range Size {
			if c == col {
				continue
			}

			cells[k] = m[r][c]
			k++
		}
	}

	return cells[0]*cells[3] - cells[1]*cells[2]
}

// cofactor returns the signed minor at (row, col).
func (m Matrix) cofactor(row, col int) int {
	if (row+col)%2 == 1 {
		return -m.minor(row, col)
	}

	return m.minor(row, col)
}

// determinant returns the unreduced determinant, expanded along the first row:
// a(ei-fh) - b(di-fg) + c(dh-eg).
func (m Matrix) determinant() int {
	det := 0

	for c := range Size {
		det += m[0][c] * m.cofactor(0, c)
	}

	return det
}

// Determinant returns the determinant reduced into [0, mod).
func (m Matrix) Determinant(mod int) int {
	return Mod(m.determinant(), mod)
}

// Invertible reports whether the determinant is coprime to mod.
func (m Matrix) Invertible(mod int) bool {
	return gcd(m.Determinant(mod), mod) == 1
}

// Adjugate returns the transpose of the cofactor matrix, without reduction.
func (m Matrix) Adjugate() Matrix {
	var adj Matrix

	for r := range Size {
		for c := range Size {
			adj[c][r] = m.cofactor(r, c)
		}
	}

	return adj
}

// Inverse returns the inverse of m modulo mod, or false if the determinant is not invertible.
func (m Matrix) Inverse(mod int) (Matrix, bool) {
	invDet, ok := ModInverse(m.Determinant(mod), mod)
	if !ok {
		return Matrix{}, false
	}

	adj := m.Adjugate()

	var inv Matrix

	for r := range Size {
		for c := range Size {
			inv[r][c] = Mod(adj[r][c]*invDet, mod)
		}
	}

	return inv, true
}

// Reduce returns m with every entry reduced into [0, mod).
func (m Matrix) Reduce(mod int) Matrix {
	for r := range Size {
		for c := range Size {
			m[r][c] = Mod(m[r][c], mod)
		}
	}

	return m
}

// Mul returns the product m*o modulo mod.
func (m Matrix) Mul(o Matrix, mod int) Matrix {
	var out Matrix

	for r := range Size {
		for c := range Size {
			sum := 0
			for k := range Size {
				sum += m[r][k] * o[k][c]
			}

			out[r][c] = Mod(sum, mod)
		}
	}

	return out
}

// MulVec returns the matrix-vector product m*v modulo mod.
func (m Matrix) MulVec(v [Size]int, mod int) [Size]int {
	var out [Size]int

	for r := range Size {
		sum := 0
		for c := range Size {
			sum += m[r][c] * v[c]
		}

		out[r] = Mod(sum, mod)
	}

	return out
}

// Rows returns the matrix as nested slices, for serialization.
func (m Matrix) Rows() [][]int {
	rows := make([][]int, Size)

	for r := range Size {
		rows[r] = append([]int(nil), m[r][:]...)
	}

	return rows
}

// Symbols encodes the matrix row-major as a key string over a.
func (m Matrix) Symbols(a *Alphabet) string {
	residues := make([]int, 0, Size*Size)

	for r := range Size {
		residues = append(residues, m[r][:]...)
	}

	return a.Encode(residues)
}

// String renders the matrix as "[[a b c] [d e f] [g h i]]".
func (m Matrix) String() string {
	rows := make([]string, Size)

	for r := range Size {
		rows[r] = fmt.Sprint(m[r])
	}

	return "[" + strings.Join(rows, " ") + "]"
}
