// Package hill implements a 3x3 Hill cipher over a configurable alphabet.
//
// A key string is reduced to a 3x3 matrix of residues. Singular matrices are repaired by a
// deterministic auto-heal that walks the diagonal (bottom-right, center, top-left) until the
// determinant is coprime to the alphabet size. After block encryption a twist (add, subtract or
// multiply by the determinant) is chosen from the parity of the last plaintext residues and
// recorded as a trailing marker symbol, so decryption can undo it with the key alone.
//
// The cipher is a teaching construction and provides no security.
// An Engine holds only immutable options and is safe for concurrent use.
package hill
