package hill

// EncryptResult is the outcome of one encryption.
type EncryptResult struct {
	// Ciphertext includes the trailing twist marker or tag.
	Ciphertext string

	// Key is the key matrix actually used, after any healing.
	Key Matrix

	// UsedKey reproduces Key. Decryption needs this string, not the key originally supplied.
	UsedKey string

	// Status is StatusAutoFixed when the supplied key had to be healed.
	Status Status

	// Twist is the operation selected from the plaintext parity.
	Twist Twist

	// Determinant is the twist operand.
	Determinant int

	// Log describes the twist for humans, e.g. "Add (+5)".
	Log string
}

// DecryptResult is the outcome of one decryption.
type DecryptResult struct {
	// Plaintext has trailing padding symbols removed.
	Plaintext string

	// Key is the key matrix used.
	Key Matrix

	// Twist is the operation that was undone. With SchemeTag it is recomputed from the
	// recovered plaintext.
	Twist Twist
}
