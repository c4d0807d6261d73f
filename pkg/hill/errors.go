package hill

import "errors"

var (
	// ErrInvalidKey is returned when a strict key has fewer than 9 alphabet symbols.
	ErrInvalidKey = errors.New("invalid key")
	// ErrEmptyInput is returned when the plaintext or ciphertext is empty after cleaning.
	ErrEmptyInput = errors.New("empty input")
	// ErrNonInvertibleKey is returned when the key matrix has no inverse modulo the alphabet size
	// and could not be healed.
	ErrNonInvertibleKey = errors.New("key matrix is not invertible")
	// ErrMalformedCiphertext is returned when a ciphertext cannot be split into marker and blocks.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
	// ErrUnknownTwistFlag is returned when the trailing marker does not name a twist.
	ErrUnknownTwistFlag = errors.New("unknown twist flag")
	// ErrNonInvertibleDeterminant is returned when a multiply twist cannot be undone.
	ErrNonInvertibleDeterminant = errors.New("determinant is not invertible")
	// ErrInvalidOptions is returned by New for inconsistent engine options.
	ErrInvalidOptions = errors.New("invalid options")
	// ErrInvalidAlphabet is returned for unknown alphabet names or malformed symbol sets.
	ErrInvalidAlphabet = errors.New("invalid alphabet")
)
