package encryption

import (
	"time"

	"go.uber.org/zap"

	"github.com/idelchi/hillc/internal/metrics"
	"github.com/idelchi/hillc/pkg/hill"
)

// Operation names used in logs and metrics.
const (
	OperationEncrypt = "encrypt"
	OperationDecrypt = "decrypt"
)

// Cipher applies one prepared key in one direction and records every call.
// It is safe for concurrent use.
type Cipher struct {
	// Engine holds the alphabet, padding and scheme.
	Engine *hill.Engine

	// Key is the prepared key. For encryption it may be healed.
	Key *hill.Key

	// Decrypting selects the direction.
	Decrypting bool

	// Metrics receives operation counters. Nil disables recording.
	Metrics *metrics.Registry

	// Logger receives debug output per call. Nil discards it.
	Logger *zap.Logger
}

func (c *Cipher) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}

	return c.Logger
}

// Operation returns "encrypt" or "decrypt".
func (c *Cipher) Operation() string {
	if c.Decrypting {
		return OperationDecrypt
	}

	return OperationEncrypt
}

// Encrypt encrypts plaintext with the prepared key.
func (c *Cipher) Encrypt(plaintext string) (*hill.EncryptResult, error) {
	start := time.Now()

	result, err := c.Engine.EncryptWithKey(plaintext, c.Key)

	symbols := 0
	if err == nil {
		symbols = len(result.Ciphertext)

		c.logger().Debug("Encrypted",
			zap.Int("symbols", symbols),
			zap.Stringer("twist", result.Twist),
			zap.String("log", result.Log))

		if c.Metrics != nil {
			c.Metrics.RecordTwist(result.Twist.String())
		}
	}

	if c.Metrics != nil {
		c.Metrics.RecordOperation(OperationEncrypt, err, symbols, time.Since(start))
	}

	return result, err
}

// Decrypt decrypts ciphertext with the prepared key.
func (c *Cipher) Decrypt(ciphertext string) (*hill.DecryptResult, error) {
	start := time.Now()

	result, err := c.Engine.DecryptWithKey(ciphertext, c.Key)

	symbols := 0
	if err == nil {
		symbols = len(result.Plaintext)

		c.logger().Debug("Decrypted", zap.Int("symbols", symbols), zap.Stringer("twist", result.Twist))
	}

	if c.Metrics != nil {
		c.Metrics.RecordOperation(OperationDecrypt, err, symbols, time.Since(start))
	}

	return result, err
}

// Apply encrypts or decrypts text depending on the direction and returns the output text.
func (c *Cipher) Apply(text string) (string, error) {
	if c.Decrypting {
		result, err := c.Decrypt(text)
		if err != nil {
			return "", err
		}

		return result.Plaintext, nil
	}

	result, err := c.Encrypt(text)
	if err != nil {
		return "", err
	}

	return result.Ciphertext, nil
}
