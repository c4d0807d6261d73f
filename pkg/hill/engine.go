package hill

import (
	"fmt"
	"strings"
	"unicode"
)

// Engine encrypts and decrypts with fixed options. It holds no mutable state.
type Engine struct {
	opts Options
}

// New validates opts and returns an Engine. The padding symbol is uppercased.
func New(opts Options) (*Engine, error) {
	opts.Padding = unicode.ToUpper(opts.Padding)

	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Engine{opts: opts}, nil
}

// Options returns the engine's options.
func (e *Engine) Options() Options { return e.opts }

// Alphabet returns the engine's alphabet.
func (e *Engine) Alphabet() *Alphabet { return e.opts.Alphabet }

// PrepareKey builds the key matrix for encryption, healing it when it is singular and healing
// is enabled.
func (e *Engine) PrepareKey(key string) (*Key, error) {
	alphabet := e.opts.Alphabet
	mod := alphabet.Modulus()

	m, input, err := BuildMatrix(key, alphabet, e.opts.Policy)
	if err != nil {
		return nil, err
	}

	if m.Invertible(mod) {
		return newKey(m, alphabet, input, StatusNormal)
	}

	if e.opts.DisableHeal {
		return nil, fmt.Errorf("%w: determinant %d modulo %d and healing is disabled",
			ErrNonInvertibleKey, m.Determinant(mod), mod)
	}

	healed, ok := Heal(m, mod)
	if !ok {
		return nil, fmt.Errorf("%w: auto-heal exhausted for key %q", ErrNonInvertibleKey, input)
	}

	return newKey(healed, alphabet, input, StatusAutoFixed)
}

// LoadKey builds the key matrix for decryption. Keys are never healed here: a ciphertext can only
// be decrypted with the exact key that produced it.
func (e *Engine) LoadKey(key string) (*Key, error) {
	m, input, err := BuildMatrix(key, e.opts.Alphabet, e.opts.Policy)
	if err != nil {
		return nil, err
	}

	k, err := newKey(m, e.opts.Alphabet, input, StatusNormal)
	if err != nil {
		return nil, fmt.Errorf("%w (decrypt with the healed key reported at encryption)", err)
	}

	return k, nil
}

// Encrypt encrypts plaintext under key.
func (e *Engine) Encrypt(plaintext, key string) (*EncryptResult, error) {
	if len(e.opts.Alphabet.Clean(plaintext)) == 0 {
		return nil, fmt.Errorf("%w: no %s symbols in plaintext", ErrEmptyInput, e.opts.Alphabet.Name())
	}

	k, err := e.PrepareKey(key)
	if err != nil {
		return nil, err
	}

	return e.EncryptWithKey(plaintext, k)
}

// EncryptWithKey encrypts plaintext under a prepared key.
func (e *Engine) EncryptWithKey(plaintext string, k *Key) (*EncryptResult, error) {
	alphabet := e.opts.Alphabet
	mod := alphabet.Modulus()

	symbols := alphabet.Clean(plaintext)
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: no %s symbols in plaintext", ErrEmptyInput, alphabet.Name())
	}

	symbols = pad(symbols, e.opts.Padding)
	residues := alphabet.Residues(symbols)

	encrypted, err := EncryptBlocks(residues, k.Matrix, mod)
	if err != nil {
		return nil, err
	}

	twist := Classify(residues)

	result := &EncryptResult{
		Key:         k.Matrix,
		UsedKey:     k.Used,
		Status:      k.Status,
		Twist:       twist,
		Determinant: k.Determinant,
	}

	switch e.opts.Scheme {
	case SchemeTag:
		tag := twist.Tag(symbols[1])
		result.Ciphertext = alphabet.Encode(encrypted) + tag
		result.Log = fmt.Sprintf("Tag %s (%s, informational)", tag, twist)
	default:
		result.Ciphertext = alphabet.Encode(twist.Apply(encrypted, k.Determinant, mod)) + string(twist.Marker())
		result.Log = twist.Describe(k.Determinant)
	}

	return result, nil
}

// Decrypt decrypts ciphertext under key.
func (e *Engine) Decrypt(ciphertext, key string) (*DecryptResult, error) {
	if _, _, err := e.split(ciphertext); err != nil {
		return nil, err
	}

	k, err := e.LoadKey(key)
	if err != nil {
		return nil, err
	}

	return e.DecryptWithKey(ciphertext, k)
}

// DecryptWithKey decrypts ciphertext under a prepared key.
func (e *Engine) DecryptWithKey(ciphertext string, k *Key) (*DecryptResult, error) {
	alphabet := e.opts.Alphabet
	mod := alphabet.Modulus()

	core, twist, err := e.split(ciphertext)
	if err != nil {
		return nil, err
	}

	residues := alphabet.Residues(core)

	if e.opts.Scheme == SchemeMarker {
		residues, err = twist.Undo(residues, k.Determinant, mod)
		if err != nil {
			return nil, err
		}
	}

	decrypted, err := DecryptBlocks(residues, k.Inverse, mod)
	if err != nil {
		return nil, err
	}

	if e.opts.Scheme == SchemeTag {
		twist = Classify(decrypted)
	}

	return &DecryptResult{
		Plaintext: strings.TrimRight(alphabet.Encode(decrypted), string(e.opts.Padding)),
		Key:       k.Matrix,
		Twist:     twist,
	}, nil
}

// split cleans a ciphertext and separates the block symbols from the trailing marker or tag.
// The twist is zero for SchemeTag.
func (e *Engine) split(ciphertext string) ([]rune, Twist, error) {
	symbols := []rune(strings.ToUpper(strings.Join(strings.FieldsFunc(ciphertext, unicode.IsSpace), "")))
	if len(symbols) == 0 {
		return nil, 0, fmt.Errorf("%w: ciphertext", ErrEmptyInput)
	}

	var (
		core  []rune
		twist Twist
	)

	switch e.opts.Scheme {
	case SchemeTag:
		const tagLength = 3

		if len(symbols) < Size+tagLength {
			return nil, 0, fmt.Errorf("%w: %d symbols is too short for a block and a tag", ErrMalformedCiphertext, len(symbols))
		}

		core = symbols[:len(symbols)-tagLength]
	default:
		if len(symbols) < 2 { //nolint:mnd
			return nil, 0, fmt.Errorf("%w: no blocks before the twist marker", ErrMalformedCiphertext)
		}

		var err error

		twist, err = ParseMarker(symbols[len(symbols)-1])
		if err != nil {
			return nil, 0, err
		}

		core = symbols[:len(symbols)-1]
	}

	for i, r := range core {
		if !e.opts.Alphabet.Contains(r) {
			return nil, 0, fmt.Errorf("%w: symbol %q at position %d is not in alphabet %q",
				ErrMalformedCiphertext, r, i, e.opts.Alphabet.Name())
		}
	}

	if len(core)%Size != 0 {
		return nil, 0, fmt.Errorf("%w: %d block symbols is not a multiple of %d", ErrMalformedCiphertext, len(core), Size)
	}

	return core, twist, nil
}
