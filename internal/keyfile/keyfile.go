// Package keyfile reads and writes key profiles.
//
// A key profile is a JSONC document:
//
//	{
//	  // the key to decrypt with
//	  "key": "GYBNRKURQ",
//	  "alphabet": "alnum",
//	  "padding": "0",
//	  "scheme": "marker",
//	  "status": "auto-fixed",
//	  "original": "GYBNQKURP",
//	}
//
// A file holding only the bare key string is accepted too.
package keyfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/idelchi/hillc/internal/fileutil"
	"github.com/idelchi/hillc/pkg/hill"
)

// ErrNoKey is returned for a profile without a key.
var ErrNoKey = errors.New("key file holds no key")

const header = "// hillc key profile. Decrypt with \"key\"; \"original\" is the key before auto-heal.\n"

// Profile is a stored key with the options it was used with.
type Profile struct {
	Key      string `json:"key"`
	Alphabet string `json:"alphabet,omitempty"`
	Padding  string `json:"padding,omitempty"`
	Scheme   string `json:"scheme,omitempty"`
	Status   string `json:"status,omitempty"`
	Original string `json:"original,omitempty"`
}

// FromKey builds the profile that reproduces an encryption: the used key, not the supplied one.
func FromKey(k *hill.Key, opts hill.Options) Profile {
	p := Profile{
		Key:      k.Used,
		Alphabet: opts.Alphabet.Name(),
		Padding:  string(opts.Padding),
		Scheme:   opts.Scheme.String(),
		Status:   k.Status.String(),
	}

	if k.Status == hill.StatusAutoFixed {
		p.Original = k.Input
	}

	return p
}

// Load reads a key profile or a bare key file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading key file %q: %w", path, err)
	}

	clean := bytes.TrimSpace(jsonc.ToJSONInPlace(data))

	var profile Profile

	if bytes.HasPrefix(clean, []byte("{")) {
		if err := json.Unmarshal(clean, &profile); err != nil {
			return nil, fmt.Errorf("parsing key file %q: %w", path, err)
		}
	} else {
		profile.Key = string(clean)
	}

	if profile.Key == "" {
		return nil, fmt.Errorf("%w: %q", ErrNoKey, path)
	}

	return &profile, nil
}

// Save writes the profile to path atomically, readable by the owner only.
func Save(path string, profile Profile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding key profile: %w", err)
	}

	out := append([]byte(header), data...)
	out = append(out, '\n')

	const ownerReadWrite = 0o600

	if err := fileutil.WriteAtomic(path, out, ownerReadWrite); err != nil {
		return fmt.Errorf("saving key profile: %w", err)
	}

	return nil
}
