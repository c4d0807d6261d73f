package hill_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"

	"github.com/idelchi/hillc/pkg/hill"
)

// Vector is a single encryption case from a YAML golden file.
type Vector struct {
	Description string  `yaml:"description"`
	Key         string  `yaml:"key"`
	Plaintext   string  `yaml:"plaintext"`
	Ciphertext  string  `yaml:"ciphertext"`
	UsedKey     string  `yaml:"used_key"`
	Status      string  `yaml:"status"`
	Twist       string  `yaml:"twist"`
	Determinant int     `yaml:"determinant"`
	Matrix      [][]int `yaml:"matrix"`
	Decrypted   string  `yaml:"decrypted"`
}

// VectorGroup shares an alphabet and scheme across its cases.
type VectorGroup struct {
	Name     string   `yaml:"name"`
	Alphabet string   `yaml:"alphabet"`
	Scheme   string   `yaml:"scheme"`
	Cases    []Vector `yaml:"cases"`
}

func loadVectors(t *testing.T) []VectorGroup {
	t.Helper()

	files, err := filepath.Glob("testdata/*.yml")
	if err != nil {
		t.Fatalf("globbing testdata: %v", err)
	}

	if len(files) == 0 {
		t.Fatal("no testdata/*.yml files found")
	}

	var all []VectorGroup

	for _, f := range files {
		data, err := os.ReadFile(f) //nolint:gosec // test helper reads known testdata files
		if err != nil {
			t.Fatalf("reading %s: %v", f, err)
		}

		var groups []VectorGroup
		if err := yaml.Unmarshal(data, &groups); err != nil {
			t.Fatalf("parsing %s: %v", f, err)
		}

		all = append(all, groups...)
	}

	return all
}

func engineFor(t *testing.T, alphabet, scheme string) *hill.Engine {
	t.Helper()

	a, err := hill.ParseAlphabet(alphabet)
	if err != nil {
		t.Fatal(err)
	}

	opts := hill.DefaultOptions(a)

	opts.Scheme, err = hill.ParseScheme(scheme)
	if err != nil {
		t.Fatal(err)
	}

	engine, err := hill.New(opts)
	if err != nil {
		t.Fatalf("New(%+v) error: %v", opts, err)
	}

	return engine
}

// TestVectors runs every golden case through Encrypt and Decrypt.
func TestVectors(t *testing.T) {
	t.Parallel()

	for _, group := range loadVectors(t) {
		engine := engineFor(t, group.Alphabet, group.Scheme)

		t.Run(group.Name, func(t *testing.T) {
			t.Parallel()

			for _, tc := range group.Cases {
				t.Run(tc.Description, func(t *testing.T) {
					t.Parallel()

					res, err := engine.Encrypt(tc.Plaintext, tc.Key)
					if err != nil {
						t.Fatalf("Encrypt(%q, %q) error: %v", tc.Plaintext, tc.Key, err)
					}

					if res.Ciphertext != tc.Ciphertext {
						t.Errorf("Encrypt(%q, %q) = %q, want %q", tc.Plaintext, tc.Key, res.Ciphertext, tc.Ciphertext)
					}

					if res.UsedKey != tc.UsedKey {
						t.Errorf("UsedKey = %q, want %q", res.UsedKey, tc.UsedKey)
					}

					if res.Status.String() != tc.Status {
						t.Errorf("Status = %v, want %v", res.Status, tc.Status)
					}

					if res.Twist.String() != tc.Twist {
						t.Errorf("Twist = %v, want %v", res.Twist, tc.Twist)
					}

					if res.Determinant != tc.Determinant {
						t.Errorf("Determinant = %d, want %d", res.Determinant, tc.Determinant)
					}

					if diff := cmp.Diff(tc.Matrix, res.Key.Rows()); diff != "" {
						t.Errorf("key matrix mismatch (-want +got):\n%s", diff)
					}

					dec, err := engine.Decrypt(res.Ciphertext, res.UsedKey)
					if err != nil {
						t.Fatalf("Decrypt(%q, %q) error: %v", res.Ciphertext, res.UsedKey, err)
					}

					if dec.Plaintext != tc.Decrypted {
						t.Errorf("Decrypt(%q, %q) = %q, want %q", res.Ciphertext, res.UsedKey, dec.Plaintext, tc.Decrypted)
					}

					if dec.Twist.String() != tc.Twist {
						t.Errorf("decrypted Twist = %v, want %v", dec.Twist, tc.Twist)
					}
				})
			}
		})
	}
}
