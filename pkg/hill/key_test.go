package hill_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/idelchi/hillc/pkg/hill"
)

func TestBuildMatrix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		alphabet *hill.Alphabet
		policy   hill.KeyPolicy
		want     hill.Matrix
		input    string
	}{
		{
			name:     "alphanumeric key",
			key:      "GYBNQKURP",
			alphabet: hill.Alphanumeric36,
			policy:   hill.Lenient,
			want:     hill.Matrix{{16, 34, 11}, {23, 26, 20}, {30, 27, 25}},
			input:    "GYBNQKURP",
		},
		{
			name:     "lowercase with noise, extra symbols ignored",
			key:      "gy-bn qk/ur p!xyz",
			alphabet: hill.Alphanumeric36,
			policy:   hill.Lenient,
			want:     hill.Matrix{{16, 34, 11}, {23, 26, 20}, {30, 27, 25}},
			input:    "GYBNQKURP",
		},
		{
			name:     "short lenient key padded with zero",
			key:      "K3Y",
			alphabet: hill.Alphanumeric36,
			policy:   hill.Lenient,
			want:     hill.Matrix{{20, 3, 34}, {0, 0, 0}, {0, 0, 0}},
			input:    "K3Y000000",
		},
		{
			name:     "letters key drops digits",
			key:      "GYB1NQK2URP",
			alphabet: hill.Letters26,
			policy:   hill.Strict,
			want:     hill.Matrix{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}},
			input:    "GYBNQKURP",
		},
		{
			name:     "short lenient letters key padded with A",
			key:      "HILL",
			alphabet: hill.Letters26,
			policy:   hill.Lenient,
			want:     hill.Matrix{{7, 8, 11}, {11, 0, 0}, {0, 0, 0}},
			input:    "HILLAAAAA",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, input, err := hill.BuildMatrix(tc.key, tc.alphabet, tc.policy)
			if err != nil {
				t.Fatalf("BuildMatrix(%q) error: %v", tc.key, err)
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("BuildMatrix(%q) mismatch (-want +got):\n%s", tc.key, diff)
			}

			if input != tc.input {
				t.Errorf("BuildMatrix(%q) input = %q, want %q", tc.key, input, tc.input)
			}
		})
	}
}

func TestBuildMatrixStrictRejectsShortKeys(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"", "HILL", "12345678 9", "ABCDEFGH"} {
		if _, _, err := hill.BuildMatrix(key, hill.Letters26, hill.Strict); !errors.Is(err, hill.ErrInvalidKey) {
			t.Errorf("BuildMatrix(%q, strict) error = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestHeal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    hill.Matrix
		mod  int
		want hill.Matrix
	}{
		{
			name: "bottom-right entry",
			m:    hill.Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 2}},
			mod:  36,
			want: hill.Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 5}},
		},
		{
			name: "center entry after a full bottom-right cycle",
			m:    hill.Matrix{{16, 34, 11}, {23, 26, 20}, {30, 27, 25}},
			mod:  36,
			want: hill.Matrix{{16, 34, 11}, {23, 27, 20}, {30, 27, 26}},
		},
		{
			name: "top-left entry",
			m:    hill.Matrix{{28, 14, 12}, {27, 14, 29}, {20, 14, 34}},
			mod:  36,
			want: hill.Matrix{{31, 14, 12}, {27, 15, 29}, {20, 14, 35}},
		},
		{
			name: "zero matrix",
			m:    hill.Matrix{},
			mod:  36,
			want: hill.Identity(),
		},
		{
			name: "letters",
			m:    hill.Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			mod:  26,
			want: hill.Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			original := tc.m

			got, ok := hill.Heal(tc.m, tc.mod)
			if !ok {
				t.Fatalf("Heal(%v) exhausted", tc.m)
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Heal(%v) mismatch (-want +got):\n%s", tc.m, diff)
			}

			if !got.Invertible(tc.mod) {
				t.Errorf("Heal(%v) = %v with determinant %d, not invertible", tc.m, got, got.Determinant(tc.mod))
			}

			if tc.m != original {
				t.Errorf("Heal modified its argument: %v", tc.m)
			}

			again, _ := hill.Heal(tc.m, tc.mod)
			if again != got {
				t.Errorf("Heal is not deterministic: %v then %v", got, again)
			}
		})
	}
}

func TestHealLeavesInvertibleMatrix(t *testing.T) {
	t.Parallel()

	m := hill.Matrix{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}

	got, ok := hill.Heal(m, 26)
	if !ok || got != m {
		t.Errorf("Heal(%v) = (%v, %v), want the matrix unchanged", m, got, ok)
	}
}

func TestHealExhausted(t *testing.T) {
	t.Parallel()

	// Every diagonal perturbation keeps a factor of 2 or 3 in the determinant.
	m := hill.Matrix{{35, 0, 0}, {0, 0, 0}, {0, 0, 1}}

	if got, ok := hill.Heal(m, 36); ok {
		t.Errorf("Heal(%v) = %v, want exhaustion", m, got)
	}
}

func TestPrepareKey(t *testing.T) {
	t.Parallel()

	engine, err := hill.New(hill.DefaultOptions(hill.Alphanumeric36))
	if err != nil {
		t.Fatal(err)
	}

	key, err := engine.PrepareKey("100010002")
	if err != nil {
		t.Fatalf("PrepareKey error: %v", err)
	}

	if key.Status != hill.StatusAutoFixed {
		t.Errorf("Status = %v, want auto-fixed", key.Status)
	}

	if key.Input != "100010002" || key.Used != "100010005" {
		t.Errorf("Input/Used = %q/%q, want 100010002/100010005", key.Input, key.Used)
	}

	if key.Determinant != 5 {
		t.Errorf("Determinant = %d, want 5", key.Determinant)
	}

	if key.Matrix.Mul(key.Inverse, 36) != hill.Identity() {
		t.Errorf("Inverse %v does not invert %v", key.Inverse, key.Matrix)
	}

	if _, err := engine.PrepareKey("Z00000001"); !errors.Is(err, hill.ErrNonInvertibleKey) {
		t.Errorf("PrepareKey(Z00000001) error = %v, want ErrNonInvertibleKey", err)
	}

	if _, err := engine.LoadKey("100010002"); !errors.Is(err, hill.ErrNonInvertibleKey) {
		t.Errorf("LoadKey on a singular key error = %v, want ErrNonInvertibleKey", err)
	}
}

func TestPrepareKeyHealDisabled(t *testing.T) {
	t.Parallel()

	opts := hill.DefaultOptions(hill.Letters26)
	opts.DisableHeal = true

	engine, err := hill.New(opts)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := engine.PrepareKey("BCDEFGHIJ"); !errors.Is(err, hill.ErrNonInvertibleKey) {
		t.Errorf("PrepareKey error = %v, want ErrNonInvertibleKey", err)
	}

	key, err := engine.PrepareKey("HILLCIPHR")
	if err != nil || key.Status != hill.StatusNormal {
		t.Errorf("PrepareKey(HILLCIPHR) = (%+v, %v), want a normal key", key, err)
	}
}
