package hill_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/idelchi/hillc/pkg/hill"
)

func TestModInverse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, m, want int
		ok         bool
	}{
		{5, 36, 29, true},
		{7, 26, 15, true},
		{9, 26, 3, true},
		{-1, 26, 25, true},
		{1, 36, 1, true},
		{2, 36, 0, false},
		{33, 36, 0, false},
		{13, 26, 0, false},
		{0, 26, 0, false},
	}

	for _, tc := range tests {
		got, ok := hill.ModInverse(tc.a, tc.m)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ModInverse(%d, %d) = (%d, %v), want (%d, %v)", tc.a, tc.m, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMod(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ x, m, want int }{{861, 36, 33}, {-5, 26, 21}, {-36, 36, 0}, {0, 26, 0}} {
		if got := hill.Mod(tc.x, tc.m); got != tc.want {
			t.Errorf("Mod(%d, %d) = %d, want %d", tc.x, tc.m, got, tc.want)
		}
	}
}

func TestDeterminant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		m    hill.Matrix
		mod  int
		want int
	}{
		{hill.Matrix{{16, 34, 11}, {23, 26, 20}, {30, 27, 25}}, 36, 33},
		{hill.Matrix{{16, 34, 11}, {23, 27, 20}, {30, 27, 26}}, 36, 5},
		{hill.Matrix{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}, 26, 25},
		{hill.Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 26, 0},
		{hill.Identity(), 26, 1},
	}

	for _, tc := range tests {
		if got := tc.m.Determinant(tc.mod); got != tc.want {
			t.Errorf("%v.Determinant(%d) = %d, want %d", tc.m, tc.mod, got, tc.want)
		}
	}
}

func TestInverse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    hill.Matrix
		mod  int
		want hill.Matrix
	}{
		{
			name: "healed alphanumeric key",
			m:    hill.Matrix{{16, 34, 11}, {23, 27, 20}, {30, 27, 26}},
			mod:  36,
			want: hill.Matrix{{18, 5, 19}, {22, 10, 1}, {27, 24, 2}},
		},
		{
			name: "letters key",
			m:    hill.Matrix{{7, 8, 11}, {11, 2, 8}, {15, 7, 17}},
			mod:  26,
			want: hill.Matrix{{12, 5, 22}, {7, 18, 13}, {11, 5, 12}},
		},
		{
			name: "identity",
			m:    hill.Identity(),
			mod:  36,
			want: hill.Identity(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tc.m.Inverse(tc.mod)
			if !ok {
				t.Fatalf("Inverse(%d) reported singular", tc.mod)
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Inverse mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(hill.Identity(), tc.m.Mul(got, tc.mod)); diff != "" {
				t.Errorf("m * m^-1 is not the identity (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInverseSingular(t *testing.T) {
	t.Parallel()

	m := hill.Matrix{{16, 34, 11}, {23, 26, 20}, {30, 27, 25}}

	if _, ok := m.Inverse(36); ok {
		t.Error("Inverse of a matrix with determinant 33 mod 36 should fail")
	}

	if m.Invertible(36) {
		t.Error("Invertible() = true, want false")
	}
}

func TestAdjugateIsUnreduced(t *testing.T) {
	t.Parallel()

	m := hill.Matrix{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}}
	want := hill.Matrix{{-24, 18, 5}, {20, -15, -4}, {-5, 4, 1}}

	if diff := cmp.Diff(want, m.Adjugate()); diff != "" {
		t.Errorf("Adjugate mismatch (-want +got):\n%s", diff)
	}
}

func TestMatrixSymbols(t *testing.T) {
	t.Parallel()

	m := hill.Matrix{{16, 34, 11}, {23, 27, 20}, {30, 27, 26}}

	if got := m.Symbols(hill.Alphanumeric36); got != "GYBNRKURQ" {
		t.Errorf("Symbols = %q, want GYBNRKURQ", got)
	}

	if got := m.String(); got != "[[16 34 11] [23 27 20] [30 27 26]]" {
		t.Errorf("String = %q", got)
	}
}
