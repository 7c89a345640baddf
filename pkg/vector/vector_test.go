//go:build !integration

package vector

import (
	"math"
	"testing"
)

func TestCosine(t *testing.T) {
	cases := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"partial", []float64{1, 0}, []float64{0.6, 0.8}, 0.6},
		{"zero left", []float64{0, 0}, []float64{1, 1}, 0},
		{"zero right", []float64{1, 1}, []float64{0, 0}, 0},
		{"length mismatch", []float64{1}, []float64{1, 0}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Cosine(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Cosine(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	v := []float64{3, 4}
	Normalize(v)

	if math.Abs(v[0]-0.6) > 1e-9 || math.Abs(v[1]-0.8) > 1e-9 {
		t.Errorf("normalized = %v, want [0.6 0.8]", v)
	}
}

func TestNormalize_ZeroVectorUnchanged(t *testing.T) {
	v := []float64{0, 0, 0}
	Normalize(v)

	for i, x := range v {
		if x != 0 {
			t.Errorf("component %d = %v, want 0", i, x)
		}
	}
}

func TestAddScaled(t *testing.T) {
	dst := []float64{1, 1}
	AddScaled(dst, []float64{2, 4}, 0.5)

	if dst[0] != 2 || dst[1] != 3 {
		t.Errorf("dst = %v, want [2 3]", dst)
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero([]float64{0, 0}) {
		t.Error("expected zero vector")
	}
	if IsZero([]float64{0, 1e-12}) {
		t.Error("expected non-zero vector")
	}
}
