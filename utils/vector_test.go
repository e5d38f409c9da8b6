package utils

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	eps := 1e-9

	if got := CosineSimilarity([]float64{1, 2, 3}, []float64{1, 2, 3}); math.Abs(got-1) > eps {
		t.Fatalf("identical vectors: want 1, got %v", got)
	}
	if got := CosineSimilarity([]float64{1, 0}, []float64{0, 1}); math.Abs(got) > eps {
		t.Fatalf("orthogonal vectors: want 0, got %v", got)
	}
	if got := CosineSimilarity([]float64{0, 0}, []float64{1, 1}); got != 0 {
		t.Fatalf("zero vector: want 0, got %v", got)
	}
	if got := CosineSimilarity([]float64{1, 2}, []float64{1, 2, 3}); got != 0 {
		t.Fatalf("length mismatch: want 0, got %v", got)
	}
	// Scaled vectors point the same way.
	if got := CosineSimilarity([]float64{2, 4}, []float64{1, 2}); math.Abs(got-1) > eps {
		t.Fatalf("scaled vectors: want 1, got %v", got)
	}
}

func TestRound3(t *testing.T) {
	cases := map[float64]float64{
		0.12345:  0.123,
		0.1239:   0.124,
		1.0:      1.0,
		-0.12345: -0.123,
	}
	for in, want := range cases {
		if got := Round3(in); got != want {
			t.Fatalf("Round3(%v): want %v got %v", in, want, got)
		}
	}
}
