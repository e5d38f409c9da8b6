package utils

import "math"

// CosineSimilarity returns the cosine of the angle between two equal-length
// vectors. Mismatched lengths or a zero-norm vector yield 0 rather than an
// error; scoring treats degenerate input as "no signal".
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func Round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
