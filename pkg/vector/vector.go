package vector

import "math"

// Dot returns the dot product of a and b. Mismatched lengths score 0 rather
// than panicking; the catalog invariant keeps lengths uniform.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Norm returns the Euclidean norm of v.
func Norm(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// IsZero reports whether v has no non-zero component.
func IsZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Normalize scales v in place to unit norm. The zero vector is left unchanged.
func Normalize(v []float64) {
	n := Norm(v)
	if n == 0 {
		return
	}
	for i := range v {
		v[i] /= n
	}
}

// AddScaled accumulates dst += w * src.
func AddScaled(dst, src []float64, w float64) {
	for i := range dst {
		dst[i] += w * src[i]
	}
}

// Cosine returns the cosine similarity of a and b in [-1, 1].
// When either vector has zero norm the similarity is defined as 0.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}
