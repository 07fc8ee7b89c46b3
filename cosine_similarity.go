package embeddings

import (
	"fmt"
	"math"
)

// CosineSimilarity compares two vectors of equal dimension, returning a value
// in [-1, 1]. Zero-length and zero-magnitude vectors are errors.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("vectors must be non-empty")
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector length mismatch: %d != %d", len(a), len(b))
	}

	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0, fmt.Errorf("zero vector")
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb)), nil
}
