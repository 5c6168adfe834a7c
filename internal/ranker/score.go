package ranker

import (
	"math"

	apperrors "github.com/aacvocab/termrank/pkg/errors"
)

// cosineSimilarity computes the cosine similarity between two vectors.
// Zero-norm input yields 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// scorePool assigns each candidate its relevance score: cosine similarity
// to the context embedding mapped from [-1,1] onto [0,1]. A zero-norm
// embedding scores 0 outright. Scores are final; the MMR loop never
// recomputes them.
//
// Every candidate vector must match the context dimension; the first
// mismatch aborts scoring, since mixed dimensionality means the embedding
// collaborator broke its contract.
func scorePool(pool []candidate, ctxVec []float32) error {
	want := len(ctxVec)
	for i := range pool {
		if len(pool[i].embedding) != want {
			return &apperrors.DimensionMismatchError{
				Want:  want,
				Got:   len(pool[i].embedding),
				Index: i,
			}
		}
		if zeroVector(pool[i].embedding) || zeroVector(ctxVec) {
			pool[i].score = 0
			continue
		}
		sim := cosineSimilarity(pool[i].embedding, ctxVec)
		pool[i].score = (sim + 1) / 2
	}
	return nil
}

func zeroVector(v []float32) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
