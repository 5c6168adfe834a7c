package ranker

import (
	"math/rand"
	"testing"
)

// benchmarkPool builds a deterministic pseudo-random pool for measuring
// the selection loop.
func benchmarkPool(n, dims int) []candidate {
	rng := rand.New(rand.NewSource(42))
	pool := make([]candidate, n)
	for i := range pool {
		vec := make([]float32, dims)
		for d := range vec {
			vec[d] = rng.Float32()*2 - 1
		}
		pool[i] = candidate{
			key:       "term",
			order:     i,
			embedding: vec,
			category:  Categories[i%len(Categories)],
			score:     rng.Float64(),
		}
	}
	return pool
}

// BenchmarkSelectTerms measures a full quota-constrained MMR selection of
// 100 terms out of a 500-candidate pool of 256-dim vectors.
func BenchmarkSelectTerms(b *testing.B) {
	base := benchmarkPool(500, 256)
	params := Params{
		Budget: 100,
		Lambda: 0.7,
		Quotas: []Quota{
			{Category: CategoryVerb, Min: 20, Max: 40, Weight: 4},
			{Category: CategoryNoun, Min: 30, Weight: 3},
			{Category: CategoryAdjective, Min: 10, Max: 30, Weight: 2},
		},
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool := make([]candidate, len(base))
		copy(pool, base)
		for j := range pool {
			pool[j].selected = false
		}
		selectTerms(pool, params)
	}
}

// BenchmarkCosineSimilarity measures the inner similarity kernel at the
// production embedding width.
func BenchmarkCosineSimilarity(b *testing.B) {
	pool := benchmarkPool(2, 1536)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cosineSimilarity(pool[0].embedding, pool[1].embedding)
	}
}
