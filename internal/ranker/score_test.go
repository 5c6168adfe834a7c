package ranker

import (
	"errors"
	"math"
	"testing"

	apperrors "github.com/aacvocab/termrank/pkg/errors"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestCosineSimilarity checks the canonical cases: identical, orthogonal,
// opposite, and zero-norm vectors.
func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0, 0}, []float32{1, 0, 0}, 1},
		{"orthogonal", []float32{1, 0, 0}, []float32{0, 1, 0}, 0},
		{"opposite", []float32{1, 0, 0}, []float32{-1, 0, 0}, -1},
		{"scaled", []float32{2, 0, 0}, []float32{5, 0, 0}, 1},
		{"zero norm", []float32{0, 0, 0}, []float32{1, 0, 0}, 0},
		{"length mismatch", []float32{1, 0}, []float32{1, 0, 0}, 0},
	}
	for _, tt := range tests {
		if got := cosineSimilarity(tt.a, tt.b); !almostEqual(got, tt.want) {
			t.Errorf("%s: cosineSimilarity = %g, want %g", tt.name, got, tt.want)
		}
	}
}

// TestScorePool verifies the [-1,1] -> [0,1] mapping and the zero-vector
// guard: a zero-norm embedding scores 0, not 0.5.
func TestScorePool(t *testing.T) {
	ctx := []float32{1, 0, 0}
	pool := []candidate{
		{key: "same", embedding: []float32{1, 0, 0}},
		{key: "orthogonal", embedding: []float32{0, 1, 0}},
		{key: "opposite", embedding: []float32{-1, 0, 0}},
		{key: "zero", embedding: []float32{0, 0, 0}},
	}
	if err := scorePool(pool, ctx); err != nil {
		t.Fatalf("scorePool: %v", err)
	}
	want := []float64{1, 0.5, 0, 0}
	for i := range pool {
		if !almostEqual(pool[i].score, want[i]) {
			t.Errorf("%s: score = %g, want %g", pool[i].key, pool[i].score, want[i])
		}
	}
}

// TestScorePoolDimensionMismatch verifies that inconsistent vector lengths
// fail fast with a DimensionMismatchError carrying the offending index.
func TestScorePoolDimensionMismatch(t *testing.T) {
	pool := []candidate{
		{key: "ok", embedding: []float32{1, 0, 0}},
		{key: "short", embedding: []float32{1, 0}},
	}
	err := scorePool(pool, []float32{1, 0, 0})
	var dm *apperrors.DimensionMismatchError
	if !errors.As(err, &dm) {
		t.Fatalf("scorePool error = %v, want DimensionMismatchError", err)
	}
	if dm.Want != 3 || dm.Got != 2 || dm.Index != 1 {
		t.Errorf("mismatch detail = %+v, want Want=3 Got=2 Index=1", dm)
	}
}
