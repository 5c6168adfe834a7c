// Package errors defines the error taxonomy shared across the ranking
// pipeline. Sentinels are matched with errors.Is; the dimension mismatch
// carries structured detail and is matched with errors.As.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPool means no usable candidates survived normalization.
	// Surfaced to the caller, never retried.
	ErrEmptyPool = errors.New("candidate pool empty after normalization")

	// ErrEmbeddingUnavailable means the embedding collaborator exhausted
	// its retries. The whole ranking request is aborted; partial scores
	// would be incomparable.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrInvalidInput covers malformed ranking parameters (zero budget,
	// lambda outside [0,1], inconsistent quota bounds).
	ErrInvalidInput = errors.New("invalid input")
)

// DimensionMismatchError reports an embedding vector whose length differs
// from the context embedding. It indicates a collaborator contract
// violation and is fatal to the request.
type DimensionMismatchError struct {
	Want  int
	Got   int
	Index int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("embedding dimension mismatch at index %d: want %d, got %d", e.Index, e.Want, e.Got)
}

// IsDimensionMismatch reports whether err wraps a DimensionMismatchError.
func IsDimensionMismatch(err error) bool {
	var dm *DimensionMismatchError
	return errors.As(err, &dm)
}
