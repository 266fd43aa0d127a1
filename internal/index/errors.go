package index

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCatalog is returned when an index is built from, or queried
	// against, a catalog with no embeddings.
	ErrEmptyCatalog = errors.New("catalog has no embeddings")

	// ErrDimensionMismatch matches any *DimensionMismatchError via errors.Is.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	ErrInvalidK = errors.New("k must be at least 1")
)

// DimensionMismatchError reports a vector whose length disagrees with the
// index dimension. It is a configuration error and is never coerced.
type DimensionMismatchError struct {
	Expected int
	Got      int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("embedding dimension mismatch: expected %d, got %d", e.Expected, e.Got)
}

func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}
