// Package vecmath holds the small vector helpers the metrics are built from.
package vecmath

import (
	"fmt"
	"math"

	"github.com/DjordjeVuckovic/searcheval/pkg/apperr"
)

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// CumSum returns the running totals of xs. Position i holds xs[0] + ... + xs[i].
func CumSum[T Number](xs []T) []T {
	out := make([]T, len(xs))
	var acc T
	for i, x := range xs {
		acc += x
		out[i] = acc
	}
	return out
}

// Divide returns a[i]/b[i] as float64 for every i. Both inputs must have the
// same length. A zero denominator yields ±Inf or NaN; callers that need a
// defined value have to check before dividing.
func Divide[T Number](a, b []T) ([]float64, error) {
	if len(a) != len(b) {
		return nil, apperr.NewValidation("divide",
			fmt.Sprintf("length %d does not match length %d", len(a), len(b)), apperr.ErrShapeMismatch)
	}

	out := make([]float64, len(a))
	for i := range a {
		out[i] = float64(a[i]) / float64(b[i])
	}
	return out, nil
}

func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Log2Discounts returns log2(r+2) for zero-based positions r in [0, n),
// i.e. log2(rank+1) for 1-based ranks.
func Log2Discounts(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Log2(float64(i + 2))
	}
	return out
}
