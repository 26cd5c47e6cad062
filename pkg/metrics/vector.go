package metrics

import (
	"fmt"
	"math"

	"github.com/DjordjeVuckovic/searcheval/pkg/apperr"
)

// Relevance is a binary judgment per rank; index 0 is rank 1.
type Relevance []int

// Gain is a graded judgment per rank. Higher is more relevant.
type Gain []float64

func (r Relevance) Validate() error {
	for i, v := range r {
		if v != 0 && v != 1 {
			return apperr.NewValidation("relevance",
				fmt.Sprintf("value %d at rank %d is not 0 or 1", v, i+1), ErrInvalidRelevance)
		}
	}
	return nil
}

func (g Gain) Validate() error {
	for i, v := range g {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return apperr.NewValidation("gain",
				fmt.Sprintf("value %v at rank %d is not a finite non-negative number", v, i+1), ErrInvalidGain)
		}
	}
	return nil
}

func checkRank(op string, rank, length int) error {
	if rank < 1 || rank > length {
		return apperr.NewValidation(op,
			fmt.Sprintf("rank %d outside [1, %d]", rank, length), ErrRankOutOfRange)
	}
	return nil
}

func checkRecallBase(op string, recallBase int) error {
	if recallBase <= 0 {
		return apperr.NewValidation(op,
			fmt.Sprintf("recall base %d must be positive", recallBase), ErrInvalidRecallBase)
	}
	return nil
}

func checkNotEmpty(op string, length int) error {
	if length == 0 {
		return apperr.NewValidation(op, "vector is empty", ErrEmptyInput)
	}
	return nil
}
