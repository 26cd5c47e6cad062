package metrics

import (
	"fmt"
	"math"

	"github.com/DjordjeVuckovic/searcheval/pkg/apperr"
	"github.com/DjordjeVuckovic/searcheval/pkg/vecmath"
)

// NDCGVector computes nDCG at every rank of gain, normalised by ideal.
// Uses the log2(rank+1) discount. ideal is truncated or zero-padded to
// len(gain). Where the cumulated ideal gain is zero the value is 0.
func NDCGVector(gain, ideal Gain) ([]float64, error) {
	if err := gain.Validate(); err != nil {
		return nil, err
	}
	if err := ideal.Validate(); err != nil {
		return nil, err
	}

	n := len(gain)
	fitted := make([]float64, n)
	copy(fitted, ideal)

	dcg, err := cumulatedDiscountedGain(gain)
	if err != nil {
		return nil, err
	}
	idcg, err := cumulatedDiscountedGain(fitted)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		if math.IsInf(dcg[i], 0) || math.IsInf(idcg[i], 0) {
			return nil, apperr.NewValidation("ndcg_vector",
				fmt.Sprintf("cumulated gain overflows at rank %d", i+1), ErrInvalidGain)
		}
		if idcg[i] == 0 {
			continue
		}
		out[i] = dcg[i] / idcg[i]
	}
	return out, nil
}

// NDCG returns nDCG at the full depth of gain.
func NDCG(gain, ideal Gain) (float64, error) {
	if err := checkNotEmpty("ndcg", len(gain)); err != nil {
		return 0, err
	}
	vec, err := NDCGVector(gain, ideal)
	if err != nil {
		return 0, err
	}
	return vec[len(vec)-1], nil
}

func NDCGAtRank(gain, ideal Gain, rank int) (float64, error) {
	if err := checkRank("ndcg_at_rank", rank, len(gain)); err != nil {
		return 0, err
	}
	vec, err := NDCGVector(gain, ideal)
	if err != nil {
		return 0, err
	}
	return vec[rank-1], nil
}

// DCGVector returns the discounted cumulative gain at every rank of gain.
func DCGVector(gain Gain) ([]float64, error) {
	if err := gain.Validate(); err != nil {
		return nil, err
	}
	return cumulatedDiscountedGain(gain)
}

func cumulatedDiscountedGain(gain []float64) ([]float64, error) {
	discounted, err := vecmath.Divide(gain, vecmath.Log2Discounts(len(gain)))
	if err != nil {
		return nil, err
	}
	return vecmath.CumSum(discounted), nil
}
