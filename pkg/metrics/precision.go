package metrics

import "github.com/DjordjeVuckovic/searcheval/pkg/vecmath"

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if err := checkNotEmpty("mean", len(xs)); err != nil {
		return 0, err
	}
	return vecmath.Sum(xs) / float64(len(xs)), nil
}

// Precision returns the fraction of relevant documents in rel.
func Precision(rel Relevance) (float64, error) {
	if err := checkNotEmpty("precision", len(rel)); err != nil {
		return 0, err
	}
	if err := rel.Validate(); err != nil {
		return 0, err
	}
	return float64(vecmath.Sum(rel)) / float64(len(rel)), nil
}

// PrecisionAtRank returns the precision of the first rank documents.
func PrecisionAtRank(rel Relevance, rank int) (float64, error) {
	if err := checkRank("precision_at_rank", rank, len(rel)); err != nil {
		return 0, err
	}
	return Precision(rel[:rank])
}

// PrecisionVector returns the precision at every rank of rel.
func PrecisionVector(rel Relevance) ([]float64, error) {
	if err := rel.Validate(); err != nil {
		return nil, err
	}

	ranks := make([]int, len(rel))
	for i := range ranks {
		ranks[i] = i + 1
	}
	return vecmath.Divide(vecmath.CumSum([]int(rel)), ranks)
}
