package metrics

import "github.com/DjordjeVuckovic/searcheval/pkg/vecmath"

// Recall returns the fraction of the recallBase relevant documents found in rel.
func Recall(rel Relevance, recallBase int) (float64, error) {
	if err := checkRecallBase("recall", recallBase); err != nil {
		return 0, err
	}
	if err := rel.Validate(); err != nil {
		return 0, err
	}
	return float64(vecmath.Sum(rel)) / float64(recallBase), nil
}

// RecallAtRank returns the recall of the first rank documents.
func RecallAtRank(rel Relevance, recallBase int, rank int) (float64, error) {
	if err := checkRecallBase("recall_at_rank", recallBase); err != nil {
		return 0, err
	}
	if err := checkRank("recall_at_rank", rank, len(rel)); err != nil {
		return 0, err
	}
	return Recall(rel[:rank], recallBase)
}

// RecallVector returns the recall at every rank of rel.
func RecallVector(rel Relevance, recallBase int) ([]float64, error) {
	if err := checkRecallBase("recall_vector", recallBase); err != nil {
		return nil, err
	}
	if err := rel.Validate(); err != nil {
		return nil, err
	}

	cum := vecmath.CumSum([]int(rel))
	out := make([]float64, len(cum))
	for i, c := range cum {
		out[i] = float64(c) / float64(recallBase)
	}
	return out, nil
}

// F1AtRank computes the harmonic mean of P@rank and R@rank.
func F1AtRank(rel Relevance, recallBase int, rank int) (float64, error) {
	p, err := PrecisionAtRank(rel, rank)
	if err != nil {
		return 0, err
	}
	r, err := RecallAtRank(rel, recallBase, rank)
	if err != nil {
		return 0, err
	}

	if p+r == 0 {
		return 0, nil
	}
	return 2 * p * r / (p + r), nil
}
