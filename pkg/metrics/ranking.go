package metrics

import "github.com/DjordjeVuckovic/searcheval/pkg/vecmath"

// AvgPrec averages precision-at-rank times relevance-at-rank over all ranks
// of rel. The sum is divided by len(rel), not by the recall base.
func AvgPrec(rel Relevance) (float64, error) {
	if err := checkNotEmpty("avg_prec", len(rel)); err != nil {
		return 0, err
	}

	pv, err := PrecisionVector(rel)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i, p := range pv {
		sum += p * float64(rel[i])
	}
	return sum / float64(len(rel)), nil
}

// RPrec returns the precision at rank recallBase. When recallBase exceeds
// len(rel) the missing ranks count as non-relevant.
func RPrec(rel Relevance, recallBase int) (float64, error) {
	if err := checkRecallBase("r_prec", recallBase); err != nil {
		return 0, err
	}
	if err := rel.Validate(); err != nil {
		return 0, err
	}
	n := min(len(rel), recallBase)
	return float64(vecmath.Sum(rel[:n])) / float64(recallBase), nil
}

// ReciprocalRank returns 1/rank of the first relevant document, or 0.
func ReciprocalRank(rel Relevance) (float64, error) {
	if err := rel.Validate(); err != nil {
		return 0, err
	}
	for i, v := range rel {
		if v == 1 {
			return 1.0 / float64(i+1), nil
		}
	}
	return 0, nil
}

// padRelevance returns rel right-padded with zeros to length n. rel itself
// is returned when it is already long enough; it is never written to.
func padRelevance(rel Relevance, n int) Relevance {
	if n <= len(rel) {
		return rel
	}
	padded := make(Relevance, n)
	copy(padded, rel)
	return padded
}

func padGain(g Gain, n int) Gain {
	if n <= len(g) {
		return g
	}
	padded := make(Gain, n)
	copy(padded, g)
	return padded
}
