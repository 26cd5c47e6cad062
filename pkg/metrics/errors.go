package metrics

import "github.com/DjordjeVuckovic/searcheval/pkg/apperr"

// Sentinels returned (wrapped in *apperr.ValidationError) by this package.
var (
	ErrEmptyInput        = apperr.ErrEmptyInput
	ErrShapeMismatch     = apperr.ErrShapeMismatch
	ErrRankOutOfRange    = apperr.ErrRankOutOfRange
	ErrInvalidRecallBase = apperr.ErrInvalidRecallBase
	ErrInvalidRelevance  = apperr.ErrInvalidRelevance
	ErrInvalidGain       = apperr.ErrInvalidGain
	ErrInvalidConfig     = apperr.ErrInvalidConfig
	ErrDuplicateQuery    = apperr.ErrDuplicateQuery
)
