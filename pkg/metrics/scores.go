package metrics

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/DjordjeVuckovic/searcheval/pkg/apperr"
	"github.com/DjordjeVuckovic/searcheval/pkg/vecmath"
)

type ScoreSet struct {
	NDCG      map[int]float64 // K -> NDCG@K
	Precision map[int]float64 // K -> P@K
	Recall    map[int]float64 // K -> R@K
	F1        map[int]float64 // K -> F1@K
	AP        float64         // Average Precision
	RPrec     float64         // R-Precision
	RR        float64         // Reciprocal Rank
}

func newScoreSet(n int) ScoreSet {
	return ScoreSet{
		NDCG:      make(map[int]float64, n),
		Precision: make(map[int]float64, n),
		Recall:    make(map[int]float64, n),
		F1:        make(map[int]float64, n),
	}
}

// Compute scores a single run. Runs shorter than a cutoff are scored as if
// the missing ranks held non-relevant documents.
func Compute(run Run, cfg Config) (ScoreSet, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return ScoreSet{}, err
	}

	rel := run.RelevanceVector(cfg.RelevanceThreshold)
	if err := checkNotEmpty("compute", len(rel)); err != nil {
		return ScoreSet{}, err
	}
	recallBase := run.RecallBase(cfg.RelevanceThreshold)
	if err := checkRecallBase("compute", recallBase); err != nil {
		return ScoreSet{}, err
	}

	depth := max(len(rel), cfg.maxCutoff())
	paddedRel := padRelevance(rel, depth)
	gain := padGain(run.GainVector(cfg.Gain), depth)

	ndcg, err := NDCGVector(gain, run.IdealGainVector(cfg.Gain))
	if err != nil {
		return ScoreSet{}, err
	}

	s := newScoreSet(len(cfg.Cutoffs))
	for _, k := range cfg.Cutoffs {
		s.NDCG[k] = ndcg[k-1]
		if s.Precision[k], err = PrecisionAtRank(paddedRel, k); err != nil {
			return ScoreSet{}, err
		}
		if s.Recall[k], err = RecallAtRank(paddedRel, recallBase, k); err != nil {
			return ScoreSet{}, err
		}
		if s.F1[k], err = F1AtRank(paddedRel, recallBase, k); err != nil {
			return ScoreSet{}, err
		}
	}

	if s.AP, err = AvgPrec(rel); err != nil {
		return ScoreSet{}, err
	}
	if s.RPrec, err = RPrec(rel, recallBase); err != nil {
		return ScoreSet{}, err
	}
	if s.RR, err = ReciprocalRank(rel); err != nil {
		return ScoreSet{}, err
	}

	return s, nil
}

// Summary holds per-query scores and their means across the scored queries.
type Summary struct {
	PerQuery   map[string]ScoreSet
	Mean       ScoreSet // AP holds MAP, RR holds MRR
	QueryCount int
	ErrorCount int
}

type Option func(*Evaluator)

func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = l
	}
}

// Evaluator scores runs with a fixed Config. It is safe for concurrent use.
type Evaluator struct {
	cfg    Config
	logger *slog.Logger
}

func NewEvaluator(cfg Config, opts ...Option) (*Evaluator, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Cutoffs = slices.Clone(cfg.Cutoffs)
	e := &Evaluator{cfg: cfg, logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Evaluator) Config() Config {
	c := e.cfg
	c.Cutoffs = slices.Clone(c.Cutoffs)
	return c
}

func (e *Evaluator) Evaluate(run Run) (ScoreSet, error) {
	s, err := Compute(run, e.cfg)
	if err != nil {
		return ScoreSet{}, fmt.Errorf("query %q: %w", run.QueryID, err)
	}
	e.logger.Debug("Query scored", "query_id", run.QueryID, "ap", s.AP, "rr", s.RR)
	return s, nil
}

// EvaluateAll scores every run. Runs that fail, and runs repeating an
// already scored query ID, are logged and left out of the means.
func (e *Evaluator) EvaluateAll(runs []Run) Summary {
	sum := Summary{
		PerQuery:   make(map[string]ScoreSet, len(runs)),
		Mean:       newScoreSet(len(e.cfg.Cutoffs)),
		QueryCount: len(runs),
	}

	scored := make([]ScoreSet, 0, len(runs))
	for _, run := range runs {
		if _, seen := sum.PerQuery[run.QueryID]; seen {
			sum.ErrorCount++
			e.logger.Warn("Skipping query", "query_id", run.QueryID,
				"error", apperr.NewValidation("evaluate", fmt.Sprintf("duplicate query %q", run.QueryID), ErrDuplicateQuery))
			continue
		}
		s, err := e.Evaluate(run)
		if err != nil {
			sum.ErrorCount++
			e.logger.Warn("Skipping query", "query_id", run.QueryID, "error", err)
			continue
		}
		sum.PerQuery[run.QueryID] = s
		scored = append(scored, s)
	}

	if len(scored) == 0 {
		return sum
	}

	sum.Mean.AP = meanOf(scored, func(s ScoreSet) float64 { return s.AP })
	sum.Mean.RPrec = meanOf(scored, func(s ScoreSet) float64 { return s.RPrec })
	sum.Mean.RR = meanOf(scored, func(s ScoreSet) float64 { return s.RR })
	for _, k := range e.cfg.Cutoffs {
		sum.Mean.NDCG[k] = meanOf(scored, func(s ScoreSet) float64 { return s.NDCG[k] })
		sum.Mean.Precision[k] = meanOf(scored, func(s ScoreSet) float64 { return s.Precision[k] })
		sum.Mean.Recall[k] = meanOf(scored, func(s ScoreSet) float64 { return s.Recall[k] })
		sum.Mean.F1[k] = meanOf(scored, func(s ScoreSet) float64 { return s.F1[k] })
	}

	e.logger.Info("Evaluation finished",
		"queries", sum.QueryCount, "errors", sum.ErrorCount, "map", sum.Mean.AP, "mrr", sum.Mean.RR)
	return sum
}

// meanOf is only called with a non-empty slice.
func meanOf(sets []ScoreSet, field func(ScoreSet) float64) float64 {
	vals := make([]float64, len(sets))
	for i, s := range sets {
		vals[i] = field(s)
	}
	return vecmath.Sum(vals) / float64(len(vals))
}
