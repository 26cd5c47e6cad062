package metrics

import (
	"sort"

	"github.com/google/uuid"
)

const (
	GradeNotRelevant = 0
	GradeMarginally  = 1
	GradeRelevant    = 2
	GradeHighly      = 3
)

type GradedDoc struct {
	DocID uuid.UUID `yaml:"doc_id"`
	Grade int       `yaml:"grade"`
}

// Judgments maps a document to its graded relevance. Unjudged documents
// have grade 0.
type Judgments map[uuid.UUID]int

func NewJudgments(docs []GradedDoc) Judgments {
	j := make(Judgments, len(docs))
	for _, d := range docs {
		j[d.DocID] = d.Grade
	}
	return j
}

// Run is one query's ranked result list together with its judgments.
type Run struct {
	QueryID   string
	Ranked    []uuid.UUID
	Judgments Judgments
}

// RelevanceVector marks each ranked document relevant when its grade
// reaches threshold. Thresholds below 1 are treated as 1.
func (r Run) RelevanceVector(threshold int) Relevance {
	threshold = max(threshold, 1)
	rel := make(Relevance, len(r.Ranked))
	for i, id := range r.Ranked {
		if r.Judgments[id] >= threshold {
			rel[i] = 1
		}
	}
	return rel
}

// RecallBase counts the judged documents whose grade reaches threshold.
func (r Run) RecallBase(threshold int) int {
	threshold = max(threshold, 1)
	var count int
	for _, grade := range r.Judgments {
		if grade >= threshold {
			count++
		}
	}
	return count
}

func (r Run) GainVector(scheme GainScheme) Gain {
	fn := scheme.gainFunc()
	g := make(Gain, len(r.Ranked))
	for i, id := range r.Ranked {
		g[i] = fn(r.Judgments[id])
	}
	return g
}

// IdealGainVector returns the gains of all positively judged documents in
// non-increasing order.
func (r Run) IdealGainVector(scheme GainScheme) Gain {
	fn := scheme.gainFunc()
	ideal := make(Gain, 0, len(r.Judgments))
	for _, grade := range r.Judgments {
		if grade > 0 {
			ideal = append(ideal, fn(grade))
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(ideal)))
	return ideal
}
