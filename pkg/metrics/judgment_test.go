package metrics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestRun_RelevanceVector(t *testing.T) {
	ids := newIDs(4)
	run := Run{
		Ranked: []uuid.UUID{ids[0], ids[1], ids[2], ids[3]},
		Judgments: Judgments{
			ids[0]: GradeHighly,
			ids[1]: GradeMarginally,
			ids[3]: GradeRelevant,
		},
	}

	assert.Equal(t, Relevance{1, 1, 0, 1}, run.RelevanceVector(1))
	assert.Equal(t, Relevance{1, 0, 0, 1}, run.RelevanceVector(2))
	assert.Equal(t, Relevance{1, 1, 0, 1}, run.RelevanceVector(0))
}

func TestRun_RecallBase(t *testing.T) {
	ids := newIDs(4)
	run := Run{
		Ranked: ids[:1],
		Judgments: Judgments{
			ids[0]: GradeHighly,
			ids[1]: GradeNotRelevant,
			ids[2]: GradeMarginally,
			ids[3]: GradeRelevant,
		},
	}

	assert.Equal(t, 3, run.RecallBase(1))
	assert.Equal(t, 2, run.RecallBase(2))
	assert.Equal(t, 0, run.RecallBase(4))
}

func TestRun_GainVectors(t *testing.T) {
	ids := newIDs(4)
	run := Run{
		Ranked: []uuid.UUID{ids[2], ids[1], ids[0]},
		Judgments: Judgments{
			ids[0]: 3,
			ids[1]: 0,
			ids[2]: 1,
			ids[3]: 2,
		},
	}

	assert.Equal(t, Gain{1, 0, 3}, run.GainVector(GainLinear))
	assert.Equal(t, Gain{3, 2, 1}, run.IdealGainVector(GainLinear))

	assert.Equal(t, Gain{1, 0, 7}, run.GainVector(GainExponential))
	assert.Equal(t, Gain{7, 3, 1}, run.IdealGainVector(GainExponential))
}

func TestRun_UnjudgedDocsHaveZeroGain(t *testing.T) {
	ids := newIDs(2)
	run := Run{Ranked: ids, Judgments: Judgments{}}

	assert.Equal(t, Gain{0, 0}, run.GainVector(GainLinear))
	assert.Empty(t, run.IdealGainVector(GainLinear))
	assert.Equal(t, Relevance{0, 0}, run.RelevanceVector(1))
}

func TestNewJudgments(t *testing.T) {
	ids := newIDs(2)
	data := "- doc_id: " + ids[0].String() + "\n  grade: 3\n" +
		"- doc_id: " + ids[1].String() + "\n  grade: 1\n"

	var docs []GradedDoc
	require.NoError(t, yaml.Unmarshal([]byte(data), &docs))

	j := NewJudgments(docs)
	assert.Len(t, j, 2)
	assert.Equal(t, 3, j[ids[0]])
	assert.Equal(t, 1, j[ids[1]])
}
