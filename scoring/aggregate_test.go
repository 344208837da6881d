package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hacknight-dev/backend/applicant"
)

func twoCriteria() []Criterion {
	return []Criterion{
		{Field: "a", MinScore: 0, MaxScore: 5, Increment: 1, Weight: 2},
		{Field: "b", MinScore: 0, MaxScore: 5, Increment: 1, Weight: 3},
	}
}

func TestWeightedTotalMissingEntryContributesZero(t *testing.T) {
	scores := map[string]applicant.ScoreEntry{
		"a": {Score: 4},
	}
	total, status := RecomputeTotals(scores, twoCriteria())
	assert.Equal(t, 8.0, total)
	assert.Equal(t, applicant.StatusGradingInProg, status)
}

func TestWeightedTotalAllScored(t *testing.T) {
	scores := map[string]applicant.ScoreEntry{
		"a": {Score: 4},
		"b": {Score: 2},
	}
	total, status := RecomputeTotals(scores, twoCriteria())
	assert.Equal(t, 14.0, total)
	assert.Equal(t, applicant.StatusScored, status)
}

func TestStatusHintZeroIsAScore(t *testing.T) {
	scores := map[string]applicant.ScoreEntry{
		"a": {Score: 0},
		"b": {Score: 0},
	}
	assert.Equal(t, applicant.StatusScored, StatusHint(scores, twoCriteria()))
}

func TestStatusHintNoCriteriaConfigured(t *testing.T) {
	assert.Equal(t, applicant.StatusGradingInProg,
		StatusHint(map[string]applicant.ScoreEntry{"a": {Score: 1}}, nil))
}

func TestCriterionValueGrid(t *testing.T) {
	c := Criterion{Field: "essay", MinScore: 1, MaxScore: 4, Increment: 0.5}
	assert.True(t, c.AllowsValue(1))
	assert.True(t, c.AllowsValue(2.5))
	assert.True(t, c.AllowsValue(4))
	assert.False(t, c.AllowsValue(0.5))
	assert.False(t, c.AllowsValue(4.5))
	assert.False(t, c.AllowsValue(2.3))
}

func TestValidateCriterion(t *testing.T) {
	assert.NoError(t, ValidateCriterion(Criterion{
		Field: "essay", MinScore: 0, MaxScore: 5, Increment: 1, Weight: 1,
	}))
	assert.Error(t, ValidateCriterion(Criterion{
		Field: "essay", MinScore: 5, MaxScore: 5, Increment: 1,
	}))
	assert.Error(t, ValidateCriterion(Criterion{
		Field: "", MinScore: 0, MaxScore: 5, Increment: 1,
	}))
	assert.Error(t, ValidateCriterion(Criterion{
		Field: "essay", MinScore: 0, MaxScore: 5, Increment: 0,
	}))
	assert.Error(t, ValidateCriterion(Criterion{
		Field: "bad field", MinScore: 0, MaxScore: 5, Increment: 1,
	}))
}
