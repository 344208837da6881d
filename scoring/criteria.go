package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// Criterion is one globally configured scoring dimension. The admin console
// edits these; grading treats them as read-mostly input.
type Criterion struct {
	Field     string  `dynamodbav:"field" json:"field" toml:"field"`
	Label     string  `dynamodbav:"label" json:"label" toml:"label"`
	MinScore  float64 `dynamodbav:"min_score" json:"min_score" toml:"min_score"`
	MaxScore  float64 `dynamodbav:"max_score" json:"max_score" toml:"max_score"`
	Increment float64 `dynamodbav:"increment" json:"increment" toml:"increment"`
	Weight    float64 `dynamodbav:"weight" json:"weight" toml:"weight"`
}

// CriteriaSource yields the configured scoring criteria.
type CriteriaSource interface {
	GetCriteria(ctx context.Context) ([]Criterion, error)
}

// ValidateCriterion rejects malformed criteria at authoring time. Grading
// code assumes criteria it receives already passed this.
func ValidateCriterion(c Criterion) error {
	if c.Field == "" {
		return fmt.Errorf("criterion field must not be empty")
	}
	if strings.ContainsAny(c.Field, "'. ") {
		return fmt.Errorf("criterion field %q must be a plain identifier", c.Field)
	}
	if c.MinScore >= c.MaxScore {
		return fmt.Errorf("criterion %s: min score %v must be below max score %v",
			c.Field, c.MinScore, c.MaxScore)
	}
	if c.Increment <= 0 {
		return fmt.Errorf("criterion %s: increment must be positive", c.Field)
	}
	if c.Weight < 0 {
		return fmt.Errorf("criterion %s: weight must not be negative", c.Field)
	}
	return nil
}

// AllowsValue reports whether v lies on the criterion's value grid:
// minScore..maxScore stepped by increment.
func (c Criterion) AllowsValue(v float64) bool {
	if v < c.MinScore || v > c.MaxScore {
		return false
	}
	steps := (v - c.MinScore) / c.Increment
	return math.Abs(steps-math.Round(steps)) < 1e-9
}

// InMemCriteria is a fixed CriteriaSource for tests and local development.
type InMemCriteria []Criterion

func (c InMemCriteria) GetCriteria(ctx context.Context) ([]Criterion, error) {
	return c, nil
}
