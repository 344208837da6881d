package scoring

import "github.com/hacknight-dev/backend/applicant"

// RecomputeTotalScore folds the weighted per-criterion scores into the
// applicant's total. Criteria without an entry contribute 0, not a penalty.
func RecomputeTotalScore(scores map[string]applicant.ScoreEntry, criteria []Criterion) float64 {
	total := 0.0
	for _, criterion := range criteria {
		entry, ok := scores[criterion.Field]
		if !ok {
			continue
		}
		total += entry.Score * criterion.Weight
	}
	return total
}

// StatusHint derives the coarse grading status: scored once every
// configured criterion has an entry (any numeric value, including 0),
// otherwise still in grading. With no criteria configured nothing can be
// fully scored, so the hint stays gradinginprog.
func StatusHint(scores map[string]applicant.ScoreEntry, criteria []Criterion) applicant.Status {
	if len(criteria) == 0 {
		return applicant.StatusGradingInProg
	}
	for _, criterion := range criteria {
		if _, ok := scores[criterion.Field]; !ok {
			return applicant.StatusGradingInProg
		}
	}
	return applicant.StatusScored
}

// RecomputeTotals returns the weighted total and the derived status hint in
// one pass. The total z-score is deliberately absent here: it is only ever
// produced by normalization over the full grader population and summed,
// never recomputed from raw scores.
func RecomputeTotals(scores map[string]applicant.ScoreEntry, criteria []Criterion) (float64, applicant.Status) {
	return RecomputeTotalScore(scores, criteria), StatusHint(scores, criteria)
}
