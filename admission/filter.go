package admission

import (
	"math"

	"github.com/hacknight-dev/backend/applicant"
)

// Criteria is the operator-supplied acceptance query. Nil fields and empty
// sets mean "no constraint", never "reject all". It is transient: it is
// never persisted on the applicant.
type Criteria struct {
	MinScore          *float64        `json:"min_score,omitempty"`
	MinZScore         *float64        `json:"min_z_score,omitempty"`
	MinPrevHacks      *int            `json:"min_prev_hacks,omitempty"`
	MaxPrevHacks      *int            `json:"max_prev_hacks,omitempty"`
	YearLevels        map[string]bool `json:"year_levels,omitempty"`
	ContributionRoles map[string]bool `json:"contribution_roles,omitempty"`
}

// Candidates evaluates the acceptance predicate over the scored population
// and returns the ids of applicants satisfying every active clause. The
// clauses are AND-ed, checked cheapest first:
//
//  1. status must be scored; unscored applicants are never eligible no
//     matter their numbers,
//  2. total score defined and finite, and >= MinScore if given,
//  3. total z-score defined and finite, and >= MinZScore if given,
//  4. prior hackathon count within [MinPrevHacks, MaxPrevHacks] if given
//     (a missing count compares as 0),
//  5. education level inside YearLevels if given,
//  6. at least one selected contribution role inside ContributionRoles if
//     given (OR within the clause, AND with the rest).
func Candidates(scored []applicant.Applicant, criteria Criteria) []string {
	var ids []string
	for i := range scored {
		if accept(&scored[i], criteria) {
			ids = append(ids, scored[i].ID)
		}
	}
	return ids
}

func accept(a *applicant.Applicant, c Criteria) bool {
	if a.Status.ApplicationStatus != applicant.StatusScored {
		return false
	}

	total := a.Score.TotalScore
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return false
	}
	if c.MinScore != nil && total < *c.MinScore {
		return false
	}

	totalZ := a.Score.TotalZScore
	if math.IsNaN(totalZ) || math.IsInf(totalZ, 0) {
		return false
	}
	if c.MinZScore != nil && totalZ < *c.MinZScore {
		return false
	}

	prevHacks := a.Skills.PrevHackathons
	if c.MinPrevHacks != nil && prevHacks < *c.MinPrevHacks {
		return false
	}
	if c.MaxPrevHacks != nil && prevHacks > *c.MaxPrevHacks {
		return false
	}

	if len(c.YearLevels) > 0 && !c.YearLevels[a.BasicInfo.EducationLevel] {
		return false
	}

	if len(c.ContributionRoles) > 0 {
		anyRole := false
		for role, selected := range a.Skills.ContributionRoles {
			if selected && c.ContributionRoles[role] {
				anyRole = true
				break
			}
		}
		if !anyRole {
			return false
		}
	}

	return true
}
