package admission

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hacknight-dev/backend/applicant"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

func scoredApplicant(id string) applicant.Applicant {
	return applicant.Applicant{
		ID:     id,
		Status: applicant.AppStatus{ApplicationStatus: applicant.StatusScored},
	}
}

func TestCandidatesAllClausesActive(t *testing.T) {
	developer := scoredApplicant("dev")
	developer.Score.TotalScore = 10
	developer.Score.TotalZScore = 1.5
	developer.Skills.PrevHackathons = 2
	developer.BasicInfo.EducationLevel = "Secondary"
	developer.Skills.ContributionRoles = map[string]bool{"developer": true}

	// same numbers, wrong role
	pm := developer
	pm.ID = "pm"
	pm.Skills.ContributionRoles = map[string]bool{"productManager": true}

	// huge score but never graded
	unscored := applicant.Applicant{
		ID:     "unscored",
		Status: applicant.AppStatus{ApplicationStatus: applicant.StatusApplied},
	}
	unscored.Score.TotalScore = 1000
	unscored.Score.TotalZScore = 5
	unscored.Skills.ContributionRoles = map[string]bool{"developer": true}

	criteria := Criteria{
		MinScore:          ptrF(8),
		MinZScore:         ptrF(1),
		MinPrevHacks:      ptrI(1),
		MaxPrevHacks:      ptrI(5),
		YearLevels:        map[string]bool{"Secondary": true},
		ContributionRoles: map[string]bool{"developer": true},
	}

	ids := Candidates([]applicant.Applicant{developer, pm, unscored}, criteria)
	assert.Equal(t, []string{"dev"}, ids)
}

func TestCandidatesEmptyCriteriaMatchEveryScored(t *testing.T) {
	a := scoredApplicant("a")
	b := scoredApplicant("b")
	inProgress := applicant.Applicant{
		ID:     "c",
		Status: applicant.AppStatus{ApplicationStatus: applicant.StatusInProgress},
	}

	ids := Candidates([]applicant.Applicant{a, b, inProgress}, Criteria{})
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestCandidatesRejectNonFiniteTotals(t *testing.T) {
	nan := scoredApplicant("nan")
	nan.Score.TotalScore = math.NaN()
	inf := scoredApplicant("inf")
	inf.Score.TotalZScore = math.Inf(1)

	ids := Candidates([]applicant.Applicant{nan, inf}, Criteria{})
	assert.Empty(t, ids)
}

func TestCandidatesBoundaryValuesPass(t *testing.T) {
	a := scoredApplicant("edge")
	a.Score.TotalScore = 8
	a.Score.TotalZScore = 1
	a.Skills.PrevHackathons = 5

	criteria := Criteria{
		MinScore:     ptrF(8),
		MinZScore:    ptrF(1),
		MinPrevHacks: ptrI(5),
		MaxPrevHacks: ptrI(5),
	}
	assert.Equal(t, []string{"edge"}, Candidates([]applicant.Applicant{a}, criteria))
}

func TestCandidatesRoleClauseIsAnyOf(t *testing.T) {
	a := scoredApplicant("multi")
	a.Skills.ContributionRoles = map[string]bool{
		"developer": false, // deselected role does not count
		"designer":  true,
	}

	criteria := Criteria{ContributionRoles: map[string]bool{"developer": true, "designer": true}}
	assert.Equal(t, []string{"multi"}, Candidates([]applicant.Applicant{a}, criteria))

	criteria = Criteria{ContributionRoles: map[string]bool{"developer": true}}
	assert.Empty(t, Candidates([]applicant.Applicant{a}, criteria))
}
