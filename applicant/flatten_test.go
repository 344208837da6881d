package applicant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenLegacyMajorBranching(t *testing.T) {
	scalar := Applicant{
		ID: "a1",
		BasicInfo: BasicInfo{
			Major: Flex{Scalar: "Computer Science"},
		},
	}
	mapShaped := Applicant{
		ID: "a2",
		BasicInfo: BasicInfo{
			Major: Flex{Selected: map[string]bool{"computerScience": true}},
		},
	}

	// pre-2024 editions read the scalar shape
	assert.Equal(t, "Computer Science", Flatten(scalar, "hacknight2023").Major)
	assert.Equal(t, "", Flatten(mapShaped, "hacknight2023").Major)

	// modern editions read the selected-keys shape
	assert.Equal(t, "computerScience", Flatten(mapShaped, "hacknight2025").Major)
	assert.Equal(t, "", Flatten(scalar, "hacknight2025").Major)
}

func TestNamedLegacyEdition(t *testing.T) {
	assert.True(t, IsLegacyEdition("frosthacks2024"))
	assert.False(t, IsLegacyEdition("hacknight2024"))
	assert.True(t, IsLegacyEdition("hacknight2023"))
	// no parseable year at all counts as legacy
	assert.True(t, IsLegacyEdition("betaevent"))
}

func TestFlexSelectedKeysJoin(t *testing.T) {
	f := Flex{
		Selected: map[string]bool{
			"vegetarian": true,
			"halal":      true,
			"none":       false,
		},
		Other: "no cilantro",
	}
	assert.Equal(t, "halal, vegetarian, no cilantro", f.Resolve())

	// scalar wins over the map when both are present
	f.Scalar = "vegan"
	assert.Equal(t, "vegan", f.Resolve())
}

func TestAgeEligible(t *testing.T) {
	assert.False(t, AgeEligible(AgeAtOrUnder16))
	assert.True(t, AgeEligible(AgeOver24))
	assert.False(t, AgeEligible("18"))
	assert.True(t, AgeEligible("19"))
	assert.True(t, AgeEligible("23"))
	assert.False(t, AgeEligible(""))
	assert.False(t, AgeEligible("abc"))
}

func TestFlattenEmptyApplicantHasTypedDefaults(t *testing.T) {
	row := Flatten(Applicant{ID: "x"}, "hacknight2025")

	assert.Equal(t, "x", row.ID)
	assert.Equal(t, "", row.Major)
	assert.Equal(t, "", row.ContributionRoles)
	assert.Equal(t, 0, row.PrevHackathons)
	assert.Equal(t, 0.0, row.TotalScore)
	assert.Equal(t, 0.0, row.TotalZScore)
	assert.Equal(t, 0, row.NumScores)
	assert.False(t, row.AgeEligible)
}

func TestFlattenContributionRolesAndScores(t *testing.T) {
	a := Applicant{
		ID: "a3",
		Skills: Skills{
			ContributionRoles: map[string]bool{
				"developer": true,
				"designer":  true,
				"pm":        false,
			},
			PrevHackathons: 3,
		},
		Score: Score{
			Scores: map[string]ScoreEntry{
				"essay":  {Score: 4, LastUpdatedBy: "ada"},
				"skills": {Score: 3, LastUpdatedBy: "ada"},
			},
			TotalScore:    14,
			TotalZScore:   1.5,
			Comment:       "strong application",
			LastUpdatedBy: "ada",
		},
		Status: AppStatus{ApplicationStatus: StatusScored},
	}

	row := Flatten(a, "hacknight2025")
	assert.Equal(t, "designer, developer", row.ContributionRoles)
	assert.Equal(t, 3, row.PrevHackathons)
	assert.Equal(t, 14.0, row.TotalScore)
	assert.Equal(t, 1.5, row.TotalZScore)
	assert.Equal(t, 2, row.NumScores)
	assert.Equal(t, "scored", row.Status)
	assert.Equal(t, "ada", row.LastUpdatedBy)
}
