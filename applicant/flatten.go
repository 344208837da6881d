package applicant

import "strconv"

// FlattenedApplicant is a disposable projection of one applicant into
// scalar fields only, for table rendering, filtering, sorting and CSV
// export. Every field is a string, number or bool; missing source data
// resolves to the type's empty value. The field set is fixed so that every
// flattened row has the same columns.
type FlattenedApplicant struct {
	ID                  string  `json:"id"`
	FirstName           string  `json:"first_name"`
	LastName            string  `json:"last_name"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	School              string  `json:"school"`
	EducationLevel      string  `json:"education_level"`
	GraduationYear      int     `json:"graduation_year"`
	Location            string  `json:"location"`
	Age                 string  `json:"age"`
	AgeEligible         bool    `json:"age_eligible"`
	Major               string  `json:"major"`
	Gender              string  `json:"gender"`
	Pronouns            string  `json:"pronouns"`
	Ethnicity           string  `json:"ethnicity"`
	DietaryRestrictions string  `json:"dietary_restrictions"`
	EngagementSource    string  `json:"engagement_source"`
	ContributionRoles   string  `json:"contribution_roles"`
	PrevHackathons      int     `json:"prev_hackathons"`
	Github              string  `json:"github"`
	Linkedin            string  `json:"linkedin"`
	Portfolio           string  `json:"portfolio"`
	ResumeUrl           string  `json:"resume_url"`
	TotalScore          float64 `json:"total_score"`
	TotalZScore         float64 `json:"total_z_score"`
	NumScores           int     `json:"num_scores"`
	Comment             string  `json:"comment"`
	Status              string  `json:"status"`
	LastUpdatedBy       string  `json:"last_updated_by"`
}

// Sentinel values the intake form stores instead of an exact age.
const (
	AgeAtOrUnder16 = "16 or younger"
	AgeOver24      = "older than 24"
)

// AgeEligible applies the event's age rule to the raw age value: the
// under-16 sentinel is never eligible, the over-24 sentinel always is, and
// exact ages are eligible from 19 up. Unparseable values are not eligible.
func AgeEligible(rawAge string) bool {
	switch rawAge {
	case AgeAtOrUnder16:
		return false
	case AgeOver24:
		return true
	}
	age, err := strconv.Atoi(rawAge)
	if err != nil {
		return false
	}
	return age >= 19
}

// Flatten projects an applicant into a FlattenedApplicant. The edition is
// passed explicitly because it decides which storage shape the
// edition-sensitive fields are read from. Flatten never fails; absent
// nested data degrades to empty values.
func Flatten(a Applicant, editionID string) FlattenedApplicant {
	legacy := IsLegacyEdition(editionID)

	roles := Flex{Selected: a.Skills.ContributionRoles}

	rawAge := a.BasicInfo.Age.Resolve()

	return FlattenedApplicant{
		ID:                  a.ID,
		FirstName:           a.BasicInfo.FirstName,
		LastName:            a.BasicInfo.LastName,
		Email:               a.BasicInfo.Email,
		Phone:               a.BasicInfo.Phone,
		School:              a.BasicInfo.School,
		EducationLevel:      a.BasicInfo.EducationLevel,
		GraduationYear:      a.BasicInfo.GraduationYear,
		Location:            a.BasicInfo.Location,
		Age:                 rawAge,
		AgeEligible:         AgeEligible(rawAge),
		Major:               a.BasicInfo.Major.ResolveLegacy(legacy),
		Gender:              a.BasicInfo.Gender.Resolve(),
		Pronouns:            a.BasicInfo.Pronouns.Resolve(),
		Ethnicity:           a.BasicInfo.Ethnicity.Resolve(),
		DietaryRestrictions: a.BasicInfo.DietaryRestrictions.Resolve(),
		EngagementSource:    a.BasicInfo.EngagementSource.ResolveLegacy(legacy),
		ContributionRoles:   roles.Resolve(),
		PrevHackathons:      a.Skills.PrevHackathons,
		Github:              a.Skills.Github,
		Linkedin:            a.Skills.Linkedin,
		Portfolio:           a.Skills.Portfolio,
		ResumeUrl:           a.Skills.ResumeUrl,
		TotalScore:          a.Score.TotalScore,
		TotalZScore:         a.Score.TotalZScore,
		NumScores:           len(a.Score.Scores),
		Comment:             a.Score.Comment,
		Status:              string(a.Status.ApplicationStatus),
		LastUpdatedBy:       a.Score.LastUpdatedBy,
	}
}
