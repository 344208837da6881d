package applicant

import "time"

// Status is the coarse application status stored on the applicant document.
type Status string

const (
	StatusInProgress       Status = "inProgress"
	StatusApplied          Status = "applied"
	StatusGradingInProg    Status = "gradinginprog"
	StatusScored           Status = "scored"
	StatusAcceptedPending  Status = "acceptedNoResponseYet"
	StatusAcceptedInvited  Status = "acceptedAndAttending"
	StatusAcceptedDeclined Status = "acceptedDeclinedInvite"
	StatusWaitlisted       Status = "waitlisted"
	StatusRejected         Status = "rejected"
)

// ValidStatus reports whether s is one of the known application statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusInProgress, StatusApplied, StatusGradingInProg, StatusScored,
		StatusAcceptedPending, StatusAcceptedInvited, StatusAcceptedDeclined,
		StatusWaitlisted, StatusRejected:
		return true
	}
	return false
}

// ScoreEntry is one grader's score for one criterion.
type ScoreEntry struct {
	Score           float64  `dynamo:"score" json:"score"`
	LastUpdated     int64    `dynamo:"last_updated" json:"last_updated"` // unix seconds
	LastUpdatedBy   string   `dynamo:"last_updated_by" json:"last_updated_by"`
	NormalizedScore *float64 `dynamo:"normalized_score,omitempty" json:"normalized_score,omitempty"`
}

// Score holds all grading state for one applicant.
type Score struct {
	Scores        map[string]ScoreEntry `dynamo:"scores" json:"scores"`
	Comment       string                `dynamo:"comment" json:"comment"`
	TotalScore    float64               `dynamo:"total_score" json:"total_score"`
	TotalZScore   float64               `dynamo:"total_z_score" json:"total_z_score"`
	LastUpdated   int64                 `dynamo:"last_updated" json:"last_updated"`
	LastUpdatedBy string                `dynamo:"last_updated_by" json:"last_updated_by"`
}

// AppStatus wraps the coarse status so the stored document keeps the
// status.application_status path that the intake process writes.
type AppStatus struct {
	ApplicationStatus Status `dynamo:"application_status" json:"application_status"`
}

// BasicInfo carries demographic and contact fields. Several of them have
// shipped in more than one storage shape across editions; those are Flex.
type BasicInfo struct {
	FirstName           string `dynamo:"first_name" json:"first_name"`
	LastName            string `dynamo:"last_name" json:"last_name"`
	Email               string `dynamo:"email" json:"email"`
	EmailLC             string `dynamo:"email_lc" json:"email_lc"`
	Phone               string `dynamo:"phone" json:"phone"`
	School              string `dynamo:"school" json:"school"`
	EducationLevel      string `dynamo:"education_level" json:"education_level"`
	GraduationYear      int    `dynamo:"graduation_year" json:"graduation_year"`
	Location            string `dynamo:"location" json:"location"`
	Age                 Flex   `dynamo:"age" json:"age"`
	Major               Flex   `dynamo:"major" json:"major"`
	Gender              Flex   `dynamo:"gender" json:"gender"`
	Pronouns            Flex   `dynamo:"pronouns" json:"pronouns"`
	Ethnicity           Flex   `dynamo:"ethnicity" json:"ethnicity"`
	DietaryRestrictions Flex   `dynamo:"dietary_restrictions" json:"dietary_restrictions"`
	EngagementSource    Flex   `dynamo:"engagement_source" json:"engagement_source"`
}

// Skills carries the contribution-role selection and experience fields.
type Skills struct {
	ContributionRoles map[string]bool `dynamo:"contribution_roles" json:"contribution_roles"`
	PrevHackathons    int             `dynamo:"prev_hackathons" json:"prev_hackathons"`
	Github            string          `dynamo:"github" json:"github"`
	Linkedin          string          `dynamo:"linkedin" json:"linkedin"`
	Portfolio         string          `dynamo:"portfolio" json:"portfolio"`
	ResumeUrl         string          `dynamo:"resume_url" json:"resume_url"`
}

// Applicant is one person's application within one hackathon edition.
type Applicant struct {
	Edition   string    `dynamo:"edition,hash" json:"edition"`
	ID        string    `dynamo:"id,range" json:"id"`
	BasicInfo BasicInfo `dynamo:"basic_info" json:"basic_info"`
	Skills    Skills    `dynamo:"skills" json:"skills"`
	Score     Score     `dynamo:"score" json:"score"`
	Status    AppStatus `dynamo:"status" json:"status"`
	CreatedAt time.Time `dynamo:"created_at" json:"created_at"`
}
