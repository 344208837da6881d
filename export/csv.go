package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/hacknight-dev/backend/applicant"
)

// Columns is the fixed CSV header. It must stay in lockstep with Row: the
// export contract is a stable key set with primitive, quote-safe values.
func Columns() []string {
	return []string{
		"id",
		"first_name",
		"last_name",
		"email",
		"phone",
		"school",
		"education_level",
		"graduation_year",
		"location",
		"age",
		"age_eligible",
		"major",
		"gender",
		"pronouns",
		"ethnicity",
		"dietary_restrictions",
		"engagement_source",
		"contribution_roles",
		"prev_hackathons",
		"github",
		"linkedin",
		"portfolio",
		"resume_url",
		"total_score",
		"total_z_score",
		"num_scores",
		"comment",
		"status",
		"last_updated_by",
	}
}

// Row serializes one flattened applicant in Columns order.
func Row(f applicant.FlattenedApplicant) []string {
	return []string{
		f.ID,
		f.FirstName,
		f.LastName,
		f.Email,
		f.Phone,
		f.School,
		f.EducationLevel,
		strconv.Itoa(f.GraduationYear),
		f.Location,
		f.Age,
		strconv.FormatBool(f.AgeEligible),
		f.Major,
		f.Gender,
		f.Pronouns,
		f.Ethnicity,
		f.DietaryRestrictions,
		f.EngagementSource,
		f.ContributionRoles,
		strconv.Itoa(f.PrevHackathons),
		f.Github,
		f.Linkedin,
		f.Portfolio,
		f.ResumeUrl,
		formatFloat(f.TotalScore),
		formatFloat(f.TotalZScore),
		strconv.Itoa(f.NumScores),
		f.Comment,
		f.Status,
		f.LastUpdatedBy,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CSV renders the flattened rows as an RFC 4180 document with the stable
// header row.
func CSV(rows []applicant.FlattenedApplicant) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Columns()); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range rows {
		if err := w.Write(Row(rows[i])); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
