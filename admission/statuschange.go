package admission

import (
	"context"
	"sort"
	"strings"

	"github.com/hacknight-dev/backend/applicant"
)

// The document store caps membership queries at this many clauses, so
// email lookups are issued in chunks of at most this size.
const emailQueryLimit = 10

// StatusChangeReport distinguishes the emails that matched an applicant
// (and were updated) from the ones that matched nothing. Unmatched emails
// are surfaced to the caller, never treated as failure.
type StatusChangeReport struct {
	Updated  []string `json:"updated"`
	Skipped  []string `json:"skipped"` // matched but still inProgress
	NotFound []string `json:"not_found"`
}

// ChangeStatusByEmail sets the target status on every applicant whose
// email is in emails. Emails are matched case-insensitively and
// de-duplicated; applicants whose application is still being filled in are
// skipped. Lookups are chunked to the store's query-clause limit.
func (s *AdmissionSrvc) ChangeStatusByEmail(ctx context.Context, edition string, emails []string, target applicant.Status) (StatusChangeReport, error) {
	if !applicant.ValidStatus(target) {
		return StatusChangeReport{}, applicant.ErrInvalidStatus()
	}

	seen := map[string]bool{}
	wanted := make([]string, 0, len(emails))
	for _, email := range emails {
		lc := strings.ToLower(strings.TrimSpace(email))
		if lc == "" || seen[lc] {
			continue
		}
		seen[lc] = true
		wanted = append(wanted, lc)
	}
	sort.Strings(wanted)

	report := StatusChangeReport{}
	matched := map[string]bool{}

	for start := 0; start < len(wanted); start += emailQueryLimit {
		end := min(start+emailQueryLimit, len(wanted))
		chunk := wanted[start:end]

		applicants, err := s.repo.ListByEmails(ctx, edition, chunk)
		if err != nil {
			return report, err
		}

		for i := range applicants {
			a := &applicants[i]
			email := strings.ToLower(a.BasicInfo.Email)
			matched[email] = true

			if a.Status.ApplicationStatus == applicant.StatusInProgress {
				report.Skipped = append(report.Skipped, email)
				continue
			}
			if err := s.repo.SetStatus(ctx, edition, a.ID, target); err != nil {
				return report, err
			}
			report.Updated = append(report.Updated, email)

			if s.bus != nil {
				s.bus.Publish(&applicant.Update{
					Edition:     edition,
					ApplicantID: a.ID,
					TotalScore:  a.Score.TotalScore,
					TotalZScore: a.Score.TotalZScore,
					Status:      target,
				})
			}
		}
	}

	for _, email := range wanted {
		if !matched[email] {
			report.NotFound = append(report.NotFound, email)
		}
	}
	return report, nil
}
