package admission

import (
	"context"

	"github.com/hacknight-dev/backend/applicant"
	"github.com/hacknight-dev/backend/logger"
)

// CommitResult reports what the accept-list commit actually did. Partial
// success is a result, not an error: each applicant's write is independent
// and independently safe to retry.
type CommitResult struct {
	Accepted []string `json:"accepted"`
	Failed   []string `json:"failed"`
}

// Commit transitions each confirmed candidate to "accepted, awaiting
// response" and enqueues a decision notification per accepted applicant.
// The status writes are plain per-applicant batch writes; the decision
// logic itself happened in Preview.
func (s *AdmissionSrvc) Commit(ctx context.Context, edition string, applicantIDs []string) (CommitResult, error) {
	log := logger.FromContext(ctx)

	result := CommitResult{}
	for _, id := range applicantIDs {
		a, err := s.repo.Get(ctx, edition, id)
		if err != nil {
			log.Warn("accept commit: failed to read applicant",
				"applicant_id", id, "error", err)
			result.Failed = append(result.Failed, id)
			continue
		}
		if err := s.repo.SetStatus(ctx, edition, id, applicant.StatusAcceptedPending); err != nil {
			log.Warn("accept commit: failed to set status",
				"applicant_id", id, "error", err)
			result.Failed = append(result.Failed, id)
			continue
		}
		result.Accepted = append(result.Accepted, id)

		if s.bus != nil {
			s.bus.Publish(&applicant.Update{
				Edition:     edition,
				ApplicantID: id,
				TotalScore:  a.Score.TotalScore,
				TotalZScore: a.Score.TotalZScore,
				Status:      applicant.StatusAcceptedPending,
			})
		}

		if s.notifier == nil {
			continue
		}
		err = s.notifier.NotifyAccepted(ctx, edition, id, a.BasicInfo.Email)
		if err != nil {
			// the status write stands; the notification can be re-sent
			log.Error("accept commit: failed to enqueue decision notification",
				"applicant_id", id, "error", err)
		}
	}
	return result, nil
}
