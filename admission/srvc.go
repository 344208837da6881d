package admission

import (
	"context"

	"github.com/hacknight-dev/backend/applicant"
)

// DecisionNotifier delivers acceptance decisions to the notification
// pipeline (email sender behind a queue).
type DecisionNotifier interface {
	NotifyAccepted(ctx context.Context, edition, applicantID, email string) error
}

// AdmissionSrvc turns the scored population into admission decisions: it
// previews accept-lists, commits confirmed ones, and runs bulk
// email-addressed status changes.
type AdmissionSrvc struct {
	repo     applicant.Repo
	notifier DecisionNotifier
	bus      *applicant.UpdateBus
}

func NewAdmissionSrvc(repo applicant.Repo, notifier DecisionNotifier, bus *applicant.UpdateBus) *AdmissionSrvc {
	return &AdmissionSrvc{repo: repo, notifier: notifier, bus: bus}
}

// Preview computes the accept-list for the operator's criteria without
// changing anything. The operator confirms it before Commit is called.
func (s *AdmissionSrvc) Preview(ctx context.Context, edition string, criteria Criteria) ([]string, error) {
	scored, err := s.repo.ListByStatus(ctx, edition, applicant.StatusScored)
	if err != nil {
		return nil, err
	}
	return Candidates(scored, criteria), nil
}
