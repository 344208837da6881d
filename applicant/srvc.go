package applicant

import (
	"context"
	"sort"
)

// ApplicantSrvc reads applicant populations and exposes the live update
// stream. All grading-side mutations live in the scoring and admission
// services; this service is the read/projection surface.
type ApplicantSrvc struct {
	repo Repo
	bus  *UpdateBus
}

func NewApplicantSrvc(repo Repo, bus *UpdateBus) *ApplicantSrvc {
	return &ApplicantSrvc{repo: repo, bus: bus}
}

func (s *ApplicantSrvc) Get(ctx context.Context, edition, id string) (*Applicant, error) {
	return s.repo.Get(ctx, edition, id)
}

// ListFlattened returns the edition's applicants (excluding in-progress
// applications) projected to flat rows, ordered by last name then id so the
// operator table and CSV export are stable between reads.
func (s *ApplicantSrvc) ListFlattened(ctx context.Context, edition string) ([]FlattenedApplicant, error) {
	applicants, err := s.repo.List(ctx, edition)
	if err != nil {
		return nil, err
	}
	rows := make([]FlattenedApplicant, len(applicants))
	for i, a := range applicants {
		rows[i] = Flatten(a, edition)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].LastName != rows[j].LastName {
			return rows[i].LastName < rows[j].LastName
		}
		return rows[i].ID < rows[j].ID
	})
	return rows, nil
}

func (s *ApplicantSrvc) SubscribeUpdates(ctx context.Context) (<-chan *Update, error) {
	return s.bus.Subscribe(ctx)
}
