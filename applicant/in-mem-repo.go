package applicant

import (
	"context"
	"strings"
	"sync"
	"time"
)

// InMemRepo is an in-memory Repo used by tests and local development. It
// mirrors the document store's merge-at-path behavior for score writes.
type InMemRepo struct {
	mu   sync.Mutex
	docs map[string]map[string]*Applicant // edition -> id -> applicant

	// EmailQueries records each ListByEmails call's email set so tests can
	// verify batching behavior.
	EmailQueries [][]string
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{docs: map[string]map[string]*Applicant{}}
}

func (r *InMemRepo) get(edition, id string) *Applicant {
	if byID, ok := r.docs[edition]; ok {
		return byID[id]
	}
	return nil
}

func copyApplicant(a *Applicant) *Applicant {
	cp := *a
	cp.Score.Scores = make(map[string]ScoreEntry, len(a.Score.Scores))
	for k, v := range a.Score.Scores {
		if v.NormalizedScore != nil {
			z := *v.NormalizedScore
			v.NormalizedScore = &z
		}
		cp.Score.Scores[k] = v
	}
	return &cp
}

func (r *InMemRepo) Get(ctx context.Context, edition, id string) (*Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.get(edition, id)
	if a == nil {
		return nil, ErrApplicantNotFound()
	}
	return copyApplicant(a), nil
}

func (r *InMemRepo) List(ctx context.Context, edition string) ([]Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Applicant
	for _, a := range r.docs[edition] {
		if a.Status.ApplicationStatus == StatusInProgress {
			continue
		}
		out = append(out, *copyApplicant(a))
	}
	return out, nil
}

func (r *InMemRepo) ListByStatus(ctx context.Context, edition string, status Status) ([]Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Applicant
	for _, a := range r.docs[edition] {
		if a.Status.ApplicationStatus == status {
			out = append(out, *copyApplicant(a))
		}
	}
	return out, nil
}

func (r *InMemRepo) ListByEmails(ctx context.Context, edition string, emails []string) ([]Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.EmailQueries = append(r.EmailQueries, append([]string(nil), emails...))
	wanted := map[string]bool{}
	for _, email := range emails {
		wanted[email] = true
	}
	var out []Applicant
	for _, a := range r.docs[edition] {
		emailLC := a.BasicInfo.EmailLC
		if emailLC == "" {
			emailLC = strings.ToLower(a.BasicInfo.Email)
		}
		if wanted[emailLC] {
			out = append(out, *copyApplicant(a))
		}
	}
	return out, nil
}

func (r *InMemRepo) SetScoreEntry(ctx context.Context, edition, id, criterionID string, entry ScoreEntry, totalScore float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.get(edition, id)
	if a == nil {
		return ErrApplicantNotFound()
	}
	if a.Score.Scores == nil {
		a.Score.Scores = map[string]ScoreEntry{}
	}
	a.Score.Scores[criterionID] = entry
	a.Score.TotalScore = totalScore
	a.Score.LastUpdated = entry.LastUpdated
	a.Score.LastUpdatedBy = entry.LastUpdatedBy
	return nil
}

func (r *InMemRepo) RemoveScoreEntry(ctx context.Context, edition, id, criterionID string, totalScore float64, grader string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.get(edition, id)
	if a == nil {
		return ErrApplicantNotFound()
	}
	delete(a.Score.Scores, criterionID)
	a.Score.TotalScore = totalScore
	a.Score.LastUpdated = at.Unix()
	a.Score.LastUpdatedBy = grader
	return nil
}

func (r *InMemRepo) SetComment(ctx context.Context, edition, id, comment string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.get(edition, id)
	if a == nil {
		return ErrApplicantNotFound()
	}
	a.Score.Comment = comment
	return nil
}

func (r *InMemRepo) SetStatus(ctx context.Context, edition, id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.get(edition, id)
	if a == nil {
		return ErrApplicantNotFound()
	}
	a.Status.ApplicationStatus = status
	return nil
}

func (r *InMemRepo) ApplyNormalization(ctx context.Context, edition, id string, normalized map[string]float64, totalZScore float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.get(edition, id)
	if a == nil {
		return ErrApplicantNotFound()
	}
	for criterionID, z := range normalized {
		entry, ok := a.Score.Scores[criterionID]
		if !ok {
			continue
		}
		zCopy := z
		entry.NormalizedScore = &zCopy
		a.Score.Scores[criterionID] = entry
	}
	a.Score.TotalZScore = totalZScore
	return nil
}

func (r *InMemRepo) Put(ctx context.Context, a *Applicant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.BasicInfo.EmailLC == "" {
		a.BasicInfo.EmailLC = strings.ToLower(a.BasicInfo.Email)
	}
	if r.docs[a.Edition] == nil {
		r.docs[a.Edition] = map[string]*Applicant{}
	}
	r.docs[a.Edition][a.ID] = copyApplicant(a)
	return nil
}
