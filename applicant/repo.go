package applicant

import (
	"context"
	"time"
)

// Repo is the persistence boundary for applicant documents.
//
// Score mutations are deliberately path-scoped: there is no method that
// replaces the whole scores map, because a whole-map write computed from a
// locally cached copy can silently drop a concurrent grader's write to a
// different criterion of the same applicant. Implementations must merge at
// the score.scores.<criterionID> path.
type Repo interface {
	Get(ctx context.Context, edition, id string) (*Applicant, error)

	// List returns every applicant of the edition whose application is not
	// still being filled in (status != inProgress).
	List(ctx context.Context, edition string) ([]Applicant, error)

	// ListByStatus returns the edition's applicants with the given status.
	ListByStatus(ctx context.Context, edition string, status Status) ([]Applicant, error)

	// ListByEmails returns applicants whose lowercased email is in emails.
	// Callers chunk emails to the store's query-clause limit; one call is
	// one store query.
	ListByEmails(ctx context.Context, edition string, emails []string) ([]Applicant, error)

	// SetScoreEntry merges entry at score.scores.<criterionID> and updates
	// the score object's total and coarse metadata in the same write.
	SetScoreEntry(ctx context.Context, edition, id, criterionID string, entry ScoreEntry, totalScore float64) error

	// RemoveScoreEntry deletes the criterion's entry (toggle-off) and
	// updates the total and coarse metadata in the same write.
	RemoveScoreEntry(ctx context.Context, edition, id, criterionID string, totalScore float64, grader string, at time.Time) error

	SetComment(ctx context.Context, edition, id, comment string) error

	SetStatus(ctx context.Context, edition, id string, status Status) error

	// ApplyNormalization writes every standardized score and the new total
	// z-score of one applicant as a single update.
	ApplyNormalization(ctx context.Context, edition, id string, normalized map[string]float64, totalZScore float64) error

	// Put stores a whole applicant document. Used by intake and seeding,
	// never by the grading code paths.
	Put(ctx context.Context, a *Applicant) error
}
