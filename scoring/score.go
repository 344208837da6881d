package scoring

import (
	"context"
	"time"

	"github.com/hacknight-dev/backend/applicant"
)

// ScoringSrvc is the grading write surface: per-criterion score toggles,
// debounced comment saves, and the explicit save that applies the derived
// status.
type ScoringSrvc struct {
	repo     applicant.Repo
	criteria CriteriaSource
	bus      *applicant.UpdateBus
	comments *commentDebouncer
	now      func() time.Time
}

func NewScoringSrvc(repo applicant.Repo, criteria CriteriaSource, bus *applicant.UpdateBus) *ScoringSrvc {
	s := &ScoringSrvc{
		repo:     repo,
		criteria: criteria,
		bus:      bus,
		now:      time.Now,
	}
	s.comments = newCommentDebouncer(commentQuietInterval, s.flushComment)
	return s
}

// SetScore records grader's value for one criterion of one applicant.
//
// Toggle semantics: choosing the value that is already stored removes the
// entry instead, so a grader can deselect by clicking the same value again.
// The write is merged at the criterion's document path and carries the
// recomputed weighted total and coarse score metadata in the same
// operation. The applicant's status is not touched here; that happens on
// the explicit save.
func (s *ScoringSrvc) SetScore(ctx context.Context, edition, id, criterionID string, value float64, grader string) (*applicant.Applicant, error) {
	criteria, err := s.criteria.GetCriteria(ctx)
	if err != nil {
		return nil, err
	}
	criterion, found := findCriterion(criteria, criterionID)
	if !found {
		return nil, newErrUnknownCriterion(criterionID)
	}
	if !criterion.AllowsValue(value) {
		return nil, newErrInvalidScoreValue(criterionID, value)
	}

	a, err := s.repo.Get(ctx, edition, id)
	if err != nil {
		return nil, err
	}
	if a.Score.Scores == nil {
		a.Score.Scores = map[string]applicant.ScoreEntry{}
	}

	now := s.now()
	existing, hasEntry := a.Score.Scores[criterionID]
	if hasEntry && existing.Score == value {
		// toggle off
		delete(a.Score.Scores, criterionID)
		a.Score.TotalScore = RecomputeTotalScore(a.Score.Scores, criteria)
		a.Score.LastUpdated = now.Unix()
		a.Score.LastUpdatedBy = grader
		err = s.repo.RemoveScoreEntry(ctx, edition, id, criterionID, a.Score.TotalScore, grader, now)
	} else {
		entry := applicant.ScoreEntry{
			Score:         value,
			LastUpdated:   now.Unix(),
			LastUpdatedBy: grader,
		}
		a.Score.Scores[criterionID] = entry
		a.Score.TotalScore = RecomputeTotalScore(a.Score.Scores, criteria)
		a.Score.LastUpdated = now.Unix()
		a.Score.LastUpdatedBy = grader
		err = s.repo.SetScoreEntry(ctx, edition, id, criterionID, entry, a.Score.TotalScore)
	}
	if err != nil {
		return nil, err
	}

	s.publish(edition, a, grader)
	return a, nil
}

// Save is the explicit "save" action: it derives the coarse status from
// whether all configured criteria now have a score and persists it.
// Statuses outside the grading family (accepted, rejected, waitlisted) are
// left alone.
func (s *ScoringSrvc) Save(ctx context.Context, edition, id, grader string) (*applicant.Applicant, error) {
	criteria, err := s.criteria.GetCriteria(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.repo.Get(ctx, edition, id)
	if err != nil {
		return nil, err
	}

	hint := StatusHint(a.Score.Scores, criteria)
	if inGradingFamily(a.Status.ApplicationStatus) && a.Status.ApplicationStatus != hint {
		if err := s.repo.SetStatus(ctx, edition, id, hint); err != nil {
			return nil, err
		}
		a.Status.ApplicationStatus = hint
	}

	s.publish(edition, a, grader)
	return a, nil
}

// SaveComment persists the grading comment for one applicant. Writes are
// debounced behind a quiet interval and skipped entirely when the comment
// matches what is already stored, so reloading the form does not generate
// spurious writes.
func (s *ScoringSrvc) SaveComment(edition, id, comment string) {
	s.comments.save(edition, id, comment)
}

// FlushComments writes out any pending debounced comments immediately.
func (s *ScoringSrvc) FlushComments() {
	s.comments.flushAll()
}

func (s *ScoringSrvc) flushComment(edition, id, comment string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a, err := s.repo.Get(ctx, edition, id)
	if err != nil {
		return err
	}
	if a.Score.Comment == comment {
		return nil
	}
	return s.repo.SetComment(ctx, edition, id, comment)
}

func (s *ScoringSrvc) publish(edition string, a *applicant.Applicant, grader string) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(&applicant.Update{
		Edition:     edition,
		ApplicantID: a.ID,
		TotalScore:  a.Score.TotalScore,
		TotalZScore: a.Score.TotalZScore,
		Status:      a.Status.ApplicationStatus,
		UpdatedBy:   grader,
	})
}

func findCriterion(criteria []Criterion, criterionID string) (Criterion, bool) {
	for _, c := range criteria {
		if c.Field == criterionID {
			return c, true
		}
	}
	return Criterion{}, false
}

func inGradingFamily(status applicant.Status) bool {
	switch status {
	case applicant.StatusApplied, applicant.StatusGradingInProg, applicant.StatusScored:
		return true
	}
	return false
}
