package scoring

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hacknight-dev/backend/applicant"
	"github.com/hacknight-dev/backend/srvcerror"
)

const testEdition = "hacknight2025"

func newTestSrvc(t *testing.T) (*ScoringSrvc, *applicant.InMemRepo) {
	t.Helper()
	repo := applicant.NewInMemRepo()
	a := &applicant.Applicant{
		Edition: testEdition,
		ID:      "appl1",
		Status:  applicant.AppStatus{ApplicationStatus: applicant.StatusApplied},
	}
	require.NoError(t, repo.Put(context.Background(), a))
	return NewScoringSrvc(repo, InMemCriteria(twoCriteria()), applicant.NewUpdateBus()), repo
}

func TestSetScoreToggleIdempotence(t *testing.T) {
	srvc, repo := newTestSrvc(t)
	ctx := context.Background()

	a, err := srvc.SetScore(ctx, testEdition, "appl1", "a", 4, "ada")
	require.NoError(t, err)
	assert.Equal(t, 8.0, a.Score.TotalScore)
	assert.Equal(t, "ada", a.Score.LastUpdatedBy)

	stored, err := repo.Get(ctx, testEdition, "appl1")
	require.NoError(t, err)
	assert.Equal(t, 4.0, stored.Score.Scores["a"].Score)
	assert.Equal(t, "ada", stored.Score.Scores["a"].LastUpdatedBy)

	// same value again removes the entry (toggle off)
	a, err = srvc.SetScore(ctx, testEdition, "appl1", "a", 4, "ada")
	require.NoError(t, err)
	assert.Equal(t, 0.0, a.Score.TotalScore)

	stored, err = repo.Get(ctx, testEdition, "appl1")
	require.NoError(t, err)
	_, present := stored.Score.Scores["a"]
	assert.False(t, present, "entry should be removed after toggling the same value")
}

func TestSetScoreOverwriteDifferentValue(t *testing.T) {
	srvc, repo := newTestSrvc(t)
	ctx := context.Background()

	_, err := srvc.SetScore(ctx, testEdition, "appl1", "a", 4, "ada")
	require.NoError(t, err)
	_, err = srvc.SetScore(ctx, testEdition, "appl1", "a", 2, "ada")
	require.NoError(t, err)

	stored, err := repo.Get(ctx, testEdition, "appl1")
	require.NoError(t, err)
	assert.Equal(t, 2.0, stored.Score.Scores["a"].Score)
	assert.Equal(t, 4.0, stored.Score.TotalScore)
}

func TestSetScoreRejectsUnknownCriterion(t *testing.T) {
	srvc, _ := newTestSrvc(t)

	_, err := srvc.SetScore(context.Background(), testEdition, "appl1", "nope", 3, "ada")
	require.Error(t, err)
	assert.True(t, srvcerror.HasErrorCode(err, ErrCodeUnknownCriterion))
}

func TestSetScoreRejectsOffGridValue(t *testing.T) {
	srvc, _ := newTestSrvc(t)

	_, err := srvc.SetScore(context.Background(), testEdition, "appl1", "a", 7, "ada")
	require.Error(t, err)
	assert.True(t, srvcerror.HasErrorCode(err, ErrCodeInvalidScoreValue))
}

func TestSaveDerivesStatus(t *testing.T) {
	srvc, repo := newTestSrvc(t)
	ctx := context.Background()

	// one of two criteria scored: still grading
	_, err := srvc.SetScore(ctx, testEdition, "appl1", "a", 4, "ada")
	require.NoError(t, err)
	a, err := srvc.Save(ctx, testEdition, "appl1", "ada")
	require.NoError(t, err)
	assert.Equal(t, applicant.StatusGradingInProg, a.Status.ApplicationStatus)

	// score toggles alone never change status
	_, err = srvc.SetScore(ctx, testEdition, "appl1", "b", 0, "ada")
	require.NoError(t, err)
	stored, err := repo.Get(ctx, testEdition, "appl1")
	require.NoError(t, err)
	assert.Equal(t, applicant.StatusGradingInProg, stored.Status.ApplicationStatus)

	// both scored (0 counts): scored on save
	a, err = srvc.Save(ctx, testEdition, "appl1", "ada")
	require.NoError(t, err)
	assert.Equal(t, applicant.StatusScored, a.Status.ApplicationStatus)
}

func TestSaveLeavesDecidedStatusesAlone(t *testing.T) {
	srvc, repo := newTestSrvc(t)
	ctx := context.Background()

	require.NoError(t, repo.SetStatus(ctx, testEdition, "appl1", applicant.StatusAcceptedPending))

	a, err := srvc.Save(ctx, testEdition, "appl1", "ada")
	require.NoError(t, err)
	assert.Equal(t, applicant.StatusAcceptedPending, a.Status.ApplicationStatus)
}

type commentCountingRepo struct {
	*applicant.InMemRepo
	commentWrites atomic.Int32
}

func (r *commentCountingRepo) SetComment(ctx context.Context, edition, id, comment string) error {
	r.commentWrites.Add(1)
	return r.InMemRepo.SetComment(ctx, edition, id, comment)
}

func TestCommentSkippedWhenUnchanged(t *testing.T) {
	repo := &commentCountingRepo{InMemRepo: applicant.NewInMemRepo()}
	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, &applicant.Applicant{
		Edition: testEdition,
		ID:      "appl1",
		Score:   applicant.Score{Comment: "looks good"},
		Status:  applicant.AppStatus{ApplicationStatus: applicant.StatusApplied},
	}))

	srvc := NewScoringSrvc(repo, InMemCriteria(twoCriteria()), nil)

	// identical comment: debounced flush must not write
	require.NoError(t, srvc.flushComment(testEdition, "appl1", "looks good"))
	assert.Equal(t, int32(0), repo.commentWrites.Load())

	// changed comment: one write
	require.NoError(t, srvc.flushComment(testEdition, "appl1", "even better"))
	assert.Equal(t, int32(1), repo.commentWrites.Load())

	stored, err := repo.Get(ctx, testEdition, "appl1")
	require.NoError(t, err)
	assert.Equal(t, "even better", stored.Score.Comment)
}
