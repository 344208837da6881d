package admission

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hacknight-dev/backend/applicant"
)

type recordingNotifier struct {
	notified []string
	err      error
}

func (n *recordingNotifier) NotifyAccepted(ctx context.Context, edition, applicantID, email string) error {
	n.notified = append(n.notified, applicantID+"#"+email)
	return n.err
}

func TestCommitAcceptsAndNotifies(t *testing.T) {
	repo := applicant.NewInMemRepo()
	notifier := &recordingNotifier{}
	srvc := NewAdmissionSrvc(repo, notifier, applicant.NewUpdateBus())

	putWithEmail(t, repo, "appl1", "ada@example.com", applicant.StatusScored)

	result, err := srvc.Commit(context.Background(), testEdition, []string{"appl1", "missing"})
	require.NoError(t, err)
	assert.Equal(t, []string{"appl1"}, result.Accepted)
	assert.Equal(t, []string{"missing"}, result.Failed)
	assert.Equal(t, []string{"appl1#ada@example.com"}, notifier.notified)

	a, err := repo.Get(context.Background(), testEdition, "appl1")
	require.NoError(t, err)
	assert.Equal(t, applicant.StatusAcceptedPending, a.Status.ApplicationStatus)
}

func TestCommitNotificationFailureKeepsStatus(t *testing.T) {
	repo := applicant.NewInMemRepo()
	notifier := &recordingNotifier{err: errors.New("queue unreachable")}
	srvc := NewAdmissionSrvc(repo, notifier, nil)

	putWithEmail(t, repo, "appl1", "ada@example.com", applicant.StatusScored)

	result, err := srvc.Commit(context.Background(), testEdition, []string{"appl1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"appl1"}, result.Accepted)
	assert.Empty(t, result.Failed)

	a, err := repo.Get(context.Background(), testEdition, "appl1")
	require.NoError(t, err)
	assert.Equal(t, applicant.StatusAcceptedPending, a.Status.ApplicationStatus)
}
