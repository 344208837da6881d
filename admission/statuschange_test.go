package admission

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hacknight-dev/backend/applicant"
	"github.com/hacknight-dev/backend/srvcerror"
)

const testEdition = "hacknight2025"

func putWithEmail(t *testing.T, repo *applicant.InMemRepo, id, email string, status applicant.Status) {
	t.Helper()
	a := &applicant.Applicant{
		Edition: testEdition,
		ID:      id,
		Status:  applicant.AppStatus{ApplicationStatus: status},
	}
	a.BasicInfo.Email = email
	require.NoError(t, repo.Put(context.Background(), a))
}

func TestChangeStatusByEmailChunksLookups(t *testing.T) {
	repo := applicant.NewInMemRepo()
	srvc := NewAdmissionSrvc(repo, nil, nil)

	emails := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		email := fmt.Sprintf("appl%02d@example.com", i)
		emails = append(emails, email)
		putWithEmail(t, repo, fmt.Sprintf("appl%02d", i), email, applicant.StatusScored)
	}

	report, err := srvc.ChangeStatusByEmail(context.Background(), testEdition, emails, applicant.StatusWaitlisted)
	require.NoError(t, err)
	assert.Len(t, report.Updated, 25)
	assert.Empty(t, report.Skipped)
	assert.Empty(t, report.NotFound)

	// 25 distinct emails must go out as 10 + 10 + 5
	require.Len(t, repo.EmailQueries, 3)
	assert.Len(t, repo.EmailQueries[0], 10)
	assert.Len(t, repo.EmailQueries[1], 10)
	assert.Len(t, repo.EmailQueries[2], 5)

	a, err := repo.Get(context.Background(), testEdition, "appl13")
	require.NoError(t, err)
	assert.Equal(t, applicant.StatusWaitlisted, a.Status.ApplicationStatus)
}

func TestChangeStatusByEmailMatchesCaseInsensitively(t *testing.T) {
	repo := applicant.NewInMemRepo()
	srvc := NewAdmissionSrvc(repo, nil, nil)
	putWithEmail(t, repo, "appl1", "Ada@Example.com", applicant.StatusScored)

	report, err := srvc.ChangeStatusByEmail(context.Background(), testEdition,
		[]string{"ADA@example.COM", "  ada@example.com ", ""}, applicant.StatusRejected)
	require.NoError(t, err)

	// duplicates collapse into one lookup and one update
	assert.Equal(t, []string{"ada@example.com"}, report.Updated)
	require.Len(t, repo.EmailQueries, 1)
	assert.Equal(t, []string{"ada@example.com"}, repo.EmailQueries[0])
}

func TestChangeStatusByEmailSkipsUnsubmitted(t *testing.T) {
	repo := applicant.NewInMemRepo()
	srvc := NewAdmissionSrvc(repo, nil, nil)
	putWithEmail(t, repo, "appl1", "draft@example.com", applicant.StatusInProgress)
	putWithEmail(t, repo, "appl2", "done@example.com", applicant.StatusScored)

	report, err := srvc.ChangeStatusByEmail(context.Background(), testEdition,
		[]string{"draft@example.com", "done@example.com", "ghost@example.com"},
		applicant.StatusAcceptedPending)
	require.NoError(t, err)

	assert.Equal(t, []string{"done@example.com"}, report.Updated)
	assert.Equal(t, []string{"draft@example.com"}, report.Skipped)
	assert.Equal(t, []string{"ghost@example.com"}, report.NotFound)

	a, err := repo.Get(context.Background(), testEdition, "appl1")
	require.NoError(t, err)
	assert.Equal(t, applicant.StatusInProgress, a.Status.ApplicationStatus)
}

func TestChangeStatusByEmailRejectsUnknownStatus(t *testing.T) {
	srvc := NewAdmissionSrvc(applicant.NewInMemRepo(), nil, nil)

	_, err := srvc.ChangeStatusByEmail(context.Background(), testEdition,
		[]string{"a@example.com"}, applicant.Status("definitelyNot"))
	require.Error(t, err)
	assert.True(t, srvcerror.HasErrorCode(err, applicant.ErrCodeInvalidStatus))
}
