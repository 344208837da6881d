package applicant

import (
	"net/http"

	"github.com/hacknight-dev/backend/srvcerror"
)

const ErrCodeApplicantNotFound = "applicant_not_found"

func ErrApplicantNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeApplicantNotFound,
		"applicant not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeInvalidStatus = "invalid_status"

func ErrInvalidStatus() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidStatus,
		"unknown application status",
	).SetHttpStatusCode(http.StatusBadRequest)
}
