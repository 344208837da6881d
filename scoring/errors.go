package scoring

import (
	"fmt"
	"net/http"

	"github.com/hacknight-dev/backend/srvcerror"
)

const ErrCodeUnknownCriterion = "unknown_criterion"

func newErrUnknownCriterion(criterionID string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnknownCriterion,
		fmt.Sprintf("criterion %q is not configured", criterionID),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidScoreValue = "invalid_score_value"

func newErrInvalidScoreValue(criterionID string, value float64) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidScoreValue,
		fmt.Sprintf("value %v is outside criterion %q's allowed range", value, criterionID),
	).SetHttpStatusCode(http.StatusBadRequest)
}
