package user

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hacknight-dev/backend/srvcerror"
)

func TestRegisterValidation(t *testing.T) {
	srvc := NewUserSrvc([]byte("key"), nil)

	tests := []struct {
		name     string
		params   RegisterParams
		wantCode string
	}{
		{
			name:     "username too short",
			params:   RegisterParams{Username: "a", Email: "a@example.com", Password: "longenough"},
			wantCode: ErrCodeUsernameTooShort,
		},
		{
			name:     "username too long",
			params:   RegisterParams{Username: strings.Repeat("x", 33), Email: "a@example.com", Password: "longenough"},
			wantCode: ErrCodeUsernameTooLong,
		},
		{
			name:     "invalid email",
			params:   RegisterParams{Username: "ada", Email: "not-an-email", Password: "longenough"},
			wantCode: ErrCodeEmailInvalid,
		},
		{
			name:     "password too short",
			params:   RegisterParams{Username: "ada", Email: "a@example.com", Password: "short"},
			wantCode: ErrCodePasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srvc.Register(context.Background(), tt.params)
			require.Error(t, err)
			assert.True(t, srvcerror.HasErrorCode(err, tt.wantCode),
				"expected code %s, got %v", tt.wantCode, err)
		})
	}
}
