package user

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hacknight-dev/backend/auth"
	"github.com/hacknight-dev/backend/srvcerror"
)

const (
	minUsernameLength = 2
	maxUsernameLength = 32
	minPasswordLength = 8
)

// UserSrvc manages the admin console accounts: the operators and graders
// who log into the grading tool.
type UserSrvc struct {
	jwtKey    []byte
	userTable *DynamoDbUserTable
}

func NewUserSrvc(jwtKey []byte, userTable *DynamoDbUserTable) *UserSrvc {
	return &UserSrvc{
		jwtKey:    jwtKey,
		userTable: userTable,
	}
}

type RegisterParams struct {
	Username string
	Email    string
	Password string
}

func (s *UserSrvc) Register(ctx context.Context, p RegisterParams) (*UserRow, error) {
	if len(p.Username) < minUsernameLength {
		return nil, newErrUsernameTooShort(minUsernameLength)
	}
	if len(p.Username) > maxUsernameLength {
		return nil, newErrUsernameTooLong()
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return nil, newErrEmailInvalid()
	}
	if len(p.Password) < minPasswordLength {
		return nil, newErrPasswordTooShort(minPasswordLength)
	}

	existing, err := s.userTable.List(ctx)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error listing users: %w", err))
	}
	for _, u := range existing {
		if u.Username == p.Username {
			return nil, newErrUsernameExists()
		}
		if u.Email == p.Email {
			return nil, newErrEmailExists()
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error hashing password: %w", err))
	}

	row := &UserRow{
		Uuid:      uuid.New().String(),
		Username:  p.Username,
		Email:     p.Email,
		BcryptPwd: hashed,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.userTable.Save(ctx, row); err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error saving user: %w", err))
	}

	return row, nil
}

// Login checks the credentials and returns a signed JWT.
func (s *UserSrvc) Login(ctx context.Context, username, password string) (string, error) {
	allUsers, err := s.userTable.List(ctx)
	if err != nil {
		return "", srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error listing users: %w", err))
	}

	for _, u := range allUsers {
		if u.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword(u.BcryptPwd, []byte(password)) != nil {
			continue
		}
		id, err := uuid.Parse(u.Uuid)
		if err != nil {
			return "", srvcerror.ErrInternalSE().SetDebug(
				fmt.Errorf("error parsing user uuid: %w", err))
		}
		token, err := auth.GenerateJWT(u.Username, u.Email, id, []string{"grader"}, s.jwtKey)
		if err != nil {
			return "", srvcerror.ErrInternalSE().SetDebug(
				fmt.Errorf("error generating JWT: %w", err))
		}
		return token, nil
	}

	return "", newErrInvalidCredentials()
}
