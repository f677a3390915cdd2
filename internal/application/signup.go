package application

import (
	"context"

	"github.com/samber/oops"

	"github.com/oksasatya/go-ddd-signup/internal/domain/entity"
	"github.com/oksasatya/go-ddd-signup/internal/domain/valueobject"
)

// CreateUserFunc persists a new account.
type CreateUserFunc func(ctx context.Context, req entity.CreateUserRequest) (entity.UserID, error)

// SendSignupEmailFunc delivers the verification email for a new account.
type SendSignupEmailFunc func(ctx context.Context, req entity.SignupEmailRequest) error

// SignupUser hashes the password, issues a verification code, creates the
// user and sends the verification email, stopping at the first failure.
// sendEmail is never called when createUser fails.
func SignupUser(ctx context.Context, createUser CreateUserFunc, sendEmail SendSignupEmailFunc, req valueobject.UserSignupRequest) (entity.UserID, error) {
	hash, err := valueobject.NewPasswordHash(req.Password())
	if err != nil {
		return 0, oops.Code("SIGNUP_HASH_FAILED").Wrap(err)
	}
	code := valueobject.NewVerificationCode()

	id, err := createUser(ctx, entity.CreateUserRequest{
		Username:         req.Username(),
		PasswordHash:     hash,
		Email:            req.Email(),
		VerificationCode: code,
	})
	if err != nil {
		return 0, &CreateUserError{Err: err}
	}

	if err := sendEmail(ctx, entity.SignupEmailRequest{
		Username:         req.Username(),
		Email:            req.Email(),
		VerificationCode: code,
	}); err != nil {
		return 0, &SendEmailError{UserID: id, Err: err}
	}
	return id, nil
}
