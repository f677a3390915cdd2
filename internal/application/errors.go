package application

import (
	"errors"

	"github.com/oksasatya/go-ddd-signup/internal/domain/entity"
)

// WorkflowError is implemented by *CreateUserError and *SendEmailError only.
// Callers branch on the concrete type with errors.As.
type WorkflowError interface {
	error
	workflowStep() string
}

// CreateUserError wraps a failure of the create-user capability. Err is
// repository.ErrEmailAlreadyExists, repository.ErrUsernameAlreadyExists or
// the storage cause.
type CreateUserError struct {
	Err error
}

func (e *CreateUserError) Error() string        { return "create user: " + e.Err.Error() }
func (e *CreateUserError) Unwrap() error        { return e.Err }
func (e *CreateUserError) workflowStep() string { return "create_user" }

// SendEmailError wraps a failure of the send-email capability. The account
// identified by UserID exists at this point but stays unverified.
type SendEmailError struct {
	UserID entity.UserID
	Err    error
}

func (e *SendEmailError) Error() string        { return "send signup email: " + e.Err.Error() }
func (e *SendEmailError) Unwrap() error        { return e.Err }
func (e *SendEmailError) workflowStep() string { return "send_email" }

// FailedStep names the workflow step behind err, or "" when err is not a
// WorkflowError.
func FailedStep(err error) string {
	var werr WorkflowError
	if errors.As(err, &werr) {
		return werr.workflowStep()
	}
	return ""
}

var (
	_ WorkflowError = (*CreateUserError)(nil)
	_ WorkflowError = (*SendEmailError)(nil)
)
