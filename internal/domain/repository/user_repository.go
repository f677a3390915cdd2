package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-ddd-signup/internal/domain/entity"
	"github.com/oksasatya/go-ddd-signup/internal/domain/valueobject"
)

// Uniqueness conflicts reported by CreateUser. Any other CreateUser failure is
// returned as the underlying cause.
var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrUserNotFound          = errors.New("user not found")
)

// UserRepository defines the persistence operations the signup flow needs.
type UserRepository interface {
	// CreateUser stores a new, unverified account and returns its id.
	CreateUser(ctx context.Context, req entity.CreateUserRequest) (entity.UserID, error)

	// VerifyUser consumes code. It reports false when no account holds it.
	VerifyUser(ctx context.Context, code string) (valueobject.Username, bool, error)

	// GetByUsername returns ErrUserNotFound when no account matches.
	GetByUsername(ctx context.Context, username valueobject.Username) (*entity.User, error)
}
