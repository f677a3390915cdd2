package entity

import (
	"strconv"
	"time"

	"github.com/oksasatya/go-ddd-signup/internal/domain/valueobject"
)

// UserID is assigned by persistence, never by the domain.
type UserID int64

func (id UserID) String() string { return strconv.FormatInt(int64(id), 10) }

// User is the aggregate root for an account. VerificationCode is zero once
// the account has been verified.
type User struct {
	ID               UserID
	Username         valueobject.Username
	Email            valueobject.EmailAddress
	PasswordHash     valueobject.PasswordHash
	VerificationCode valueobject.VerificationCode
	IsVerified       bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CreateUserRequest is what the signup workflow hands to persistence.
type CreateUserRequest struct {
	Username         valueobject.Username
	PasswordHash     valueobject.PasswordHash
	Email            valueobject.EmailAddress
	VerificationCode valueobject.VerificationCode
}

// SignupEmailRequest is what the signup workflow hands to email delivery.
type SignupEmailRequest struct {
	Username         valueobject.Username
	Email            valueobject.EmailAddress
	VerificationCode valueobject.VerificationCode
}
