package valueobject

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var emailValidator = validator.New()

// EmailAddress is a syntactically valid, trimmed and lowercased mail address.
type EmailAddress struct {
	value string
}

// NewEmailAddress checks raw against the RFC 5322 addr-spec rule used by the
// request binder and normalizes it.
func NewEmailAddress(raw string) (EmailAddress, error) {
	s := strings.TrimSpace(raw)
	if s == "" || emailValidator.Var(s, "email") != nil {
		return EmailAddress{}, invalid("email", ReasonInvalidFormat)
	}
	return EmailAddress{value: strings.ToLower(s)}, nil
}

// EmailAddressFromStored rehydrates an address read back from storage.
func EmailAddressFromStored(s string) EmailAddress {
	return EmailAddress{value: s}
}

func (e EmailAddress) String() string { return e.value }

func (e EmailAddress) IsZero() bool { return e.value == "" }
