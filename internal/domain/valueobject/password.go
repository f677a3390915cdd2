package valueobject

import "unicode/utf8"

const (
	MinPasswordLength = 4
	MaxPasswordLength = 8
)

// Password is a plaintext credential that only lives for the duration of a
// signup. It is kept exactly as typed.
type Password struct {
	value string
}

// NewPassword validates the length of raw without normalizing it.
func NewPassword(raw string) (Password, error) {
	if raw == "" {
		return Password{}, invalid("password", ReasonEmpty)
	}
	if n := utf8.RuneCountInString(raw); n < MinPasswordLength || n > MaxPasswordLength {
		return Password{}, invalid("password", ReasonLengthOutOfRange)
	}
	return Password{value: raw}, nil
}

// Reveal returns the plaintext. Only the hasher needs it.
func (p Password) Reveal() string { return p.value }

// String is redacted so a password never ends up in a log line.
func (p Password) String() string { return "********" }

func (p Password) IsZero() bool { return p.value == "" }
