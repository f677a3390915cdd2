package valueobject

import (
	"strings"
	"unicode/utf8"
)

// MaxUsernameLength is measured in runes on the raw input.
const MaxUsernameLength = 12

// Username is a trimmed, lowercased handle.
type Username struct {
	value string
}

// NewUsername validates raw and returns the normalized username.
func NewUsername(raw string) (Username, error) {
	if raw == "" {
		return Username{}, invalid("username", ReasonEmpty)
	}
	if utf8.RuneCountInString(raw) > MaxUsernameLength {
		return Username{}, invalid("username", ReasonTooLong)
	}
	return Username{value: strings.ToLower(strings.TrimSpace(raw))}, nil
}

// UsernameFromStored rehydrates a username read back from storage.
// Only persistence adapters should call it.
func UsernameFromStored(s string) Username {
	return Username{value: s}
}

func (u Username) String() string { return u.value }

func (u Username) IsZero() bool { return u.value == "" }
