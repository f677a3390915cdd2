package valueobject

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHash is a salted bcrypt digest of a Password.
type PasswordHash struct {
	value string
}

// NewPasswordHash hashes p with a fresh salt. Validated passwords are far
// below bcrypt's 72 byte input limit, so an error here means the random
// source failed.
func NewPasswordHash(p Password) (PasswordHash, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p.Reveal()), bcrypt.DefaultCost)
	if err != nil {
		return PasswordHash{}, err
	}
	return PasswordHash{value: string(b)}, nil
}

// PasswordHashFromStored rehydrates a persisted hash.
func PasswordHashFromStored(s string) PasswordHash {
	return PasswordHash{value: s}
}

// Match reports whether candidate is the plaintext behind h. A mismatch is
// (false, nil); an error means the stored hash itself is malformed.
func (h PasswordHash) Match(candidate string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(h.value), []byte(candidate))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}

func (h PasswordHash) String() string { return h.value }
