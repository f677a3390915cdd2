package valueobject

import (
	"crypto/rand"
	"encoding/base64"
)

const (
	verificationCodeBytes = 15

	// VerificationCodeLength is the encoded length of every issued code.
	VerificationCodeLength = 20
)

// VerificationCode is a single-use, URL-safe proof of mailbox ownership.
type VerificationCode struct {
	value string
}

// NewVerificationCode draws 15 bytes from crypto/rand and encodes them as
// unpadded base64url.
func NewVerificationCode() VerificationCode {
	b := make([]byte, verificationCodeBytes)
	// crypto/rand.Read never returns an error since Go 1.24.
	_, _ = rand.Read(b)
	return VerificationCode{value: base64.RawURLEncoding.EncodeToString(b)}
}

// VerificationCodeFromStored rehydrates a code read back from storage.
func VerificationCodeFromStored(s string) VerificationCode {
	return VerificationCode{value: s}
}

func (c VerificationCode) String() string { return c.value }

func (c VerificationCode) IsZero() bool { return c.value == "" }
