package application

import (
	"context"

	"github.com/oksasatya/go-ddd-signup/internal/domain/valueobject"
)

// VerifyUserFunc atomically consumes a stored verification code.
type VerifyUserFunc func(ctx context.Context, code string) (valueobject.Username, bool, error)

// VerifyUser redeems code. An unknown or already consumed code yields
// (zero, false, nil); only infrastructure failures produce an error.
func VerifyUser(ctx context.Context, lookup VerifyUserFunc, code string) (valueobject.Username, bool, error) {
	if code == "" {
		return valueobject.Username{}, false, nil
	}
	username, found, err := lookup(ctx, code)
	if err != nil {
		return valueobject.Username{}, false, err
	}
	if !found {
		return valueobject.Username{}, false, nil
	}
	return username, true, nil
}
