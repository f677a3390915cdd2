package valueobject

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPassword(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantReason string
	}{
		{name: "minimum", raw: "abcd"},
		{name: "maximum", raw: "abcdefgh"},
		{name: "keeps case and spaces", raw: " AbC d "},
		{name: "empty", raw: "", wantReason: ReasonEmpty},
		{name: "too short", raw: "abc", wantReason: ReasonLengthOutOfRange},
		{name: "too long", raw: "abcdefghi", wantReason: ReasonLengthOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPassword(tt.raw)
			if tt.wantReason != "" {
				var verr *ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, "password", verr.Field)
				assert.Equal(t, tt.wantReason, verr.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, got.Reveal())
		})
	}
}

func TestNewPassword_PreservesEveryLengthInRange(t *testing.T) {
	for n := MinPasswordLength; n <= MaxPasswordLength; n++ {
		raw := strings.Repeat("Ab ", 3)[:n]
		got, err := NewPassword(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, got.Reveal())
	}
}

func TestPassword_StringIsRedacted(t *testing.T) {
	p, err := NewPassword("s3cret")
	require.NoError(t, err)
	assert.NotContains(t, fmt.Sprintf("%v %s", p, p), "s3cret")
}
