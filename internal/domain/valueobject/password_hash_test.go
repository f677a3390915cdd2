package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash_RoundTrip(t *testing.T) {
	for _, raw := range []string{"abcd", "Ab C1!", "12345678", "äöüß"} {
		p, err := NewPassword(raw)
		require.NoError(t, err)

		h, err := NewPasswordHash(p)
		require.NoError(t, err)
		assert.NotContains(t, h.String(), raw)

		ok, err := h.Match(raw)
		require.NoError(t, err)
		assert.True(t, ok, "match %q", raw)

		ok, err = h.Match(raw + "x")
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestPasswordHash_SaltDiffersPerCall(t *testing.T) {
	p, err := NewPassword("same")
	require.NoError(t, err)

	h1, err := NewPasswordHash(p)
	require.NoError(t, err)
	h2, err := NewPasswordHash(p)
	require.NoError(t, err)
	assert.NotEqual(t, h1.String(), h2.String())
}

func TestPasswordHash_MalformedStoredHash(t *testing.T) {
	ok, err := PasswordHashFromStored("not-a-bcrypt-hash").Match("abcd")
	assert.Error(t, err)
	assert.False(t, ok)
}
