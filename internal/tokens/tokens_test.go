package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const secret = "test-secret-0123456789"

func TestSessionTokenRoundTrip(t *testing.T) {
	raw, err := NewSessionToken(secret, "sess-abc", time.Minute)
	require.NoError(t, err)

	sid, err := ParseSessionToken(secret, raw)
	require.NoError(t, err)
	require.Equal(t, "sess-abc", sid)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	raw, err := NewSessionToken(secret, "sess-abc", time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken("other-secret", raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenExpired(t *testing.T) {
	raw, err := NewSessionToken(secret, "sess-abc", -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken(secret, raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenGarbage(t *testing.T) {
	_, err := ParseSessionToken(secret, "not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
