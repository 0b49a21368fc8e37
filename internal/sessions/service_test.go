package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestService_CreateValidateDelete(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	id, err := svc.CreateSession(ctx, 9, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	sess, err := svc.ValidateSession(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, sess)
	require.Equal(t, uint(9), sess.UserID)

	require.NoError(t, svc.DeleteSession(ctx, id))
	sess2, err := svc.ValidateSession(ctx, id)
	require.NoError(t, err)
	require.Nil(t, sess2)
}

func TestService_ExpiredSessionIsInvalid(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	id, err := svc.CreateSession(ctx, 3, -time.Second)
	require.NoError(t, err)

	sess, err := svc.ValidateSession(ctx, id)
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestService_UnknownIDIsInvalid(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	sess, err := svc.ValidateSession(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, sess)
}
