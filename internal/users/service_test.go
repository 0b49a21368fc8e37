package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docflow-app/docflow/internal/models"
	"github.com/docflow-app/docflow/internal/tester"
)

func newService(t *testing.T) *Service {
	return NewService(NewGormRepository(tester.NewDB(t)))
}

func TestSignUpStartsPending(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u, err := svc.SignUp(ctx, "s@example.com", "Sponsor One", "Acme", "hunter2!", models.RoleSponsor)
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	assert.Equal(t, models.StatusPending, u.UserStatus)
	assert.Equal(t, models.RoleSponsor, u.UserType)
	assert.NotEqual(t, "hunter2!", u.PasswordHash)
}

func TestSignUpRejectsAdminRole(t *testing.T) {
	svc := newService(t)

	_, err := svc.SignUp(context.Background(), "a@example.com", "Admin", "", "pw", models.RoleAdmin)
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "dup@example.com", "One", "", "pw123456", models.RoleEditor)
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, "dup@example.com", "Two", "", "pw123456", models.RoleEditor)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, "login@example.com", "Login", "", "correct horse", models.RoleSponsor)
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, "login@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	_, err = svc.Authenticate(ctx, "login@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSetStatusChangesExactlyOneUser(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u1, err := svc.SignUp(ctx, "one@example.com", "One", "", "pw123456", models.RoleSponsor)
	require.NoError(t, err)
	u2, err := svc.SignUp(ctx, "two@example.com", "Two", "", "pw123456", models.RoleEditor)
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, u1.ID, models.StatusApproved))

	got1, err := svc.GetByID(ctx, u1.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, got1.UserStatus)

	got2, err := svc.GetByID(ctx, u2.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got2.UserStatus)
}

func TestSetStatusUnknownUser(t *testing.T) {
	svc := newService(t)

	err := svc.SetStatus(context.Background(), 9999, models.StatusApproved)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSetStatusRejectsBogusValue(t *testing.T) {
	svc := newService(t)

	err := svc.SetStatus(context.Background(), 1, "frozen")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestListAllOrderedByID(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := svc.SignUp(ctx, email, "U", "", "pw123456", models.RoleEditor)
		require.NoError(t, err)
	}

	list, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}

func TestListEditorsFiltersByType(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "sp@x.com", "Sponsor", "", "pw123456", models.RoleSponsor)
	require.NoError(t, err)
	ed, err := svc.SignUp(ctx, "ed@x.com", "Editor", "", "pw123456", models.RoleEditor)
	require.NoError(t, err)

	list, err := svc.ListEditors(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, ed.ID, list[0].ID)
}
