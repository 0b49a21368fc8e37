package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docflow-app/docflow/internal/models"
)

func TestAdminApproveAndReject(t *testing.T) {
	env := newTestEnv(t)
	admin := env.addUser(t, "admin@example.com", models.RoleAdmin, models.StatusApproved)
	a := env.addUser(t, "a@example.com", models.RoleSponsor, models.StatusPending)
	b := env.addUser(t, "b@example.com", models.RoleEditor, models.StatusPending)
	cookie := env.sessionCookie(t, admin.ID)

	requireRedirect(t, env.get(fmt.Sprintf("/admin/userapprove/%d", a.ID), cookie), "/admin/usersview")
	requireRedirect(t, env.get(fmt.Sprintf("/admin/userreject/%d", b.ID), cookie), "/admin/usersview")

	var got models.User
	require.NoError(t, env.db.First(&got, a.ID).Error)
	require.Equal(t, models.StatusApproved, got.UserStatus)
	got = models.User{}
	require.NoError(t, env.db.First(&got, b.ID).Error)
	require.Equal(t, models.StatusRejected, got.UserStatus)
}

func TestAdminUserViewsListEveryAccount(t *testing.T) {
	env := newTestEnv(t)
	admin := env.addUser(t, "admin@example.com", models.RoleAdmin, models.StatusApproved)
	env.addUser(t, "pending@example.com", models.RoleSponsor, models.StatusPending)
	env.addUser(t, "approved@example.com", models.RoleEditor, models.StatusApproved)
	cookie := env.sessionCookie(t, admin.ID)

	// Both admin pages render the same unfiltered table.
	for _, path := range []string{"/admin/signuprequests", "/admin/usersview"} {
		w := env.get(path, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "pending@example.com")
		require.Contains(t, w.Body.String(), "approved@example.com")
	}
}

func TestAdminApproveUnknownUserFlashes(t *testing.T) {
	env := newTestEnv(t)
	admin := env.addUser(t, "admin@example.com", models.RoleAdmin, models.StatusApproved)
	cookie := env.sessionCookie(t, admin.ID)

	w := env.get("/admin/userapprove/9999", cookie)
	requireRedirect(t, w, "/admin/usersview")

	var flashed bool
	for _, c := range w.Result().Cookies() {
		if c.Name == flashCookie && c.Value != "" {
			flashed = true
		}
	}
	require.True(t, flashed, "missing user should leave a flash message")
}

func TestNonAdminCannotReachAdminRoutes(t *testing.T) {
	env := newTestEnv(t)
	sponsor := env.addUser(t, "sponsor@example.com", models.RoleSponsor, models.StatusApproved)
	cookie := env.sessionCookie(t, sponsor.ID)

	requireRedirect(t, env.get("/admin/usersview", cookie), "/login")
	requireRedirect(t, env.get("/admin/userapprove/1", cookie), "/login")
	requireRedirect(t, env.get("/admin/dashboard", nil), "/login")
}
