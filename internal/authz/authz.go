// Package authz keeps the whole permission matrix in one place: role checks,
// approval checks and per-document ownership checks.
package authz

import (
	"errors"

	"github.com/docflow-app/docflow/internal/models"
)

// ErrDenied is returned for every role/approval/ownership mismatch. Handlers
// translate it into a redirect to the login page, never a bare 403 body.
var ErrDenied = errors.New("access denied")

// RequireRole checks that the principal holds the given role.
func RequireRole(u *models.User, role string) error {
	if u == nil || u.UserType != role {
		return ErrDenied
	}
	return nil
}

// RequireApproved checks that the principal's signup has been approved.
// Dashboards skip this check; document routes do not.
func RequireApproved(u *models.User) error {
	if u == nil || !u.Approved() {
		return ErrDenied
	}
	return nil
}

// CanEditDocument decides whether the principal may act on the document
// described by the retention row: sponsors must own it, editors must be
// assigned to it. A nil retention row always denies.
func CanEditDocument(u *models.User, ret *models.Retention) bool {
	if u == nil || ret == nil {
		return false
	}
	switch u.UserType {
	case models.RoleSponsor:
		return ret.SponsorID == u.ID
	case models.RoleEditor:
		return ret.EditorID == u.ID
	}
	return false
}
