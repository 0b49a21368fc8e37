package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docflow-app/docflow/internal/authz"
	"github.com/docflow-app/docflow/internal/models"
	"github.com/docflow-app/docflow/internal/sessions"
	"github.com/docflow-app/docflow/internal/tokens"
	"github.com/docflow-app/docflow/internal/users"
)

// PrincipalKey is the gin context key holding the authenticated *models.User.
const PrincipalKey = "principal"

// LoginPath is where every authentication or authorization failure lands.
// The app deliberately redirects instead of returning a 403 body.
const LoginPath = "/login"

// Principal returns the authenticated user stored by SessionAuth.
func Principal(c *gin.Context) *models.User {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

// SessionAuth resolves the session cookie to a user and stores it in the
// request context. Missing or invalid cookies redirect to the login page.
func SessionAuth(secret, cookieName string, sessionsSvc *sessions.Service, usersSvc *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookieName)
		if err != nil || raw == "" {
			redirectToLogin(c)
			return
		}
		sid, err := tokens.ParseSessionToken(secret, raw)
		if err != nil {
			redirectToLogin(c)
			return
		}
		sess, err := sessionsSvc.ValidateSession(c.Request.Context(), sid)
		if err != nil || sess == nil {
			redirectToLogin(c)
			return
		}
		u, err := usersSvc.GetByID(c.Request.Context(), sess.UserID)
		if err != nil {
			redirectToLogin(c)
			return
		}
		c.Set(PrincipalKey, u)
		c.Next()
	}
}

// RequireRole gates a route group on the principal's role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authz.RequireRole(Principal(c), role); err != nil {
			redirectToLogin(c)
			return
		}
		c.Next()
	}
}

// RequireApproved gates document routes on approval status. Dashboard routes
// don't carry this middleware; they render with a status flash instead.
func RequireApproved() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authz.RequireApproved(Principal(c)); err != nil {
			redirectToLogin(c)
			return
		}
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, LoginPath)
	c.Abort()
}
