package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docflow-app/docflow/internal/config"
	"github.com/docflow-app/docflow/internal/models"
	"github.com/docflow-app/docflow/internal/sessions"
	"github.com/docflow-app/docflow/internal/tokens"
	"github.com/docflow-app/docflow/internal/users"
	"github.com/docflow-app/docflow/pkg/logger"
	"github.com/docflow-app/docflow/pkg/metrics"
)

// AuthHandler serves login, signup and logout.
type AuthHandler struct {
	cfg         *config.Config
	usersSvc    *users.Service
	sessionsSvc *sessions.Service
}

func NewAuthHandler(cfg *config.Config, u *users.Service, s *sessions.Service) *AuthHandler {
	return &AuthHandler{cfg: cfg, usersSvc: u, sessionsSvc: s}
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Flash": takeFlash(c)})
}

// Login verifies the password, opens a session and sets the signed cookie,
// then sends the user to their role's dashboard.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	u, err := h.usersSvc.Authenticate(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			setFlash(c, "Invalid email or password.")
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		logger.Errorf("login for %q failed: %v", email, err)
		setFlash(c, "Something went wrong, please try again.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	sid, err := h.sessionsSvc.CreateSession(c.Request.Context(), u.ID, h.cfg.Session.TTL)
	if err != nil {
		logger.Errorf("failed to create session: %v", err)
		setFlash(c, "Something went wrong, please try again.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	raw, err := tokens.NewSessionToken(h.cfg.Session.Secret, sid, h.cfg.Session.TTL)
	if err != nil {
		logger.Errorf("failed to sign session token: %v", err)
		setFlash(c, "Something went wrong, please try again.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	c.SetCookie(h.cfg.Session.CookieName, raw, int(h.cfg.Session.TTL.Seconds()), "/", "", false, true)
	metrics.Logins.Inc()

	switch u.UserType {
	case models.RoleSponsor:
		c.Redirect(http.StatusSeeOther, "/sponsor/dashboard")
	case models.RoleEditor:
		c.Redirect(http.StatusSeeOther, "/editor/dashboard")
	case models.RoleAdmin:
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
	default:
		c.Redirect(http.StatusSeeOther, "/login")
	}
}

func (h *AuthHandler) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{"Flash": takeFlash(c)})
}

// Signup creates a pending account; an admin has to approve it before the
// document routes open up.
func (h *AuthHandler) Signup(c *gin.Context) {
	_, err := h.usersSvc.SignUp(
		c.Request.Context(),
		c.PostForm("email"),
		c.PostForm("name"),
		c.PostForm("organization"),
		c.PostForm("password"),
		c.PostForm("role"),
	)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrEmailTaken):
			setFlash(c, "That email is already registered.")
		case errors.Is(err, users.ErrInvalidRole), errors.Is(err, users.ErrInvalidCredentials):
			setFlash(c, "Please fill in all required fields.")
		default:
			logger.Errorf("signup failed: %v", err)
			setFlash(c, "Something went wrong, please try again.")
		}
		c.Redirect(http.StatusSeeOther, "/signup")
		return
	}

	setFlash(c, "Signup received. An administrator must approve your account before you can work on documents.")
	c.Redirect(http.StatusSeeOther, "/login")
}

// Logout deletes the session and clears the cookie. Registered under each
// role group, so only the matching role reaches it.
func (h *AuthHandler) Logout(c *gin.Context) {
	if raw, err := c.Cookie(h.cfg.Session.CookieName); err == nil && raw != "" {
		if sid, err := tokens.ParseSessionToken(h.cfg.Session.Secret, raw); err == nil {
			_ = h.sessionsSvc.DeleteSession(c.Request.Context(), sid)
		}
	}
	c.SetCookie(h.cfg.Session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
