package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docflow-app/docflow/internal/models"
	"github.com/docflow-app/docflow/internal/users"
	"github.com/docflow-app/docflow/pkg/logger"
)

// AdminHandler serves the admin pages: dashboard, the user table and the
// approve/reject actions.
type AdminHandler struct {
	usersSvc *users.Service
}

func NewAdminHandler(u *users.Service) *AdminHandler {
	return &AdminHandler{usersSvc: u}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	u := principal(c)
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title": "Admin Dashboard",
		"Flash": takeFlash(c),
		"Body":  fmt.Sprintf("Welcome, %s.", u.Name),
	})
}

// SignupRequests and UsersView render the same unfiltered user table under
// different titles; approval decisions happen from either page.
func (h *AdminHandler) SignupRequests(c *gin.Context) {
	h.userTable(c, "Signup Requests")
}

func (h *AdminHandler) UsersView(c *gin.Context) {
	h.userTable(c, "All Users")
}

func (h *AdminHandler) userTable(c *gin.Context, title string) {
	all, err := h.usersSvc.ListAll(c.Request.Context())
	if err != nil {
		logger.Errorf("failed to list users: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "users.html", gin.H{
		"Title": title,
		"Flash": takeFlash(c),
		"Users": all,
	})
}

func (h *AdminHandler) UserApprove(c *gin.Context) {
	h.setStatus(c, models.StatusApproved)
}

func (h *AdminHandler) UserReject(c *gin.Context) {
	h.setStatus(c, models.StatusRejected)
}

func (h *AdminHandler) setStatus(c *gin.Context, status string) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	if err := h.usersSvc.SetStatus(c.Request.Context(), id, status); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			setFlash(c, "No such user.")
			c.Redirect(http.StatusSeeOther, "/admin/usersview")
			return
		}
		logger.Errorf("failed to set user %d status: %v", id, err)
		setFlash(c, "Something went wrong, please try again.")
		c.Redirect(http.StatusSeeOther, "/admin/usersview")
		return
	}
	setFlash(c, fmt.Sprintf("User %d %s.", id, status))
	c.Redirect(http.StatusSeeOther, "/admin/usersview")
}
