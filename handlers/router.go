package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docflow-app/docflow/internal/config"
	"github.com/docflow-app/docflow/internal/documents"
	"github.com/docflow-app/docflow/internal/models"
	"github.com/docflow-app/docflow/internal/sessions"
	"github.com/docflow-app/docflow/internal/users"
	"github.com/docflow-app/docflow/pkg/middleware"
)

// NewRouter builds the gin engine with every application route. Health,
// readiness and metrics endpoints are added by the caller, global
// middlewares such as the rate limiter come in through global.
func NewRouter(cfg *config.Config, usersSvc *users.Service, docsSvc *documents.Service, sessionsSvc *sessions.Service, global ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(global...)
	LoadTemplates(r)

	auth := NewAuthHandler(cfg, usersSvc, sessionsSvc)
	sponsor := NewSponsorHandler(usersSvc, docsSvc)
	editor := NewEditorHandler(docsSvc)
	admin := NewAdminHandler(usersSvc)

	sessionAuth := middleware.SessionAuth(cfg.Session.Secret, cfg.Session.CookieName, sessionsSvc, usersSvc)

	r.GET("/login", auth.LoginForm)
	r.POST("/login", auth.Login)
	r.GET("/signup", auth.SignupForm)
	r.POST("/signup", auth.Signup)

	// The landing page sends authenticated users to their dashboard and
	// everyone else to the login form.
	r.GET("/", sessionAuth, func(c *gin.Context) {
		switch principal(c).UserType {
		case models.RoleSponsor:
			c.Redirect(http.StatusSeeOther, "/sponsor/dashboard")
		case models.RoleEditor:
			c.Redirect(http.StatusSeeOther, "/editor/dashboard")
		case models.RoleAdmin:
			c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		default:
			c.Redirect(http.StatusSeeOther, middleware.LoginPath)
		}
	})

	sponsorGroup := r.Group("/sponsor", sessionAuth, middleware.RequireRole(models.RoleSponsor))
	{
		sponsorGroup.GET("/logout", auth.Logout)
		getAndPost(sponsorGroup, "/dashboard", sponsor.Dashboard)

		approved := sponsorGroup.Group("", middleware.RequireApproved())
		approved.GET("/newdocument", sponsor.NewDocumentForm)
		approved.POST("/newdocument", sponsor.CreateDocument)
		getAndPost(approved, "/documents", sponsor.DocumentList)
		approved.GET("/documents/:document_id", sponsor.DocumentEditForm)
		approved.POST("/documents/:document_id", sponsor.DocumentEdit)
	}

	editorGroup := r.Group("/editor", sessionAuth, middleware.RequireRole(models.RoleEditor))
	{
		editorGroup.GET("/logout", auth.Logout)
		getAndPost(editorGroup, "/dashboard", editor.Dashboard)

		approved := editorGroup.Group("", middleware.RequireApproved())
		getAndPost(approved, "/documents", editor.DocumentList)
		approved.GET("/documents/:document_id", editor.DocumentEditForm)
		approved.POST("/documents/:document_id", editor.DocumentEdit)
	}

	adminGroup := r.Group("/admin", sessionAuth, middleware.RequireRole(models.RoleAdmin))
	{
		adminGroup.GET("/logout", auth.Logout)
		getAndPost(adminGroup, "/dashboard", admin.Dashboard)
		getAndPost(adminGroup, "/signuprequests", admin.SignupRequests)
		getAndPost(adminGroup, "/usersview", admin.UsersView)
		getAndPost(adminGroup, "/userapprove/:user_id", admin.UserApprove)
		getAndPost(adminGroup, "/userreject/:user_id", admin.UserReject)
	}

	return r
}

// getAndPost registers a handler under both methods, matching forms that
// submit back to the page they render on.
func getAndPost(g *gin.RouterGroup, path string, h gin.HandlerFunc) {
	g.GET(path, h)
	g.POST(path, h)
}
