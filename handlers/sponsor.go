package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/docflow-app/docflow/internal/authz"
	"github.com/docflow-app/docflow/internal/documents"
	"github.com/docflow-app/docflow/internal/models"
	"github.com/docflow-app/docflow/internal/users"
	"github.com/docflow-app/docflow/pkg/logger"
	"github.com/docflow-app/docflow/pkg/middleware"
)

// SponsorHandler serves the sponsor pages: dashboard, document creation,
// listing and editing with reassignment.
type SponsorHandler struct {
	usersSvc *users.Service
	docsSvc  *documents.Service
}

func NewSponsorHandler(u *users.Service, d *documents.Service) *SponsorHandler {
	return &SponsorHandler{usersSvc: u, docsSvc: d}
}

func (h *SponsorHandler) Dashboard(c *gin.Context) {
	u := principal(c)
	flash := takeFlash(c)
	if flash == "" {
		flash = approvalNotice(u)
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title": "Sponsor Dashboard",
		"Flash": flash,
		"Body":  fmt.Sprintf("Welcome, %s.", u.Name),
	})
}

func (h *SponsorHandler) NewDocumentForm(c *gin.Context) {
	editors, err := h.usersSvc.ListEditors(c.Request.Context())
	if err != nil {
		logger.Errorf("failed to list editors: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "newdocument.html", gin.H{
		"Flash":   takeFlash(c),
		"Editors": editors,
	})
}

func (h *SponsorHandler) CreateDocument(c *gin.Context) {
	u := principal(c)
	name := c.PostForm("document_name")
	body := c.PostForm("document_body")
	editorID, err := strconv.ParseUint(c.PostForm("editor_id"), 10, 64)
	if name == "" || err != nil {
		setFlash(c, "A document needs a name and an editor.")
		c.Redirect(http.StatusSeeOther, "/sponsor/newdocument")
		return
	}

	_, err = h.docsSvc.Create(c.Request.Context(), u, name, body, uint(editorID))
	if err != nil {
		if errors.Is(err, documents.ErrNoSuchEditor) {
			setFlash(c, "The chosen editor does not exist.")
			c.Redirect(http.StatusSeeOther, "/sponsor/newdocument")
			return
		}
		logger.Errorf("failed to create document: %v", err)
		setFlash(c, "Something went wrong, please try again.")
		c.Redirect(http.StatusSeeOther, "/sponsor/newdocument")
		return
	}

	c.Redirect(http.StatusSeeOther, "/sponsor/documents")
}

func (h *SponsorHandler) DocumentList(c *gin.Context) {
	u := principal(c)
	rows, err := h.docsSvc.ListForSponsor(c.Request.Context(), u.ID)
	if err != nil {
		logger.Errorf("failed to list sponsor documents: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "documents.html", gin.H{
		"Title":     "My Documents",
		"Flash":     takeFlash(c),
		"Documents": rows,
		"EditBase":  "/sponsor/documents/",
	})
}

func (h *SponsorHandler) DocumentEditForm(c *gin.Context) {
	u := principal(c)
	id, ok := paramID(c, "document_id")
	if !ok {
		return
	}

	doc, ret, autodocBody, err := h.docsSvc.Get(c.Request.Context(), u, id)
	if err != nil {
		denyOrFail(c, err, "failed to load document")
		return
	}
	editors, err := h.usersSvc.ListEditors(c.Request.Context())
	if err != nil {
		logger.Errorf("failed to list editors: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "document_edit.html", gin.H{
		"Flash":           takeFlash(c),
		"Action":          fmt.Sprintf("/sponsor/documents/%d", doc.ID),
		"Document":        doc,
		"Editors":         editors,
		"CurrentEditorID": ret.EditorID,
		"AutodocBody":     autodocBody,
	})
}

func (h *SponsorHandler) DocumentEdit(c *gin.Context) {
	u := principal(c)
	id, ok := paramID(c, "document_id")
	if !ok {
		return
	}

	var editorID *uint
	if raw := c.PostForm("editor_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			setFlash(c, "The chosen editor does not exist.")
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/sponsor/documents/%d", id))
			return
		}
		v := uint(parsed)
		editorID = &v
	}

	err := h.docsSvc.Edit(c.Request.Context(), u, id, c.PostForm("document_name"), c.PostForm("document_body"), editorID)
	if err != nil {
		if errors.Is(err, documents.ErrNoSuchEditor) {
			setFlash(c, "The chosen editor does not exist.")
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/sponsor/documents/%d", id))
			return
		}
		denyOrFail(c, err, "failed to edit document")
		return
	}

	setFlash(c, "Document saved.")
	c.Redirect(http.StatusSeeOther, "/sponsor/documents")
}

// principal returns the authenticated user set by the session middleware.
// The middleware redirects before the handler runs when there is none.
func principal(c *gin.Context) *models.User {
	return middleware.Principal(c)
}

// approvalNotice tells pending and rejected users why the document routes
// are closed to them. Approved users get no notice.
func approvalNotice(u *models.User) string {
	switch u.UserStatus {
	case models.StatusPending:
		return "Your account is awaiting approval. Document features are disabled until an administrator approves it."
	case models.StatusRejected:
		return "Your account was rejected. Contact an administrator if you believe this is a mistake."
	}
	return ""
}

// paramID parses a numeric path parameter, redirecting to login on garbage
// the same way the ownership gate would for an unknown id.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return 0, false
	}
	return uint(id), true
}

// denyOrFail maps authorization denials to the login redirect and anything
// else to a 500.
func denyOrFail(c *gin.Context, err error, msg string) {
	if errors.Is(err, authz.ErrDenied) {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}
	logger.Errorf("%s: %v", msg, err)
	c.String(http.StatusInternalServerError, "internal error")
}
