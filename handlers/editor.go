package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docflow-app/docflow/internal/documents"
	"github.com/docflow-app/docflow/pkg/logger"
)

// EditorHandler serves the editor pages: dashboard, assigned-document listing
// and editing. Editors cannot reassign documents.
type EditorHandler struct {
	docsSvc *documents.Service
}

func NewEditorHandler(d *documents.Service) *EditorHandler {
	return &EditorHandler{docsSvc: d}
}

func (h *EditorHandler) Dashboard(c *gin.Context) {
	u := principal(c)
	flash := takeFlash(c)
	if flash == "" {
		flash = approvalNotice(u)
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title": "Editor Dashboard",
		"Flash": flash,
		"Body":  fmt.Sprintf("Welcome, %s.", u.Name),
	})
}

func (h *EditorHandler) DocumentList(c *gin.Context) {
	u := principal(c)
	rows, err := h.docsSvc.ListForEditor(c.Request.Context(), u.ID)
	if err != nil {
		logger.Errorf("failed to list editor documents: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "documents.html", gin.H{
		"Title":     "Assigned Documents",
		"Flash":     takeFlash(c),
		"Documents": rows,
		"EditBase":  "/editor/documents/",
	})
}

func (h *EditorHandler) DocumentEditForm(c *gin.Context) {
	u := principal(c)
	id, ok := paramID(c, "document_id")
	if !ok {
		return
	}

	doc, _, autodocBody, err := h.docsSvc.Get(c.Request.Context(), u, id)
	if err != nil {
		denyOrFail(c, err, "failed to load document")
		return
	}
	c.HTML(http.StatusOK, "document_edit.html", gin.H{
		"Flash":       takeFlash(c),
		"Action":      fmt.Sprintf("/editor/documents/%d", doc.ID),
		"Document":    doc,
		"AutodocBody": autodocBody,
	})
}

func (h *EditorHandler) DocumentEdit(c *gin.Context) {
	u := principal(c)
	id, ok := paramID(c, "document_id")
	if !ok {
		return
	}

	err := h.docsSvc.Edit(c.Request.Context(), u, id, c.PostForm("document_name"), c.PostForm("document_body"), nil)
	if err != nil {
		denyOrFail(c, err, "failed to edit document")
		return
	}

	setFlash(c, "Document saved.")
	c.Redirect(http.StatusSeeOther, "/editor/documents")
}
