package handlers

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// LoadTemplates installs the embedded page templates on the engine. The pages
// are deliberately minimal; styling and form widgets are not this service's
// concern.
func LoadTemplates(r *gin.Engine) {
	tmpl := template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)
}

const flashCookie = "docflow_flash"

// setFlash stores a one-shot message for the next rendered page.
func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, msg, 60, "/", "", false, true)
}

// takeFlash returns the pending flash message, if any, and clears it.
func takeFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msg
}
