package view

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded page set. Panics on a malformed template,
// which only happens at build time.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}

// Register installs the page set on the engine.
func Register(engine *gin.Engine) {
	engine.SetHTMLTemplate(Templates())
}
