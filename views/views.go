// Package views embeds the HTML templates rendered by the server.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed layouts/*.html preview/*.html
var files embed.FS

// NewEngine returns a fiber view engine over the embedded templates.
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.AddFunc("inc", func(i int) int { return i + 1 })
	return engine
}
