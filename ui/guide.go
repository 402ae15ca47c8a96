package ui

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

//go:embed guide.md
var guideSource []byte

// handleGuide renders the embedded usage guide
func (s *Server) handleGuide(c *gin.Context) {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	body := markdown.ToHTML(guideSource, p, renderer)

	data := struct {
		Body template.HTML
	}{Body: template.HTML(body)}

	c.Status(http.StatusOK)
	s.render(c, "guide.html", data)
}
