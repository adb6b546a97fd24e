package api

import (
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/portal/web"
)

// renderer satisfies echo.Renderer over the embedded page templates.
// Templates are addressed by file name, e.g. "members.html".
type renderer struct {
	templates *template.Template
}

func NewRenderer() (echo.Renderer, error) {
	t, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &renderer{templates: t}, nil
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
