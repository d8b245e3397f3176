package html

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	parts "coffeebar.GO/html/parts"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template is the echo renderer for the embedded page templates.
type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// NewTemplate parses the embedded templates.
func NewTemplate() (*Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"criticalCSS": parts.GetCriticalCSS,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Template{Templates: tmpl}, nil
}
