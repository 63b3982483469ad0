package render

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
)

// Renderer turns (template name, data) into markup on the response.
type Renderer interface {
	Render(w http.ResponseWriter, name string, data interface{}) error
}

type TemplateRenderer struct {
	tpl *template.Template
}

func New(templatesDir string) (*TemplateRenderer, error) {
	tpl, err := template.ParseGlob(filepath.Join(templatesDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &TemplateRenderer{tpl: tpl}, nil
}

func (t *TemplateRenderer) Render(w http.ResponseWriter, name string, data interface{}) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.tpl.ExecuteTemplate(w, name, data)
}
