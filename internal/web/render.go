// Package web renders the server-side HTML pages. Templates are embedded in
// the binary and parsed once at startup.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutTemplate = "templates/layout.html"

const (
	NavShops   = "shops"
	NavAddShop = "add-shop"
)

// Page is what every template receives.
type Page struct {
	Title  string
	Active string
	Data   any
}

type Renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	entries, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, entry := range entries {
		if entry == layoutTemplate {
			continue
		}
		name := strings.TrimSuffix(path.Base(entry), ".html")
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, layoutTemplate, entry)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages, logger: logger}, nil
}

// Render executes page into a buffer first so a template failure never leaves
// a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data Page) {
	tmpl, ok := r.pages[page]
	if !ok {
		r.logger.Error("unknown page template", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		r.logger.Error("failed to render page", "page", page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Warn("failed to write page", "page", page, "error", err)
	}
}

var funcs = template.FuncMap{
	"deref": func(v *int64) string {
		if v == nil {
			return ""
		}
		return fmt.Sprint(*v)
	},
}
