package http

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/cognivus/cognivus/internal/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// viewData is the single envelope handed to every template. Error carries
// the user-facing form message; Form echoes submitted values back so a
// failed submission does not wipe the user's input.
type viewData struct {
	Title string
	User  *ports.SessionData
	Error string
	Form  formValues
}

type formValues struct {
	FullName string
	Email    string
}

type viewRenderer struct {
	templates *template.Template
}

func newViewRenderer() (*viewRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &viewRenderer{templates: tmpl}, nil
}

func (v *viewRenderer) render(w http.ResponseWriter, r *http.Request, statusCode int, name string, data viewData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := v.templates.ExecuteTemplate(w, name, data); err != nil {
		httpLogger().ErrorContext(r.Context(), "template render failed",
			"operation", "render_view",
			"outcome", "failure",
			"view", name,
			"request_id", requestIDFromContext(r.Context()),
			"error", err,
		)
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request) {
	h.views.render(w, r, http.StatusInternalServerError, "error.html", viewData{Title: "Something went wrong"})
}
