package http

import (
	"io/fs"
	"net/http"

	"github.com/cognivus/cognivus/internal/application"
	"github.com/go-chi/chi/v5"
)

// Handler is the HTTP adapter entrypoint for the site.
// Keeping only the application dependency here preserves clean adapter boundaries.
type Handler struct {
	service *application.Service
	views   *viewRenderer
}

// NewHandler constructs an HTTP handler bound to the application service.
func NewHandler(service *application.Service) (*Handler, error) {
	views, err := newViewRenderer()
	if err != nil {
		return nil, err
	}
	return &Handler{service: service, views: views}, nil
}

// NewRouter registers the site's routes and middleware stack.
// Centralizing routes here keeps guard and error behavior consistent across pages.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(handler.recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	staticRoot, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))))

	r.Get("/", handler.root)
	r.Get("/index", handler.index)
	r.Get("/signup", handler.signupPage)
	r.Post("/signup", handler.signupSubmit)
	r.Get("/login", handler.loginPage)
	r.Post("/login", handler.loginSubmit)
	r.Get("/exam", handler.exam)
	r.Get("/quiz", handler.quiz)
	r.Get("/logout", handler.logout)

	r.Group(func(r chi.Router) {
		r.Use(handler.requireSession)
		r.Get("/dashboard", handler.dashboard)
	})

	r.NotFound(handler.notFound)
	return r
}
