package http

import (
	"net/http"
)

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) readyz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ready"}`))
}

// root routes by session state: authenticated users land on the dashboard,
// everyone else on the signup page.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.resolveSession(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/signup", http.StatusSeeOther)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	data := viewData{Title: "Cognivus"}
	if session, ok := h.resolveSession(r); ok {
		data.User = &session
	}
	h.views.render(w, r, http.StatusOK, "index.html", data)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		// The guard always runs first; reaching here without a session is a wiring bug.
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	h.views.render(w, r, http.StatusOK, "dashboard.html", viewData{
		Title: "Dashboard",
		User:  &session,
	})
}

func (h *Handler) exam(w http.ResponseWriter, r *http.Request) {
	data := viewData{Title: "Exam"}
	if session, ok := h.resolveSession(r); ok {
		data.User = &session
	}
	h.views.render(w, r, http.StatusOK, "exam.html", data)
}

func (h *Handler) quiz(w http.ResponseWriter, r *http.Request) {
	data := viewData{Title: "Quiz"}
	if session, ok := h.resolveSession(r); ok {
		data.User = &session
	}
	h.views.render(w, r, http.StatusOK, "quiz.html", data)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.views.render(w, r, http.StatusNotFound, "notfound.html", viewData{Title: "Page not found"})
}
