package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cognivus/cognivus/internal/application"
	"github.com/cognivus/cognivus/internal/domain"
)

const sessionCookieName = "cognivus_session"

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	h.views.render(w, r, http.StatusOK, "signup.html", viewData{Title: "Sign Up"})
}

func (h *Handler) signupSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.views.render(w, r, http.StatusBadRequest, "signup.html", viewData{
			Title: "Sign Up",
			Error: "Something went wrong. Please try again.",
		})
		return
	}

	req := application.SignupRequest{
		FullName:        r.PostFormValue("fullname"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	}

	if _, err := h.service.Signup(r.Context(), req); err != nil {
		status, msg := signupErrorMessage(err)
		logFormFailure(r, "signup", status, err)
		h.views.render(w, r, status, "signup.html", viewData{
			Title: "Sign Up",
			Error: msg,
			Form:  formValues{FullName: req.FullName, Email: req.Email},
		})
		return
	}

	// Signup does not auto-login; the user signs in explicitly.
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.views.render(w, r, http.StatusOK, "login.html", viewData{Title: "Log In"})
}

func (h *Handler) loginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.views.render(w, r, http.StatusBadRequest, "login.html", viewData{
			Title: "Log In",
			Error: "Something went wrong. Please try again.",
		})
		return
	}

	req := application.LoginRequest{
		Email:     r.PostFormValue("email"),
		Password:  r.PostFormValue("password"),
		IPAddress: readIP(r),
		UserAgent: r.UserAgent(),
	}

	res, err := h.service.Login(r.Context(), req)
	if err != nil {
		status, msg := loginErrorMessage(err)
		logFormFailure(r, "login", status, err)
		h.views.render(w, r, status, "login.html", viewData{
			Title: "Log In",
			Error: msg,
			Form:  formValues{Email: req.Email},
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    res.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  res.ExpiresAt,
	})
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if err := h.service.Logout(r.Context(), cookie.Value); err != nil {
			httpLogger().WarnContext(r.Context(), "logout failed",
				"operation", "logout",
				"outcome", "failure",
				"request_id", requestIDFromContext(r.Context()),
				"error", err,
			)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// signupErrorMessage converts auth-flow errors into the signup form's
// user-facing strings. Internal faults get a generic retry message; the
// detail stays in the server log.
func signupErrorMessage(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "Email already exists"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, validationMessage(err)
	default:
		return http.StatusInternalServerError, "Something went wrong. Please try again."
	}
}

// loginErrorMessage keeps missing accounts and wrong passwords
// indistinguishable in the user-visible message.
func loginErrorMessage(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, validationMessage(err)
	default:
		return http.StatusInternalServerError, "Something went wrong. Please try again."
	}
}

// validationMessage strips the sentinel prefix and capitalizes the detail,
// e.g. "invalid input: passwords do not match" -> "Passwords do not match".
func validationMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		msg = msg[idx+2:]
	}
	if msg == "" {
		return "Invalid input"
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func logFormFailure(r *http.Request, operation string, statusCode int, err error) {
	fields := []any{
		"operation", operation,
		"outcome", "failure",
		"status_code", statusCode,
		"request_id", requestIDFromContext(r.Context()),
		"error", err.Error(),
	}
	if statusCode >= 500 {
		httpLogger().ErrorContext(r.Context(), "form submission failed", fields...)
		return
	}
	httpLogger().WarnContext(r.Context(), "form submission failed", fields...)
}
