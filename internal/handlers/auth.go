package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Ifrah-c/personal-note-app/internal/logger"
	"github.com/Ifrah-c/personal-note-app/internal/middlewares"
	"github.com/Ifrah-c/personal-note-app/internal/models"
	"github.com/Ifrah-c/personal-note-app/internal/services"
	"github.com/Ifrah-c/personal-note-app/internal/views"
)

const (
	msgUsernameTaken = "Username already exists!"
	msgSignupOK      = "Signup successful. Please log in."
	msgInvalidLogin  = "Invalid credentials"
	msgLoggedOut     = "Logged out successfully."
	usernameField    = "username"
	passwordField    = "password"
	loginPath        = "/login"
	dashboardPath    = "/dashboard"
)

// Signupper registers new users.
type Signupper interface {
	Signup(ctx context.Context, username, password string) error
}

// Loginer authenticates users and returns a session token.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// Logouter ends sessions.
type Logouter interface {
	Logout(ctx context.Context, sess *models.Session) error
}

// SessionCookies builds the cookies carrying session tokens.
type SessionCookies interface {
	NewCookie(token string) *http.Cookie
	ClearCookie() *http.Cookie
}

// NewIndexHandler redirects to the login page.
// @Summary Landing page
// @Tags pages
// @Success 303 "Redirect to /login"
// @Router / [get]
func NewIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views.Redirect(w, r, loginPath, "")
	}
}

// NewSignupPageHandler renders the signup form.
// @Summary Signup form
// @Tags auth
// @Produce html
// @Success 200 "Signup page"
// @Router /signup [get]
func NewSignupPageHandler(rd PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, http.StatusOK, views.PageSignup, views.Page{})
	}
}

// NewSignupHandler creates an account from the posted form.
// @Summary Create an account
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 303 "Redirect to /login"
// @Failure 400 "Missing form field"
// @Failure 409 "Username already exists"
// @Failure 500 "Internal server error"
// @Router /signup [post]
func NewSignupHandler(svc Signupper, rd PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := readForm(r, usernameField, passwordField)
		if !ok {
			badRequest(w)
			return
		}

		err := svc.Signup(r.Context(), form[usernameField], form[passwordField])
		switch {
		case err == nil:
			views.Redirect(w, r, loginPath, msgSignupOK)
		case errors.Is(err, services.ErrDuplicateUsername):
			rd.Render(w, r, http.StatusConflict, views.PageSignup, views.Page{
				Messages: []string{msgUsernameTaken},
				Form:     map[string]string{usernameField: form[usernameField]},
			})
		default:
			renderServerError(rd, w, r, err)
		}
	}
}

// NewLoginPageHandler renders the login form.
// @Summary Login form
// @Tags auth
// @Produce html
// @Success 200 "Login page"
// @Router /login [get]
func NewLoginPageHandler(rd PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, http.StatusOK, views.PageLogin, views.Page{
			Username: sessionUsername(r),
		})
	}
}

// NewLoginHandler checks the posted credentials and sets the session cookie.
// @Summary Log in
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 303 "Redirect to /dashboard, sets the session cookie"
// @Failure 400 "Missing form field"
// @Failure 401 "Invalid credentials"
// @Failure 500 "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer, cookies SessionCookies, rd PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := readForm(r, usernameField, passwordField)
		if !ok {
			badRequest(w)
			return
		}

		token, err := svc.Login(r.Context(), form[usernameField], form[passwordField])
		switch {
		case err == nil:
			http.SetCookie(w, cookies.NewCookie(token))
			views.Redirect(w, r, dashboardPath, "")
		case errors.Is(err, services.ErrInvalidCredentials):
			rd.Render(w, r, http.StatusUnauthorized, views.PageLogin, views.Page{
				Messages: []string{msgInvalidLogin},
				Form:     map[string]string{usernameField: form[usernameField]},
			})
		default:
			renderServerError(rd, w, r, err)
		}
	}
}

// NewLogoutHandler ends the current session, if any.
// @Summary Log out
// @Tags auth
// @Success 303 "Redirect to /login, clears the session cookie"
// @Router /logout [get]
func NewLogoutHandler(svc Logouter, cookies SessionCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := middlewares.SessionFromContext(r.Context())
		if err := svc.Logout(r.Context(), sess); err != nil {
			// the cookie is cleared regardless; the record expires on its own
			logger.Log.Errorw("logout failed", "err", err)
		}

		http.SetCookie(w, cookies.ClearCookie())
		views.Redirect(w, r, loginPath, msgLoggedOut)
	}
}

func sessionUsername(r *http.Request) string {
	if sess := middlewares.SessionFromContext(r.Context()); sess != nil {
		return sess.Username
	}
	return ""
}
