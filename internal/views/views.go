// Package views renders the HTML pages of the application.
package views

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/Ifrah-c/personal-note-app/internal/logger"
	"github.com/Ifrah-c/personal-note-app/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names.
const (
	PageSignup    = "signup"
	PageLogin     = "login"
	PageDashboard = "dashboard"
	PageAddNote   = "add_note"
	PageEditNote  = "edit_note"
	PageNotFound  = "not_found"
	PageError     = "error"
)

var pageTitles = map[string]string{
	PageSignup:    "Sign up",
	PageLogin:     "Login",
	PageDashboard: "Dashboard",
	PageAddNote:   "Add note",
	PageEditNote:  "Edit note",
	PageNotFound:  "Not found",
	PageError:     "Error",
}

const (
	flashCookieName = "flash"
	shortenLimit    = 100
	dateLayout      = "2006-01-02 15:04 UTC"
)

// Page is the data passed to templates.
type Page struct {
	Title    string
	Username string
	Messages []string
	Form     map[string]string
	Notes    []models.NoteDB
	Note     *models.NoteDB
}

// Renderer executes the embedded page templates.
type Renderer struct {
	pages map[string]*template.Template
}

var funcMap = template.FuncMap{
	"shorten": func(s string) string {
		r := []rune(s)
		if len(r) > shortenLimit {
			return string(r[:shortenLimit]) + "..."
		}
		return s
	},
	"formatDate": func(t time.Time) string {
		return t.UTC().Format(dateLayout)
	},
}

// New parses every page together with the shared layout.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pageTitles))}
	for name := range pageTitles {
		tmpl, err := template.New(name).
			Option("missingkey=zero").
			Funcs(funcMap).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render writes page name with the given status. A pending flash message is
// consumed and shown ahead of the page's own messages.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name string, data Page) {
	tmpl, ok := rd.pages[name]
	if !ok {
		logger.Log.Errorw("unknown page", "page", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if data.Title == "" {
		data.Title = pageTitles[name]
	}
	if msg, ok := popFlash(w, r); ok {
		data.Messages = append([]string{msg}, data.Messages...)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.Log.Errorw("failed to render page", "page", name, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// SetFlash stores msg for the next rendered page.
func SetFlash(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(msg)),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Redirect sets an optional flash message and answers 303 See Other.
func Redirect(w http.ResponseWriter, r *http.Request, url, flash string) {
	if flash != "" {
		SetFlash(w, flash)
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

func popFlash(w http.ResponseWriter, r *http.Request) (string, bool) {
	c, err := r.Cookie(flashCookieName)
	if err != nil {
		return "", false
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	msg, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil || len(msg) == 0 {
		return "", false
	}
	return string(msg), true
}
