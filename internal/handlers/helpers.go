package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Ifrah-c/personal-note-app/internal/logger"
	"github.com/Ifrah-c/personal-note-app/internal/middlewares"
	"github.com/Ifrah-c/personal-note-app/internal/views"
)

// PageRenderer writes an HTML page.
type PageRenderer interface {
	Render(w http.ResponseWriter, r *http.Request, status int, name string, data views.Page)
}

// readForm returns the named form fields. It reports false when the body cannot
// be parsed or a field is absent. Empty values are allowed.
func readForm(r *http.Request, keys ...string) (map[string]string, bool) {
	if err := r.ParseForm(); err != nil {
		logger.Log.Infow("malformed form", "err", err)
		return nil, false
	}
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		v, ok := r.PostForm[k]
		if !ok {
			return nil, false
		}
		values[k] = v[0]
	}
	return values, true
}

func badRequest(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
}

// noteIDParam parses the {noteID} route parameter.
func noteIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "noteID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// NewNotFoundHandler renders the not_found page for unmatched routes.
func NewNotFoundHandler(rd PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderNotFound(rd, w, r, sessionUsername(r))
	}
}

func renderNotFound(rd PageRenderer, w http.ResponseWriter, r *http.Request, username string) {
	rd.Render(w, r, http.StatusNotFound, views.PageNotFound, views.Page{Username: username})
}

func renderServerError(rd PageRenderer, w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"uri", r.RequestURI,
		"err", err,
	)
	rd.Render(w, r, http.StatusInternalServerError, views.PageError, views.Page{})
}
