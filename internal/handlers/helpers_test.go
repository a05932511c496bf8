package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Ifrah-c/personal-note-app/internal/logger"
	"github.com/Ifrah-c/personal-note-app/internal/middlewares"
	"github.com/Ifrah-c/personal-note-app/internal/models"
	"github.com/Ifrah-c/personal-note-app/internal/views"
)

var testSession = &models.Session{ID: "sid", UserID: 1, Username: "alice"}

func newTestRenderer(t *testing.T) *views.Renderer {
	t.Helper()
	rd, err := views.New()
	require.NoError(t, err)
	return rd
}

// newRequest builds a request carrying an optional form, session and noteID route param.
func newRequest(method, target string, form url.Values, sess *models.Session, noteID string) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	ctx := req.Context()
	if sess != nil {
		ctx = middlewares.ContextWithSession(ctx, sess)
	}
	if noteID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("noteID", noteID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

// flashOf returns the flash message set on the response, if any.
func flashOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name != "flash" || c.MaxAge < 0 {
			continue
		}
		// render the flash on a throwaway page to decode it
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(c)
		out := httptest.NewRecorder()
		newTestRenderer(t).Render(out, req, http.StatusOK, views.PageNotFound, views.Page{})
		body := out.Body.String()
		start := strings.Index(body, "<li>")
		end := strings.Index(body, "</li>")
		require.True(t, start >= 0 && end > start, "flash not rendered")
		return body[start+len("<li>") : end]
	}
	return ""
}

func TestReadForm(t *testing.T) {
	tests := []struct {
		name   string
		form   url.Values
		wantOK bool
		want   map[string]string
	}{
		{"all present", url.Values{"title": {"T"}, "content": {"C"}}, true, map[string]string{"title": "T", "content": "C"}},
		{"empty values allowed", url.Values{"title": {""}, "content": {""}}, true, map[string]string{"title": "", "content": ""}},
		{"missing field", url.Values{"title": {"T"}}, false, nil},
		{"no body", nil, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(http.MethodPost, "/add", tt.form, nil, "")
			got, ok := readForm(req, "title", "content")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNoteIDParam(t *testing.T) {
	tests := []struct {
		param  string
		want   int64
		wantOK bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"99999999999999999999", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			got, ok := noteIDParam(newRequest(http.MethodGet, "/edit/"+tt.param, nil, nil, tt.param))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHealthHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHealthHandler()(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestNotFoundHandler(t *testing.T) {
	tests := []struct {
		name     string
		sess     *models.Session
		wantNav  string
		wantMiss string
	}{
		{name: "logged in", sess: testSession, wantNav: `href="/logout"`, wantMiss: `href="/signup"`},
		{name: "anonymous", wantNav: `href="/signup"`, wantMiss: `href="/logout"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			NewNotFoundHandler(newTestRenderer(t))(rr, newRequest(http.MethodGet, "/nowhere", nil, tt.sess, ""))

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Contains(t, rr.Body.String(), "Not Found")
			assert.Contains(t, rr.Body.String(), tt.wantNav)
			assert.NotContains(t, rr.Body.String(), tt.wantMiss)
		})
	}
}

func TestRenderServerError_LogsRequestID(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = prev }()

	rd := newTestRenderer(t)
	h := middlewares.LoggingMiddleware(zap.NewNop().Sugar())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		renderServerError(rd, w, r, errors.New("db down"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	entries := logs.FilterMessage("internal server error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, rr.Header().Get("X-Request-ID"), entries[0].ContextMap()["request_id"])
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
}
