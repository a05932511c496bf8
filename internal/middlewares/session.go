package middlewares

//go:generate mockgen -source=session.go -destination=session_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/Ifrah-c/personal-note-app/internal/logger"
	"github.com/Ifrah-c/personal-note-app/internal/models"
)

// SessionTokener defines the minimal token interface needed by the middleware.
type SessionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetSessionID(ctx context.Context, tokenString string) (string, error)
}

// SessionReader looks up server-side sessions.
type SessionReader interface {
	Get(ctx context.Context, id string) (*models.Session, error)
}

type sessionKey struct{}

// ContextWithSession returns a copy of ctx carrying sess.
func ContextWithSession(ctx context.Context, sess *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFromContext returns the session of the request, or nil for anonymous requests.
func SessionFromContext(ctx context.Context) *models.Session {
	sess, _ := ctx.Value(sessionKey{}).(*models.Session)
	return sess
}

// SessionMiddleware resolves the session cookie into a session stored in the
// request context. A missing, invalid or expired session leaves the request
// anonymous and never fails it.
func SessionMiddleware(tokener SessionTokener, store SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if sess := resolveSession(ctx, tokener, store, r); sess != nil {
				ctx = ContextWithSession(ctx, sess)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveSession(ctx context.Context, tokener SessionTokener, store SessionReader, r *http.Request) *models.Session {
	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil
	}

	sessionID, err := tokener.GetSessionID(ctx, tokenString)
	if err != nil {
		logger.Log.Debugw("session token rejected", "err", err)
		return nil
	}

	sess, err := store.Get(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("session lookup failed", "err", err)
		return nil
	}
	return sess
}
