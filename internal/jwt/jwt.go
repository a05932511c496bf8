// Package jwt signs and verifies the session cookie value.
package jwt

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrNoToken      = errors.New("session cookie missing")
)

// Claims carries the server-side session id in the standard jti claim.
type Claims struct {
	jwt.RegisteredClaims
}

// JWT generates and validates session tokens and builds the cookies holding them.
type JWT struct {
	secretKey    string
	exp          time.Duration
	cookieName   string
	secureCookie bool
}

type Option func(*JWT)

func WithSecretKey(key string) Option {
	return func(j *JWT) { j.secretKey = key }
}

func WithExpiration(d time.Duration) Option {
	return func(j *JWT) { j.exp = d }
}

func WithCookieName(name string) Option {
	return func(j *JWT) { j.cookieName = name }
}

// WithSecureCookie marks issued cookies as HTTPS only.
func WithSecureCookie(secure bool) Option {
	return func(j *JWT) { j.secureCookie = secure }
}

// New creates a JWT with a 24h expiration and the "session" cookie unless overridden.
func New(opts ...Option) *JWT {
	j := &JWT{
		exp:        24 * time.Hour,
		cookieName: "session",
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate signs a token referencing the given session id.
func (j *JWT) Generate(ctx context.Context, sessionID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetClaims parses tokenString and returns its claims when the signature and expiry are valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GetSessionID returns the session id referenced by a valid token.
func (j *JWT) GetSessionID(ctx context.Context, tokenString string) (string, error) {
	claims, err := j.GetClaims(ctx, tokenString)
	if err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", ErrInvalidToken
	}
	return claims.ID, nil
}

// GetTokenFromRequest extracts the token string from the session cookie.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	c, err := r.Cookie(j.cookieName)
	if err != nil || c.Value == "" {
		return "", ErrNoToken
	}
	return c.Value, nil
}

// NewCookie wraps token into the session cookie.
func (j *JWT) NewCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     j.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(j.exp.Seconds()),
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie returns a cookie instructing the browser to drop the session cookie.
func (j *JWT) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     j.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
