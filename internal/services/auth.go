package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Ifrah-c/personal-note-app/internal/logger"
	"github.com/Ifrah-c/personal-note-app/internal/models"
	"github.com/Ifrah-c/personal-note-app/internal/repositories"
)

// Error variables
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not logged in")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) (int64, error)
}

// SessionWriter stores and drops server-side sessions.
type SessionWriter interface {
	Save(ctx context.Context, sess *models.Session) error
	Delete(ctx context.Context, id string) error
}

// TokenGenerator signs the token handed to the client for a session.
type TokenGenerator interface {
	Generate(ctx context.Context, sessionID string) (string, error)
}

// AuthService handles signup, login and logout.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionWriter
	tokens   TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionWriter, tokens TokenGenerator) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Signup registers a new user with a hash of password.
func (svc *AuthService) Signup(ctx context.Context, username, password string) error {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Infow("username already taken", "username", username)
		return ErrDuplicateUsername
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	// the unique constraint decides concurrent signups for the same name
	id, err := svc.writer.Save(ctx, username, hashedPassword)
	if errors.Is(err, repositories.ErrConflict) {
		logger.Log.Infow("username already taken", "username", username)
		return ErrDuplicateUsername
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	logger.Log.Infow("user signed up", "username", username, "user_id", id)
	return nil
}

// Login verifies the credentials, opens a session and returns its signed token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("login for unknown user", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := ComparePassword(user.PasswordHash, password); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	sess := &models.Session{
		ID:        uuid.NewString(),
		UserID:    user.UserID,
		Username:  user.Username,
		CreatedAt: time.Now().UTC(),
	}
	if err := svc.sessions.Save(ctx, sess); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return "", err
	}

	token, err := svc.tokens.Generate(ctx, sess.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	logger.Log.Infow("user logged in", "user_id", user.UserID)
	return token, nil
}

// Logout destroys sess. A nil session is a no-op.
func (svc *AuthService) Logout(ctx context.Context, sess *models.Session) error {
	if sess == nil {
		return nil
	}
	if err := svc.sessions.Delete(ctx, sess.ID); err != nil {
		logger.Log.Errorw("failed to delete session", "err", err)
		return err
	}
	logger.Log.Infow("user logged out", "user_id", sess.UserID)
	return nil
}
