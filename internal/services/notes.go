package services

//go:generate mockgen -source=notes.go -destination=notes_mock.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/Ifrah-c/personal-note-app/internal/logger"
	"github.com/Ifrah-c/personal-note-app/internal/models"
	"github.com/Ifrah-c/personal-note-app/internal/repositories"
)

var (
	ErrNotFound  = errors.New("note not found")
	ErrForbidden = errors.New("note belongs to another user")
)

// NoteReader defines read-only operations for notes.
type NoteReader interface {
	GetByID(ctx context.Context, noteID int64) (*models.NoteDB, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.NoteDB, error)
}

// NoteWriter defines write operations for notes. Update and Delete only touch
// rows owned by ownerID.
type NoteWriter interface {
	Save(ctx context.Context, note *models.NoteDB) error
	Update(ctx context.Context, noteID, ownerID int64, title, content string) error
	Delete(ctx context.Context, noteID, ownerID int64) error
}

// NoteService implements note operations on behalf of a logged-in user.
type NoteService struct {
	reader NoteReader
	writer NoteWriter
	now    func() time.Time
}

type NoteServiceOption func(*NoteService)

// WithClock overrides the source of note creation times.
func WithClock(now func() time.Time) NoteServiceOption {
	return func(svc *NoteService) { svc.now = now }
}

// NewNoteService creates a new NoteService instance.
func NewNoteService(reader NoteReader, writer NoteWriter, opts ...NoteServiceOption) *NoteService {
	svc := &NoteService{
		reader: reader,
		writer: writer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// ListNotes returns the notes of the session user, newest first.
func (svc *NoteService) ListNotes(ctx context.Context, sess *models.Session) ([]models.NoteDB, error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}
	notes, err := svc.reader.ListByOwner(ctx, sess.UserID)
	if err != nil {
		logger.Log.Errorw("failed to list notes", "user_id", sess.UserID, "err", err)
		return nil, err
	}
	return notes, nil
}

// AddNote creates a note owned by the session user.
func (svc *NoteService) AddNote(ctx context.Context, sess *models.Session, title, content string) (*models.NoteDB, error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}

	note := &models.NoteDB{
		Title:       title,
		Content:     content,
		DateCreated: svc.now().UTC().Truncate(time.Microsecond),
		OwnerID:     sess.UserID,
	}
	if err := svc.writer.Save(ctx, note); err != nil {
		logger.Log.Errorw("failed to save note", "user_id", sess.UserID, "err", err)
		return nil, err
	}

	logger.Log.Infow("note added", "note_id", note.NoteID, "user_id", sess.UserID)
	return note, nil
}

// GetNote returns a note the session user owns.
func (svc *NoteService) GetNote(ctx context.Context, sess *models.Session, noteID int64) (*models.NoteDB, error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}
	return svc.owned(ctx, sess, noteID)
}

// EditNote replaces title and content of a note the session user owns.
func (svc *NoteService) EditNote(ctx context.Context, sess *models.Session, noteID int64, title, content string) error {
	if sess == nil {
		return ErrUnauthenticated
	}
	if _, err := svc.owned(ctx, sess, noteID); err != nil {
		return err
	}

	err := svc.writer.Update(ctx, noteID, sess.UserID, title, content)
	if errors.Is(err, repositories.ErrNotFound) {
		// deleted between the read and the update
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update note", "note_id", noteID, "err", err)
		return err
	}

	logger.Log.Infow("note updated", "note_id", noteID, "user_id", sess.UserID)
	return nil
}

// DeleteNote removes a note the session user owns.
func (svc *NoteService) DeleteNote(ctx context.Context, sess *models.Session, noteID int64) error {
	if sess == nil {
		return ErrUnauthenticated
	}
	if _, err := svc.owned(ctx, sess, noteID); err != nil {
		return err
	}

	err := svc.writer.Delete(ctx, noteID, sess.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete note", "note_id", noteID, "err", err)
		return err
	}

	logger.Log.Infow("note deleted", "note_id", noteID, "user_id", sess.UserID)
	return nil
}

func (svc *NoteService) owned(ctx context.Context, sess *models.Session, noteID int64) (*models.NoteDB, error) {
	note, err := svc.reader.GetByID(ctx, noteID)
	if err != nil {
		logger.Log.Errorw("failed to get note", "note_id", noteID, "err", err)
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}
	if note.OwnerID != sess.UserID {
		logger.Log.Infow("note access denied", "note_id", noteID, "owner_id", note.OwnerID, "user_id", sess.UserID)
		return nil, ErrForbidden
	}
	return note, nil
}
