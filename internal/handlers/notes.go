package handlers

//go:generate mockgen -source=notes.go -destination=notes_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Ifrah-c/personal-note-app/internal/middlewares"
	"github.com/Ifrah-c/personal-note-app/internal/models"
	"github.com/Ifrah-c/personal-note-app/internal/services"
	"github.com/Ifrah-c/personal-note-app/internal/views"
)

const (
	msgLoginToView   = "Please log in to view your notes."
	msgLoginToAdd    = "Please log in to add a note."
	msgLoginToEdit   = "Please log in to edit notes."
	msgLoginToDelete = "Please log in to delete notes."
	msgNoteAdded     = "Note added successfully!"
	msgNoteUpdated   = "Note updated successfully!"
	msgNoteDeleted   = "Note deleted successfully!"
	msgCannotEdit    = "You do not have permission to edit this note."
	msgCannotDelete  = "You do not have permission to delete this note."
	titleField       = "title"
	contentField     = "content"
)

type NoteLister interface {
	ListNotes(ctx context.Context, sess *models.Session) ([]models.NoteDB, error)
}

type NoteAdder interface {
	AddNote(ctx context.Context, sess *models.Session, title, content string) (*models.NoteDB, error)
}

type NoteGetter interface {
	GetNote(ctx context.Context, sess *models.Session, noteID int64) (*models.NoteDB, error)
}

type NoteEditor interface {
	EditNote(ctx context.Context, sess *models.Session, noteID int64, title, content string) error
}

type NoteDeleter interface {
	DeleteNote(ctx context.Context, sess *models.Session, noteID int64) error
}

// requireSession returns the request session or redirects to the login page with msg.
func requireSession(w http.ResponseWriter, r *http.Request, msg string) (*models.Session, bool) {
	sess := middlewares.SessionFromContext(r.Context())
	if sess == nil {
		views.Redirect(w, r, loginPath, msg)
		return nil, false
	}
	return sess, true
}

// NewDashboardHandler lists the notes of the logged-in user.
// @Summary Dashboard
// @Tags notes
// @Produce html
// @Success 200 "Notes, newest first"
// @Success 303 "Redirect to /login when not logged in"
// @Failure 500 "Internal server error"
// @Router /dashboard [get]
func NewDashboardHandler(svc NoteLister, rd PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, msgLoginToView)
		if !ok {
			return
		}

		notes, err := svc.ListNotes(r.Context(), sess)
		if err != nil {
			renderServerError(rd, w, r, err)
			return
		}

		rd.Render(w, r, http.StatusOK, views.PageDashboard, views.Page{
			Username: sess.Username,
			Notes:    notes,
		})
	}
}

// NewAddNotePageHandler renders the add-note form.
// @Summary Add-note form
// @Tags notes
// @Produce html
// @Success 200 "Add-note page"
// @Success 303 "Redirect to /login when not logged in"
// @Router /add [get]
func NewAddNotePageHandler(rd PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, msgLoginToAdd)
		if !ok {
			return
		}
		rd.Render(w, r, http.StatusOK, views.PageAddNote, views.Page{Username: sess.Username})
	}
}

// NewAddNoteHandler creates a note from the posted form.
// @Summary Add a note
// @Tags notes
// @Accept x-www-form-urlencoded
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Success 303 "Redirect to /dashboard"
// @Failure 400 "Missing form field"
// @Failure 500 "Internal server error"
// @Router /add [post]
func NewAddNoteHandler(svc NoteAdder, rd PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, msgLoginToAdd)
		if !ok {
			return
		}
		form, ok := readForm(r, titleField, contentField)
		if !ok {
			badRequest(w)
			return
		}

		if _, err := svc.AddNote(r.Context(), sess, form[titleField], form[contentField]); err != nil {
			renderServerError(rd, w, r, err)
			return
		}
		views.Redirect(w, r, dashboardPath, msgNoteAdded)
	}
}

// NewEditNotePageHandler renders the edit form prefilled with the note.
// @Summary Edit-note form
// @Tags notes
// @Produce html
// @Param noteID path int true "Note ID"
// @Success 200 "Edit-note page"
// @Success 303 "Redirect to /login or /dashboard"
// @Failure 404 "Unknown note"
// @Router /edit/{noteID} [get]
func NewEditNotePageHandler(svc NoteGetter, rd PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, msgLoginToEdit)
		if !ok {
			return
		}
		noteID, ok := noteIDParam(r)
		if !ok {
			renderNotFound(rd, w, r, sess.Username)
			return
		}

		note, err := svc.GetNote(r.Context(), sess, noteID)
		if err != nil {
			handleNoteError(rd, w, r, sess, err, msgCannotEdit)
			return
		}

		rd.Render(w, r, http.StatusOK, views.PageEditNote, views.Page{
			Username: sess.Username,
			Note:     note,
		})
	}
}

// NewEditNoteHandler overwrites title and content of a note.
// @Summary Edit a note
// @Tags notes
// @Accept x-www-form-urlencoded
// @Param noteID path int true "Note ID"
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Success 303 "Redirect to /dashboard"
// @Failure 400 "Missing form field"
// @Failure 404 "Unknown note"
// @Router /edit/{noteID} [post]
func NewEditNoteHandler(svc NoteEditor, rd PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, msgLoginToEdit)
		if !ok {
			return
		}
		noteID, ok := noteIDParam(r)
		if !ok {
			renderNotFound(rd, w, r, sess.Username)
			return
		}
		form, ok := readForm(r, titleField, contentField)
		if !ok {
			badRequest(w)
			return
		}

		if err := svc.EditNote(r.Context(), sess, noteID, form[titleField], form[contentField]); err != nil {
			handleNoteError(rd, w, r, sess, err, msgCannotEdit)
			return
		}
		views.Redirect(w, r, dashboardPath, msgNoteUpdated)
	}
}

// NewDeleteNoteHandler removes a note.
// @Summary Delete a note
// @Tags notes
// @Param noteID path int true "Note ID"
// @Success 303 "Redirect to /dashboard"
// @Failure 404 "Unknown note"
// @Router /delete/{noteID} [get]
func NewDeleteNoteHandler(svc NoteDeleter, rd PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := requireSession(w, r, msgLoginToDelete)
		if !ok {
			return
		}
		noteID, ok := noteIDParam(r)
		if !ok {
			renderNotFound(rd, w, r, sess.Username)
			return
		}

		if err := svc.DeleteNote(r.Context(), sess, noteID); err != nil {
			handleNoteError(rd, w, r, sess, err, msgCannotDelete)
			return
		}
		views.Redirect(w, r, dashboardPath, msgNoteDeleted)
	}
}

func handleNoteError(rd PageRenderer, w http.ResponseWriter, r *http.Request, sess *models.Session, err error, forbiddenMsg string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		renderNotFound(rd, w, r, sess.Username)
	case errors.Is(err, services.ErrForbidden):
		views.Redirect(w, r, dashboardPath, forbiddenMsg)
	case errors.Is(err, services.ErrUnauthenticated):
		views.Redirect(w, r, loginPath, "")
	default:
		renderServerError(rd, w, r, err)
	}
}
