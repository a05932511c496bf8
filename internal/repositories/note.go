package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Ifrah-c/personal-note-app/internal/models"
)

// NoteReadRepository handles note read operations
type NoteReadRepository struct {
	db *sqlx.DB
}

func NewNoteReadRepository(db *sqlx.DB) *NoteReadRepository {
	return &NoteReadRepository{db: db}
}

// GetByID returns the note with the given id, or nil when there is none.
func (r *NoteReadRepository) GetByID(ctx context.Context, noteID int64) (*models.NoteDB, error) {
	const query = `
		SELECT id, title, content, date_created, owner_id
		FROM notes
		WHERE id = ?
	`

	var note models.NoteDB
	err := r.db.GetContext(ctx, &note, r.db.Rebind(query), noteID)

	logQuery(query, []any{noteID}, note.OwnerID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get note %d: %w", noteID, err)
	}
	note.DateCreated = note.DateCreated.UTC()
	return &note, nil
}

// ListByOwner returns the owner's notes, most recently created first.
// Notes created in the same instant fall back to id order.
func (r *NoteReadRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.NoteDB, error) {
	const query = `
		SELECT id, title, content, date_created, owner_id
		FROM notes
		WHERE owner_id = ?
		ORDER BY date_created DESC, id DESC
	`

	notes := []models.NoteDB{}
	err := r.db.SelectContext(ctx, &notes, r.db.Rebind(query), ownerID)

	logQuery(query, []any{ownerID}, len(notes), err)

	if err != nil {
		return nil, fmt.Errorf("list notes of user %d: %w", ownerID, err)
	}
	for i := range notes {
		notes[i].DateCreated = notes[i].DateCreated.UTC()
	}
	return notes, nil
}

// NoteWriteRepository handles note write operations.
// Update and Delete only touch a row whose owner_id matches, so a statement
// issued for another user leaves the table unchanged.
type NoteWriteRepository struct {
	db *sqlx.DB
}

func NewNoteWriteRepository(db *sqlx.DB) *NoteWriteRepository {
	return &NoteWriteRepository{db: db}
}

// Save inserts the note and sets its NoteID.
func (r *NoteWriteRepository) Save(ctx context.Context, note *models.NoteDB) error {
	const query = `
		INSERT INTO notes (title, content, date_created, owner_id)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`
	args := []any{note.Title, note.Content, note.DateCreated, note.OwnerID}

	var id int64
	err := r.db.GetContext(ctx, &id, r.db.Rebind(query), args...)

	logQuery(query, []any{masked, masked, note.DateCreated, note.OwnerID}, id, err)

	if err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	note.NoteID = id
	return nil
}

// Update overwrites title and content of the owner's note.
func (r *NoteWriteRepository) Update(ctx context.Context, noteID, ownerID int64, title, content string) error {
	const query = `
		UPDATE notes
		SET title = ?, content = ?
		WHERE id = ? AND owner_id = ?
	`
	args := []any{title, content, noteID, ownerID}

	return r.execOne(ctx, query, args, []any{masked, masked, noteID, ownerID})
}

// Delete removes the owner's note.
func (r *NoteWriteRepository) Delete(ctx context.Context, noteID, ownerID int64) error {
	const query = `
		DELETE FROM notes
		WHERE id = ? AND owner_id = ?
	`
	args := []any{noteID, ownerID}

	return r.execOne(ctx, query, args, args)
}

// execOne runs a statement expected to affect exactly one row.
// logArgs replace args in the query log.
func (r *NoteWriteRepository) execOne(ctx context.Context, query string, args, logArgs []any) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, logArgs, rowsAffected, err)

	if err != nil {
		return fmt.Errorf("exec note statement: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
