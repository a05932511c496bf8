package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ifrah-c/personal-note-app/internal/models"
	"github.com/Ifrah-c/personal-note-app/internal/repositories"
	"github.com/Ifrah-c/personal-note-app/internal/services"
)

var (
	alice = &models.Session{ID: "s-alice", UserID: 1, Username: "alice"}
	bob   = &models.Session{ID: "s-bob", UserID: 2, Username: "bob"}
)

func newNoteService(t *testing.T, opts ...services.NoteServiceOption) (*services.NoteService, *services.MockNoteReader, *services.MockNoteWriter) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockNoteReader(ctrl)
	writer := services.NewMockNoteWriter(ctrl)
	return services.NewNoteService(reader, writer, opts...), reader, writer
}

func TestNoteService_Unauthenticated(t *testing.T) {
	svc, _, _ := newNoteService(t)
	ctx := context.Background()

	_, err := svc.ListNotes(ctx, nil)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)

	_, err = svc.AddNote(ctx, nil, "T", "C")
	assert.ErrorIs(t, err, services.ErrUnauthenticated)

	_, err = svc.GetNote(ctx, nil, 1)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)

	assert.ErrorIs(t, svc.EditNote(ctx, nil, 1, "T", "C"), services.ErrUnauthenticated)
	assert.ErrorIs(t, svc.DeleteNote(ctx, nil, 1), services.ErrUnauthenticated)
}

func TestNoteService_ListNotes(t *testing.T) {
	svc, reader, _ := newNoteService(t)
	ctx := context.Background()

	want := []models.NoteDB{{NoteID: 2, OwnerID: 1}, {NoteID: 1, OwnerID: 1}}
	reader.EXPECT().ListByOwner(gomock.Any(), int64(1)).Return(want, nil)

	got, err := svc.ListNotes(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	reader.EXPECT().ListByOwner(gomock.Any(), int64(2)).Return(nil, errors.New("db error"))
	_, err = svc.ListNotes(ctx, bob)
	assert.EqualError(t, err, "db error")
}

func TestNoteService_AddNote(t *testing.T) {
	fixed := time.Date(2026, 10, 14, 11, 30, 0, 123456789, time.FixedZone("CEST", 2*3600))
	svc, _, writer := newNoteService(t, services.WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	writer.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, note *models.NoteDB) error {
			note.NoteID = 7
			return nil
		})

	note, err := svc.AddNote(ctx, alice, "T1", "C1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), note.NoteID)
	assert.Equal(t, "T1", note.Title)
	assert.Equal(t, "C1", note.Content)
	assert.Equal(t, alice.UserID, note.OwnerID)
	assert.Equal(t, time.UTC, note.DateCreated.Location())
	assert.True(t, note.DateCreated.Equal(fixed.Truncate(time.Microsecond)))

	t.Run("empty title and content are kept", func(t *testing.T) {
		writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		note, err := svc.AddNote(ctx, alice, "", "")
		require.NoError(t, err)
		assert.Empty(t, note.Title)
		assert.Empty(t, note.Content)
	})

	t.Run("store error", func(t *testing.T) {
		writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
		note, err := svc.AddNote(ctx, alice, "T", "C")
		assert.EqualError(t, err, "disk full")
		assert.Nil(t, note)
	})
}

func TestNoteService_GetNote(t *testing.T) {
	svc, reader, _ := newNoteService(t)
	ctx := context.Background()
	stored := &models.NoteDB{NoteID: 5, Title: "T", OwnerID: alice.UserID}

	tests := []struct {
		name    string
		sess    *models.Session
		note    *models.NoteDB
		readErr error
		wantErr error
	}{
		{name: "owner", sess: alice, note: stored},
		{name: "other user", sess: bob, note: stored, wantErr: services.ErrForbidden},
		{name: "missing", sess: alice, wantErr: services.ErrNotFound},
		{name: "read error", sess: alice, readErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(tt.note, tt.readErr)

			got, err := svc.GetNote(ctx, tt.sess, 5)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored, got)
		})
	}
}

func TestNoteService_EditNote(t *testing.T) {
	svc, reader, writer := newNoteService(t)
	ctx := context.Background()
	stored := &models.NoteDB{NoteID: 5, Title: "T", Content: "C", OwnerID: alice.UserID}

	tests := []struct {
		name        string
		sess        *models.Session
		note        *models.NoteDB
		readErr     error
		expectWrite bool
		writeErr    error
		wantErr     error
	}{
		{name: "owner edits", sess: alice, note: stored, expectWrite: true},
		{name: "other user is forbidden", sess: bob, note: stored, wantErr: services.ErrForbidden},
		{name: "missing note", sess: alice, wantErr: services.ErrNotFound},
		{name: "read error", sess: alice, readErr: errors.New("db error"), wantErr: errors.New("db error")},
		{name: "deleted concurrently", sess: alice, note: stored, expectWrite: true, writeErr: repositories.ErrNotFound, wantErr: services.ErrNotFound},
		{name: "write error", sess: alice, note: stored, expectWrite: true, writeErr: errors.New("locked"), wantErr: errors.New("locked")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(tt.note, tt.readErr)
			if tt.expectWrite {
				writer.EXPECT().
					Update(gomock.Any(), int64(5), tt.sess.UserID, "T2", "C2").
					Return(tt.writeErr)
			}

			err := svc.EditNote(ctx, tt.sess, 5, "T2", "C2")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNoteService_DeleteNote(t *testing.T) {
	svc, reader, writer := newNoteService(t)
	ctx := context.Background()
	stored := &models.NoteDB{NoteID: 9, OwnerID: alice.UserID}

	tests := []struct {
		name        string
		sess        *models.Session
		note        *models.NoteDB
		expectWrite bool
		writeErr    error
		wantErr     error
	}{
		{name: "owner deletes", sess: alice, note: stored, expectWrite: true},
		{name: "other user is forbidden", sess: bob, note: stored, wantErr: services.ErrForbidden},
		{name: "missing note", sess: alice, wantErr: services.ErrNotFound},
		{name: "deleted concurrently", sess: alice, note: stored, expectWrite: true, writeErr: repositories.ErrNotFound, wantErr: services.ErrNotFound},
		{name: "write error", sess: alice, note: stored, expectWrite: true, writeErr: errors.New("locked"), wantErr: errors.New("locked")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader.EXPECT().GetByID(gomock.Any(), int64(9)).Return(tt.note, nil)
			if tt.expectWrite {
				writer.EXPECT().Delete(gomock.Any(), int64(9), tt.sess.UserID).Return(tt.writeErr)
			}

			err := svc.DeleteNote(ctx, tt.sess, 9)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
