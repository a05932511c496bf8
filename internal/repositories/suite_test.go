package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ifrah-c/personal-note-app/internal/config"
	"github.com/Ifrah-c/personal-note-app/internal/database"
	"github.com/Ifrah-c/personal-note-app/internal/models"
)

func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, config.DriverSQLite, "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(ctx, db, config.DriverSQLite))
	return db
}

func TestUserRepositories_SQLite(t *testing.T) {
	runUserRepositorySuite(t, setupSQLite(t))
}

func TestNoteRepositories_SQLite(t *testing.T) {
	runNoteRepositorySuite(t, setupSQLite(t))
}

// runUserRepositorySuite exercises the credential store against a migrated database.
func runUserRepositorySuite(t *testing.T, db *sqlx.DB) {
	ctx := context.Background()
	readRepo := NewUserReadRepository(db)
	writeRepo := NewUserWriteRepository(db)

	t.Run("SaveAndGet", func(t *testing.T) {
		id, err := writeRepo.Save(ctx, "charlie", "hash-1")
		require.NoError(t, err)
		assert.Positive(t, id)

		user, err := readRepo.GetByUsername(ctx, "charlie")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, id, user.UserID)
		assert.Equal(t, "charlie", user.Username)
		assert.Equal(t, "hash-1", user.PasswordHash)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "nonexistent")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, "dave", "hash-1")
		require.NoError(t, err)

		_, err = writeRepo.Save(ctx, "dave", "hash-2")
		assert.ErrorIs(t, err, ErrConflict)

		user, err := readRepo.GetByUsername(ctx, "dave")
		require.NoError(t, err)
		assert.Equal(t, "hash-1", user.PasswordHash, "the first signup must win")
	})

	t.Run("ConcurrentSignup", func(t *testing.T) {
		const attempts = 4
		errs := make([]error, attempts)

		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = writeRepo.Save(ctx, "racer", "hash")
			}(i)
		}
		wg.Wait()

		var ok, conflicts int
		for _, err := range errs {
			switch {
			case err == nil:
				ok++
			case errors.Is(err, ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, attempts-1, conflicts)
	})
}

// runNoteRepositorySuite exercises the note store against a migrated database.
func runNoteRepositorySuite(t *testing.T, db *sqlx.DB) {
	ctx := context.Background()
	users := NewUserWriteRepository(db)
	readRepo := NewNoteReadRepository(db)
	writeRepo := NewNoteWriteRepository(db)

	aliceID, err := users.Save(ctx, "note-alice", "hash")
	require.NoError(t, err)
	bobID, err := users.Save(ctx, "note-bob", "hash")
	require.NoError(t, err)

	t0 := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	save := func(t *testing.T, owner int64, title string, at time.Time) *models.NoteDB {
		t.Helper()
		n := &models.NoteDB{Title: title, Content: "content of " + title, DateCreated: at, OwnerID: owner}
		require.NoError(t, writeRepo.Save(ctx, n))
		require.Positive(t, n.NoteID)
		return n
	}

	x := save(t, aliceID, "X", t0)
	y := save(t, aliceID, "Y", t0.Add(1500*time.Microsecond))

	t.Run("ListNewestFirst", func(t *testing.T) {
		notes, err := readRepo.ListByOwner(ctx, aliceID)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, y.NoteID, notes[0].NoteID)
		assert.Equal(t, x.NoteID, notes[1].NoteID)
		assert.True(t, notes[1].DateCreated.Equal(t0))
		assert.Equal(t, time.UTC, notes[1].DateCreated.Location())
	})

	t.Run("ListOtherOwnerEmpty", func(t *testing.T) {
		notes, err := readRepo.ListByOwner(ctx, bobID)
		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)
	})

	t.Run("GetByID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, x.NoteID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "X", got.Title)
		assert.Equal(t, "content of X", got.Content)
		assert.Equal(t, aliceID, got.OwnerID)
		assert.True(t, got.DateCreated.Equal(t0))
	})

	t.Run("GetByIDMissing", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, 987654)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("UpdateByOtherOwnerChangesNothing", func(t *testing.T) {
		err := writeRepo.Update(ctx, x.NoteID, bobID, "hijacked", "hijacked")
		assert.ErrorIs(t, err, ErrNotFound)

		got, err := readRepo.GetByID(ctx, x.NoteID)
		require.NoError(t, err)
		assert.Equal(t, "X", got.Title)
	})

	t.Run("UpdateByOwner", func(t *testing.T) {
		require.NoError(t, writeRepo.Update(ctx, x.NoteID, aliceID, "X2", ""))

		got, err := readRepo.GetByID(ctx, x.NoteID)
		require.NoError(t, err)
		assert.Equal(t, x.NoteID, got.NoteID)
		assert.Equal(t, "X2", got.Title)
		assert.Equal(t, "", got.Content)
		assert.True(t, got.DateCreated.Equal(t0))
	})

	t.Run("DeleteByOtherOwnerChangesNothing", func(t *testing.T) {
		err := writeRepo.Delete(ctx, y.NoteID, bobID)
		assert.ErrorIs(t, err, ErrNotFound)

		got, err := readRepo.GetByID(ctx, y.NoteID)
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("DeleteByOwner", func(t *testing.T) {
		require.NoError(t, writeRepo.Delete(ctx, y.NoteID, aliceID))

		got, err := readRepo.GetByID(ctx, y.NoteID)
		require.NoError(t, err)
		assert.Nil(t, got)

		assert.ErrorIs(t, writeRepo.Delete(ctx, y.NoteID, aliceID), ErrNotFound)
		assert.ErrorIs(t, writeRepo.Update(ctx, y.NoteID, aliceID, "t", "c"), ErrNotFound)
	})

	t.Run("SameInstantFallsBackToID", func(t *testing.T) {
		at := t0.Add(time.Hour)
		first := save(t, bobID, "first", at)
		second := save(t, bobID, "second", at)

		notes, err := readRepo.ListByOwner(ctx, bobID)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, second.NoteID, notes[0].NoteID)
		assert.Equal(t, first.NoteID, notes[1].NoteID)
	})

	t.Run("UnknownOwnerRejected", func(t *testing.T) {
		err := writeRepo.Save(ctx, &models.NoteDB{Title: "orphan", DateCreated: t0, OwnerID: 424242})
		assert.Error(t, err)
	})
}
