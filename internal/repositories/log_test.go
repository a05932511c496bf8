package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Ifrah-c/personal-note-app/internal/logger"
	"github.com/Ifrah-c/personal-note-app/internal/models"
)

func TestNoteWriteRepository_QueryLogMasksNoteText(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = prev }()

	ctx := context.Background()
	db, mock := newPgMock(t)
	mock.ExpectQuery(`INSERT INTO notes`).
		WithArgs("secret title", "secret content", sqlmock.AnyArg(), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE notes`).
		WithArgs("new title", "new content", int64(1), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewNoteWriteRepository(db)
	note := &models.NoteDB{Title: "secret title", Content: "secret content", DateCreated: time.Now().UTC(), OwnerID: 3}
	require.NoError(t, repo.Save(ctx, note))
	require.NoError(t, repo.Update(ctx, 1, 3, "new title", "new content"))
	require.NoError(t, mock.ExpectationsWereMet())

	entries := logs.FilterMessage("query").All()
	require.Len(t, entries, 2)
	for _, entry := range entries {
		args := fmt.Sprint(entry.ContextMap()["args"])
		assert.Contains(t, args, masked)
		assert.NotContains(t, args, "title")
		assert.NotContains(t, args, "content")
	}
}
