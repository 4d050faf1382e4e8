package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"flashgen/internal/model"
)

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.Document{
		Filename:  "notes.pdf",
		FileSize:  2048,
		ProcessID: "7f0e46d3-54f8-4c3f-9a41-1f2b8deacd10",
	}

	rows := sqlmock.NewRows([]string{"id", "filename", "file_size", "upload_time", "process_id", "status"}).
		AddRow(int64(1), doc.Filename, doc.FileSize, now, doc.ProcessID, model.StatusCompleted)

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.Filename, doc.FileSize, doc.ProcessID, model.StatusCompleted).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, model.StatusCompleted, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByProcessID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "filename", "file_size", "upload_time", "process_id", "status"}).
			AddRow(int64(7), "file.txt", int64(100), time.Now(), "pid-1", model.StatusCompleted)

		mock.ExpectQuery("SELECT (.+) FROM documents WHERE process_id = ?").
			WithArgs("pid-1").
			WillReturnRows(rows)

		doc, err := repo.FindByProcessID(ctx, "pid-1")

		assert.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Equal(t, int64(7), doc.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE process_id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByProcessID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, doc)
	})
}

func TestDocumentPostgres_ListWithCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "filename", "file_size", "upload_time", "process_id", "status", "flashcard_count"}).
		AddRow(int64(2), "b.pdf", int64(200), time.Now(), "pid-2", model.StatusCompleted, 12).
		AddRow(int64(1), "a.txt", int64(100), time.Now(), "pid-1", model.StatusCompleted, 0)

	mock.ExpectQuery("SELECT (.+) FROM documents d").
		WillReturnRows(rows)

	docs, err := repo.ListWithCounts(ctx)

	assert.NoError(t, err)
	assert.Len(t, docs, 2)
	assert.Equal(t, 12, docs[0].FlashcardCount)
	assert.Equal(t, 0, docs[1].FlashcardCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM documents WHERE id = ?").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, 1)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE documents SET status").
		WithArgs("failed", "pid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdateStatus(ctx, "pid-1", "failed")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
