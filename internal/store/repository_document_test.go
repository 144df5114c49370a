package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func documentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "subject_id", "owner_id", "title", "file_url", "upload_date"})
}

func TestDocumentRepository_CreateDocument(t *testing.T) {
	uploaded := time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)
	doc := models.Document{
		ID:         "d1",
		SubjectID:  "s1",
		OwnerID:    3,
		Title:      "Lecture 1",
		FileURL:    "http://localhost:8080/files/3/x.pdf",
		UploadDate: uploaded,
	}

	t.Run("inserted", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewDocumentRepository(db, logger.Nop())

		mock.ExpectQuery("INSERT INTO documents").
			WithArgs(doc.ID, doc.SubjectID, doc.OwnerID, doc.Title, doc.FileURL, doc.UploadDate).
			WillReturnRows(documentRows().AddRow(doc.ID, doc.SubjectID, doc.OwnerID, doc.Title, doc.FileURL, uploaded))

		got, err := repo.CreateDocument(context.Background(), doc)
		require.NoError(t, err)
		assert.Equal(t, doc, got)
	})

	t.Run("subject vanished", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewDocumentRepository(db, logger.Nop())

		mock.ExpectQuery("INSERT INTO documents").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

		_, err := repo.CreateDocument(context.Background(), doc)
		assert.ErrorIs(t, err, ErrReferenceNotFound)
	})
}

func TestDocumentRepository_ListDocuments(t *testing.T) {
	filter := models.DocumentFilter{OwnerID: 3, SubjectID: "s1"}
	t0 := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	t.Run("newest first", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewDocumentRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT (.+) FROM documents WHERE owner_id = \\$1 AND subject_id = \\$2 ORDER BY upload_date DESC, id DESC").
			WithArgs(filter.OwnerID, filter.SubjectID).
			WillReturnRows(documentRows().
				AddRow("d2", "s1", 3, "Second", "u2", t0.Add(time.Hour)).
				AddRow("d1", "s1", 3, "First", "u1", t0))

		got, err := repo.ListDocuments(context.Background(), filter)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "d2", got[0].ID)
		assert.Equal(t, "First", got[1].Title)
	})

	t.Run("unavailable", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewDocumentRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT (.+) FROM documents").WillReturnError(pgError(pgerrcode.ConnectionFailure))

		_, err := repo.ListDocuments(context.Background(), filter)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})
}
