package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/mock"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDocumentSvc(t *testing.T) (*documentService, *mock.MockDocumentRepository, *mock.MockSubjectRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	documents := mock.NewMockDocumentRepository(ctrl)
	subjects := mock.NewMockSubjectRepository(ctrl)

	svc := NewDocumentService(documents, subjects, validators.NewValidator(), logger.Nop()).(*documentService)
	svc.ids = fixedID("0192-document")
	svc.now = func() time.Time { return serverNow }
	return svc, documents, subjects
}

func TestDocumentService_List(t *testing.T) {
	svc, documents, subjects := newTestDocumentSvc(t)
	ctx := context.Background()
	want := []models.Document{{ID: "d2", SubjectID: "s1", OwnerID: 7}, {ID: "d1", SubjectID: "s1", OwnerID: 7}}

	subjects.EXPECT().GetSubject(ctx, "s1").Return(models.Subject{ID: "s1", OwnerID: 7}, nil)
	documents.EXPECT().ListDocuments(ctx, models.DocumentFilter{OwnerID: 7, SubjectID: "s1"}).Return(want, nil)

	got, err := svc.List(ctx, 7, "s1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDocumentService_List_Empty(t *testing.T) {
	svc, documents, subjects := newTestDocumentSvc(t)

	subjects.EXPECT().GetSubject(gomock.Any(), "s1").Return(models.Subject{ID: "s1", OwnerID: 7}, nil)
	documents.EXPECT().ListDocuments(gomock.Any(), gomock.Any()).Return(nil, nil)

	got, err := svc.List(context.Background(), 7, "s1")
	require.NoError(t, err)
	assert.Equal(t, []models.Document{}, got)
}

func TestDocumentService_List_ForeignSubject(t *testing.T) {
	svc, _, subjects := newTestDocumentSvc(t)

	subjects.EXPECT().GetSubject(gomock.Any(), "s1").Return(models.Subject{ID: "s1", OwnerID: 8}, nil)

	_, err := svc.List(context.Background(), 7, "s1")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDocumentService_List_UnknownSubject(t *testing.T) {
	svc, _, subjects := newTestDocumentSvc(t)

	subjects.EXPECT().GetSubject(gomock.Any(), "s1").Return(models.Subject{}, store.ErrSubjectNotFound)

	_, err := svc.List(context.Background(), 7, "s1")
	assert.ErrorIs(t, err, store.ErrSubjectNotFound)
}

func TestDocumentService_List_EmptySubjectID(t *testing.T) {
	svc, _, _ := newTestDocumentSvc(t)

	_, err := svc.List(context.Background(), 7, " ")
	assert.ErrorIs(t, err, validators.ErrEmptySubjectID)
}

func TestDocumentService_Create(t *testing.T) {
	svc, documents, subjects := newTestDocumentSvc(t)
	ctx := context.Background()

	expected := models.Document{
		ID:         "0192-document",
		Title:      "Lecture 1",
		SubjectID:  "s1",
		UploadDate: serverNow.UTC(),
		FileURL:    "http://shelf.test/files/7/a.pdf",
		OwnerID:    7,
	}
	subjects.EXPECT().GetSubject(ctx, "s1").Return(models.Subject{ID: "s1", OwnerID: 7}, nil)
	documents.EXPECT().CreateDocument(ctx, expected).Return(expected, nil)

	got, err := svc.Create(ctx, 7, models.Document{
		ID:        "ignored",
		Title:     " Lecture 1 ",
		SubjectID: "s1",
		FileURL:   "http://shelf.test/files/7/a.pdf",
		OwnerID:   99,
	})
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestDocumentService_Create_Invalid(t *testing.T) {
	svc, _, _ := newTestDocumentSvc(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 7, models.Document{Title: "", SubjectID: "s1", FileURL: "http://x/a.pdf"})
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)

	_, err = svc.Create(ctx, 7, models.Document{Title: "T", SubjectID: "s1", FileURL: ""})
	assert.ErrorIs(t, err, validators.ErrEmptyFileURL)
}

func TestDocumentService_Create_ForeignSubject(t *testing.T) {
	svc, _, subjects := newTestDocumentSvc(t)

	subjects.EXPECT().GetSubject(gomock.Any(), "s1").Return(models.Subject{ID: "s1", OwnerID: 8}, nil)

	_, err := svc.Create(context.Background(), 7, models.Document{Title: "T", SubjectID: "s1", FileURL: "http://x/a.pdf"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
