package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/mock"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pdfContent = []byte("%PDF-1.7\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")

func newTestFileSvc(t *testing.T, maxSize int64) (*fileService, *mock.MockFileStorage) {
	t.Helper()
	files := mock.NewMockFileStorage(gomock.NewController(t))
	cfg := config.StructuredConfig{
		App:     config.App{PublicURL: "http://shelf.test/"},
		Storage: config.Storage{Files: config.Files{Dir: "/srv/files", MaxUploadSize: maxSize}},
	}

	svc := NewFileService(files, validators.NewValidator(), cfg, logger.Nop()).(*fileService)
	svc.ids = fixedID("0192-file")
	return svc, files
}

func TestFileService_Save(t *testing.T) {
	svc, files := newTestFileSvc(t, 1<<20)
	ctx := context.Background()

	files.EXPECT().Save(ctx, int64(7), "0192-file.pdf", pdfContent).Return("7/0192-file.pdf", nil)

	url, err := svc.Save(ctx, 7, models.File{Name: "notes.pdf", ContentType: "application/pdf", Content: pdfContent})
	require.NoError(t, err)
	assert.Equal(t, "http://shelf.test/files/7/0192-file.pdf", url)
}

func TestFileService_Save_Rejects(t *testing.T) {
	tests := []struct {
		name string
		file models.File
		max  int64
		want error
	}{
		{"declared as image", models.File{ContentType: "image/png", Content: pdfContent}, 1 << 20, ErrUnsupportedFileType},
		{"declared pdf but is text", models.File{ContentType: "application/pdf", Content: []byte("hello world")}, 1 << 20, ErrUnsupportedFileType},
		{"empty", models.File{ContentType: "application/pdf"}, 1 << 20, ErrInvalidDataProvided},
		{"too large", models.File{ContentType: "application/pdf", Content: pdfContent}, 8, ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestFileSvc(t, tt.max)

			_, err := svc.Save(context.Background(), 7, tt.file)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFileService_Save_StorageError(t *testing.T) {
	svc, files := newTestFileSvc(t, 1<<20)

	files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.Join(store.ErrInvalidFile, errors.New("disk full")))

	_, err := svc.Save(context.Background(), 7, models.File{ContentType: "application/pdf", Content: pdfContent})
	assert.ErrorIs(t, err, store.ErrInvalidFile)
}

func TestFileService_Accessors(t *testing.T) {
	svc, files := newTestFileSvc(t, 42)
	files.EXPECT().Root().Return("/srv/files")

	assert.Equal(t, int64(42), svc.MaxUploadSize())
	assert.Equal(t, "/srv/files", svc.Root())
}
