package store

import (
	"context"

	"github.com/MKhiriev/go-study-shelf/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts in the "users" table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ConfirmEmail(ctx context.Context, userID int64) error
	UpdateProfile(ctx context.Context, profile models.Profile) (models.User, error)
}

// SubjectRepository persists subjects. Listing is ascending by creation time.
type SubjectRepository interface {
	CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error)
	GetSubject(ctx context.Context, subjectID string) (models.Subject, error)
	ListSubjects(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error)
}

// DocumentRepository persists document metadata. Listing is newest upload first.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, document models.Document) (models.Document, error)
	ListDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error)
}

// FileStorage keeps uploaded blobs. Save returns the slash-separated path of
// the stored file relative to the storage root.
type FileStorage interface {
	Save(ctx context.Context, ownerID int64, name string, content []byte) (string, error)
	Root() string
}
