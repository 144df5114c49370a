package service

import (
	"context"

	"github.com/MKhiriev/go-study-shelf/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns accounts, email verification and session tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	IssueSession(ctx context.Context, user models.User) (models.Session, error)
	Refresh(ctx context.Context, refreshToken string) (models.Session, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService reads and edits the non-secret part of an account.
type ProfileService interface {
	Get(ctx context.Context, userID int64) (models.Profile, error)
	Update(ctx context.Context, userID int64, profile models.Profile) (models.Profile, error)
}

// SubjectService lists and creates the caller's subjects.
type SubjectService interface {
	List(ctx context.Context, ownerID int64, semester string) ([]models.Subject, error)
	Create(ctx context.Context, ownerID int64, subject models.Subject) (models.Subject, error)
}

// DocumentService lists and creates document records of the caller's subjects.
type DocumentService interface {
	List(ctx context.Context, ownerID int64, subjectID string) ([]models.Document, error)
	Create(ctx context.Context, ownerID int64, document models.Document) (models.Document, error)
}

// FileService stores uploaded PDFs and returns their public URL.
type FileService interface {
	Save(ctx context.Context, ownerID int64, file models.File) (string, error)
	MaxUploadSize() int64
	Root() string
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Mailer delivers verification links.
type Mailer interface {
	SendVerification(ctx context.Context, user models.User, token string) error
}
