// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the study-shelf server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-study-shelf/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the study-shelf
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. Safe for concurrent use.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an unconfirmed account. The server does not sign the
	// user in; the email address has to be confirmed first.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login exchanges credentials for a session. The returned access token is
	// stored via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// VerifyEmail confirms an email address with the token sent by the server.
	VerifyEmail(ctx context.Context, token string) error

	// ResendVerification asks the server to send the verification link again.
	ResendVerification(ctx context.Context, email string) error

	// RefreshSession exchanges a refresh token for a new session. The new
	// access token is stored via SetToken.
	RefreshSession(ctx context.Context, refreshToken string) (models.Session, error)

	// Logout ends the server-side session and clears the stored token.
	Logout(ctx context.Context) error

	// GetProfile returns the signed-in user's profile.
	GetProfile(ctx context.Context) (models.Profile, error)

	// UpdateProfile changes username and email of the signed-in user.
	UpdateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)

	// ListSubjects returns the caller's subjects of filter.Semester in
	// ascending creation order.
	ListSubjects(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error)

	// CreateSubject creates a subject and returns the stored record.
	CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error)

	// ListDocuments returns the documents of filter.SubjectID, newest upload first.
	ListDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error)

	// CreateDocument creates a document record and returns the stored record.
	CreateDocument(ctx context.Context, document models.Document) (models.Document, error)

	// UploadFile stores a PDF and returns its retrievable URL.
	UploadFile(ctx context.Context, file models.File) (string, error)

	// GetServerVersion returns the server build version string.
	GetServerVersion(ctx context.Context) (string, error)
}
