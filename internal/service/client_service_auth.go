package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-study-shelf/internal/adapter"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
	"github.com/MKhiriev/go-study-shelf/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	sessions  ClientSessionService
	validator validators.Validator
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, sessions ClientSessionService, validator validators.Validator) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, sessions: sessions, validator: validator}
}

// Register checks the form locally and creates an unconfirmed account. The
// user is not signed in: the email address has to be confirmed first.
func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return user, nil
}

// Login exchanges credentials for a session and hands it to the session
// service, which notifies its subscribers. An unconfirmed address surfaces
// as ErrEmailNotConfirmed.
func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	credentials.Email = strings.TrimSpace(credentials.Email)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	session, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	if err = a.sessions.SetSession(ctx, session); err != nil {
		return session, fmt.Errorf("store session: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) VerifyEmail(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: empty verification token", ErrValidation)
	}

	if err := a.adapter.VerifyEmail(ctx, token); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (a *clientAuthService) ResendVerification(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := a.validator.Validate(ctx, models.Credentials{Email: email}, validators.FieldEmail); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := a.adapter.ResendVerification(ctx, email); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	return a.sessions.SignOut(ctx)
}
