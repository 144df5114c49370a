package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-study-shelf/internal/adapter"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
	"github.com/MKhiriev/go-study-shelf/models"
)

type clientProfileService struct {
	adapter   adapter.ServerAdapter
	sessions  SessionProvider
	validator validators.Validator
}

func NewClientProfileService(serverAdapter adapter.ServerAdapter, sessions SessionProvider, validator validators.Validator) ClientProfileService {
	return &clientProfileService{adapter: serverAdapter, sessions: sessions, validator: validator}
}

func (p *clientProfileService) Get(ctx context.Context) (models.Profile, error) {
	if _, ok := p.sessions.Current(); !ok {
		return models.Profile{}, ErrAuthenticationRequired
	}

	profile, err := p.adapter.GetProfile(ctx)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}
	return profile, nil
}

// Update checks username and email locally before sending them. A username
// used by someone else comes back as store.ErrUsernameTaken.
func (p *clientProfileService) Update(ctx context.Context, profile models.Profile) (models.Profile, error) {
	session, ok := p.sessions.Current()
	if !ok {
		return models.Profile{}, ErrAuthenticationRequired
	}

	profile.UserID = session.UserID
	profile.Username = strings.TrimSpace(profile.Username)
	profile.Email = strings.TrimSpace(profile.Email)

	if err := p.validator.Validate(ctx, profile, validators.FieldUsername, validators.FieldEmail); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	updated, err := p.adapter.UpdateProfile(ctx, profile)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}
	return updated, nil
}
