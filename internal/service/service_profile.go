package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
	"github.com/MKhiriev/go-study-shelf/models"
)

type profileService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewProfileService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) ProfileService {
	return &profileService{userRepository: userRepository, validator: validator, logger: logger}
}

func (p *profileService) Get(ctx context.Context, userID int64) (models.Profile, error) {
	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user.Profile(), nil
}

// Update changes username and email of userID. The id inside profile is
// ignored: a caller can only edit its own account.
func (p *profileService) Update(ctx context.Context, userID int64, profile models.Profile) (models.Profile, error) {
	profile.UserID = userID
	profile.Username = strings.TrimSpace(profile.Username)
	profile.Email = strings.TrimSpace(profile.Email)

	if err := p.validator.Validate(ctx, profile, validators.FieldUserID, validators.FieldUsername, validators.FieldEmail); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := p.userRepository.UpdateProfile(ctx, profile)
	if err != nil {
		if !errors.Is(err, store.ErrEmailAlreadyExists) && !errors.Is(err, store.ErrUsernameTaken) {
			logger.FromContext(ctx).Err(err).Str("func", "profileService.Update").Int64("user_id", userID).Msg("profile update failed")
		}
		return models.Profile{}, fmt.Errorf("profile update failed: %w", err)
	}

	return user.Profile(), nil
}
