package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
	"github.com/MKhiriev/go-study-shelf/models"
)

// KeySettings is the durable slot holding the JSON encoded settings.
const KeySettings = "settings"

type clientSettingsService struct {
	prefs     store.KeyValueStore
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientSettingsService(prefs store.KeyValueStore, validator validators.Validator, logger *logger.Logger) ClientSettingsService {
	return &clientSettingsService{prefs: prefs, validator: validator, logger: logger.WithComponent("settings")}
}

// Load returns the saved settings. Keys missing from the saved blob keep
// their default value; an unreadable blob or unknown theme falls back to the
// defaults.
func (s *clientSettingsService) Load(ctx context.Context) (models.Settings, error) {
	defaults := models.DefaultSettings()

	raw, found, err := s.prefs.Get(ctx, KeySettings)
	if err != nil {
		return defaults, fmt.Errorf("read settings: %w", err)
	}
	if !found {
		return defaults, nil
	}

	settings := defaults
	if err = json.Unmarshal([]byte(raw), &settings); err != nil {
		s.logger.Warn().Err(err).Msg("saved settings are unreadable, using defaults")
		return defaults, nil
	}
	if err = s.validator.Validate(ctx, settings); err != nil {
		s.logger.Warn().Err(err).Str("theme", settings.Theme).Msg("saved theme is unknown, using default")
		settings.Theme = defaults.Theme
	}

	return settings, nil
}

func (s *clientSettingsService) Save(ctx context.Context, settings models.Settings) error {
	if err := s.validator.Validate(ctx, settings); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err = s.prefs.Set(ctx, KeySettings, string(raw)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
