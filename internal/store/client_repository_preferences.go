package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-study-shelf/internal/logger"
)

type preferencesRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPreferencesRepository returns a [KeyValueStore] over the "preferences"
// table of the local SQLite database.
func NewPreferencesRepository(db *DB, logger *logger.Logger) KeyValueStore {
	return &preferencesRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (p *preferencesRepository) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPreferenceQuery(key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = p.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "preferencesRepository.Get").Str("key", key).Msg("failed to read preference")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, p.DB.unavailable(err))
	}

	return value, true, nil
}

func (p *preferencesRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertPreferenceQuery(key, value, p.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "preferencesRepository.Set").Str("key", key).Msg("failed to upsert preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, p.DB.unavailable(err))
	}

	return nil
}

func (p *preferencesRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePreferenceQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "preferencesRepository.Delete").Str("key", key).Msg("failed to delete preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, p.DB.unavailable(err))
	}

	return nil
}
