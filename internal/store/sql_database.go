package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/migrations"
)

// ErrorClassificator decides whether a failed database call is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	dialect            migrations.Dialect
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// unavailable wraps transient failures as [ErrStorageUnavailable] and
// returns other errors unchanged.
func (db *DB) unavailable(err error) error {
	if err == nil {
		return nil
	}

	transient := errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded)
	if !transient && db.errorClassificator != nil {
		transient = db.errorClassificator.Classify(err) == Retryable
	}

	if transient {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return err
}
