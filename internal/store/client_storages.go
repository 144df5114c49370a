package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Preferences is the SQLite-backed key/value slot holding the selected
	// semester, the saved session and the settings blob.
	Preferences KeyValueStore

	db *DB
}

// NewClientStorages opens (creating if needed) the SQLite file named by
// cfg.DB.DSN, runs pending migrations and wires the repositories.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Preferences: NewPreferencesRepository(db, logger),
		db:          db,
	}, nil
}

// Close releases the SQLite handle.
func (c *ClientStorages) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
