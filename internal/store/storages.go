package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
)

// Storages groups every server-side repository.
type Storages struct {
	UserRepository     UserRepository
	SubjectRepository  SubjectRepository
	DocumentRepository DocumentRepository
	FileStorage        FileStorage

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and prepares
// the upload directory.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	files, err := NewLocalFileStorage(cfg.Files, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("file storage error: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		SubjectRepository:  NewSubjectRepository(db, logger),
		DocumentRepository: NewDocumentRepository(db, logger),
		FileStorage:        files,
		db:                 db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
