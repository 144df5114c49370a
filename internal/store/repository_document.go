package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/jackc/pgerrcode"
)

// documentRepository is the PostgreSQL-backed implementation of [DocumentRepository].
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] over db.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateDocument inserts document and returns the stored row. A subject that
// vanished in between surfaces as [ErrReferenceNotFound].
func (d *documentRepository) CreateDocument(ctx context.Context, document models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertDocumentQuery(document)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanDocument(d.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.CreateDocument").
			Str("subject_id", document.SubjectID).
			Msg("failed to insert document")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Document{}, fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
		}
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingStatement, d.DB.unavailable(err))
	}

	return created, nil
}

// ListDocuments returns the owner's documents of one subject, newest first.
func (d *documentRepository) ListDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDocumentsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.ListDocuments").
			Str("subject_id", filter.SubjectID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, d.DB.unavailable(err))
	}
	defer rows.Close()

	documents := make([]models.Document, 0, 16)
	for rows.Next() {
		var document models.Document
		if err = rows.Scan(
			&document.ID,
			&document.SubjectID,
			&document.OwnerID,
			&document.Title,
			&document.FileURL,
			&document.UploadDate,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		documents = append(documents, document)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "documentRepository.ListDocuments").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, d.DB.unavailable(err))
	}

	return documents, nil
}

func scanDocument(row *sql.Row) (models.Document, error) {
	var document models.Document
	err := row.Scan(
		&document.ID,
		&document.SubjectID,
		&document.OwnerID,
		&document.Title,
		&document.FileURL,
		&document.UploadDate,
	)
	return document, err
}
