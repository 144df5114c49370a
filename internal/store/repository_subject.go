// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/jackc/pgerrcode"
)

// subjectRepository is the PostgreSQL-backed implementation of [SubjectRepository].
type subjectRepository struct {
	*DB
	logger *logger.Logger
}

// NewSubjectRepository constructs a [SubjectRepository] over db.
func NewSubjectRepository(db *DB, logger *logger.Logger) SubjectRepository {
	logger.Debug().Msg("creating subject repository")
	return &subjectRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateSubject inserts subject as given (id and timestamps are assigned by
// the caller) and returns the stored row.
func (s *subjectRepository) CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSubjectQuery(subject)
	if err != nil {
		log.Err(err).Str("func", "subjectRepository.CreateSubject").Msg("failed to create query")
		return models.Subject{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanSubject(s.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "subjectRepository.CreateSubject").
			Int64("owner_id", subject.OwnerID).
			Str("semester", subject.Semester).
			Msg("failed to insert subject")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Subject{}, fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
		}
		return models.Subject{}, fmt.Errorf("%w: %w", ErrExecutingStatement, s.DB.unavailable(err))
	}

	return created, nil
}

// GetSubject returns the subject with the given id regardless of owner.
// Ownership is checked by the caller.
func (s *subjectRepository) GetSubject(ctx context.Context, subjectID string) (models.Subject, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSubjectQuery(subjectID)
	if err != nil {
		return models.Subject{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	subject, err := scanSubject(s.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return models.Subject{}, ErrSubjectNotFound
		}
		log.Err(err).Str("func", "subjectRepository.GetSubject").Str("subject_id", subjectID).Msg("failed to get subject")
		return models.Subject{}, fmt.Errorf("%w: %w", ErrExecutingQuery, s.DB.unavailable(err))
	}

	return subject, nil
}

// ListSubjects returns the owner's subjects of one semester, oldest first.
func (s *subjectRepository) ListSubjects(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSubjectsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "subjectRepository.ListSubjects").
			Int64("owner_id", filter.OwnerID).
			Str("semester", filter.Semester).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, s.DB.unavailable(err))
	}
	defer rows.Close()

	subjects := make([]models.Subject, 0, 16)
	for rows.Next() {
		var subject models.Subject
		if err = rows.Scan(
			&subject.ID,
			&subject.OwnerID,
			&subject.Name,
			&subject.IsPublic,
			&subject.Semester,
			&subject.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "subjectRepository.ListSubjects").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		subjects = append(subjects, subject)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "subjectRepository.ListSubjects").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, s.DB.unavailable(err))
	}

	return subjects, nil
}

func scanSubject(row *sql.Row) (models.Subject, error) {
	var subject models.Subject
	err := row.Scan(
		&subject.ID,
		&subject.OwnerID,
		&subject.Name,
		&subject.IsPublic,
		&subject.Semester,
		&subject.CreatedAt,
	)
	return subject, err
}
