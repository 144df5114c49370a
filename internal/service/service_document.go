package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/utils"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
	"github.com/MKhiriev/go-study-shelf/models"
)

type documentService struct {
	documentRepository store.DocumentRepository
	subjectRepository  store.SubjectRepository
	validator          validators.Validator
	ids                idGenerator
	now                func() time.Time
	logger             *logger.Logger
}

func NewDocumentService(documentRepository store.DocumentRepository, subjectRepository store.SubjectRepository,
	validator validators.Validator, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		subjectRepository:  subjectRepository,
		validator:          validator,
		ids:                utils.NewUUIDGenerator(),
		now:                time.Now,
		logger:             logger,
	}
}

// List returns the documents of one subject, newest upload first.
//
// Returns store.ErrSubjectNotFound for an unknown subject and
// ErrAccessDenied when the subject belongs to someone else.
func (d *documentService) List(ctx context.Context, ownerID int64, subjectID string) ([]models.Document, error) {
	filter := models.DocumentFilter{OwnerID: ownerID, SubjectID: strings.TrimSpace(subjectID)}
	if err := d.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := d.checkOwner(ctx, ownerID, filter.SubjectID); err != nil {
		return nil, err
	}

	documents, err := d.documentRepository.ListDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("document listing failed: %w", err)
	}
	if documents == nil {
		documents = []models.Document{}
	}

	return documents, nil
}

// Create records an uploaded file under one of the owner's subjects.
func (d *documentService) Create(ctx context.Context, ownerID int64, document models.Document) (models.Document, error) {
	document.Title = strings.TrimSpace(document.Title)
	document.SubjectID = strings.TrimSpace(document.SubjectID)
	document.OwnerID = ownerID

	if err := d.validator.Validate(ctx, document, validators.FieldUserID, validators.FieldTitle,
		validators.FieldSubjectID, validators.FieldFileURL); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := d.checkOwner(ctx, ownerID, document.SubjectID); err != nil {
		return models.Document{}, err
	}

	document.ID = d.ids.Generate()
	document.UploadDate = d.now().UTC()

	created, err := d.documentRepository.CreateDocument(ctx, document)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "documentService.Create").Str("subject_id", document.SubjectID).Msg("document creation failed")
		return models.Document{}, fmt.Errorf("document creation failed: %w", err)
	}

	return created, nil
}

func (d *documentService) checkOwner(ctx context.Context, ownerID int64, subjectID string) error {
	subject, err := d.subjectRepository.GetSubject(ctx, subjectID)
	if errors.Is(err, store.ErrSubjectNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("subject lookup failed: %w", err)
	}

	if subject.OwnerID != ownerID {
		logger.FromContext(ctx).Warn().Int64("user_id", ownerID).Str("subject_id", subjectID).Msg("access to foreign subject")
		return ErrAccessDenied
	}

	return nil
}
