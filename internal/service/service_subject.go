package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/utils"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
	"github.com/MKhiriev/go-study-shelf/models"
)

type idGenerator interface {
	Generate() string
}

type subjectService struct {
	subjectRepository store.SubjectRepository
	validator         validators.Validator
	ids               idGenerator
	now               func() time.Time
	logger            *logger.Logger
}

func NewSubjectService(subjectRepository store.SubjectRepository, validator validators.Validator, logger *logger.Logger) SubjectService {
	return &subjectService{
		subjectRepository: subjectRepository,
		validator:         validator,
		ids:               utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

// List returns the owner's subjects of one semester in creation order.
// An empty result is a non-nil slice.
func (s *subjectService) List(ctx context.Context, ownerID int64, semester string) ([]models.Subject, error) {
	filter := models.SubjectFilter{OwnerID: ownerID, Semester: semester}
	if err := s.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	subjects, err := s.subjectRepository.ListSubjects(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("subject listing failed: %w", err)
	}
	if subjects == nil {
		subjects = []models.Subject{}
	}

	return subjects, nil
}

// Create stores a new subject owned by ownerID. ID, owner and creation time
// are always assigned here, whatever the caller sent.
func (s *subjectService) Create(ctx context.Context, ownerID int64, subject models.Subject) (models.Subject, error) {
	subject.Name = strings.TrimSpace(subject.Name)
	subject.OwnerID = ownerID

	if err := s.validator.Validate(ctx, subject, validators.FieldUserID, validators.FieldName, validators.FieldSemester); err != nil {
		return models.Subject{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	subject.ID = s.ids.Generate()
	subject.CreatedAt = s.now().UTC()

	created, err := s.subjectRepository.CreateSubject(ctx, subject)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "subjectService.Create").Int64("owner_id", ownerID).Msg("subject creation failed")
		return models.Subject{}, fmt.Errorf("subject creation failed: %w", err)
	}

	return created, nil
}
