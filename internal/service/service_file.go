// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-study-shelf/internal/config"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/utils"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
	"github.com/MKhiriev/go-study-shelf/models"
)

// FilesPathPrefix is the URL path stored files are served under.
const FilesPathPrefix = "/files/"

type fileService struct {
	fileStorage   store.FileStorage
	validator     validators.Validator
	ids           idGenerator
	publicURL     string
	maxUploadSize int64
	logger        *logger.Logger
}

func NewFileService(fileStorage store.FileStorage, validator validators.Validator, cfg config.StructuredConfig, logger *logger.Logger) FileService {
	return &fileService{
		fileStorage:   fileStorage,
		validator:     validator,
		ids:           utils.NewUUIDGenerator(),
		publicURL:     strings.TrimRight(cfg.App.PublicURL, "/"),
		maxUploadSize: cfg.Storage.Files.MaxUploadSize,
		logger:        logger,
	}
}

// Save stores a PDF under a generated name and returns its public URL.
//
// Both the declared content type and the sniffed content must be PDF;
// otherwise ErrUnsupportedFileType is returned. Files larger than
// MaxUploadSize yield ErrFileTooLarge.
func (f *fileService) Save(ctx context.Context, ownerID int64, file models.File) (string, error) {
	if err := f.validator.Validate(ctx, file); err != nil {
		if errors.Is(err, validators.ErrNotPDF) {
			return "", fmt.Errorf("%w: %w", ErrUnsupportedFileType, err)
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if f.maxUploadSize > 0 && int64(len(file.Content)) > f.maxUploadSize {
		return "", fmt.Errorf("%w: %d bytes", ErrFileTooLarge, len(file.Content))
	}

	if sniffed := http.DetectContentType(file.Content); sniffed != models.ContentTypePDF {
		return "", fmt.Errorf("%w: content looks like %s", ErrUnsupportedFileType, sniffed)
	}

	rel, err := f.fileStorage.Save(ctx, ownerID, f.ids.Generate()+".pdf", file.Content)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileService.Save").Int64("owner_id", ownerID).Msg("file save failed")
		return "", fmt.Errorf("file save failed: %w", err)
	}

	return f.publicURL + FilesPathPrefix + rel, nil
}

func (f *fileService) MaxUploadSize() int64 {
	return f.maxUploadSize
}

func (f *fileService) Root() string {
	return f.fileStorage.Root()
}
