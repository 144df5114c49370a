// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-study-shelf/internal/app"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/service"
	"github.com/MKhiriev/go-study-shelf/internal/utils"
	"github.com/MKhiriev/go-study-shelf/models"
)

const (
	filesRoute = service.FilesPathPrefix + "*"

	// multipartOverhead is allowed on top of the file limit for boundaries
	// and part headers.
	multipartOverhead = 64 << 10
	multipartMemory   = 8 << 20
	uploadFormField   = "file"
)

// uploadFile handles POST /api/files: a multipart form with the PDF under
// the "file" field. Answers 201 {file_url}.
func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	log := logger.FromRequest(r)
	maxSize := h.services.FileService.MaxUploadSize()

	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, app.MsgFileTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		log.Debug().Err(err).Str("func", "*Handler.uploadFile").Msg("invalid multipart form")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	part, header, err := r.FormFile(uploadFormField)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.uploadFile").Msg("no file in form")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	defer part.Close()

	content, err := io.ReadAll(io.LimitReader(part, maxSize+1))
	if err != nil {
		writeError(w, r, "*Handler.uploadFile", err, "")
		return
	}

	url, err := h.services.FileService.Save(r.Context(), userID, models.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		writeError(w, r, "*Handler.uploadFile", err, "")
		return
	}

	utils.WriteJSON(w, models.UploadResponse{FileURL: url}, http.StatusCreated)
}

// serveFiles serves stored PDFs read-only. Directory listings are hidden.
func (h *Handler) serveFiles() http.HandlerFunc {
	fileServer := http.StripPrefix(service.FilesPathPrefix, http.FileServer(http.Dir(h.services.FileService.Root())))

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("X-Content-Type-Options", "nosniff")
		fileServer.ServeHTTP(w, r)
	}
}
