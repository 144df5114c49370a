package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-study-shelf/internal/app"
	"github.com/MKhiriev/go-study-shelf/internal/service"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"semester wins over generic invalid data",
			fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidSemester),
			http.StatusBadRequest, app.MsgInvalidSemester},
		{"invalid data", fmt.Errorf("%w: name is blank", service.ErrInvalidDataProvided), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidEmailPassword},
		{"expired token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
		{"unconfirmed", service.ErrEmailNotConfirmed, http.StatusForbidden, app.MsgEmailNotConfirmed},
		{"foreign subject", service.ErrAccessDenied, http.StatusForbidden, app.MsgAccessDenied},
		{"dangling reference", store.ErrReferenceNotFound, http.StatusNotFound, app.MsgSubjectNotFound},
		{"user missing", store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
		{"email conflict", store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
		{"username conflict", store.ErrUsernameTaken, http.StatusConflict, app.MsgUsernameTaken},
		{"too large", service.ErrFileTooLarge, http.StatusRequestEntityTooLarge, app.MsgFileTooLarge},
		{"not pdf", service.ErrUnsupportedFileType, http.StatusUnsupportedMediaType, app.MsgOnlyPDF},
		{"storage down", store.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgStorageUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := responseFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}

func TestWriteError_Fallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)

	rec := httptest.NewRecorder()
	writeError(rec, req, "test", errors.New("smtp down"), app.MsgRegistrationFailed)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgRegistrationFailed, bodyText(rec))

	// mapped errors ignore the fallback
	rec = httptest.NewRecorder()
	writeError(rec, req, "test", store.ErrEmailAlreadyExists, app.MsgRegistrationFailed)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, app.MsgEmailAlreadyExists, bodyText(rec))
}
