package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-study-shelf/internal/app"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/service"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorStatusMap is ordered: an error wrapping several sentinels gets the
// first matching entry.
var errorStatusMap = []errorResponse{
	{validators.ErrInvalidSemester, http.StatusBadRequest, app.MsgInvalidSemester},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{store.ErrInvalidFile, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrEmailNotConfirmed, http.StatusForbidden, app.MsgEmailNotConfirmed},
	{service.ErrAccessDenied, http.StatusForbidden, app.MsgAccessDenied},

	{store.ErrSubjectNotFound, http.StatusNotFound, app.MsgSubjectNotFound},
	{store.ErrReferenceNotFound, http.StatusNotFound, app.MsgSubjectNotFound},
	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},

	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
	{store.ErrUsernameTaken, http.StatusConflict, app.MsgUsernameTaken},

	{service.ErrFileTooLarge, http.StatusRequestEntityTooLarge, app.MsgFileTooLarge},
	{service.ErrUnsupportedFileType, http.StatusUnsupportedMediaType, app.MsgOnlyPDF},

	{store.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgStorageUnavailable},
}

func responseFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func statusFromError(err error) int {
	status, _ := responseFromError(err)
	return status
}

// writeError logs err and answers with the mapped status. fallback replaces
// the generic message of unmapped errors when not empty.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error, fallback string) {
	status, message := responseFromError(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg(message)
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Msg(message)
	}

	http.Error(w, message, status)
}
