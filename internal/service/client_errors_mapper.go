// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-study-shelf/internal/adapter"
	"github.com/MKhiriev/go-study-shelf/internal/app"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidSemester:
			return fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidSemester)
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidEmailPassword:
			return ErrWrongPassword
		default:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		switch msg {
		case app.MsgEmailNotConfirmed:
			return ErrEmailNotConfirmed
		default:
			return ErrAccessDenied
		}

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgSubjectNotFound:
			return store.ErrSubjectNotFound
		case app.MsgUserNotFound:
			return store.ErrUserNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgEmailAlreadyExists:
			return store.ErrEmailAlreadyExists
		case app.MsgUsernameTaken:
			return store.ErrUsernameTaken
		}

	case errors.Is(err, adapter.ErrTooLarge):
		return ErrFileTooLarge

	case errors.Is(err, adapter.ErrUnsupportedMedia):
		return ErrUnsupportedFileType

	case errors.Is(err, adapter.ErrBadGateway):
		switch msg {
		case app.MsgRegistrationFailed:
			return ErrRegisterOnServer
		case app.MsgLoginFailed:
			return ErrLoginOnServer
		}

	case errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return err
}

// extractBody extracts the body from a message of the form
// "[op: ]bad request: <body>". Response bodies never contain ": ".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
