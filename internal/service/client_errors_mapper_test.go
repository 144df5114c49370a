package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-study-shelf/internal/adapter"
	"github.com/MKhiriev/go-study-shelf/internal/app"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
	"github.com/stretchr/testify/assert"
)

func transportErr(base error, body string) error {
	return fmt.Errorf("%w: %s", base, body)
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"wrong password", transportErr(adapter.ErrUnauthorized, app.MsgInvalidEmailPassword), ErrWrongPassword},
		{"expired token", transportErr(adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid), ErrTokenIsExpiredOrInvalid},
		{"unconfirmed", transportErr(adapter.ErrForbidden, app.MsgEmailNotConfirmed), ErrEmailNotConfirmed},
		{"foreign subject", transportErr(adapter.ErrForbidden, app.MsgAccessDenied), ErrAccessDenied},
		{"subject missing", transportErr(adapter.ErrNotFound, app.MsgSubjectNotFound), store.ErrSubjectNotFound},
		{"email taken", transportErr(adapter.ErrConflict, app.MsgEmailAlreadyExists), store.ErrEmailAlreadyExists},
		{"username taken", transportErr(adapter.ErrConflict, app.MsgUsernameTaken), store.ErrUsernameTaken},
		{"bad semester", transportErr(adapter.ErrBadRequest, app.MsgInvalidSemester), validators.ErrInvalidSemester},
		{"bad data", transportErr(adapter.ErrBadRequest, app.MsgInvalidDataProvided), ErrInvalidDataProvided},
		{"too large", transportErr(adapter.ErrTooLarge, app.MsgFileTooLarge), ErrFileTooLarge},
		{"not pdf", transportErr(adapter.ErrUnsupportedMedia, app.MsgOnlyPDF), ErrUnsupportedFileType},
		{"register failed", transportErr(adapter.ErrBadGateway, app.MsgRegistrationFailed), ErrRegisterOnServer},
		{"login failed", transportErr(adapter.ErrBadGateway, app.MsgLoginFailed), ErrLoginOnServer},
		{"unavailable", transportErr(adapter.ErrServiceUnavailable, app.MsgStorageUnavailable), ErrUnavailable},
		{"unknown body keeps transport error", transportErr(adapter.ErrConflict, "something else"), adapter.ErrConflict},
		{"network error passes through", context.DeadlineExceeded, context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.True(t, errors.Is(got, tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestExtractBody(t *testing.T) {
	assert.Equal(t, "subject not found", extractBody(errors.New("not found: subject not found")))
	assert.Equal(t, "plain", extractBody(errors.New("plain")))
	assert.Equal(t, app.MsgEmailNotConfirmed, extractBody(fmt.Errorf("login: %w: %s", adapter.ErrForbidden, app.MsgEmailNotConfirmed)))
}
