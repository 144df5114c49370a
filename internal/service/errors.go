package service

import "errors"

// Server-side errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrEmailNotConfirmed   = errors.New("email not confirmed")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrAccessDenied is returned when a caller touches another user's subject.
	ErrAccessDenied = errors.New("access denied")

	ErrFileTooLarge        = errors.New("file too large")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// Client-side errors.
var (
	ErrRegisterOnServer = errors.New("error registering on server")
	ErrLoginOnServer    = errors.New("error logging in on server")

	// ErrValidation is a local input failure: nothing was sent and no state
	// changed. It wraps the concrete reason.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable means a remote call failed or timed out. Cached state
	// was left at its last known good value.
	ErrUnavailable = errors.New("service unavailable")

	// ErrAuthenticationRequired means there is no session. The caller must
	// redirect to the login flow.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrOwnershipMismatch means the server returned a record attributed to
	// another user. The record is not cached.
	ErrOwnershipMismatch = errors.New("record belongs to a different owner")

	ErrUnknownSubject    = errors.New("subject is not in the current list")
	ErrNoSubjectSelected = errors.New("no subject selected")
)
