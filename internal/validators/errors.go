package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidUsername  = errors.New("username must be 3-50 characters of letters, digits, '_' or '-'")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")

	ErrInvalidSemester  = errors.New("semester must be between 1 and 8")
	ErrEmptySubjectName = errors.New("subject name is required")
	ErrEmptySubjectID   = errors.New("subject id is required")
	ErrEmptyTitle       = errors.New("document title is required")
	ErrEmptyFileURL     = errors.New("file url is required")
	ErrEmptyFile        = errors.New("file is empty")
	ErrNotPDF           = errors.New("only PDF files are accepted")
	ErrInvalidTheme     = errors.New("unknown theme")
)
