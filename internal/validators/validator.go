package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/MKhiriev/go-study-shelf/models"
)

// Field names accepted by [Validator.Validate].
const (
	FieldUserID          = "user_id"
	FieldEmail           = "email"
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldSemester        = "semester"
	FieldName            = "name"
	FieldSubjectID       = "subject_id"
	FieldTitle           = "title"
	FieldFileURL         = "file_url"
	FieldContent         = "content"
	FieldContentType     = "content_type"
	FieldTheme           = "theme"
)

const (
	minPasswordLength = 6
	maxEmailLength    = 255
	maxNameLength     = 255
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,50}$`)

var semesterValues = func() []any {
	values := make([]any, 0, len(models.ValidSemesters))
	for _, s := range models.ValidSemesters {
		values = append(values, s)
	}
	return values
}()

// ShelfValidator implements [Validator] for accounts, subjects, documents,
// uploads and settings.
type ShelfValidator struct{}

func NewValidator() Validator {
	return &ShelfValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms of
// every model are accepted.
//
// Supported types: models.RegisterRequest, models.Credentials, models.Profile,
// models.Subject, models.SubjectFilter, models.Document, models.DocumentFilter,
// models.File, models.Settings.
func (v *ShelfValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.Profile:
		return v.validateProfile(value, fields...)
	case *models.Profile:
		return v.validateProfile(*value, fields...)

	case models.Subject:
		return v.validateSubject(value, fields...)
	case *models.Subject:
		return v.validateSubject(*value, fields...)

	case models.SubjectFilter:
		return v.validateSubjectFilter(value, fields...)

	case models.Document:
		return v.validateDocument(value, fields...)
	case *models.Document:
		return v.validateDocument(*value, fields...)

	case models.DocumentFilter:
		return v.validateDocumentFilter(value, fields...)

	case models.File:
		return v.validateFile(value, fields...)
	case *models.File:
		return v.validateFile(*value, fields...)

	case models.Settings:
		return v.validateSettings(value, fields...)
	case *models.Settings:
		return v.validateSettings(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ShelfValidator) validateRegisterRequest(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldPassword, FieldConfirmPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = checkEmail(req.Email)
		case FieldUsername:
			err = checkUsername(req.Username)
		case FieldPassword:
			err = check(ErrPasswordTooShort, req.Password, validation.Required, validation.RuneLength(minPasswordLength, 0))
		case FieldConfirmPassword:
			if req.ConfirmPassword != req.Password {
				err = ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *ShelfValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = checkEmail(c.Email)
		case FieldPassword:
			err = check(ErrPasswordTooShort, c.Password, validation.Required)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *ShelfValidator) validateProfile(p models.Profile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUserID:
			err = check(ErrInvalidUserID, p.UserID, validation.Required, validation.Min(int64(1)))
		case FieldUsername:
			err = checkUsername(p.Username)
		case FieldEmail:
			err = checkEmail(p.Email)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *ShelfValidator) validateSubject(s models.Subject, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldSemester}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUserID:
			err = check(ErrInvalidUserID, s.OwnerID, validation.Required, validation.Min(int64(1)))
		case FieldName:
			err = check(ErrEmptySubjectName, strings.TrimSpace(s.Name), validation.Required, validation.RuneLength(1, maxNameLength))
		case FieldSemester:
			err = checkSemester(s.Semester)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *ShelfValidator) validateSubjectFilter(f models.SubjectFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldSemester}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldUserID:
			err = check(ErrInvalidUserID, f.OwnerID, validation.Required, validation.Min(int64(1)))
		case FieldSemester:
			err = checkSemester(f.Semester)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *ShelfValidator) validateDocument(d models.Document, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldSubjectID, FieldFileURL}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUserID:
			err = check(ErrInvalidUserID, d.OwnerID, validation.Required, validation.Min(int64(1)))
		case FieldTitle:
			err = check(ErrEmptyTitle, strings.TrimSpace(d.Title), validation.Required, validation.RuneLength(1, maxNameLength))
		case FieldSubjectID:
			err = check(ErrEmptySubjectID, strings.TrimSpace(d.SubjectID), validation.Required)
		case FieldFileURL:
			err = check(ErrEmptyFileURL, d.FileURL, validation.Required, is.RequestURL)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *ShelfValidator) validateDocumentFilter(f models.DocumentFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldSubjectID}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldUserID:
			err = check(ErrInvalidUserID, f.OwnerID, validation.Required, validation.Min(int64(1)))
		case FieldSubjectID:
			err = check(ErrEmptySubjectID, strings.TrimSpace(f.SubjectID), validation.Required)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *ShelfValidator) validateFile(file models.File, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContentType, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldContentType:
			if !file.IsPDF() {
				return fmt.Errorf("%w: got %q", ErrNotPDF, file.ContentType)
			}
		case FieldContent:
			if len(file.Content) == 0 {
				return ErrEmptyFile
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ShelfValidator) validateSettings(s models.Settings, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTheme}
	}

	for _, f := range fields {
		switch f {
		case FieldTheme:
			if err := check(ErrInvalidTheme, s.Theme, validation.Required, validation.In(models.ThemeLight, models.ThemeDark)); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// check runs ozzo rules against value and wraps a failure in sentinel.
func check(sentinel error, value any, rules ...validation.Rule) error {
	if err := validation.Validate(value, rules...); err != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return nil
}

func checkEmail(email string) error {
	return check(ErrInvalidEmail, strings.TrimSpace(email),
		validation.Required,
		validation.RuneLength(3, maxEmailLength),
		is.EmailFormat,
	)
}

func checkUsername(username string) error {
	return check(ErrInvalidUsername, username, validation.Required, validation.Match(usernamePattern))
}

func checkSemester(semester string) error {
	return check(ErrInvalidSemester, semester, validation.Required, validation.In(semesterValues...))
}
