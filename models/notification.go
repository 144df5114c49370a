package models

// NotificationKind classifies a non-fatal, user-visible notice.
type NotificationKind string

const (
	NotificationSubjectsUnavailable    NotificationKind = "subjects_unavailable"
	NotificationDocumentsUnavailable   NotificationKind = "documents_unavailable"
	NotificationSubjectCreateFailed    NotificationKind = "subject_create_failed"
	NotificationDocumentUploadFailed   NotificationKind = "document_upload_failed"
	NotificationAuthenticationRequired NotificationKind = "authentication_required"
	NotificationSubjectCreated         NotificationKind = "subject_created"
	NotificationDocumentUploaded       NotificationKind = "document_uploaded"
)

// Notification is raised by the dashboard for the UI to display.
type Notification struct {
	Kind    NotificationKind
	Message string
	Err     error
}

// IsFailure reports whether the notification describes a failed operation.
func (n Notification) IsFailure() bool {
	switch n.Kind {
	case NotificationSubjectCreated, NotificationDocumentUploaded:
		return false
	default:
		return true
	}
}
