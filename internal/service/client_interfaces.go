package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-study-shelf/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionProvider exposes the current authenticated identity.
type SessionProvider interface {
	// Current returns the session and true, or a zero session and false when
	// nobody is signed in.
	Current() (models.Session, bool)
}

// RecordStore is the persistence collaborator of the dashboard. Lists come
// back in display order: subjects by creation ascending, documents by upload
// date descending.
type RecordStore interface {
	ListSubjects(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error)
	CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error)
	ListDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error)
	CreateDocument(ctx context.Context, document models.Document) (models.Document, error)
}

// FileUploader turns a blob into a retrievable URL.
type FileUploader interface {
	UploadFile(ctx context.Context, file models.File) (string, error)
}

// Notifier receives non-fatal, user-visible notices. Notify must not block.
type Notifier interface {
	Notify(n models.Notification)
}

// ClientDashboardService keeps the selected semester, the selected subject
// and the cached subject and document lists consistent with each other and
// with the server.
//
// Every operation is safe for concurrent use. When two loads of the same list
// overlap, the one started last wins regardless of completion order.
type ClientDashboardService interface {
	// Initialize restores the persisted semester (or the default) and loads
	// its subjects. Returns ErrAuthenticationRequired without a session.
	Initialize(ctx context.Context) error

	// ChangeSemester persists semester, clears the subject selection and the
	// cached lists and reloads subjects.
	ChangeSemester(ctx context.Context, semester string) error

	// LoadSubjects refreshes the subject list of the selected semester.
	LoadSubjects(ctx context.Context) error

	// SelectSubject selects a cached subject and loads its documents.
	SelectSubject(ctx context.Context, subjectID string) error

	// LoadDocuments refreshes the documents of the selected subject.
	LoadDocuments(ctx context.Context) error

	// AddSubject creates a subject in the selected semester, appends it and
	// selects it.
	AddSubject(ctx context.Context, name string, isPublic bool) (models.Subject, error)

	// UploadDocument uploads a PDF, records it under the selected subject
	// and inserts it into the cached list.
	UploadDocument(ctx context.Context, title string, file models.File) (models.Document, error)

	// State returns a copy of the current view state.
	State() models.ViewState

	// HandleSessionChange reacts to sign-in, sign-out and token refresh.
	HandleSessionChange(ctx context.Context, session models.Session)

	// Reset drops every cached value.
	Reset()
}

// ClientSessionService is the authentication collaborator on the client. It
// persists the session locally so a restart resumes it.
type ClientSessionService interface {
	SessionProvider

	// OnSessionChange registers cb, called after sign-in, sign-out and token
	// refresh with the new session (zero when signed out). The returned func
	// removes cb.
	OnSessionChange(cb func(ctx context.Context, session models.Session)) (unsubscribe func())

	// SetSession stores s, hands its token to the adapter and notifies
	// subscribers.
	SetSession(ctx context.Context, s models.Session) error

	// SignOut logs out on the server (best effort), forgets the local
	// session and notifies subscribers with a zero session.
	SignOut(ctx context.Context) error

	// Restore loads a saved session. It reports whether one was found and is
	// still usable.
	Restore(ctx context.Context) (bool, error)

	// Refresh exchanges the refresh token for a new session. A rejected
	// refresh token signs the user out.
	Refresh(ctx context.Context) error
}

// SessionRefreshJob periodically refreshes the session in the background.
type SessionRefreshJob interface {
	// Start launches the refresh goroutine, stopping any previous run. A
	// non-positive interval defaults to 5 minutes.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the goroutine and waits for it to exit.
	Stop()
}

// ClientAuthService registers and signs users in against the server.
type ClientAuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	Logout(ctx context.Context) error
}

// ClientProfileService reads and edits the signed-in user's profile.
type ClientProfileService interface {
	Get(ctx context.Context) (models.Profile, error)
	Update(ctx context.Context, profile models.Profile) (models.Profile, error)
}

// ClientSettingsService keeps device-local preferences.
type ClientSettingsService interface {
	// Load returns the saved settings, or defaults when nothing valid is saved.
	Load(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error
}
