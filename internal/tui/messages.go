package tui

import "github.com/MKhiriev/go-study-shelf/models"

// Page names understood by [RootModel].
const (
	pageMenu      = "menu"
	pageLogin     = "login"
	pageRegister  = "register"
	pageVerify    = "verify"
	pageDashboard = "dashboard"
	pageSubject   = "subject"
	pageUpload    = "upload"
	pageSettings  = "settings"
	pageProfile   = "profile"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes the login flow when Err is nil.
type LoginResult struct {
	Err     error
	Session models.Session
}

type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is delivered to the menu after a successful sign-up.
type RegisterSuccessNotice struct {
	Username string
}

// LogoutRequested ends the main loop and signs the user out.
type LogoutRequested struct{}

type quitRequested struct{}

type resendResult struct {
	err error
}

type verifyResult struct {
	err error
}

// dashboardDoneMsg reports that a dashboard operation finished; the state
// itself is read back from the service.
type dashboardDoneMsg struct {
	err error
}

type noticeMsg struct {
	notification models.Notification
}

type statusMsg struct {
	text string
}

type subjectAddedMsg struct {
	subject models.Subject
	err     error
}

type documentUploadedMsg struct {
	document models.Document
	err      error
}

type settingsLoadedMsg struct {
	settings models.Settings
	err      error
}

type settingsSavedMsg struct {
	err error
}

type profileLoadedMsg struct {
	profile models.Profile
	err     error
}

type profileSavedMsg struct {
	profile models.Profile
	err     error
}

type clearStatusMsg struct{}
