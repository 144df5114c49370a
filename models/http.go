package models

// CreateSubjectRequest is the body of POST /api/subjects.
type CreateSubjectRequest struct {
	Name     string `json:"name"`
	IsPublic bool   `json:"is_public"`
	Semester string `json:"semester"`
}

// CreateDocumentRequest is the body of POST /api/documents.
type CreateDocumentRequest struct {
	Title     string `json:"title"`
	SubjectID string `json:"subject_id"`
	FileURL   string `json:"file_url"`
}

// UploadResponse is returned by POST /api/files.
type UploadResponse struct {
	FileURL string `json:"file_url"`
}

// EmailRequest carries a single address (resend verification).
type EmailRequest struct {
	Email string `json:"email"`
}

// TokenRequest carries a single opaque token (verify email).
type TokenRequest struct {
	Token string `json:"token"`
}

// RefreshRequest is the body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
