package models

import "time"

// Session is the authenticated identity handed out by the server after login
// or refresh. The client persists it so a restart does not require signing in
// again.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	UserID       int64     `json:"user_id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// IsZero reports whether s carries no identity.
func (s Session) IsZero() bool {
	return s.AccessToken == "" || s.UserID == 0
}

// Expired reports whether the access token is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
