package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPurpose is the audience a signed token was issued for. A token minted
// for one purpose is rejected everywhere else.
type TokenPurpose string

const (
	// PurposeAccess authorizes API calls.
	PurposeAccess TokenPurpose = "access"
	// PurposeRefresh exchanges an expiring session for a new one.
	PurposeRefresh TokenPurpose = "refresh"
	// PurposeVerifyEmail confirms ownership of an email address.
	PurposeVerifyEmail TokenPurpose = "verify-email"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Purpose is the audience the token was issued for.
	Purpose TokenPurpose `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject) claim.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
