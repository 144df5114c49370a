package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-study-shelf/internal/app"
	"github.com/MKhiriev/go-study-shelf/internal/service"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	router, d := newTestHandler(t)
	req := models.RegisterRequest{Email: "anna@example.com", Username: "anna", Password: "secret1"}

	d.auth.EXPECT().Register(gomock.Any(), req).Return(models.User{
		UserID:       7,
		Email:        "anna@example.com",
		Username:     "anna",
		PasswordHash: "$2a$10$hash",
	}, nil)

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, req)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")
	assert.NotContains(t, rec.Body.String(), "password")

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, int64(7), user.UserID)
	assert.False(t, user.EmailConfirmed)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"invalid data", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEmail), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"email taken", fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists), http.StatusConflict, app.MsgEmailAlreadyExists},
		{"username taken", store.ErrUsernameTaken, http.StatusConflict, app.MsgUsernameTaken},
		{"storage down", store.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgStorageUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, app.MsgRegistrationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, d := newTestHandler(t)
			d.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/register",
				jsonBody(t, models.RegisterRequest{Email: "a@example.com", Username: "anna", Password: "secret1"})))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, bodyText(rec))
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	router, _ := newTestHandler(t)

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, bodyText(rec))
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	router, d := newTestHandler(t)
	creds := models.Credentials{Email: "anna@example.com", Password: "secret1"}
	user := models.User{UserID: 7, Email: "anna@example.com", Username: "anna", EmailConfirmed: true}
	session := models.Session{
		AccessToken:  "access",
		RefreshToken: "refresh",
		UserID:       7,
		Username:     "anna",
		ExpiresAt:    time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}

	gomock.InOrder(
		d.auth.EXPECT().Login(gomock.Any(), creds).Return(user, nil),
		d.auth.EXPECT().IssueSession(gomock.Any(), user).Return(session, nil),
	)

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, creds)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, session, got)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidEmailPassword},
		{"not confirmed", service.ErrEmailNotConfirmed, http.StatusForbidden, app.MsgEmailNotConfirmed},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, app.MsgLoginFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, d := newTestHandler(t)
			d.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/login",
				jsonBody(t, models.Credentials{Email: "a@example.com", Password: "x"})))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, bodyText(rec))
		})
	}
}

func TestLogin_IssueSessionFails(t *testing.T) {
	router, d := newTestHandler(t)
	d.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: 7}, nil)
	d.auth.EXPECT().IssueSession(gomock.Any(), gomock.Any()).Return(models.Session{}, service.ErrTokenCreationFailed)

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/login",
		jsonBody(t, models.Credentials{Email: "a@example.com", Password: "x"})))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgLoginFailed, bodyText(rec))
}

// ─────────────────────────────────────────────
// refresh, verify, resend, logout
// ─────────────────────────────────────────────

func TestRefresh(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, d := newTestHandler(t)
		d.auth.EXPECT().Refresh(gomock.Any(), "r1").Return(models.Session{AccessToken: "a2", RefreshToken: "r2", UserID: 7}, nil)

		rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/refresh", jsonBody(t, models.RefreshRequest{RefreshToken: "r1"})))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"access_token":"a2"`)
	})

	t.Run("missing token", func(t *testing.T) {
		router, _ := newTestHandler(t)

		rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/refresh", strings.NewReader("{}")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		router, d := newTestHandler(t)
		d.auth.EXPECT().Refresh(gomock.Any(), "old").Return(models.Session{}, service.ErrTokenIsExpiredOrInvalid)

		rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/refresh", jsonBody(t, models.RefreshRequest{RefreshToken: "old"})))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, app.MsgTokenIsExpiredOrInvalid, bodyText(rec))
	})
}

func TestVerifyEmail(t *testing.T) {
	router, d := newTestHandler(t)
	d.auth.EXPECT().VerifyEmail(gomock.Any(), "v1").Return(nil)
	d.auth.EXPECT().VerifyEmail(gomock.Any(), "v2").Return(service.ErrTokenIsExpiredOrInvalid)

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/verify", jsonBody(t, models.TokenRequest{Token: "v1"})))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/verify", jsonBody(t, models.TokenRequest{Token: "v2"})))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/verify", strings.NewReader(`{"token":""}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResendVerification(t *testing.T) {
	router, d := newTestHandler(t)
	d.auth.EXPECT().ResendVerification(gomock.Any(), "anna@example.com").Return(nil)

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/resend", jsonBody(t, models.EmailRequest{Email: "anna@example.com"})))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/resend", strings.NewReader("[]")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout(t *testing.T) {
	router, _ := newTestHandler(t)

	rec := serve(router, authed(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
