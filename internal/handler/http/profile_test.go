package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-study-shelf/internal/app"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetProfile(t *testing.T) {
	router, d := newTestHandler(t)
	profile := models.Profile{UserID: testUserID, Username: "anna", Email: "anna@example.com"}
	d.profile.EXPECT().Get(gomock.Any(), testUserID).Return(profile, nil)

	rec := serve(router, authed(httptest.NewRequest(http.MethodGet, "/api/profile", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, profile, got)
}

func TestGetProfile_UserGone(t *testing.T) {
	router, d := newTestHandler(t)
	d.profile.EXPECT().Get(gomock.Any(), testUserID).Return(models.Profile{}, store.ErrUserNotFound)

	rec := serve(router, authed(httptest.NewRequest(http.MethodGet, "/api/profile", nil)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgUserNotFound, bodyText(rec))
}

func TestUpdateProfile(t *testing.T) {
	router, d := newTestHandler(t)
	in := models.Profile{Username: "anna_k", Email: "anna@example.com"}
	d.profile.EXPECT().Update(gomock.Any(), testUserID, in).Return(models.Profile{UserID: testUserID, Username: "anna_k"}, nil)

	rec := serve(router, authed(httptest.NewRequest(http.MethodPut, "/api/profile", jsonBody(t, in))))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"anna_k"`)
}

func TestUpdateProfile_Conflict(t *testing.T) {
	router, d := newTestHandler(t)
	d.profile.EXPECT().Update(gomock.Any(), testUserID, gomock.Any()).Return(models.Profile{}, store.ErrUsernameTaken)

	rec := serve(router, authed(httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(`{"username":"bob","email":"b@example.com"}`))))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, app.MsgUsernameTaken, bodyText(rec))
}

func TestUpdateProfile_InvalidJSON(t *testing.T) {
	router, _ := newTestHandler(t)

	rec := serve(router, authed(httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader("nope"))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
