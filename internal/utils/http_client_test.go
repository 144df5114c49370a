package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Defaults(t *testing.T) {
	var gotAgent, gotAccept, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	resp, err := client.R().Get("/api/subjects")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, userAgent, gotAgent)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "/api/subjects", gotPath)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, 20*time.Millisecond).R().Get("/")
	require.Error(t, err)
}

func TestNewHTTPClient_Independent(t *testing.T) {
	first := NewHTTPClient("http://one.test", 0)
	second := NewHTTPClient("http://two.test", 0)

	assert.NotSame(t, first.Client, second.Client)
	assert.Equal(t, "http://one.test", first.BaseURL)
	assert.Equal(t, "http://two.test", second.BaseURL)
}
