package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-shelf/internal/app"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/utils"
)

func gzipped(t *testing.T, s string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

// ─────────────────────────────────────────────
// withGZip
// ─────────────────────────────────────────────

func TestWithGZip_DecodesRequestBody(t *testing.T) {
	var got string
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = string(raw)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/", gzipped(t, `{"name":"Physics"}`))
	req.Header.Set("Content-Encoding", "gzip")
	serve(handler, req)

	assert.Equal(t, `{"name":"Physics"}`, got)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := serve(handler, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithGZip_CompressesJSON(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, map[string]string{"semester": "3"}, http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := serve(handler, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.NewDecoder(zr).Decode(&got))
	assert.Equal(t, "3", got["semester"])
}

func TestWithGZip_SkipsBinaryAndEmptyResponses(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"pdf", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			w.Write([]byte("%PDF-1.7"))
		}},
		{"sniffed pdf", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("%PDF-1.7\n"))
		}},
		{"no content", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rec := serve(withGZip(tt.handler), req)

			assert.Empty(t, rec.Header().Get("Content-Encoding"))
		})
	}
}

func TestWithGZip_WithoutAcceptEncoding(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("plain"))
	}))

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rec.Body.String())
}

func TestCompressible(t *testing.T) {
	assert.True(t, compressible("application/json"))
	assert.True(t, compressible("text/plain; charset=utf-8"))
	assert.True(t, compressible("application/problem+xml"))
	assert.False(t, compressible("application/pdf"))
	assert.False(t, compressible("image/png"))
	assert.False(t, compressible(""))
}

// ─────────────────────────────────────────────
// responseWriter
// ─────────────────────────────────────────────

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)
	_, err := rw.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, 5, rw.size)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Same(t, rec, rw.Unwrap())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	rw.Write([]byte("x"))

	assert.Equal(t, http.StatusOK, rw.status)
}

// ─────────────────────────────────────────────
// withTraceID / withLogging
// ─────────────────────────────────────────────

func bufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := bufferedHandler(&buf)
	handler := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	}))

	t.Run("accepts uuid from caller", func(t *testing.T) {
		buf.Reset()
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, id)

		rec := serve(handler, req)

		assert.Equal(t, id, rec.Header().Get(traceIDHeader))
		assert.Contains(t, buf.String(), `"trace_id":"`+id+`"`)
	})

	t.Run("replaces garbage", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, `evil"\n`)

		rec := serve(handler, req)

		_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
		assert.NoError(t, err)
		assert.NotContains(t, buf.String(), "evil")
	})
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"implicit ok", 0, "info"},
		{"created", http.StatusCreated, "info"},
		{"not found", http.StatusNotFound, "warn"},
		{"server error", http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := bufferedHandler(&buf)
			handler := h.withTraceID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
			})))

			serve(handler, httptest.NewRequest(http.MethodGet, "/api/subjects?semester=1", nil))

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, "/api/subjects?semester=1", line["uri"])
			assert.Equal(t, http.MethodGet, line["method"])
			assert.NotEmpty(t, line["trace_id"])
			if tt.status == 0 {
				assert.EqualValues(t, http.StatusOK, line["status"])
			} else {
				assert.EqualValues(t, tt.status, line["status"])
			}
		})
	}
}

// ─────────────────────────────────────────────
// bodyHashing
// ─────────────────────────────────────────────

func TestBodyHashing(t *testing.T) {
	utils.InitHasherPool(testHashKey)
	body := `{"title":"Lecture 1"}`

	var reached string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		reached = string(raw)
		w.WriteHeader(http.StatusCreated)
	})

	t.Run("valid signature restores body", func(t *testing.T) {
		reached = ""
		h := &Handler{hashKey: testHashKey, logger: logger.Nop()}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(app.HashHeader, utils.HashString(body, testHashKey))

		rec := serve(h.bodyHashing(next), req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, body, reached)
	})

	t.Run("tampered body", func(t *testing.T) {
		reached = ""
		h := &Handler{hashKey: testHashKey, logger: logger.Nop()}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body+" "))
		req.Header.Set(app.HashHeader, utils.HashString(body, testHashKey))

		rec := serve(h.bodyHashing(next), req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, reached)
	})

	t.Run("disabled without key", func(t *testing.T) {
		reached = ""
		h := &Handler{logger: logger.Nop()}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

		rec := serve(h.bodyHashing(next), req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, body, reached)
	})
}

// ─────────────────────────────────────────────
// CheckHTTPMethod
// ─────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/subjects/{subjectID}/documents", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chi.URLParam(r, "subjectID")))
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	rec := serve(router, httptest.NewRequest(http.MethodDelete, "/api/subjects/s1/documents", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/api/subjects/s1/documents", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s1", rec.Body.String())
}
