package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-study-shelf/internal/app"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/utils"
)

// bodyHashing checks the HashSHA256 header against the HMAC of the raw
// request body. It is a pass-through when the server has no hash key.
func (h *Handler) bodyHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.bodyHashing").Msg("failed to read request body")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashFromRequest := r.Header.Get(app.HashHeader)
		if !utils.ValidHash(body, hashFromRequest) {
			log.Warn().Str("func", "*Handler.bodyHashing").
				Str("hash from request", hashFromRequest).
				Int("body_size", len(body)).
				Msg("request signature does not match body")
			http.Error(w, ErrIntegrityCheckFailed.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
