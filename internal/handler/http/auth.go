package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-study-shelf/internal/app"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/utils"
	"github.com/MKhiriev/go-study-shelf/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.register", err, app.MsgRegistrationFailed)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered, waiting for email confirmation")

	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, "*Handler.login", err, app.MsgLoginFailed)
		return
	}

	session, err := h.services.AuthService.IssueSession(ctx, user)
	if err != nil {
		writeError(w, r, "*Handler.login", err, app.MsgLoginFailed)
		return
	}

	log.Debug().Int64("user_id", user.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, r, "*Handler.refresh", err, "")
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.VerifyEmail(r.Context(), req.Token); err != nil {
		writeError(w, r, "*Handler.verifyEmail", err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resendVerification(w http.ResponseWriter, r *http.Request) {
	var req models.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ResendVerification(r.Context(), req.Email); err != nil {
		writeError(w, r, "*Handler.resendVerification", err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// logout only acknowledges: tokens are stateless and expire on their own.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		logger.FromRequest(r).Debug().Int64("user_id", userID).Msg("user logged out")
	}

	w.WriteHeader(http.StatusNoContent)
}
