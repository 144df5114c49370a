package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-study-shelf/internal/app"
	"github.com/MKhiriev/go-study-shelf/internal/utils"
	"github.com/MKhiriev/go-study-shelf/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := h.services.ProfileService.Get(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getProfile", err, "")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	updated, err := h.services.ProfileService.Update(r.Context(), userID, profile)
	if err != nil {
		writeError(w, r, "*Handler.updateProfile", err, "")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
