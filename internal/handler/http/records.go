package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-study-shelf/internal/app"
	"github.com/MKhiriev/go-study-shelf/internal/utils"
	"github.com/MKhiriev/go-study-shelf/models"
)

// listSubjects handles GET /api/subjects?semester=N.
func (h *Handler) listSubjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	subjects, err := h.services.SubjectService.List(r.Context(), userID, r.URL.Query().Get("semester"))
	if err != nil {
		writeError(w, r, "*Handler.listSubjects", err, "")
		return
	}

	utils.WriteJSON(w, subjects, http.StatusOK)
}

func (h *Handler) createSubject(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.SubjectService.Create(r.Context(), userID, models.Subject{
		Name:     req.Name,
		IsPublic: req.IsPublic,
		Semester: req.Semester,
	})
	if err != nil {
		writeError(w, r, "*Handler.createSubject", err, "")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// listDocuments handles GET /api/subjects/{subjectID}/documents.
func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	documents, err := h.services.DocumentService.List(r.Context(), userID, chi.URLParam(r, "subjectID"))
	if err != nil {
		writeError(w, r, "*Handler.listDocuments", err, "")
		return
	}

	utils.WriteJSON(w, documents, http.StatusOK)
}

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.DocumentService.Create(r.Context(), userID, models.Document{
		Title:     req.Title,
		SubjectID: req.SubjectID,
		FileURL:   req.FileURL,
	})
	if err != nil {
		writeError(w, r, "*Handler.createDocument", err, "")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}
