package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/volunteer-keeper/internal/service"
	"github.com/MKhiriev/volunteer-keeper/internal/store"
	"github.com/MKhiriev/volunteer-keeper/internal/utils"
	"github.com/MKhiriev/volunteer-keeper/models"
)

// listExperiences handles GET /experiences: the administrator ledger of
// every user's sessions. The `incomplete` query parameter narrows it to
// sessions that have not signed out, the daily check for volunteers who
// forgot to close out.
func (h *Handler) listExperiences(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	if err := service.AuthorizeAdmin(caller); err != nil {
		h.writeError(w, r, err)
		return
	}

	experiences, err := h.services.ExperienceService.ListAllExperiences(r.Context(), hasIncompleteParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ExperiencesResponse{Experiences: experiences}, http.StatusOK)
}

// createExperience handles POST /experiences: a volunteer signing in.
// The caller must be the volunteer named in the payload, or an
// administrator recording a session on their behalf. Ownership is
// checked before validation so that probing with foreign user ids
// yields 401 rather than form feedback.
func (h *Handler) createExperience(w http.ResponseWriter, r *http.Request) {
	var request models.CreateExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Errors: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	if err := service.Authorize(caller, request.UserID); err != nil {
		h.writeError(w, r, err)
		return
	}

	experience, validationErrors := h.experienceValidator.ValidateCreate(request)
	if len(validationErrors) > 0 {
		utils.WriteJSON(w, models.ErrorResponse{Errors: validationErrors}, http.StatusBadRequest)
		return
	}

	created, err := h.services.ExperienceService.CreateExperience(r.Context(), experience)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserExperienceResponse{UserExperience: created}, http.StatusOK)
}

// closeOutExperience handles PATCH /experiences/{id}: a volunteer
// signing out. Only the sign-out time and optionally the department are
// mutable; the session owner is taken from the stored record, so the
// ownership check lives in the service.
func (h *Handler) closeOutExperience(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, store.ErrExperienceNotFound)
		return
	}

	var request models.UpdateExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Errors: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	signOutTime, department, validationErrors := h.experienceValidator.ValidateClose(request)
	if len(validationErrors) > 0 {
		utils.WriteJSON(w, models.ErrorResponse{Errors: validationErrors}, http.StatusBadRequest)
		return
	}

	updated, err := h.services.ExperienceService.CloseOutExperience(r.Context(), caller, id, signOutTime, department)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserExperienceResponse{UserExperience: updated}, http.StatusOK)
}
