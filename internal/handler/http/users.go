package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/volunteer-keeper/internal/service"
	"github.com/MKhiriev/volunteer-keeper/internal/store"
	"github.com/MKhiriev/volunteer-keeper/internal/utils"
	"github.com/MKhiriev/volunteer-keeper/models"
)

// listUsers handles GET /users: the administrator roster, each entry
// carrying the volunteer's accumulated experience hours.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	if err := service.AuthorizeAdmin(caller); err != nil {
		h.writeError(w, r, err)
		return
	}

	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Users: users}, http.StatusOK)
}

// getUser handles GET /users/{id}: the full profile, visible to the
// account owner and to administrators.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, store.ErrUserNotFound)
		return
	}

	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	if err := service.Authorize(caller, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}

// userExperiences handles GET /users/{id}/experiences. The `incomplete`
// query parameter narrows the listing to sessions without a sign-out.
func (h *Handler) userExperiences(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, store.ErrUserNotFound)
		return
	}

	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	if err := service.Authorize(caller, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	experiences, err := h.services.ExperienceService.ListUserExperiences(r.Context(), id, hasIncompleteParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserExperiencesResponse{UserExperiences: experiences}, http.StatusOK)
}

// userLanguages handles GET /users/{id}/languages.
func (h *Handler) userLanguages(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, store.ErrUserNotFound)
		return
	}

	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	if err := service.Authorize(caller, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	languages, err := h.services.UserService.ListLanguages(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.LanguagesResponse{Languages: languages}, http.StatusOK)
}

// raceEthnicityOptions handles GET /users/race-ethnicity-options: the
// static option lists behind the signup form, served anonymously.
func (h *Handler) raceEthnicityOptions(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ReferenceOptionsResponse{
		RaceOptions:      models.RaceOptions,
		EthnicityOptions: models.EthnicityOptions,
	}, http.StatusOK)
}

// idParam extracts the numeric {id} route parameter.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// hasIncompleteParam reports whether the request carries the
// `incomplete` query parameter.
func hasIncompleteParam(r *http.Request) bool {
	return r.URL.Query().Has("incomplete")
}
