// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/volunteer-keeper/internal/logger"
	"github.com/MKhiriev/volunteer-keeper/internal/service"
	"github.com/MKhiriev/volunteer-keeper/internal/store"
	"github.com/MKhiriev/volunteer-keeper/internal/utils"
	"github.com/MKhiriev/volunteer-keeper/internal/validators"
	"github.com/MKhiriev/volunteer-keeper/models"
)

// apiError is the HTTP status and body a sentinel error maps to.
type apiError struct {
	status  int
	message string
}

// errorStatusMap pairs each known sentinel error with its API response.
// Errors are matched with errors.Is so wrapped errors resolve too.
var errorStatusMap = map[error]apiError{
	store.ErrDuplicateUser:             {http.StatusBadRequest, msgDuplicateUser},
	store.ErrUserNotFound:              {http.StatusNotFound, msgUserNotFound},
	store.ErrExperienceNotFound:        {http.StatusNotFound, msgExperienceNotFound},
	service.ErrInvalidCredentials:      {http.StatusBadRequest, msgInvalidCredentials},
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, msgInvalidJSON},
	service.ErrUnauthorized:            {http.StatusUnauthorized, msgUnauthorized},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, msgInvalidToken},
}

// writeError translates err into the uniform {"errors": ...} failure
// body. Unmapped errors are reported as a generic 500 "Database Error"
// with the cause logged, never leaked to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	// sign-out ordering is reported as a field error, like the form
	// validators do, so the frontend can annotate the offending input
	if errors.Is(err, service.ErrSignOutBeforeSignIn) {
		fieldErrors := validators.NewErrors()
		fieldErrors.Add(validators.FieldSignOutTime, validators.MsgSignOutBeforeSignIn)
		utils.WriteJSON(w, models.ErrorResponse{Errors: fieldErrors}, http.StatusBadRequest)
		return
	}

	// a rejected invite code reads exactly like any other form failure,
	// so probing the admin signup reveals nothing about the code
	if errors.Is(err, service.ErrInvalidInviteCode) {
		fieldErrors := validators.NewErrors()
		fieldErrors.Add(validators.FieldInviteCode, validators.MsgInvalidInviteCode)
		utils.WriteJSON(w, models.ErrorResponse{Errors: fieldErrors}, http.StatusBadRequest)
		return
	}

	for sentinel, response := range errorStatusMap {
		if errors.Is(err, sentinel) {
			utils.WriteJSON(w, models.ErrorResponse{Errors: response.message}, response.status)
			return
		}
	}

	logger.FromRequest(r).Err(err).Msg("request failed with an unmapped error")
	utils.WriteJSON(w, models.ErrorResponse{Errors: msgDatabaseError}, http.StatusInternalServerError)
}
