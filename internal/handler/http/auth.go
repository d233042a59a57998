// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/volunteer-keeper/internal/utils"
	"github.com/MKhiriev/volunteer-keeper/models"
)

// signup handles POST /auth/signup: it validates the registration form,
// creates the account and answers with a fresh access token so the new
// volunteer is logged in straight away.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var request models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Errors: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	user, password, validationErrors := h.userValidator.ValidateSignup(request)
	if len(validationErrors) > 0 {
		utils.WriteJSON(w, models.ErrorResponse{Errors: validationErrors}, http.StatusBadRequest)
		return
	}

	registered, err := h.services.AuthService.RegisterUser(r.Context(), user, password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeToken(w, r, registered)
}

// adminSignup handles POST /auth/admin-signup. The form is the regular
// signup form plus the invite code that gates administrator accounts.
func (h *Handler) adminSignup(w http.ResponseWriter, r *http.Request) {
	var request models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Errors: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	user, password, validationErrors := h.userValidator.ValidateSignup(request)
	if len(validationErrors) > 0 {
		utils.WriteJSON(w, models.ErrorResponse{Errors: validationErrors}, http.StatusBadRequest)
		return
	}

	registered, err := h.services.AuthService.RegisterAdmin(r.Context(), user, password, request.InviteCode)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeToken(w, r, registered)
}

// login handles POST /auth/login. An incomplete form is reported the
// same way as wrong credentials, so the response never hints at which
// part of the login failed.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Errors: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if validationErrors := h.userValidator.ValidateLogin(request); len(validationErrors) > 0 {
		utils.WriteJSON(w, models.ErrorResponse{Errors: msgInvalidCredentials}, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeToken(w, r, user)
}

// writeToken issues an access token for user and writes the
// {"token": ...} success body shared by all three auth endpoints.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
