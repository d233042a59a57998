// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/volunteer-keeper/internal/utils"
	"github.com/MKhiriev/volunteer-keeper/models"
)

// accessTokenCookie is the cookie the frontend stores the JWT in when it
// cannot send an Authorization header (e.g. plain form navigation).
const accessTokenCookie = "access_token"

// auth is the authentication middleware protecting every non-anonymous
// route. It extracts the access token, validates it and resolves its
// subject to a full user record, which is stored in the request context
// under utils.CallerCtxKey for the handlers downstream.
//
// A request without a token is rejected with 401 "Missing JWT". A
// malformed, expired or forged token, or one whose subject no longer
// exists, is rejected with 401 "Invalid token".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := getTokenFromRequest(r)
		if err != nil {
			utils.WriteJSON(w, models.ErrorResponse{Errors: msgMissingJWT}, http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			utils.WriteJSON(w, models.ErrorResponse{Errors: msgInvalidToken}, http.StatusUnauthorized)
			return
		}

		caller, err := h.services.AuthService.UserFromToken(r.Context(), token)
		if err != nil {
			utils.WriteJSON(w, models.ErrorResponse{Errors: msgInvalidToken}, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.CallerCtxKey, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromRequest extracts the raw access token, looking in the
// Authorization header first and falling back to the access_token
// cookie. The header wins when both are present.
func getTokenFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		return utils.ParseBearerToken(header)
	}

	cookie, err := r.Cookie(accessTokenCookie)
	if err != nil || cookie.Value == "" {
		return "", ErrMissingAccessToken
	}

	return cookie.Value, nil
}
