// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - UserValidator: validates account signup and login payloads and
//     converts them into domain models ready for persistence.
//   - ExperienceValidator: validates attendance session payloads,
//     including timestamp parsing and chronological ordering.
//   - Errors: per-field message accumulator whose wording is part of
//     the API contract.
//
// Usage patterns:
//  1. Inject validator implementations into handlers.
//  2. Call the request-specific method; a non-empty Errors value maps
//     straight into a 400 response body.
//
// This package decouples validation logic from transport layers and storage,
// enabling reusable, composable, and testable validation strategies.
package validators

import (
	"time"

	"github.com/MKhiriev/volunteer-keeper/models"
)

// UserValidator validates account-related request payloads.
type UserValidator interface {

	// ValidateSignup checks a signup payload and converts it into a
	// [models.User] plus the plaintext password to be hashed. A non-empty
	// Errors means the payload was rejected and the other returns are
	// meaningless.
	ValidateSignup(request models.SignupRequest) (models.User, string, Errors)

	// ValidateLogin checks that a login payload carries both credentials.
	ValidateLogin(request models.LoginRequest) Errors
}

// ExperienceValidator validates attendance session request payloads.
type ExperienceValidator interface {

	// ValidateCreate checks a session creation payload and converts it
	// into a [models.Experience].
	ValidateCreate(request models.CreateExperienceRequest) (models.Experience, Errors)

	// ValidateClose checks a sign-out payload and returns the parsed
	// sign-out time and the optional replacement department.
	ValidateClose(request models.UpdateExperienceRequest) (time.Time, *string, Errors)
}
