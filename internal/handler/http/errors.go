package http

import "errors"

var (
	// ErrMissingAccessToken means the request carried neither a bearer
	// Authorization header nor an access_token cookie.
	ErrMissingAccessToken = errors.New("missing access token")
)

// API failure messages. The exact wording is part of the contract
// consumed by the volunteer-portal frontend.
const (
	msgMissingJWT         = "Missing JWT"
	msgInvalidToken       = "Invalid token"
	msgUnauthorized       = "Unauthorized"
	msgInvalidCredentials = "Invalid credentials"
	msgDuplicateUser      = "Invalid data: email or badge number already in use"
	msgUserNotFound       = "User not found"
	msgExperienceNotFound = "Experience not found"
	msgDatabaseError      = "Database Error"
	msgInvalidJSON        = "Invalid JSON was passed"
)
