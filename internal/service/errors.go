package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so that login failures do not reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInviteCode rejects an admin signup whose invite code does
	// not match the configured one.
	ErrInvalidInviteCode = errors.New("invalid invite code")

	// ErrUnauthorized is returned when the caller is neither the owner of
	// the requested resource nor an administrator.
	ErrUnauthorized = errors.New("caller is not allowed to access this resource")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrSignOutBeforeSignIn rejects a close-out whose sign-out time
	// precedes the recorded sign-in time.
	ErrSignOutBeforeSignIn = errors.New("sign out time cannot be before sign in time")
)
