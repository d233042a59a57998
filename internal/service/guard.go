package service

import "github.com/MKhiriev/volunteer-keeper/models"

// Authorize enforces the owner-or-admin rule: a caller may act on a
// resource when they own it or when they are an administrator. Everyone
// else gets ErrUnauthorized.
func Authorize(caller models.User, ownerID int64) error {
	if caller.IsAdmin || caller.ID == ownerID {
		return nil
	}
	return ErrUnauthorized
}

// AuthorizeAdmin restricts an operation to administrators only.
func AuthorizeAdmin(caller models.User) error {
	if caller.IsAdmin {
		return nil
	}
	return ErrUnauthorized
}
