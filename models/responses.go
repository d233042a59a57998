package models

// Response envelopes. Every success body is keyed by resource name and
// every failure body carries an "errors" key, matching the API contract
// consumed by the volunteer-portal frontend.

// TokenResponse is returned by the signup and login endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse wraps a single full user profile.
type UserResponse struct {
	User User `json:"user"`
}

// UsersResponse wraps the administrator user listing.
type UsersResponse struct {
	Users []UserSummary `json:"users"`
}

// UserExperienceResponse wraps a single attendance session, as returned
// by the create and close-out endpoints.
type UserExperienceResponse struct {
	UserExperience Experience `json:"user_experience"`
}

// UserExperiencesResponse wraps one user's attendance sessions.
type UserExperiencesResponse struct {
	UserExperiences []Experience `json:"user_experiences"`
}

// ExperiencesResponse wraps the administrator listing of all users'
// attendance sessions.
type ExperiencesResponse struct {
	Experiences []Experience `json:"experiences"`
}

// LanguagesResponse wraps a user's additional-language records.
type LanguagesResponse struct {
	Languages []Language `json:"languages"`
}

// ReferenceOptionsResponse carries the static race/ethnicity option
// lists served to the unauthenticated signup form.
type ReferenceOptionsResponse struct {
	RaceOptions      []string `json:"race_options"`
	EthnicityOptions []string `json:"ethnicity_options"`
}

// ErrorResponse is the uniform failure body. Errors is either a plain
// string (e.g. "Unauthorized") or a field → messages map produced by
// form validation.
type ErrorResponse struct {
	Errors any `json:"errors"`
}
