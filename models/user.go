package models

import "time"

// Valid values for the User.Status lifecycle field.
const (
	StatusNew      = "new"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User represents a registered volunteer or administrator account.
// It contains identity attributes, demographic and eligibility data,
// and credential-related fields.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// BadgeNumber is the unique physical badge identifier assigned to
	// the volunteer. Unique across all users.
	BadgeNumber int64 `json:"badge_number"`

	// Email is the unique login identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is excluded
	// from JSON serialization.
	PasswordHash string `json:"-"`

	// Status is the lifecycle state of the account: "new", "active"
	// or "inactive". New signups start as "new".
	Status string `json:"status"`

	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	DOB       time.Time `json:"dob"`
	Gender    string    `json:"gender"`
	Pronouns  *string   `json:"pronouns,omitempty"`
	Race      *string   `json:"race,omitempty"`
	Ethnicity *string   `json:"ethnicity,omitempty"`

	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zip_code"`
	PhoneNumber  string  `json:"phone_number"`
	PhoneCarrier *string `json:"phone_carrier,omitempty"`

	IsStudent             bool    `json:"is_student"`
	TypeOfStudent         *string `json:"type_of_student,omitempty"`
	School                *string `json:"school,omitempty"`
	SchoolEmail           *string `json:"school_email,omitempty"`
	Degree                *string `json:"degree,omitempty"`
	AnticipatedGraduation *string `json:"anticipated_graduation,omitempty"`
	Major                 *string `json:"major,omitempty"`
	Minor                 *string `json:"minor,omitempty"`
	Classification        *string `json:"classification,omitempty"`

	IsHealthcareProvider bool    `json:"is_healthcare_provider"`
	TypeOfProvider       *string `json:"type_of_provider,omitempty"`
	Employer             *string `json:"employer,omitempty"`

	IsMultilingual bool `json:"is_multilingual"`

	// IsAdmin marks administrator accounts, which are exempt from
	// ownership checks. Settable only through the invite-code-gated
	// admin signup path.
	IsAdmin bool `json:"is_admin"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserSummary is the compact per-user projection returned by the
// administrator user listing. ExperienceHours is the roll-up of the
// user's closed attendance sessions computed at read time.
type UserSummary struct {
	ID              int64   `json:"id"`
	BadgeNumber     int64   `json:"badge_number"`
	Email           string  `json:"email"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Status          string  `json:"status"`
	IsStudent       bool    `json:"is_student"`
	IsMultilingual  bool    `json:"is_multilingual"`
	IsAdmin         bool    `json:"is_admin"`
	ExperienceHours float64 `json:"experience_hours"`
}
