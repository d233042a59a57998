package models

// Raw request payloads as decoded from JSON, before form validation.
// Timestamp fields stay strings here so the validator can report
// per-field "Not a valid datetime value." errors instead of a single
// opaque JSON decoding failure. Boolean fields use pointers so that a
// missing field is distinguishable from an explicit false.

// SignupRequest is the payload of POST /auth/signup and
// POST /auth/admin-signup (the latter additionally carries InviteCode).
type SignupRequest struct {
	BadgeNumber string `json:"badge_number"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Status      string `json:"status"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DOB         string `json:"dob"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zip_code"`
	PhoneNumber string `json:"phone_number"`
	IsStudent   *bool  `json:"is_student"`

	IsHealthcareProvider *bool `json:"is_healthcare_provider"`
	IsMultilingual       *bool `json:"is_multilingual"`

	Pronouns              *string `json:"pronouns"`
	Race                  *string `json:"race"`
	Ethnicity             *string `json:"ethnicity"`
	PhoneCarrier          *string `json:"phone_carrier"`
	TypeOfStudent         *string `json:"type_of_student"`
	School                *string `json:"school"`
	SchoolEmail           *string `json:"school_email"`
	Degree                *string `json:"degree"`
	AnticipatedGraduation *string `json:"anticipated_graduation"`
	Major                 *string `json:"major"`
	Minor                 *string `json:"minor"`
	Classification        *string `json:"classification"`
	TypeOfProvider        *string `json:"type_of_provider"`
	Employer              *string `json:"employer"`

	// InviteCode gates the privileged admin signup path. Ignored by the
	// regular signup endpoint.
	InviteCode string `json:"invite_code"`
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateExperienceRequest is the payload of POST /experiences
// ("signing in"). SignOutTime is optional so that an already-completed
// session can be recorded in one call.
type CreateExperienceRequest struct {
	Date        string `json:"date"`
	SignInTime  string `json:"sign_in_time"`
	SignOutTime string `json:"sign_out_time"`
	Department  string `json:"department"`
	UserID      int64  `json:"user_id"`
}

// UpdateExperienceRequest is the payload of PATCH /experiences/{id}
// ("signing out"). Only the sign-out time and optionally the department
// are mutable; date, sign-in time and owner are immutable.
type UpdateExperienceRequest struct {
	SignOutTime string  `json:"sign_out_time"`
	Department  *string `json:"department"`
}
