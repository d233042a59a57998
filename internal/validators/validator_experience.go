package validators

import (
	"strings"
	"time"

	"github.com/MKhiriev/volunteer-keeper/models"
)

const (
	FieldDate        = "date"
	FieldSignInTime  = "sign_in_time"
	FieldSignOutTime = "sign_out_time"
	FieldDepartment  = "department"
	FieldUserID      = "user_id"
)

// MsgSignOutBeforeSignIn rejects sessions whose sign-out precedes the
// sign-in.
const MsgSignOutBeforeSignIn = "Sign out time cannot be before sign in time."

type experienceValidator struct{}

// NewExperienceValidator constructs an [ExperienceValidator] ready for use.
func NewExperienceValidator() ExperienceValidator {
	return &experienceValidator{}
}

// ValidateCreate implements [ExperienceValidator]. The sign-out time is
// optional: a session recorded while the volunteer is on site stays open
// until the close-out call.
func (v *experienceValidator) ValidateCreate(request models.CreateExperienceRequest) (models.Experience, Errors) {
	validationErrors := NewErrors()

	if strings.TrimSpace(request.Date) == "" {
		validationErrors.Add(FieldDate, MsgRequired)
	}
	if strings.TrimSpace(request.SignInTime) == "" {
		validationErrors.Add(FieldSignInTime, MsgRequired)
	}
	if strings.TrimSpace(request.Department) == "" {
		validationErrors.Add(FieldDepartment, MsgRequired)
	}
	if request.UserID <= 0 {
		validationErrors.Add(FieldUserID, MsgRequired)
	}

	var date, signIn time.Time
	if request.Date != "" {
		parsed, err := parseDatetime(request.Date)
		if err != nil {
			validationErrors.Add(FieldDate, MsgInvalidDatetime)
		}
		date = parsed
	}
	if request.SignInTime != "" {
		parsed, err := parseDatetime(request.SignInTime)
		if err != nil {
			validationErrors.Add(FieldSignInTime, MsgInvalidDatetime)
		}
		signIn = parsed
	}

	var signOut *time.Time
	if request.SignOutTime != "" {
		parsed, err := parseDatetime(request.SignOutTime)
		if err != nil {
			validationErrors.Add(FieldSignOutTime, MsgInvalidDatetime)
		} else {
			signOut = &parsed
			if !signIn.IsZero() && parsed.Before(signIn) {
				validationErrors.Add(FieldSignOutTime, MsgSignOutBeforeSignIn)
			}
		}
	}

	if len(validationErrors) > 0 {
		return models.Experience{}, validationErrors
	}

	return models.Experience{
		Date:        date,
		SignInTime:  signIn,
		SignOutTime: signOut,
		Department:  request.Department,
		UserID:      request.UserID,
	}, nil
}

// ValidateClose implements [ExperienceValidator]. The chronological check
// against the stored sign-in time happens in the service layer, which has
// the persisted session at hand.
func (v *experienceValidator) ValidateClose(request models.UpdateExperienceRequest) (time.Time, *string, Errors) {
	validationErrors := NewErrors()

	if strings.TrimSpace(request.SignOutTime) == "" {
		validationErrors.Add(FieldSignOutTime, MsgRequired)
		return time.Time{}, nil, validationErrors
	}

	signOut, err := parseDatetime(request.SignOutTime)
	if err != nil {
		validationErrors.Add(FieldSignOutTime, MsgInvalidDatetime)
		return time.Time{}, nil, validationErrors
	}

	department := request.Department
	if department != nil && strings.TrimSpace(*department) == "" {
		department = nil
	}

	return signOut, department, nil
}
