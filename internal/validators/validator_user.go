package validators

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/volunteer-keeper/models"
)

const (
	FieldBadgeNumber = "badge_number"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldStatus      = "status"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldDOB         = "dob"
	FieldGender      = "gender"
	FieldAddress     = "address"
	FieldCity        = "city"
	FieldState       = "state"
	FieldZipCode     = "zip_code"
	FieldPhoneNumber = "phone_number"
	FieldIsStudent   = "is_student"
	FieldInviteCode  = "invite_code"
)

// minimumVolunteerAge is the youngest age at which an account may be
// registered.
const minimumVolunteerAge = 18

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type userValidator struct {
	// now is swappable for deterministic age checks in tests.
	now func() time.Time
}

// NewUserValidator constructs a [UserValidator] ready for use.
func NewUserValidator() UserValidator {
	return &userValidator{now: time.Now}
}

// ValidateSignup implements [UserValidator]. Every rejected field is
// reported, not just the first one, so the frontend can annotate the
// whole form in one round trip.
func (v *userValidator) ValidateSignup(request models.SignupRequest) (models.User, string, Errors) {
	validationErrors := NewErrors()

	required := []struct {
		field string
		value string
	}{
		{FieldBadgeNumber, request.BadgeNumber},
		{FieldEmail, request.Email},
		{FieldPassword, request.Password},
		{FieldFirstName, request.FirstName},
		{FieldLastName, request.LastName},
		{FieldDOB, request.DOB},
		{FieldGender, request.Gender},
		{FieldAddress, request.Address},
		{FieldCity, request.City},
		{FieldState, request.State},
		{FieldZipCode, request.ZipCode},
		{FieldPhoneNumber, request.PhoneNumber},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			validationErrors.Add(r.field, MsgRequired)
		}
	}
	if request.IsStudent == nil {
		validationErrors.Add(FieldIsStudent, MsgRequired)
	}

	var badgeNumber int64
	if request.BadgeNumber != "" {
		parsed, err := strconv.ParseInt(strings.TrimSpace(request.BadgeNumber), 10, 64)
		if err != nil {
			validationErrors.Add(FieldBadgeNumber, MsgInvalidInteger)
		}
		badgeNumber = parsed
	}

	if request.Email != "" && !emailPattern.MatchString(request.Email) {
		validationErrors.Add(FieldEmail, MsgInvalidEmail)
	}

	status := request.Status
	switch status {
	case "":
		status = models.StatusNew
	case models.StatusNew, models.StatusActive, models.StatusInactive:
	default:
		validationErrors.Add(FieldStatus, MsgInvalidStatus)
	}

	var dob time.Time
	if request.DOB != "" {
		parsed, err := parseDatetime(request.DOB)
		if err != nil {
			validationErrors.Add(FieldDOB, MsgInvalidDatetime)
		} else {
			dob = parsed
			if dob.AddDate(minimumVolunteerAge, 0, 0).After(v.now()) {
				validationErrors.Add(FieldDOB, MsgUnderage)
			}
		}
	}

	if len(validationErrors) > 0 {
		return models.User{}, "", validationErrors
	}

	user := models.User{
		BadgeNumber: badgeNumber,
		Email:       request.Email,
		Status:      status,
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		DOB:         dob,
		Gender:      request.Gender,
		Pronouns:    request.Pronouns,
		Race:        request.Race,
		Ethnicity:   request.Ethnicity,

		Address:      request.Address,
		City:         request.City,
		State:        request.State,
		ZipCode:      request.ZipCode,
		PhoneNumber:  request.PhoneNumber,
		PhoneCarrier: request.PhoneCarrier,

		IsStudent:             *request.IsStudent,
		TypeOfStudent:         request.TypeOfStudent,
		School:                request.School,
		SchoolEmail:           request.SchoolEmail,
		Degree:                request.Degree,
		AnticipatedGraduation: request.AnticipatedGraduation,
		Major:                 request.Major,
		Minor:                 request.Minor,
		Classification:        request.Classification,

		TypeOfProvider: request.TypeOfProvider,
		Employer:       request.Employer,
	}
	if request.IsHealthcareProvider != nil {
		user.IsHealthcareProvider = *request.IsHealthcareProvider
	}
	if request.IsMultilingual != nil {
		user.IsMultilingual = *request.IsMultilingual
	}

	return user, request.Password, nil
}

// ValidateLogin implements [UserValidator].
func (v *userValidator) ValidateLogin(request models.LoginRequest) Errors {
	validationErrors := NewErrors()

	if strings.TrimSpace(request.Email) == "" {
		validationErrors.Add(FieldEmail, MsgRequired)
	}
	if strings.TrimSpace(request.Password) == "" {
		validationErrors.Add(FieldPassword, MsgRequired)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}
	return nil
}
