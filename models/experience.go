package models

import "time"

// Experience is one volunteer attendance session: a sign-in (and
// eventually a sign-out) against a department on a given date.
//
// A nil SignOutTime means the session is still open — the volunteer has
// signed in but not yet signed out. Open sessions contribute zero hours
// to roll-up aggregates.
type Experience struct {
	// ID is the internal unique identifier of the session.
	ID int64 `json:"id"`

	// Date is the calendar date the session belongs to.
	Date time.Time `json:"date"`

	// SignInTime is when the volunteer signed in. Required at creation
	// and immutable afterwards.
	SignInTime time.Time `json:"sign_in_time"`

	// SignOutTime is when the volunteer signed out, or nil while the
	// session is open. Once set it must not precede SignInTime.
	SignOutTime *time.Time `json:"sign_out_time"`

	// Department is the department label the session was logged against.
	Department string `json:"department"`

	// UserID references the owning user account.
	UserID int64 `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Experience model.
func (e Experience) TableName() string {
	return "experiences"
}

// ExperienceFilter narrows an experience listing. Zero values mean
// "no restriction"; both filters combine with AND when set.
type ExperienceFilter struct {
	// UserID restricts the listing to one user's sessions when non-zero.
	UserID int64

	// OnlyOpen restricts the listing to sessions whose sign-out time is
	// still unset.
	OnlyOpen bool
}
