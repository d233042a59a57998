package models

// Static reference option lists served without authentication. Kept in
// code rather than the database: they change rarely and only together
// with the signup form that consumes them.

// RaceOptions is the list of race choices offered on the signup form.
var RaceOptions = []string{
	"American Indian or Alaska Native",
	"Asian",
	"Black or African American",
	"Native Hawaiian or Other Pacific Islander",
	"White",
	"Two or more races",
	"Prefer not to say",
}

// EthnicityOptions is the list of ethnicity choices offered on the
// signup form.
var EthnicityOptions = []string{
	"Hispanic or Latino",
	"Not Hispanic or Latino",
	"Prefer not to say",
}
