package validators

import (
	"fmt"
	"sort"
	"strings"
)

// Per-field validation messages. The exact wording is part of the API
// contract consumed by the volunteer-portal frontend.
const (
	MsgRequired        = "This field is required."
	MsgInvalidEmail    = "Invalid email address."
	MsgInvalidInteger  = "Not a valid integer value."
	MsgInvalidDatetime = "Not a valid datetime value."
	MsgInvalidStatus   = "Status must be either 'new', 'active', or 'inactive'"
	MsgUnderage        = "You must be 18 years or older to volunteer"

	// MsgInvalidInviteCode rejects an admin signup whose invite code does
	// not match the configured one. Reported under the invite_code field
	// so the response is indistinguishable from any other form failure.
	MsgInvalidInviteCode = "Invalid invite code."
)

// Errors accumulates validation failures keyed by field name, each field
// holding one or more human-readable messages. It implements the error
// interface so it can travel through error returns, and serializes
// directly into the "errors" key of a failure response body.
type Errors map[string][]string

// NewErrors returns an empty, ready-to-append [Errors] map.
func NewErrors() Errors {
	return make(Errors)
}

// Add appends a message to the given field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Error implements the error interface. Fields are sorted so the output
// is deterministic.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(e))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(e[f], "; ")))
	}
	return strings.Join(parts, ", ")
}
