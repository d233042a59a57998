package validators

import (
	"errors"
	"time"
)

// Accepted timestamp layouts, tried in order. The first one is the
// canonical format produced by the volunteer-portal frontend.
var datetimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

var errInvalidDatetime = errors.New("invalid datetime value")

// parseDatetime parses value against the accepted layouts.
func parseDatetime(value string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errInvalidDatetime
}
