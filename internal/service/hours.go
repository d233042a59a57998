package service

import (
	"math"
	"time"

	"github.com/MKhiriev/volunteer-keeper/models"
)

// DurationHours is the length of one attendance session in hours, rounded
// to two decimal places. The duration is truncated to whole minutes first
// so that stray seconds never inflate the figure. An open session (no
// sign-out yet) counts as zero.
func DurationHours(experience models.Experience) float64 {
	if experience.SignOutTime == nil {
		return 0
	}

	minutes := int64(experience.SignOutTime.Sub(experience.SignInTime) / time.Minute)
	return math.Round(float64(minutes)/60*100) / 100
}

// TotalHours sums the duration of every closed session in the list.
func TotalHours(experiences []models.Experience) float64 {
	var total float64
	for _, e := range experiences {
		total += DurationHours(e)
	}
	return math.Round(total*100) / 100
}
