package domain

import (
	"errors"
	"math"
)

// ErrZeroDuration is returned when a per-day rate is requested for a booking
// with no whole days.
var ErrZeroDuration = errors.New("domain: booking duration is zero days")

// RateBasisDays returns the day count used to derive a per-day rate.
// A sub-day booking is priced as one day.
func RateBasisDays(days int) int {
	if days < 1 {
		return 1
	}
	return days
}

// PerDayRate derives the per-day rate from an existing total and duration.
// Callers must guard against a zero duration (see RateBasisDays).
func PerDayRate(totalPrice float64, days int) (float64, error) {
	if days <= 0 {
		return 0, ErrZeroDuration
	}
	return totalPrice / float64(days), nil
}

// Estimate projects a price for the given duration, rounded to the nearest
// whole currency unit. The result is advisory only: the figure returned by
// the rental platform on the actual mutation is authoritative and must
// replace it.
func Estimate(rate float64, days int) float64 {
	return math.Round(rate * float64(days))
}
