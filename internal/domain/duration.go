package domain

import (
	"math"
	"time"

	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

// DaysBetween returns the number of calendar days from start to end, rounded
// up. The result is negative when end precedes start; callers that need a
// non-negative duration must clamp via ClampDays, while extension eligibility
// relies on the sign being preserved.
func DaysBetween(start, end types.DateString) (int, error) {
	startT, err := start.Time(time.UTC)
	if err != nil {
		return 0, err
	}
	endT, err := end.Time(time.UTC)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(endT.Sub(startT).Hours() / 24)), nil
}

// ClampDays clamps a day count to zero or more. Used on the modification
// path, where a reversed range means "no duration" rather than an error.
func ClampDays(days int) int {
	if days < 0 {
		return 0
	}
	return days
}

// AdditionalDays returns how many days an extension adds to the booking.
// An extension is actionable only when the result is strictly positive.
func AdditionalDays(originalDays, newDays int) int {
	return newDays - originalDays
}

// IsForwardExtension reports whether the proposed end is strictly later than
// the current end: a later date, or the same date with a later time.
func IsForwardExtension(currentEndDate types.DateString, currentEndTime types.TimeString, newEndDate types.DateString, newEndTime types.TimeString) bool {
	if newEndDate.IsAfter(currentEndDate) {
		return true
	}
	return newEndDate == currentEndDate && newEndTime.IsAfter(currentEndTime)
}
