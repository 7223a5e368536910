package types

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateString represents a calendar date in "YYYY-MM-DD" format.
type DateString string

// NewDateString creates a DateString from a time.Time, keeping only the date.
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// String returns the raw "YYYY-MM-DD" value.
func (d DateString) String() string {
	return string(d)
}

// IsZero returns true if the value is empty.
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate checks that the value parses as "YYYY-MM-DD".
func (d DateString) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", string(d))
	}
	return nil
}

// Time parses the date at midnight in the given location.
func (d DateString) Time(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, string(d), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", string(d))
	}
	return t, nil
}

// At combines the date with a clock time in the given location.
func (d DateString) At(clock TimeString, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout+" "+timeLayout, string(d)+" "+string(clock), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date-time %q %q", string(d), string(clock))
	}
	return t, nil
}

// IsBefore reports whether d is strictly earlier than other.
// Lexicographic comparison is correct for the fixed-width layout.
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsAfter reports whether d is strictly later than other.
func (d DateString) IsAfter(other DateString) bool {
	return string(d) > string(other)
}
