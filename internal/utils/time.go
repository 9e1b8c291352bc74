package utils

import (
	"time"

	"github.com/julianstephens/visionboard/internal/constants"
)

// DayKey collapses a timestamp to its calendar day (YYYY-MM-DD) in the
// timestamp's own location, discarding time-of-day.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// DaysAgo returns the calendar day key for n days before t.
func DaysAgo(t time.Time, n int) string {
	return DayKey(t.AddDate(0, 0, -n))
}

// ParseDay parses a YYYY-MM-DD day string.
func ParseDay(day string) (time.Time, error) {
	return time.Parse(constants.DateFormat, day)
}

// ValidDay reports whether the string is a well-formed YYYY-MM-DD day.
func ValidDay(day string) bool {
	_, err := ParseDay(day)
	return err == nil
}
