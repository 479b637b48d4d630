// Package timeutil holds the calendar arithmetic the attendance core
// depends on. All comparisons are done at minute precision; seconds
// are discarded at the boundary.
package timeutil

import (
	"fmt"
	"time"
)

// DateOf truncates an instant to its calendar date (midnight, same
// location).
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MinuteOfDay returns the minute offset from midnight, 0..1439.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Weekday returns the day-of-week index with Sunday=0.
func Weekday(t time.Time) int {
	return int(t.Weekday())
}

// ParseClock parses a "HH:MM" string into its minute-of-day value.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	return h*60 + m, nil
}

// FormatClock renders a minute-of-day value as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ClockOf renders an instant's wall time as "HH:MM".
func ClockOf(t time.Time) string {
	return t.Format("15:04")
}

// SameMonth reports whether an instant falls in the given month/year.
func SameMonth(t time.Time, month, year int) bool {
	return int(t.Month()) == month && t.Year() == year
}
