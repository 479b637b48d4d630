// Package clock abstracts the wall clock so services never read
// time.Now directly. Tests pin a Fixed instant to exercise lateness
// and minimum-hours boundaries exactly.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns the real wall clock.
func System() Clock {
	return systemClock{}
}

// Fixed is a Clock pinned to one instant.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}
