package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")

	ErrAttendanceNotFound = errors.New("attendance record not found")

	// ErrDuplicateRecord surfaces the storage layer's unique constraint
	// on (employee_id, date) when two check-ins race
	ErrDuplicateRecord = errors.New("attendance record already exists for this date")
)

// MinimumHoursError rejects a check-out or overtime start whose worked
// hours fall short of the schedule minimum. The deficit is rounded up
// to whole minutes and split into hours and minutes for the caller's
// message.
type MinimumHoursError struct {
	RequiredHours    float64
	RemainingHours   int
	RemainingMinutes int
}

func (e *MinimumHoursError) Error() string {
	return fmt.Sprintf("minimum work hours not met: %d jam %d menit remaining", e.RemainingHours, e.RemainingMinutes)
}

// NewMinimumHoursError builds the error from the required minimum and
// the worked minutes so far.
func NewMinimumHoursError(requiredHours float64, requiredMinutes int, workedMinutes int) *MinimumHoursError {
	remaining := requiredMinutes - workedMinutes
	return &MinimumHoursError{
		RequiredHours:    requiredHours,
		RemainingHours:   remaining / 60,
		RemainingMinutes: remaining % 60,
	}
}
