package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record. The (employee_id, date) unique
	// constraint surfaces as ErrDuplicateRecord when violated.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a
	// calendar date. Returns (nil, nil) when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update overwrites an existing record
	Update(ctx context.Context, att Attendance) error

	// ListByMonth retrieves all records for an employee in a calendar
	// month ordered by date
	ListByMonth(ctx context.Context, employeeID string, month int, year int) ([]Attendance, error)
}
