package overtime

import (
	"context"
	"time"
)

// OvertimeRepository defines data access for overtime records.
type OvertimeRepository interface {
	// Create inserts a new overtime record
	Create(ctx context.Context, ot Overtime) (Overtime, error)

	// GetByID retrieves an overtime record by id; returns
	// ErrOvertimeNotFound when none matches
	GetByID(ctx context.Context, id string) (Overtime, error)

	// GetOpenByEmployeeAndDate retrieves the record with no end time
	// for an employee on a date. Returns (nil, nil) when none exists.
	GetOpenByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Overtime, error)

	// Update overwrites an existing record
	Update(ctx context.Context, ot Overtime) error

	// ListByMonth retrieves an employee's records for a calendar month
	ListByMonth(ctx context.Context, employeeID string, month int, year int) ([]Overtime, error)

	// ListByStatus retrieves all records with a status, newest first
	ListByStatus(ctx context.Context, status Status) ([]Overtime, error)
}
