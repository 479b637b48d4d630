package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access for the holiday calendar.
type HolidayRepository interface {
	// Create inserts a holiday; the date is unique
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// GetByDate retrieves the holiday on a calendar date
	GetByDate(ctx context.Context, date time.Time) (Holiday, error)

	// ListByYear retrieves all holidays in a calendar year ordered by date
	ListByYear(ctx context.Context, year int) ([]Holiday, error)

	// Update renames the holiday on a date
	Update(ctx context.Context, h Holiday) error

	// Delete removes the holiday on a date
	Delete(ctx context.Context, date time.Time) error
}
