package holiday

import "context"

// HolidayService defines business logic for the holiday calendar
type HolidayService interface {
	// Create adds a holiday (admin)
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)

	// ListByYear retrieves the calendar for a year
	ListByYear(ctx context.Context, year int) (ListHolidayResponse, error)

	// Update renames a holiday (admin)
	Update(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)

	// Delete removes a holiday (admin)
	Delete(ctx context.Context, date string) error
}
