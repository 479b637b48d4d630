package schedule

import "context"

// WorkScheduleRepository defines data access for weekday work schedules.
type WorkScheduleRepository interface {
	// GetByDayOfWeek retrieves the schedule for a weekday (Sunday=0).
	// Returns ErrScheduleNotFound when no row exists for that day.
	GetByDayOfWeek(ctx context.Context, dayOfWeek int) (WorkSchedule, error)

	// List retrieves all weekday schedules ordered by day
	List(ctx context.Context) ([]WorkSchedule, error)

	// Upsert creates or updates the schedule row for its weekday
	Upsert(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)
}
