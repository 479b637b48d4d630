package schedule

import "context"

// ScheduleService defines business logic for weekday work schedules
type ScheduleService interface {
	// Resolve looks up the active schedule for a weekday (Sunday=0)
	Resolve(ctx context.Context, dayOfWeek int) (WorkScheduleResponse, error)

	// List retrieves all weekday schedules
	List(ctx context.Context) (ListScheduleResponse, error)

	// Upsert creates or updates a weekday schedule (admin)
	Upsert(ctx context.Context, req UpsertScheduleRequest) (WorkScheduleResponse, error)
}
