package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records the employee's arrival for today. The first
	// check-in of the day creates the record; lateness is decided
	// against the weekday schedule and never revisited.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut records the departure and computes worked hours; the
	// schedule minimum is enforced before any state changes.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// History retrieves the caller's attendance records for a month
	History(ctx context.Context, filter HistoryFilter) (HistoryResponse, error)

	// MonthlyStats aggregates status counts and worked hours for a
	// month; admins may target another employee
	MonthlyStats(ctx context.Context, filter StatsFilter) (MonthlyStatsResponse, error)
}
