package overtime

import "context"

// OvertimeService defines business logic for the overtime lifecycle
type OvertimeService interface {
	// Start opens a pending overtime session for today. Requires a
	// fully checked-out attendance record meeting the schedule minimum.
	Start(ctx context.Context, req StartOvertimeRequest) (OvertimeResponse, error)

	// End closes the caller's open session and computes its duration.
	// The approval status is untouched.
	End(ctx context.Context) (OvertimeResponse, error)

	// Decide approves or rejects a pending record (admin). Deciding a
	// session that was never ended is permitted.
	Decide(ctx context.Context, req DecideOvertimeRequest) (OvertimeResponse, error)

	// ListMine retrieves the caller's records for a month
	ListMine(ctx context.Context, filter MyOvertimeFilter) (ListOvertimeResponse, error)

	// List retrieves records by status (admin)
	List(ctx context.Context, filter ListOvertimeFilter) (ListOvertimeResponse, error)
}
