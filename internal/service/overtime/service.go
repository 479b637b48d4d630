package overtime

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/presensi-app/presensi-backend-go/internal/domain/attendance"
	"github.com/presensi-app/presensi-backend-go/internal/domain/overtime"
	"github.com/presensi-app/presensi-backend-go/internal/domain/schedule"
	"github.com/presensi-app/presensi-backend-go/internal/domain/user"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/clock"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/identity"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/timeutil"
)

// defaultMinWorkHours applies when the weekday has no schedule row.
const defaultMinWorkHours = 8.0

type OvertimeServiceImpl struct {
	overtime.OvertimeRepository
	attendance.AttendanceRepository
	schedule.WorkScheduleRepository
	clock clock.Clock
}

func NewOvertimeService(
	overtimeRepo overtime.OvertimeRepository,
	attendanceRepo attendance.AttendanceRepository,
	workScheduleRepo schedule.WorkScheduleRepository,
	clk clock.Clock,
) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		OvertimeRepository:     overtimeRepo,
		AttendanceRepository:   attendanceRepo,
		WorkScheduleRepository: workScheduleRepo,
		clock:                  clk,
	}
}

// Start implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) Start(ctx context.Context, req overtime.StartOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	now := o.clock.Now()
	date := timeutil.DateOf(now)

	att, err := o.AttendanceRepository.GetByEmployeeAndDate(ctx, ident.EmployeeID, date)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if att == nil || att.CheckIn == nil {
		return overtime.OvertimeResponse{}, overtime.ErrCheckInRequired
	}

	if att.CheckOut == nil {
		return overtime.OvertimeResponse{}, overtime.ErrCheckOutRequired
	}

	minHours := defaultMinWorkHours
	sched, err := o.WorkScheduleRepository.GetByDayOfWeek(ctx, timeutil.Weekday(now))
	if err == nil {
		minHours = sched.MinWorkHours
	} else if !errors.Is(err, schedule.ErrScheduleNotFound) {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to resolve work schedule: %w", err)
	}

	requiredMinutes := int(math.Ceil(minHours * 60))
	workedMinutes := int(math.Round(att.WorkHours * 60))
	if workedMinutes < requiredMinutes {
		return overtime.OvertimeResponse{}, attendance.NewMinimumHoursError(minHours, requiredMinutes, workedMinutes)
	}

	open, err := o.OvertimeRepository.GetOpenByEmployeeAndDate(ctx, ident.EmployeeID, date)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get open overtime record: %w", err)
	}

	if open != nil {
		return overtime.OvertimeResponse{}, overtime.ErrOvertimeAlreadyOpen
	}

	record := overtime.Overtime{
		ID:         uuid.NewString(),
		EmployeeID: ident.EmployeeID,
		Date:       date,
		StartTime:  now.Truncate(time.Minute),
		Reason:     req.Reason,
		Status:     overtime.StatusPending,
	}

	record, err = o.OvertimeRepository.Create(ctx, record)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to create overtime record: %w", err)
	}

	return mapOvertimeToResponse(record), nil
}

// End implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) End(ctx context.Context) (overtime.OvertimeResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	now := o.clock.Now()
	date := timeutil.DateOf(now)

	open, err := o.OvertimeRepository.GetOpenByEmployeeAndDate(ctx, ident.EmployeeID, date)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get open overtime record: %w", err)
	}

	if open == nil {
		return overtime.OvertimeResponse{}, overtime.ErrNoOpenOvertime
	}

	endTime := now.Truncate(time.Minute)
	minutes := timeutil.MinuteOfDay(now) - timeutil.MinuteOfDay(open.StartTime)

	record := *open
	record.EndTime = &endTime
	record.DurationHours = math.Max(0, float64(minutes)/60)

	if err := o.OvertimeRepository.Update(ctx, record); err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to update overtime record: %w", err)
	}

	return mapOvertimeToResponse(record), nil
}

// Decide implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) Decide(ctx context.Context, req overtime.DecideOvertimeRequest) (overtime.OvertimeResponse, error) {
	ident, err := identity.FromContext(ctx)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	if !ident.IsAdmin() {
		return overtime.OvertimeResponse{}, user.ErrAdminPrivilegeRequired
	}

	record, err := o.OvertimeRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, overtime.ErrOvertimeNotFound) {
			return overtime.OvertimeResponse{}, overtime.ErrOvertimeNotFound
		}
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get overtime record: %w", err)
	}

	if record.Status != overtime.StatusPending {
		return overtime.OvertimeResponse{}, overtime.ErrAlreadyDecided
	}

	// Deciding a record that was never ended is allowed; the end time
	// and duration stay as they are.
	now := o.clock.Now()
	approverID := ident.UserID

	record.Status = overtime.StatusRejected
	if req.Approve {
		record.Status = overtime.StatusApproved
	}
	record.ApproverID = &approverID
	record.ApprovedAt = &now

	if err := o.OvertimeRepository.Update(ctx, record); err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to update overtime record: %w", err)
	}

	return mapOvertimeToResponse(record), nil
}

// ListMine implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) ListMine(ctx context.Context, filter overtime.MyOvertimeFilter) (overtime.ListOvertimeResponse, error) {
	if err := filter.Validate(); err != nil {
		return overtime.ListOvertimeResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return overtime.ListOvertimeResponse{}, err
	}

	now := o.clock.Now()
	month, year := filter.Month, filter.Year
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	records, err := o.OvertimeRepository.ListByMonth(ctx, ident.EmployeeID, month, year)
	if err != nil {
		return overtime.ListOvertimeResponse{}, fmt.Errorf("failed to list overtime records: %w", err)
	}

	return mapOvertimeListToResponse(records), nil
}

// List implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) List(ctx context.Context, filter overtime.ListOvertimeFilter) (overtime.ListOvertimeResponse, error) {
	if err := filter.Validate(); err != nil {
		return overtime.ListOvertimeResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return overtime.ListOvertimeResponse{}, err
	}

	if !ident.IsAdmin() {
		return overtime.ListOvertimeResponse{}, user.ErrAdminPrivilegeRequired
	}

	records, err := o.OvertimeRepository.ListByStatus(ctx, overtime.Status(filter.Status))
	if err != nil {
		return overtime.ListOvertimeResponse{}, fmt.Errorf("failed to list overtime records: %w", err)
	}

	return mapOvertimeListToResponse(records), nil
}

func mapOvertimeToResponse(ot overtime.Overtime) overtime.OvertimeResponse {
	resp := overtime.OvertimeResponse{
		ID:            ot.ID,
		EmployeeID:    ot.EmployeeID,
		Date:          ot.Date.Format("2006-01-02"),
		StartTime:     timeutil.ClockOf(ot.StartTime),
		DurationHours: ot.DurationHours,
		Reason:        ot.Reason,
		Status:        string(ot.Status),
		ApproverID:    ot.ApproverID,
	}

	if ot.EndTime != nil {
		endTime := timeutil.ClockOf(*ot.EndTime)
		resp.EndTime = &endTime
	}

	if ot.ApprovedAt != nil {
		approvedAt := ot.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}

	return resp
}

func mapOvertimeListToResponse(records []overtime.Overtime) overtime.ListOvertimeResponse {
	responses := make([]overtime.OvertimeResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapOvertimeToResponse(rec))
	}
	return overtime.ListOvertimeResponse{Overtimes: responses}
}
