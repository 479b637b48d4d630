package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/presensi-app/presensi-backend-go/internal/domain/attendance"
	"github.com/presensi-app/presensi-backend-go/internal/domain/schedule"
	"github.com/presensi-app/presensi-backend-go/internal/domain/user"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/clock"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/identity"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/timeutil"
	"github.com/presensi-app/presensi-backend-go/internal/service/file"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	schedule.WorkScheduleRepository
	fileService file.FileService
	clock       clock.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	workScheduleRepo schedule.WorkScheduleRepository,
	fileService file.FileService,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository:   attendanceRepo,
		WorkScheduleRepository: workScheduleRepo,
		fileService:            fileService,
		clock:                  clk,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()
	date := timeutil.DateOf(now)

	sched, err := a.WorkScheduleRepository.GetByDayOfWeek(ctx, timeutil.Weekday(now))
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return attendance.AttendanceResponse{}, schedule.ErrScheduleNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve work schedule: %w", err)
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, ident.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if existing != nil && existing.CheckIn != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	startMinute, err := timeutil.ParseClock(sched.StartTime)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("malformed schedule start time: %w", err)
	}

	// Arriving exactly at the scheduled start is not late.
	isLate := timeutil.MinuteOfDay(now) > startMinute

	status := attendance.StatusPresent
	if isLate {
		status = attendance.StatusLate
	}

	photoPath, err := a.fileService.UploadAttendanceProof(ctx, ident.EmployeeID, date, req.File, req.FileHeader.Filename, "check-in")
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to upload attendance proof: %w", err)
	}

	event := &attendance.CheckEvent{
		Time:      now.Truncate(time.Minute),
		PhotoURL:  photoPath,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
	}

	var record attendance.Attendance
	if existing == nil {
		record = attendance.Attendance{
			ID:         uuid.NewString(),
			EmployeeID: ident.EmployeeID,
			Date:       date,
			CheckIn:    event,
			Status:     status,
		}
		record, err = a.AttendanceRepository.Create(ctx, record)
		if err != nil {
			// The proof photo is already stored; don't leave it orphaned.
			if delErr := a.fileService.DeleteFile(ctx, photoPath); delErr != nil {
				slog.Error("Failed to delete orphaned proof photo", "path", photoPath, "error", delErr)
			}
			// A concurrent check-in won the unique constraint race.
			if errors.Is(err, attendance.ErrDuplicateRecord) {
				return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
			}
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
		}
	} else {
		// Pre-created record (e.g. marked absent by the nightly job):
		// check-in takes it over and re-decides the status.
		record = *existing
		record.CheckIn = event
		record.Status = status
		if err := a.AttendanceRepository.Update(ctx, record); err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
		}
	}

	resp := mapAttendanceToResponse(record)
	resp.Message = "You checked in on time"
	if isLate {
		resp.Message = "You checked in late"
	}

	return resp, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()
	date := timeutil.DateOf(now)

	sched, err := a.WorkScheduleRepository.GetByDayOfWeek(ctx, timeutil.Weekday(now))
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return attendance.AttendanceResponse{}, schedule.ErrScheduleNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve work schedule: %w", err)
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, ident.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if existing == nil || existing.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}

	if existing.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	// Naive same-day minute difference. Shifts spanning midnight come
	// out negative here and are floored below, matching the stored
	// behavior this system has always had.
	workedMinutes := timeutil.MinuteOfDay(now) - timeutil.MinuteOfDay(existing.CheckIn.Time)

	requiredMinutes := int(math.Ceil(sched.MinWorkHours * 60))
	if workedMinutes < requiredMinutes {
		// Rejected outright: the record stays untouched.
		return attendance.AttendanceResponse{}, attendance.NewMinimumHoursError(sched.MinWorkHours, requiredMinutes, workedMinutes)
	}

	photoPath, err := a.fileService.UploadAttendanceProof(ctx, ident.EmployeeID, date, req.File, req.FileHeader.Filename, "check-out")
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to upload attendance proof: %w", err)
	}

	record := *existing
	record.CheckOut = &attendance.CheckEvent{
		Time:      now.Truncate(time.Minute),
		PhotoURL:  photoPath,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
	}
	record.WorkHours = math.Max(0, float64(workedMinutes)/60)

	if err := a.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapAttendanceToResponse(record), nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, filter attendance.HistoryFilter) (attendance.HistoryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.HistoryResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	month, year := a.defaultMonth(filter.Month, filter.Year)

	records, err := a.AttendanceRepository.ListByMonth(ctx, ident.EmployeeID, month, year)
	if err != nil {
		return attendance.HistoryResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapAttendanceToResponse(rec))
	}

	return attendance.HistoryResponse{
		Month:       month,
		Year:        year,
		Attendances: responses,
	}, nil
}

// MonthlyStats implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlyStats(ctx context.Context, filter attendance.StatsFilter) (attendance.MonthlyStatsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.MonthlyStatsResponse{}, err
	}

	ident, err := identity.FromContext(ctx)
	if err != nil {
		return attendance.MonthlyStatsResponse{}, err
	}

	employeeID := ident.EmployeeID
	if filter.EmployeeID != nil && *filter.EmployeeID != "" && ident.Role == user.RoleAdmin {
		employeeID = *filter.EmployeeID
	}

	month, year := a.defaultMonth(filter.Month, filter.Year)

	records, err := a.AttendanceRepository.ListByMonth(ctx, employeeID, month, year)
	if err != nil {
		return attendance.MonthlyStatsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	stats := attendance.MonthlyStatsResponse{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
		Total:      len(records),
	}

	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusLate:
			stats.Late++
		case attendance.StatusAbsent:
			stats.Absent++
		}
		stats.TotalWorkHours += rec.WorkHours
	}

	return stats, nil
}

// defaultMonth substitutes the clock's current month/year for zero values.
func (a *AttendanceServiceImpl) defaultMonth(month, year int) (int, int) {
	now := a.clock.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return month, year
}

func mapCheckEventToResponse(event *attendance.CheckEvent) *attendance.CheckEventResponse {
	if event == nil {
		return nil
	}
	return &attendance.CheckEventResponse{
		Time:      timeutil.ClockOf(event.Time),
		PhotoURL:  event.PhotoURL,
		Latitude:  event.Latitude,
		Longitude: event.Longitude,
		Address:   event.Address,
	}
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date.Format("2006-01-02"),
		CheckIn:    mapCheckEventToResponse(att.CheckIn),
		CheckOut:   mapCheckEventToResponse(att.CheckOut),
		Status:     string(att.Status),
		WorkHours:  att.WorkHours,
		IsLate:     att.Status == attendance.StatusLate,
	}
}
