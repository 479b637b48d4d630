package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/presensi-app/presensi-backend-go/internal/domain/attendance"
	"github.com/presensi-app/presensi-backend-go/internal/domain/schedule"
	"github.com/presensi-app/presensi-backend-go/internal/domain/user"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/clock"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/timeutil"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	scheduleRepo   schedule.WorkScheduleRepository
	userRepo       user.UserRepository
	clock          clock.Clock
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.WorkScheduleRepository,
	userRepo user.UserRepository,
	clk clock.Clock,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		userRepo:       userRepo,
		clock:          clk,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddDailyJob("mark_absent_employees", 0, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees back-fills absent records for employees who had a
// work schedule yesterday but never checked in. Scheduled daily at
// midnight.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	yesterday := timeutil.DateOf(j.clock.Now().AddDate(0, 0, -1))

	if _, err := j.scheduleRepo.GetByDayOfWeek(ctx, timeutil.Weekday(yesterday)); err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			// Not a work day, nothing to mark.
			return nil
		}
		return fmt.Errorf("failed to resolve work schedule: %w", err)
	}

	employeeIDs, err := j.userRepo.ListEmployeeIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	marked := 0
	for _, employeeID := range employeeIDs {
		existing, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, yesterday)
		if err != nil {
			slog.Error("Cron: failed to get attendance record", "employee_id", employeeID, "error", err)
			continue
		}
		if existing != nil {
			continue
		}

		record := attendance.Attendance{
			ID:         uuid.NewString(),
			EmployeeID: employeeID,
			Date:       yesterday,
			Status:     attendance.StatusAbsent,
		}

		if _, err := j.attendanceRepo.Create(ctx, record); err != nil {
			// Another instance may have inserted the row first.
			if errors.Is(err, attendance.ErrDuplicateRecord) {
				continue
			}
			slog.Error("Cron: failed to create absent record", "employee_id", employeeID, "error", err)
			continue
		}
		marked++
	}

	if marked > 0 {
		slog.Info("Cron: marked absent employees", "date", yesterday.Format("2006-01-02"), "count", marked)
	}

	return nil
}
