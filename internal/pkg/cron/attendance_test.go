package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presensi-app/presensi-backend-go/internal/domain/attendance"
	"github.com/presensi-app/presensi-backend-go/internal/domain/schedule"
	"github.com/presensi-app/presensi-backend-go/internal/domain/user"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/clock"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func attKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	key := attKey(att.EmployeeID, att.Date)
	if _, exists := r.records[key]; exists {
		return attendance.Attendance{}, attendance.ErrDuplicateRecord
	}
	r.records[key] = att
	return att, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	att, ok := r.records[attKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &att, nil
}

func (r *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	r.records[attKey(att.EmployeeID, att.Date)] = att
	return nil
}

func (r *fakeAttendanceRepo) ListByMonth(ctx context.Context, employeeID string, month int, year int) ([]attendance.Attendance, error) {
	return nil, nil
}

type fakeScheduleRepo struct {
	schedules map[int]schedule.WorkSchedule
}

func (r *fakeScheduleRepo) GetByDayOfWeek(ctx context.Context, dayOfWeek int) (schedule.WorkSchedule, error) {
	ws, ok := r.schedules[dayOfWeek]
	if !ok {
		return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
	}
	return ws, nil
}

func (r *fakeScheduleRepo) List(ctx context.Context) ([]schedule.WorkSchedule, error) {
	return nil, nil
}

func (r *fakeScheduleRepo) Upsert(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	r.schedules[ws.DayOfWeek] = ws
	return ws, nil
}

type fakeUserRepo struct {
	employeeIDs []string
}

func listEmployees(ids ...string) *fakeUserRepo {
	return &fakeUserRepo{employeeIDs: ids}
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) ListEmployeeIDs(ctx context.Context) ([]string, error) {
	return r.employeeIDs, nil
}

func TestMarkAbsentEmployees(t *testing.T) {
	// 2026-03-02 (Monday) had a schedule; the job runs shortly after
	// midnight on the 3rd.
	attRepo := &fakeAttendanceRepo{records: map[string]attendance.Attendance{}}
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	attRepo.records[attKey("emp-1", monday)] = attendance.Attendance{
		ID: "a1", EmployeeID: "emp-1", Date: monday, Status: attendance.StatusPresent, WorkHours: 8,
	}

	schedRepo := &fakeScheduleRepo{schedules: map[int]schedule.WorkSchedule{
		1: {ID: "sched-mon", DayOfWeek: 1, StartTime: "08:00", EndTime: "16:00", MinWorkHours: 8},
	}}

	jobs := NewAttendanceJobs(attRepo, schedRepo, listEmployees("emp-1", "emp-2"), clock.Fixed{
		Instant: time.Date(2026, 3, 3, 0, 30, 0, 0, time.UTC),
	})

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))

	// emp-1 already had a record, emp-2 gets marked absent.
	rec, err := attRepo.GetByEmployeeAndDate(context.Background(), "emp-2", monday)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	assert.Zero(t, rec.WorkHours)
	assert.Nil(t, rec.CheckIn)

	existing, err := attRepo.GetByEmployeeAndDate(context.Background(), "emp-1", monday)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, existing.Status)
}

func TestMarkAbsentEmployees_SkipsNonWorkDays(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: map[string]attendance.Attendance{}}
	schedRepo := &fakeScheduleRepo{schedules: map[int]schedule.WorkSchedule{}}

	// Yesterday was Sunday with no schedule row.
	jobs := NewAttendanceJobs(attRepo, schedRepo, listEmployees("emp-1"), clock.Fixed{
		Instant: time.Date(2026, 3, 2, 0, 15, 0, 0, time.UTC),
	})

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	assert.Empty(t, attRepo.records)
}
