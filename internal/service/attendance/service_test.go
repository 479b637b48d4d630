package attendance

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
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

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
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
	key := attKey(att.EmployeeID, att.Date)
	if _, exists := r.records[key]; !exists {
		return attendance.ErrAttendanceNotFound
	}
	r.records[key] = att
	return nil
}

func (r *fakeAttendanceRepo) ListByMonth(ctx context.Context, employeeID string, month int, year int) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, att := range r.records {
		if att.EmployeeID == employeeID && int(att.Date.Month()) == month && att.Date.Year() == year {
			result = append(result, att)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

type fakeScheduleRepo struct {
	schedules map[int]schedule.WorkSchedule
}

func newFakeScheduleRepo(schedules ...schedule.WorkSchedule) *fakeScheduleRepo {
	repo := &fakeScheduleRepo{schedules: make(map[int]schedule.WorkSchedule)}
	for _, ws := range schedules {
		repo.schedules[ws.DayOfWeek] = ws
	}
	return repo
}

func (r *fakeScheduleRepo) GetByDayOfWeek(ctx context.Context, dayOfWeek int) (schedule.WorkSchedule, error) {
	ws, ok := r.schedules[dayOfWeek]
	if !ok {
		return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
	}
	return ws, nil
}

func (r *fakeScheduleRepo) List(ctx context.Context) ([]schedule.WorkSchedule, error) {
	var result []schedule.WorkSchedule
	for _, ws := range r.schedules {
		result = append(result, ws)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DayOfWeek < result[j].DayOfWeek })
	return result, nil
}

func (r *fakeScheduleRepo) Upsert(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	r.schedules[ws.DayOfWeek] = ws
	return ws, nil
}

type fakeFileService struct{}

func (fakeFileService) UploadAttendanceProof(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string, checkType string) (string, error) {
	return "attendance/" + date.Format("2006-01-02") + "/" + employeeID + "-" + checkType + ".jpg", nil
}

func (fakeFileService) DeleteFile(ctx context.Context, path string) error { return nil }

// recordingFileService remembers every upload and deletion.
type recordingFileService struct {
	uploaded []string
	deleted  []string
}

func (f *recordingFileService) UploadAttendanceProof(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string, checkType string) (string, error) {
	path := "attendance/" + date.Format("2006-01-02") + "/" + employeeID + "-" + checkType + ".jpg"
	f.uploaded = append(f.uploaded, path)
	return path, nil
}

func (f *recordingFileService) DeleteFile(ctx context.Context, path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

func authContext(t *testing.T, employeeID string, role user.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	tok, _, err := ja.Encode(map[string]interface{}{
		"user_id":     "user-" + employeeID,
		"employee_id": employeeID,
		"role":        string(role),
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func checkRequest() (attendance.CheckInRequest, attendance.CheckOutRequest) {
	header := &multipart.FileHeader{Filename: "proof.jpg", Size: 1024}
	in := attendance.CheckInRequest{Latitude: -6.2, Longitude: 106.8, Address: "Jakarta", FileHeader: header}
	out := attendance.CheckOutRequest{Latitude: -6.2, Longitude: 106.8, Address: "Jakarta", FileHeader: header}
	return in, out
}

// mondaySchedule is the default schedule under test: Monday 08:00-16:00
// with an 8 hour minimum. 2026-03-02 is a Monday.
func mondaySchedule() schedule.WorkSchedule {
	return schedule.WorkSchedule{
		ID:           "sched-mon",
		DayOfWeek:    1,
		StartTime:    "08:00",
		EndTime:      "16:00",
		MinWorkHours: 8.0,
	}
}

func mondayAt(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func TestCheckIn_ExactlyAtStartIsNotLate(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := NewAttendanceService(attRepo, newFakeScheduleRepo(mondaySchedule()), fakeFileService{}, clock.Fixed{Instant: mondayAt(8, 0)})

	in, _ := checkRequest()
	resp, err := svc.CheckIn(authContext(t, "emp-1", user.RoleEmployee), in)
	require.NoError(t, err)

	assert.Equal(t, "present", resp.Status)
	assert.False(t, resp.IsLate)
	assert.Equal(t, "2026-03-02", resp.Date)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, "08:00", resp.CheckIn.Time)
}

func TestCheckIn_AfterStartIsLate(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := NewAttendanceService(attRepo, newFakeScheduleRepo(mondaySchedule()), fakeFileService{}, clock.Fixed{Instant: mondayAt(8, 15)})

	in, _ := checkRequest()
	resp, err := svc.CheckIn(authContext(t, "emp-1", user.RoleEmployee), in)
	require.NoError(t, err)

	assert.Equal(t, "late", resp.Status)
	assert.True(t, resp.IsLate)
	assert.Equal(t, "You checked in late", resp.Message)
}

func TestCheckIn_SecondsAreIgnored(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	now := time.Date(2026, 3, 2, 8, 0, 59, 0, time.UTC)
	svc := NewAttendanceService(attRepo, newFakeScheduleRepo(mondaySchedule()), fakeFileService{}, clock.Fixed{Instant: now})

	in, _ := checkRequest()
	resp, err := svc.CheckIn(authContext(t, "emp-1", user.RoleEmployee), in)
	require.NoError(t, err)
	assert.False(t, resp.IsLate)
}

func TestCheckIn_TwiceSameDay(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := NewAttendanceService(attRepo, newFakeScheduleRepo(mondaySchedule()), fakeFileService{}, clock.Fixed{Instant: mondayAt(8, 0)})
	ctx := authContext(t, "emp-1", user.RoleEmployee)

	in, _ := checkRequest()
	_, err := svc.CheckIn(ctx, in)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, in)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_NoScheduleForDay(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeScheduleRepo(), fakeFileService{}, clock.Fixed{Instant: mondayAt(8, 0)})

	in, _ := checkRequest()
	_, err := svc.CheckIn(authContext(t, "emp-1", user.RoleEmployee), in)
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}

func TestCheckIn_TakesOverAbsentRecord(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	seeded := attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		Date:       mondayAt(0, 0),
		Status:     attendance.StatusAbsent,
	}
	attRepo.records[attKey("emp-1", seeded.Date)] = seeded

	svc := NewAttendanceService(attRepo, newFakeScheduleRepo(mondaySchedule()), fakeFileService{}, clock.Fixed{Instant: mondayAt(7, 45)})

	in, _ := checkRequest()
	resp, err := svc.CheckIn(authContext(t, "emp-1", user.RoleEmployee), in)
	require.NoError(t, err)

	assert.Equal(t, "att-1", resp.ID)
	assert.Equal(t, "present", resp.Status)
	require.NotNil(t, resp.CheckIn)
}

func TestCheckOut_BeforeMinimumIsRejected(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := NewAttendanceService(attRepo, newFakeScheduleRepo(mondaySchedule()), fakeFileService{}, clock.Fixed{Instant: mondayAt(8, 0)})
	ctx := authContext(t, "emp-1", user.RoleEmployee)

	in, out := checkRequest()
	_, err := svc.CheckIn(ctx, in)
	require.NoError(t, err)

	// 15:00 after an 08:00 check-in is 7h worked against an 8h minimum.
	svc.(*AttendanceServiceImpl).clock = clock.Fixed{Instant: mondayAt(15, 0)}
	_, err = svc.CheckOut(ctx, out)

	var minErr *attendance.MinimumHoursError
	require.ErrorAs(t, err, &minErr)
	assert.Equal(t, 1, minErr.RemainingHours)
	assert.Equal(t, 0, minErr.RemainingMinutes)
	assert.Contains(t, minErr.Error(), "1 jam 0 menit")

	// The record must be untouched by a rejected check-out.
	rec, err := attRepo.GetByEmployeeAndDate(ctx, "emp-1", mondayAt(0, 0))
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Nil(t, rec.CheckOut)
	assert.Zero(t, rec.WorkHours)
}

func TestCheckOut_AtMinimumSucceeds(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := NewAttendanceService(attRepo, newFakeScheduleRepo(mondaySchedule()), fakeFileService{}, clock.Fixed{Instant: mondayAt(8, 0)})
	ctx := authContext(t, "emp-1", user.RoleEmployee)

	in, out := checkRequest()
	_, err := svc.CheckIn(ctx, in)
	require.NoError(t, err)

	svc.(*AttendanceServiceImpl).clock = clock.Fixed{Instant: mondayAt(16, 0)}
	resp, err := svc.CheckOut(ctx, out)
	require.NoError(t, err)

	assert.Equal(t, 8.0, resp.WorkHours)
	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, "16:00", resp.CheckOut.Time)
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeScheduleRepo(mondaySchedule()), fakeFileService{}, clock.Fixed{Instant: mondayAt(16, 0)})

	_, out := checkRequest()
	_, err := svc.CheckOut(authContext(t, "emp-1", user.RoleEmployee), out)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_Twice(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := NewAttendanceService(attRepo, newFakeScheduleRepo(mondaySchedule()), fakeFileService{}, clock.Fixed{Instant: mondayAt(8, 0)})
	ctx := authContext(t, "emp-1", user.RoleEmployee)

	in, out := checkRequest()
	_, err := svc.CheckIn(ctx, in)
	require.NoError(t, err)

	svc.(*AttendanceServiceImpl).clock = clock.Fixed{Instant: mondayAt(16, 0)}
	_, err = svc.CheckOut(ctx, out)
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, out)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOut_ZeroMinutesWithZeroMinimum(t *testing.T) {
	ws := mondaySchedule()
	ws.MinWorkHours = 0
	attRepo := newFakeAttendanceRepo()
	svc := NewAttendanceService(attRepo, newFakeScheduleRepo(ws), fakeFileService{}, clock.Fixed{Instant: mondayAt(8, 0)})
	ctx := authContext(t, "emp-1", user.RoleEmployee)

	in, out := checkRequest()
	_, err := svc.CheckIn(ctx, in)
	require.NoError(t, err)

	resp, err := svc.CheckOut(ctx, out)
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.WorkHours)
}

func TestCheckIn_ConcurrentCreateRace(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	files := &recordingFileService{}
	svc := NewAttendanceService(&racingAttendanceRepo{fakeAttendanceRepo: attRepo}, newFakeScheduleRepo(mondaySchedule()), files, clock.Fixed{Instant: mondayAt(8, 0)})

	in, _ := checkRequest()
	_, err := svc.CheckIn(authContext(t, "emp-1", user.RoleEmployee), in)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	// The losing request's proof photo must not be left behind.
	require.Len(t, files.uploaded, 1)
	assert.Equal(t, files.uploaded, files.deleted)
}

// racingAttendanceRepo simulates another request inserting the row
// between the read and the create.
type racingAttendanceRepo struct {
	*fakeAttendanceRepo
}

func (r *racingAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrDuplicateRecord
}

func TestMonthlyStats_CountsAndSums(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	attRepo.records["emp-1|2026-03-02"] = attendance.Attendance{
		ID: "a1", EmployeeID: "emp-1", Date: mondayAt(0, 0),
		Status: attendance.StatusPresent, WorkHours: 8.0,
	}
	attRepo.records["emp-1|2026-03-03"] = attendance.Attendance{
		ID: "a2", EmployeeID: "emp-1", Date: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		Status: attendance.StatusLate, WorkHours: 7.5,
	}

	svc := NewAttendanceService(attRepo, newFakeScheduleRepo(mondaySchedule()), fakeFileService{}, clock.Fixed{Instant: mondayAt(17, 0)})

	stats, err := svc.MonthlyStats(authContext(t, "emp-1", user.RoleEmployee), attendance.StatsFilter{Month: 3, Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Present)
	assert.Equal(t, 1, stats.Late)
	assert.Equal(t, 0, stats.Absent)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 15.5, stats.TotalWorkHours)
}

func TestMonthlyStats_EmptyMonthIsZeroValued(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeScheduleRepo(), fakeFileService{}, clock.Fixed{Instant: mondayAt(17, 0)})

	stats, err := svc.MonthlyStats(authContext(t, "emp-1", user.RoleEmployee), attendance.StatsFilter{Month: 1, Year: 2026})
	require.NoError(t, err)

	assert.Zero(t, stats.Present)
	assert.Zero(t, stats.Late)
	assert.Zero(t, stats.Absent)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.TotalWorkHours)
}

func TestMonthlyStats_DefaultsToCurrentMonth(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeScheduleRepo(), fakeFileService{}, clock.Fixed{Instant: mondayAt(17, 0)})

	stats, err := svc.MonthlyStats(authContext(t, "emp-1", user.RoleEmployee), attendance.StatsFilter{})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Month)
	assert.Equal(t, 2026, stats.Year)
}

func TestMonthlyStats_AdminMayTargetAnotherEmployee(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	attRepo.records["emp-2|2026-03-02"] = attendance.Attendance{
		ID: "a1", EmployeeID: "emp-2", Date: mondayAt(0, 0),
		Status: attendance.StatusPresent, WorkHours: 8.0,
	}

	svc := NewAttendanceService(attRepo, newFakeScheduleRepo(), fakeFileService{}, clock.Fixed{Instant: mondayAt(17, 0)})

	target := "emp-2"
	stats, err := svc.MonthlyStats(authContext(t, "admin-1", user.RoleAdmin), attendance.StatsFilter{Month: 3, Year: 2026, EmployeeID: &target})
	require.NoError(t, err)
	assert.Equal(t, "emp-2", stats.EmployeeID)
	assert.Equal(t, 1, stats.Present)
}

func TestMonthlyStats_EmployeeCannotTargetAnother(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := NewAttendanceService(attRepo, newFakeScheduleRepo(), fakeFileService{}, clock.Fixed{Instant: mondayAt(17, 0)})

	target := "emp-2"
	stats, err := svc.MonthlyStats(authContext(t, "emp-1", user.RoleEmployee), attendance.StatsFilter{Month: 3, Year: 2026, EmployeeID: &target})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", stats.EmployeeID)
}

func TestHistory_ReturnsCallerRecordsOrdered(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	attRepo.records["emp-1|2026-03-03"] = attendance.Attendance{
		ID: "a2", EmployeeID: "emp-1", Date: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		Status: attendance.StatusLate, WorkHours: 7.5,
	}
	attRepo.records["emp-1|2026-03-02"] = attendance.Attendance{
		ID: "a1", EmployeeID: "emp-1", Date: mondayAt(0, 0),
		Status: attendance.StatusPresent, WorkHours: 8.0,
	}
	attRepo.records["emp-2|2026-03-02"] = attendance.Attendance{
		ID: "a3", EmployeeID: "emp-2", Date: mondayAt(0, 0),
		Status: attendance.StatusPresent, WorkHours: 8.0,
	}

	svc := NewAttendanceService(attRepo, newFakeScheduleRepo(), fakeFileService{}, clock.Fixed{Instant: mondayAt(17, 0)})

	resp, err := svc.History(authContext(t, "emp-1", user.RoleEmployee), attendance.HistoryFilter{Month: 3, Year: 2026})
	require.NoError(t, err)

	require.Len(t, resp.Attendances, 2)
	assert.Equal(t, "a1", resp.Attendances[0].ID)
	assert.Equal(t, "a2", resp.Attendances[1].ID)
}

func TestCheckIn_MissingPhotoIsRejected(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeScheduleRepo(mondaySchedule()), fakeFileService{}, clock.Fixed{Instant: mondayAt(8, 0)})

	req := attendance.CheckInRequest{Latitude: -6.2, Longitude: 106.8}
	_, err := svc.CheckIn(authContext(t, "emp-1", user.RoleEmployee), req)
	require.Error(t, err)
	assert.False(t, errors.Is(err, attendance.ErrAlreadyCheckedIn))
}
