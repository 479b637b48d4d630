package schedule

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presensi-app/presensi-backend-go/internal/domain/schedule"
)

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
	if existing, ok := r.schedules[ws.DayOfWeek]; ok {
		ws.ID = existing.ID
	}
	r.schedules[ws.DayOfWeek] = ws
	return ws, nil
}

func TestResolve(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo(schedule.WorkSchedule{
		ID: "sched-mon", DayOfWeek: 1, StartTime: "08:00", EndTime: "16:00", MinWorkHours: 8,
	}))

	resp, err := svc.Resolve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Monday", resp.DayName)
	assert.Equal(t, "08:00", resp.StartTime)
}

func TestResolve_MissingDay(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())

	_, err := svc.Resolve(context.Background(), 0)
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}

func TestUpsert_SecondWriteUpdatesInPlace(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(repo)

	first, err := svc.Upsert(context.Background(), schedule.UpsertScheduleRequest{
		DayOfWeek: 1, StartTime: "08:00", EndTime: "16:00", MinWorkHours: 8,
	})
	require.NoError(t, err)

	second, err := svc.Upsert(context.Background(), schedule.UpsertScheduleRequest{
		DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", MinWorkHours: 7.5,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "09:00", second.StartTime)
	assert.Len(t, repo.schedules, 1)
}

func TestUpsert_RejectsMalformedInput(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())

	_, err := svc.Upsert(context.Background(), schedule.UpsertScheduleRequest{
		DayOfWeek: 7, StartTime: "8am", EndTime: "16:00", MinWorkHours: 25,
	})
	require.Error(t, err)
}

func TestList_OrderedByDay(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo(
		schedule.WorkSchedule{ID: "s5", DayOfWeek: 5, StartTime: "08:00", EndTime: "15:00", MinWorkHours: 6.5},
		schedule.WorkSchedule{ID: "s1", DayOfWeek: 1, StartTime: "08:00", EndTime: "16:00", MinWorkHours: 8},
	))

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Schedules, 2)
	assert.Equal(t, "Monday", resp.Schedules[0].DayName)
	assert.Equal(t, "Friday", resp.Schedules[1].DayName)
}
