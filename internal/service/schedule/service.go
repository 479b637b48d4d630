package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/presensi-app/presensi-backend-go/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	schedule.WorkScheduleRepository
}

func NewScheduleService(workScheduleRepo schedule.WorkScheduleRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		WorkScheduleRepository: workScheduleRepo,
	}
}

// Resolve implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Resolve(ctx context.Context, dayOfWeek int) (schedule.WorkScheduleResponse, error) {
	ws, err := s.WorkScheduleRepository.GetByDayOfWeek(ctx, dayOfWeek)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return schedule.WorkScheduleResponse{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	return mapScheduleToResponse(ws), nil
}

// List implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) List(ctx context.Context) (schedule.ListScheduleResponse, error) {
	schedules, err := s.WorkScheduleRepository.List(ctx)
	if err != nil {
		return schedule.ListScheduleResponse{}, fmt.Errorf("failed to list work schedules: %w", err)
	}

	responses := make([]schedule.WorkScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		responses = append(responses, mapScheduleToResponse(ws))
	}

	return schedule.ListScheduleResponse{Schedules: responses}, nil
}

// Upsert implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Upsert(ctx context.Context, req schedule.UpsertScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	ws := schedule.WorkSchedule{
		ID:           uuid.NewString(),
		DayOfWeek:    req.DayOfWeek,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		MinWorkHours: req.MinWorkHours,
	}

	ws, err := s.WorkScheduleRepository.Upsert(ctx, ws)
	if err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to upsert work schedule: %w", err)
	}

	return mapScheduleToResponse(ws), nil
}

func mapScheduleToResponse(ws schedule.WorkSchedule) schedule.WorkScheduleResponse {
	dayName := ""
	if ws.DayOfWeek >= 0 && ws.DayOfWeek < len(schedule.DayNames) {
		dayName = schedule.DayNames[ws.DayOfWeek]
	}

	return schedule.WorkScheduleResponse{
		ID:           ws.ID,
		DayOfWeek:    ws.DayOfWeek,
		DayName:      dayName,
		StartTime:    ws.StartTime,
		EndTime:      ws.EndTime,
		MinWorkHours: ws.MinWorkHours,
	}
}
