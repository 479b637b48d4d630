package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/presensi-app/presensi-backend-go/internal/domain/schedule"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/database"
)

type workScheduleRepository struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepository{db: db}
}

// GetByDayOfWeek implements schedule.WorkScheduleRepository.
func (w *workScheduleRepository) GetByDayOfWeek(ctx context.Context, dayOfWeek int) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, day_of_week, start_time, end_time, min_work_hours, created_at, updated_at
		FROM work_schedules
		WHERE day_of_week = $1
		LIMIT 1
	`

	var ws schedule.WorkSchedule
	err := q.QueryRow(ctx, query, dayOfWeek).Scan(
		&ws.ID, &ws.DayOfWeek, &ws.StartTime, &ws.EndTime, &ws.MinWorkHours,
		&ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule by day of week: %w", err)
	}

	return ws, nil
}

// List implements schedule.WorkScheduleRepository.
func (w *workScheduleRepository) List(ctx context.Context) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, day_of_week, start_time, end_time, min_work_hours, created_at, updated_at
		FROM work_schedules
		ORDER BY day_of_week ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		var ws schedule.WorkSchedule
		if err := rows.Scan(
			&ws.ID, &ws.DayOfWeek, &ws.StartTime, &ws.EndTime, &ws.MinWorkHours,
			&ws.CreatedAt, &ws.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work schedule row: %w", err)
		}
		schedules = append(schedules, ws)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work schedule rows: %w", err)
	}

	return schedules, nil
}

// Upsert implements schedule.WorkScheduleRepository. One row per
// weekday; a second upsert for the same day updates in place.
func (w *workScheduleRepository) Upsert(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO work_schedules (id, day_of_week, start_time, end_time, min_work_hours)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (day_of_week) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			min_work_hours = EXCLUDED.min_work_hours,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ws.ID, ws.DayOfWeek, ws.StartTime, ws.EndTime, ws.MinWorkHours,
	).Scan(&ws.ID, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to upsert work schedule: %w", err)
	}

	return ws, nil
}
