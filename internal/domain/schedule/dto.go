package schedule

import (
	"github.com/presensi-app/presensi-backend-go/internal/pkg/validator"
)

type UpsertScheduleRequest struct {
	DayOfWeek    int     `json:"-"`
	StartTime    string  `json:"start_time"` // "HH:MM"
	EndTime      string  `json:"end_time"`   // "HH:MM"
	MinWorkHours float64 `json:"min_work_hours"`
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidWeekday(r.DayOfWeek) {
		errs = append(errs, validator.ValidationError{
			Field:   "day_of_week",
			Message: "day_of_week must be between 0 (Sunday) and 6 (Saturday)",
		})
	}

	if !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.MinWorkHours < 0 || r.MinWorkHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_work_hours",
			Message: "min_work_hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkScheduleResponse struct {
	ID           string  `json:"id"`
	DayOfWeek    int     `json:"day_of_week"`
	DayName      string  `json:"day_name"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	MinWorkHours float64 `json:"min_work_hours"`
}

type ListScheduleResponse struct {
	Schedules []WorkScheduleResponse `json:"schedules"`
}
