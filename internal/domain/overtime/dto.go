package overtime

import (
	"github.com/presensi-app/presensi-backend-go/internal/pkg/validator"
)

type StartOvertimeRequest struct {
	Reason string `json:"reason"`
}

func (r *StartOvertimeRequest) Validate() error {
	if validator.IsEmpty(r.Reason) {
		return ErrReasonRequired
	}

	return nil
}

type DecideOvertimeRequest struct {
	ID      string `json:"-"`
	Approve bool   `json:"-"`
}

type OvertimeResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"` // HH:MM
	EndTime       *string `json:"end_time,omitempty"`
	DurationHours float64 `json:"duration_hours"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	ApproverID    *string `json:"approver_id,omitempty"`
	ApprovedAt    *string `json:"approved_at,omitempty"`
}

type MyOvertimeFilter struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (f *MyOvertimeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month < 0 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Year < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListOvertimeFilter struct {
	Status string `json:"status"`
}

func (f *ListOvertimeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status == "" {
		f.Status = string(StatusPending) // Default: the approval queue
	}

	if !validator.IsInSlice(f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListOvertimeResponse struct {
	Overtimes []OvertimeResponse `json:"overtimes"`
}
