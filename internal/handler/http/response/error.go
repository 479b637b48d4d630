package response

import (
	"errors"
	"net/http"

	"github.com/presensi-app/presensi-backend-go/internal/domain/attendance"
	"github.com/presensi-app/presensi-backend-go/internal/domain/auth"
	"github.com/presensi-app/presensi-backend-go/internal/domain/holiday"
	"github.com/presensi-app/presensi-backend-go/internal/domain/overtime"
	"github.com/presensi-app/presensi-backend-go/internal/domain/schedule"
	"github.com/presensi-app/presensi-backend-go/internal/domain/user"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var minHoursErr *attendance.MinimumHoursError
	if errors.As(err, &minHoursErr) {
		BadRequest(w, minHoursErr.Error(), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "No work schedule configured for this day")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "You have already checked out today")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance record already exists for this date")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "You have not checked in yet", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Overtime domain errors
	case errors.Is(err, overtime.ErrReasonRequired):
		BadRequest(w, "Overtime reason is required", nil)
	case errors.Is(err, overtime.ErrCheckInRequired):
		BadRequest(w, "You must check in before starting overtime", nil)
	case errors.Is(err, overtime.ErrCheckOutRequired):
		BadRequest(w, "You must check out before starting overtime", nil)
	case errors.Is(err, overtime.ErrOvertimeAlreadyOpen):
		Conflict(w, "You already have an open overtime session today")
	case errors.Is(err, overtime.ErrNoOpenOvertime):
		BadRequest(w, "No open overtime session found for today", nil)
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime record not found")
	case errors.Is(err, overtime.ErrAlreadyDecided):
		Conflict(w, "Overtime has already been approved or rejected")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on this date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
