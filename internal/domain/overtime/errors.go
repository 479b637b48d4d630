package overtime

import "errors"

// Overtime domain errors
var (
	ErrReasonRequired      = errors.New("overtime reason is required")
	ErrCheckInRequired     = errors.New("you must check in before starting overtime")
	ErrCheckOutRequired    = errors.New("you must check out before starting overtime")
	ErrOvertimeAlreadyOpen = errors.New("you already have an open overtime session today")
	ErrNoOpenOvertime      = errors.New("no open overtime session found for today")
	ErrOvertimeNotFound    = errors.New("overtime record not found")
	ErrAlreadyDecided      = errors.New("overtime has already been approved or rejected")
)
