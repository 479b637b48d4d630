package schedule

import "time"

// WorkSchedule is the active schedule for one weekday. Exactly one row
// exists per day-of-week; admins update rows in place and never delete
// them. EndTime is advisory only and is never enforced at check-out.
type WorkSchedule struct {
	ID           string
	DayOfWeek    int    // Sunday=0 .. Saturday=6
	StartTime    string // "HH:MM"
	EndTime      string // "HH:MM"
	MinWorkHours float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var DayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}
