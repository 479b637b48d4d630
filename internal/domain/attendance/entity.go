package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusHoliday Status = "holiday"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusLate),
	string(StatusAbsent),
	string(StatusHoliday),
}

// CheckEvent is the proof captured at check-in or check-out: the
// wall-clock time (minute resolution), the uploaded photo and the
// device geolocation.
type CheckEvent struct {
	Time      time.Time
	PhotoURL  string
	Latitude  float64
	Longitude float64
	Address   string
}

// Attendance is the per (employee, date) record. The pair is unique;
// the storage layer enforces it with a unique constraint so concurrent
// check-ins cannot both create a row. Status is decided at check-in and
// never revisited. WorkHours is meaningful only once CheckOut is set.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *CheckEvent
	CheckOut   *CheckEvent
	Status     Status
	WorkHours  float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
