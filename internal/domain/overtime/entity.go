package overtime

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
}

// Overtime is one overtime session. At most one record per
// (employee, date) may be open, i.e. have no end time. Approval and
// closing are independent axes: an admin may decide a record that was
// never ended.
type Overtime struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	StartTime     time.Time
	EndTime       *time.Time
	DurationHours float64
	Reason        string
	Status        Status
	ApproverID    *string
	ApprovedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Open reports whether the session has not been ended yet.
func (o Overtime) Open() bool {
	return o.EndTime == nil
}
