package holiday

import "time"

// Holiday is a named calendar date. Holidays are shown to employees but
// are not consulted by the check-in/check-out rules.
type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
