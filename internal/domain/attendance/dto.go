package attendance

import (
	"mime/multipart"
	"strings"

	"github.com/presensi-app/presensi-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	Latitude   float64               `json:"latitude"`
	Longitude  float64               `json:"longitude"`
	Address    string                `json:"address"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	return validateCheckRequest(r.Latitude, r.Longitude, r.FileHeader)
}

type CheckOutRequest struct {
	Latitude   float64               `json:"latitude"`
	Longitude  float64               `json:"longitude"`
	Address    string                `json:"address"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	return validateCheckRequest(r.Latitude, r.Longitude, r.FileHeader)
}

func validateCheckRequest(latitude, longitude float64, fileHeader *multipart.FileHeader) error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if fileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "attendance proof photo is required",
		})
	} else {
		filename := fileHeader.Filename
		ext := ""
		if idx := strings.LastIndex(filename, "."); idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if fileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "attendance proof photo size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckEventResponse struct {
	Time      string  `json:"time"` // HH:MM
	PhotoURL  string  `json:"photo_url"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

type AttendanceResponse struct {
	ID         string              `json:"id"`
	EmployeeID string              `json:"employee_id"`
	Date       string              `json:"date"`
	CheckIn    *CheckEventResponse `json:"check_in,omitempty"`
	CheckOut   *CheckEventResponse `json:"check_out,omitempty"`
	Status     string              `json:"status"`
	WorkHours  float64             `json:"work_hours"`
	IsLate     bool                `json:"is_late"`
	Message    string              `json:"message,omitempty"`
}

type HistoryFilter struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (f *HistoryFilter) Validate() error {
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

type HistoryResponse struct {
	Month       int                  `json:"month"`
	Year        int                  `json:"year"`
	Attendances []AttendanceResponse `json:"attendances"`
}

// StatsFilter selects the month to aggregate. Zero month/year default
// to the current month; EmployeeID is honored for admin callers only.
type StatsFilter struct {
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (f *StatsFilter) Validate() error {
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

type MonthlyStatsResponse struct {
	EmployeeID     string  `json:"employee_id"`
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	Present        int     `json:"present"`
	Late           int     `json:"late"`
	Absent         int     `json:"absent"`
	TotalWorkHours float64 `json:"total_work_hours"`
	Total          int     `json:"total"`
}
