package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/presensi-app/presensi-backend-go/internal/domain/attendance"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, date,
	check_in_time, check_in_photo_url, check_in_latitude, check_in_longitude, check_in_address,
	check_out_time, check_out_photo_url, check_out_latitude, check_out_longitude, check_out_address,
	status, work_hours, created_at, updated_at
`

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date,
			check_in_time, check_in_photo_url, check_in_latitude, check_in_longitude, check_in_address,
			status, work_hours
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at, updated_at
	`

	var inTime *time.Time
	var inPhoto, inAddress *string
	var inLat, inLon *float64
	if att.CheckIn != nil {
		inTime = &att.CheckIn.Time
		inPhoto = &att.CheckIn.PhotoURL
		inLat = &att.CheckIn.Latitude
		inLon = &att.CheckIn.Longitude
		inAddress = &att.CheckIn.Address
	}

	err := q.QueryRow(ctx, query,
		att.ID,
		att.EmployeeID,
		att.Date,
		inTime,
		inPhoto,
		inLat,
		inLon,
		inAddress,
		att.Status,
		att.WorkHours,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrDuplicateRecord
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for this date yet
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			check_in_time = $2, check_in_photo_url = $3, check_in_latitude = $4,
			check_in_longitude = $5, check_in_address = $6,
			check_out_time = $7, check_out_photo_url = $8, check_out_latitude = $9,
			check_out_longitude = $10, check_out_address = $11,
			status = $12, work_hours = $13, updated_at = NOW()
		WHERE id = $1
	`

	var inTime, outTime *time.Time
	var inPhoto, inAddress, outPhoto, outAddress *string
	var inLat, inLon, outLat, outLon *float64
	if att.CheckIn != nil {
		inTime = &att.CheckIn.Time
		inPhoto = &att.CheckIn.PhotoURL
		inLat = &att.CheckIn.Latitude
		inLon = &att.CheckIn.Longitude
		inAddress = &att.CheckIn.Address
	}
	if att.CheckOut != nil {
		outTime = &att.CheckOut.Time
		outPhoto = &att.CheckOut.PhotoURL
		outLat = &att.CheckOut.Latitude
		outLon = &att.CheckOut.Longitude
		outAddress = &att.CheckOut.Address
	}

	result, err := q.Exec(ctx, query,
		att.ID,
		inTime, inPhoto, inLat, inLon, inAddress,
		outTime, outPhoto, outLat, outLon, outAddress,
		att.Status,
		att.WorkHours,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	if result.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByMonth(ctx context.Context, employeeID string, month int, year int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM date) = $2
		  AND EXTRACT(YEAR FROM date) = $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by month: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		attendances = append(attendances, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	return attendances, nil
}

// scanAttendance rebuilds the nested check events from the flattened
// nullable columns.
func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	var inTime, outTime *time.Time
	var inPhoto, inAddress, outPhoto, outAddress *string
	var inLat, inLon, outLat, outLon *float64

	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&inTime, &inPhoto, &inLat, &inLon, &inAddress,
		&outTime, &outPhoto, &outLat, &outLon, &outAddress,
		&att.Status, &att.WorkHours, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	if inTime != nil {
		att.CheckIn = &attendance.CheckEvent{Time: *inTime}
		if inPhoto != nil {
			att.CheckIn.PhotoURL = *inPhoto
		}
		if inLat != nil {
			att.CheckIn.Latitude = *inLat
		}
		if inLon != nil {
			att.CheckIn.Longitude = *inLon
		}
		if inAddress != nil {
			att.CheckIn.Address = *inAddress
		}
	}

	if outTime != nil {
		att.CheckOut = &attendance.CheckEvent{Time: *outTime}
		if outPhoto != nil {
			att.CheckOut.PhotoURL = *outPhoto
		}
		if outLat != nil {
			att.CheckOut.Latitude = *outLat
		}
		if outLon != nil {
			att.CheckOut.Longitude = *outLon
		}
		if outAddress != nil {
			att.CheckOut.Address = *outAddress
		}
	}

	return att, nil
}
