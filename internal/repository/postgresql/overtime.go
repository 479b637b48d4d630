package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/presensi-app/presensi-backend-go/internal/domain/overtime"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

const overtimeColumns = `
	id, employee_id, date, start_time, end_time, duration_hours,
	reason, status, approver_id, approved_at, created_at, updated_at
`

// Create implements overtime.OvertimeRepository.
func (o *overtimeRepository) Create(ctx context.Context, ot overtime.Overtime) (overtime.Overtime, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		INSERT INTO overtimes (id, employee_id, date, start_time, duration_hours, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ot.ID, ot.EmployeeID, ot.Date, ot.StartTime, ot.DurationHours, ot.Reason, ot.Status,
	).Scan(&ot.CreatedAt, &ot.UpdatedAt)
	if err != nil {
		return overtime.Overtime{}, fmt.Errorf("failed to create overtime: %w", err)
	}

	return ot, nil
}

// GetByID implements overtime.OvertimeRepository.
func (o *overtimeRepository) GetByID(ctx context.Context, id string) (overtime.Overtime, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtimes
		WHERE id = $1
		LIMIT 1
	`

	ot, err := scanOvertime(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.Overtime{}, overtime.ErrOvertimeNotFound
		}
		return overtime.Overtime{}, fmt.Errorf("failed to get overtime by id: %w", err)
	}

	return ot, nil
}

// GetOpenByEmployeeAndDate implements overtime.OvertimeRepository.
func (o *overtimeRepository) GetOpenByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*overtime.Overtime, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtimes
		WHERE employee_id = $1
		  AND date = $2
		  AND end_time IS NULL
		ORDER BY start_time DESC
		LIMIT 1
	`

	ot, err := scanOvertime(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No open session
		}
		return nil, fmt.Errorf("failed to get open overtime: %w", err)
	}

	return &ot, nil
}

// Update implements overtime.OvertimeRepository.
func (o *overtimeRepository) Update(ctx context.Context, ot overtime.Overtime) error {
	q := GetQuerier(ctx, o.db)

	query := `
		UPDATE overtimes SET
			end_time = $2, duration_hours = $3, status = $4,
			approver_id = $5, approved_at = $6, updated_at = NOW()
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query,
		ot.ID, ot.EndTime, ot.DurationHours, ot.Status, ot.ApproverID, ot.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update overtime: %w", err)
	}

	if result.RowsAffected() == 0 {
		return overtime.ErrOvertimeNotFound
	}

	return nil
}

// ListByMonth implements overtime.OvertimeRepository.
func (o *overtimeRepository) ListByMonth(ctx context.Context, employeeID string, month int, year int) ([]overtime.Overtime, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtimes
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM date) = $2
		  AND EXTRACT(YEAR FROM date) = $3
		ORDER BY date ASC, start_time ASC
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtimes by month: %w", err)
	}
	defer rows.Close()

	return collectOvertimes(rows)
}

// ListByStatus implements overtime.OvertimeRepository.
func (o *overtimeRepository) ListByStatus(ctx context.Context, status overtime.Status) ([]overtime.Overtime, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtimes
		WHERE status = $1
		ORDER BY date DESC, start_time DESC
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtimes by status: %w", err)
	}
	defer rows.Close()

	return collectOvertimes(rows)
}

func scanOvertime(row pgx.Row) (overtime.Overtime, error) {
	var ot overtime.Overtime
	err := row.Scan(
		&ot.ID, &ot.EmployeeID, &ot.Date, &ot.StartTime, &ot.EndTime, &ot.DurationHours,
		&ot.Reason, &ot.Status, &ot.ApproverID, &ot.ApprovedAt, &ot.CreatedAt, &ot.UpdatedAt,
	)
	return ot, err
}

func collectOvertimes(rows pgx.Rows) ([]overtime.Overtime, error) {
	var overtimes []overtime.Overtime
	for rows.Next() {
		ot, err := scanOvertime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime row: %w", err)
		}
		overtimes = append(overtimes, ot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overtime rows: %w", err)
	}

	return overtimes, nil
}
