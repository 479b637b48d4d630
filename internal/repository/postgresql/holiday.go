package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/presensi-app/presensi-backend-go/internal/domain/holiday"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create implements holiday.HolidayRepository.
func (h *holidayRepository) Create(ctx context.Context, hol holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		INSERT INTO holidays (id, date, name)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, hol.ID, hol.Date, hol.Name).Scan(&hol.CreatedAt, &hol.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return hol, nil
}

// GetByDate implements holiday.HolidayRepository.
func (h *holidayRepository) GetByDate(ctx context.Context, date time.Time) (holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, date, name, created_at, updated_at
		FROM holidays
		WHERE date = $1
		LIMIT 1
	`

	var hol holiday.Holiday
	err := q.QueryRow(ctx, query, date).Scan(
		&hol.ID, &hol.Date, &hol.Name, &hol.CreatedAt, &hol.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday by date: %w", err)
	}

	return hol, nil
}

// ListByYear implements holiday.HolidayRepository.
func (h *holidayRepository) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, date, name, created_at, updated_at
		FROM holidays
		WHERE EXTRACT(YEAR FROM date) = $1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays by year: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var hol holiday.Holiday
		if err := rows.Scan(&hol.ID, &hol.Date, &hol.Name, &hol.CreatedAt, &hol.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday row: %w", err)
		}
		holidays = append(holidays, hol)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holiday rows: %w", err)
	}

	return holidays, nil
}

// Update implements holiday.HolidayRepository.
func (h *holidayRepository) Update(ctx context.Context, hol holiday.Holiday) error {
	q := GetQuerier(ctx, h.db)

	query := `
		UPDATE holidays SET name = $2, updated_at = NOW()
		WHERE date = $1
	`

	result, err := q.Exec(ctx, query, hol.Date, hol.Name)
	if err != nil {
		return fmt.Errorf("failed to update holiday: %w", err)
	}

	if result.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

// Delete implements holiday.HolidayRepository.
func (h *holidayRepository) Delete(ctx context.Context, date time.Time) error {
	q := GetQuerier(ctx, h.db)

	result, err := q.Exec(ctx, `DELETE FROM holidays WHERE date = $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	if result.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
