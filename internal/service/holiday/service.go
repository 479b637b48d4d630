package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/presensi-app/presensi-backend-go/internal/domain/holiday"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/clock"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
	clock clock.Clock
}

func NewHolidayService(holidayRepo holiday.HolidayRepository, clk clock.Clock) holiday.HolidayService {
	return &HolidayServiceImpl{
		HolidayRepository: holidayRepo,
		clock:             clk,
	}
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to parse holiday date: %w", err)
	}

	if _, err := s.HolidayRepository.GetByDate(ctx, date); err == nil {
		return holiday.HolidayResponse{}, holiday.ErrHolidayExists
	} else if !errors.Is(err, holiday.ErrHolidayNotFound) {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to get holiday: %w", err)
	}

	h := holiday.Holiday{
		ID:   uuid.NewString(),
		Date: date,
		Name: req.Name,
	}

	h, err = s.HolidayRepository.Create(ctx, h)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return mapHolidayToResponse(h), nil
}

// ListByYear implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListByYear(ctx context.Context, year int) (holiday.ListHolidayResponse, error) {
	if year == 0 {
		year = s.clock.Now().Year()
	}

	holidays, err := s.HolidayRepository.ListByYear(ctx, year)
	if err != nil {
		return holiday.ListHolidayResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, mapHolidayToResponse(h))
	}

	return holiday.ListHolidayResponse{
		Year:     year,
		Holidays: responses,
	}, nil
}

// Update implements holiday.HolidayService.
func (s *HolidayServiceImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to parse holiday date: %w", err)
	}

	h, err := s.HolidayRepository.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return holiday.HolidayResponse{}, holiday.ErrHolidayNotFound
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to get holiday: %w", err)
	}

	h.Name = req.Name
	if err := s.HolidayRepository.Update(ctx, h); err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to update holiday: %w", err)
	}

	return mapHolidayToResponse(h), nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, dateStr string) error {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return holiday.ErrHolidayNotFound
	}

	if _, err := s.HolidayRepository.GetByDate(ctx, date); err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to get holiday: %w", err)
	}

	if err := s.HolidayRepository.Delete(ctx, date); err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	return nil
}

func mapHolidayToResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:   h.ID,
		Date: h.Date.Format("2006-01-02"),
		Name: h.Name,
	}
}
