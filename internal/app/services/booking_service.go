package services

import (
	"context"
	"fmt"
	"time"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/app/models/dto"
	"github.com/messmate/messmate/internal/pkg/apperrors"
	"github.com/messmate/messmate/internal/pkg/helpers"
)

type bookingStore interface {
	Upsert(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	GetByDate(ctx context.Context, date time.Time) ([]*models.Booking, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Booking, error)
}

// BookingService defines meal booking operations.
type BookingService interface {
	Upsert(ctx context.Context, req *dto.UpsertBookingRequest) (*models.Booking, error)
	ListByDate(ctx context.Context, date string) ([]*models.Booking, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Booking, error)
}

type bookingServiceImpl struct {
	bookings bookingStore
}

// NewBookingService creates a new booking service instance.
func NewBookingService(bookings bookingStore) BookingService {
	return &bookingServiceImpl{bookings: bookings}
}

// Upsert creates or overwrites the booking for (studentId, date). The
// date is normalized to day granularity and the meals list is validated
// against the closed meal set and de-duplicated; the latest submission
// wins wholesale, so an empty meals list clears the booking.
func (s *bookingServiceImpl) Upsert(ctx context.Context, req *dto.UpsertBookingRequest) (*models.Booking, error) {
	if req.StudentID <= 0 {
		return nil, apperrors.NewValidationError("studentId must be positive")
	}

	date, err := helpers.DateOnly(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidDate, err)
	}

	meals, err := normalizeMeals(req.Meals)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		StudentID: req.StudentID,
		Date:      date,
		Meals:     meals,
	}

	result, err := s.bookings.Upsert(ctx, booking)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListByDate returns every booking for one calendar date, student
// projection populated.
func (s *bookingServiceImpl) ListByDate(ctx context.Context, date string) ([]*models.Booking, error) {
	day, err := helpers.DateOnly(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidDate, err)
	}

	bookings, err := s.bookings.GetByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("error retrieving daily bookings: %w", err)
	}
	return bookings, nil
}

// ListByStudent returns one student's bookings, most recent date first.
func (s *bookingServiceImpl) ListByStudent(ctx context.Context, studentID int64) ([]*models.Booking, error) {
	if studentID <= 0 {
		return nil, apperrors.NewValidationError("studentId must be positive")
	}

	bookings, err := s.bookings.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student bookings: %w", err)
	}
	return bookings, nil
}

// normalizeMeals validates meal names against the closed set and drops
// duplicates while preserving submission order.
func normalizeMeals(meals []string) ([]string, error) {
	out := make([]string, 0, len(meals))
	seen := make(map[string]bool, len(meals))
	for _, meal := range meals {
		if !models.IsValidMeal(meal) {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidMeal, meal)
		}
		if seen[meal] {
			continue
		}
		seen[meal] = true
		out = append(out, meal)
	}
	return out, nil
}
