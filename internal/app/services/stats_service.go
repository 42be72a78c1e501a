package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/app/models/dto"
	"github.com/messmate/messmate/internal/pkg/apperrors"
	"github.com/messmate/messmate/internal/pkg/helpers"
	"github.com/messmate/messmate/internal/pkg/stats"
)

const (
	defaultSeriesDays = 7
	maxSeriesDays     = 90
)

type statsBookingStore interface {
	GetByDate(ctx context.Context, date time.Time) ([]*models.Booking, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*models.Booking, error)
}

type statsStudentStore interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
}

type statsFeedbackStore interface {
	GetAll(ctx context.Context) ([]*models.Feedback, error)
}

type statsComplaintStore interface {
	GetAll(ctx context.Context) ([]*models.Complaint, error)
}

// StatsService produces the admin dashboard aggregates.
type StatsService interface {
	Overview(ctx context.Context) (*dto.OverviewResponse, error)
	MealDistribution(ctx context.Context, date string) (*dto.DistributionResponse, error)
	RatingDistribution(ctx context.Context) (*dto.DistributionResponse, error)
	ComplaintDistribution(ctx context.Context) (*dto.DistributionResponse, error)
	BookingSeries(ctx context.Context, days int) (*dto.SeriesResponse, error)
}

type statsServiceImpl struct {
	students   statsStudentStore
	bookings   statsBookingStore
	feedbacks  statsFeedbackStore
	complaints statsComplaintStore
	now        func() time.Time
}

// NewStatsService creates a new stats service instance.
func NewStatsService(students statsStudentStore, bookings statsBookingStore, feedbacks statsFeedbackStore, complaints statsComplaintStore) StatsService {
	return &statsServiceImpl{
		students:   students,
		bookings:   bookings,
		feedbacks:  feedbacks,
		complaints: complaints,
		now:        time.Now,
	}
}

// Overview collects the summary card counts for the dashboard.
func (s *statsServiceImpl) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	today := s.today()
	bookings, err := s.bookings.GetByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("error counting today's bookings: %w", err)
	}

	complaints, err := s.complaints.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting complaints: %w", err)
	}

	feedbacks, err := s.feedbacks.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting feedback: %w", err)
	}

	return &dto.OverviewResponse{
		TotalStudents:   len(students),
		BookingsToday:   len(bookings),
		OpenComplaints:  stats.OpenComplaints(complaints),
		FeedbackEntries: len(feedbacks),
	}, nil
}

// MealDistribution returns how many bookings include each meal on the
// given date.
func (s *statsServiceImpl) MealDistribution(ctx context.Context, date string) (*dto.DistributionResponse, error) {
	day, err := helpers.DateOnly(date)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	bookings, err := s.bookings.GetByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("error retrieving bookings: %w", err)
	}

	return bucketsResponse(stats.MealCounts(bookings)), nil
}

// RatingDistribution buckets all feedback ratings 1 through 5.
func (s *statsServiceImpl) RatingDistribution(ctx context.Context) (*dto.DistributionResponse, error) {
	feedbacks, err := s.feedbacks.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}

	dist := stats.RatingDistribution(feedbacks)
	buckets := make(map[string]int, len(dist))
	for rating, count := range dist {
		buckets[strconv.Itoa(rating)] = count
	}
	return bucketsResponse(buckets), nil
}

// ComplaintDistribution groups complaints by workflow status.
func (s *statsServiceImpl) ComplaintDistribution(ctx context.Context) (*dto.DistributionResponse, error) {
	complaints, err := s.complaints.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving complaints: %w", err)
	}

	return bucketsResponse(stats.StatusCounts(complaints)), nil
}

// BookingSeries returns one point per day for the trailing window ending
// today. A non-positive days value falls back to the default window.
func (s *statsServiceImpl) BookingSeries(ctx context.Context, days int) (*dto.SeriesResponse, error) {
	if days <= 0 {
		days = defaultSeriesDays
	}
	if days > maxSeriesDays {
		days = maxSeriesDays
	}

	end := s.today()
	start := end.AddDate(0, 0, -(days - 1))

	bookings, err := s.bookings.GetByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("error retrieving bookings: %w", err)
	}

	points := stats.BookingSeries(bookings, end, days)
	resp := &dto.SeriesResponse{Points: make([]dto.SeriesPoint, 0, len(points))}
	for _, p := range points {
		resp.Points = append(resp.Points, dto.SeriesPoint{
			Date:  helpers.FormatDate(p.Date),
			Count: p.Count,
		})
	}
	return resp, nil
}

func (s *statsServiceImpl) today() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}

func bucketsResponse(buckets map[string]int) *dto.DistributionResponse {
	total := 0
	for _, count := range buckets {
		total += count
	}
	return &dto.DistributionResponse{Buckets: buckets, Total: total}
}
