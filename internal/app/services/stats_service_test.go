package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/pkg/apperrors"
)

type fakeStatsBookings struct {
	bookings []*models.Booking
}

func (f *fakeStatsBookings) GetByDate(_ context.Context, date time.Time) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range f.bookings {
		if b.Date.Equal(date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStatsBookings) GetByDateRange(_ context.Context, from, to time.Time) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range f.bookings {
		if !b.Date.Before(from) && !b.Date.After(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeStatsStudents struct{ students []*models.Student }

func (f *fakeStatsStudents) GetAll(context.Context) ([]*models.Student, error) {
	return f.students, nil
}

type fakeStatsFeedbacks struct{ feedbacks []*models.Feedback }

func (f *fakeStatsFeedbacks) GetAll(context.Context) ([]*models.Feedback, error) {
	return f.feedbacks, nil
}

type fakeStatsComplaints struct{ complaints []*models.Complaint }

func (f *fakeStatsComplaints) GetAll(context.Context) ([]*models.Complaint, error) {
	return f.complaints, nil
}

func newTestStatsService(t *testing.T, bookings []*models.Booking, today string) *statsServiceImpl {
	t.Helper()
	now, err := time.Parse("2006-01-02", today)
	require.NoError(t, err)

	svc := NewStatsService(
		&fakeStatsStudents{students: []*models.Student{{ID: 1}, {ID: 2}, {ID: 3}}},
		&fakeStatsBookings{bookings: bookings},
		&fakeStatsFeedbacks{feedbacks: []*models.Feedback{{Rating: 4}, {Rating: 5}}},
		&fakeStatsComplaints{complaints: []*models.Complaint{
			{Status: models.StatusPending},
			{Status: models.StatusResolved},
		}},
	)

	impl := svc.(*statsServiceImpl)
	impl.now = func() time.Time { return now }
	return impl
}

func mustDay(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func TestStatsOverview(t *testing.T) {
	bookings := []*models.Booking{
		{Date: mustDay(t, "2024-05-03")},
		{Date: mustDay(t, "2024-05-03")},
		{Date: mustDay(t, "2024-05-01")},
	}
	svc := newTestStatsService(t, bookings, "2024-05-03")

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, overview.TotalStudents)
	assert.Equal(t, 2, overview.BookingsToday)
	assert.Equal(t, 1, overview.OpenComplaints)
	assert.Equal(t, 2, overview.FeedbackEntries)
}

func TestStatsMealDistribution(t *testing.T) {
	bookings := []*models.Booking{
		{Date: mustDay(t, "2024-05-03"), Meals: []string{"Breakfast", "Lunch"}},
		{Date: mustDay(t, "2024-05-03"), Meals: []string{"Lunch"}},
	}
	svc := newTestStatsService(t, bookings, "2024-05-03")

	dist, err := svc.MealDistribution(context.Background(), "2024-05-03")
	require.NoError(t, err)

	assert.Equal(t, 1, dist.Buckets["Breakfast"])
	assert.Equal(t, 2, dist.Buckets["Lunch"])
	assert.Equal(t, 0, dist.Buckets["Dinner"])
	assert.Equal(t, 3, dist.Total)
}

func TestStatsMealDistribution_InvalidDate(t *testing.T) {
	svc := newTestStatsService(t, nil, "2024-05-03")

	_, err := svc.MealDistribution(context.Background(), "soon")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
}

func TestStatsRatingDistribution(t *testing.T) {
	svc := newTestStatsService(t, nil, "2024-05-03")

	dist, err := svc.RatingDistribution(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, dist.Buckets["4"])
	assert.Equal(t, 1, dist.Buckets["5"])
	assert.Equal(t, 0, dist.Buckets["1"])
	assert.Equal(t, 2, dist.Total)
}

func TestStatsBookingSeries_DefaultWindow(t *testing.T) {
	bookings := []*models.Booking{
		{Date: mustDay(t, "2024-05-03")},
		{Date: mustDay(t, "2024-05-02")},
		{Date: mustDay(t, "2024-05-02")},
	}
	svc := newTestStatsService(t, bookings, "2024-05-03")

	series, err := svc.BookingSeries(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, series.Points, defaultSeriesDays)
	last := series.Points[len(series.Points)-1]
	assert.Equal(t, "2024-05-03", last.Date)
	assert.Equal(t, 1, last.Count)
	assert.Equal(t, 2, series.Points[len(series.Points)-2].Count)
}

func TestStatsBookingSeries_WindowClamped(t *testing.T) {
	svc := newTestStatsService(t, nil, "2024-05-03")

	series, err := svc.BookingSeries(context.Background(), maxSeriesDays+100)
	require.NoError(t, err)

	assert.Len(t, series.Points, maxSeriesDays)
}
