package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/messmate/messmate/internal/app/models"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMealCounts(t *testing.T) {
	bookings := []*models.Booking{
		{Meals: []string{"Breakfast", "Lunch"}},
		{Meals: []string{"Lunch", "Dinner"}},
		{Meals: []string{"Lunch"}},
	}

	counts := MealCounts(bookings)

	assert.Equal(t, 1, counts["Breakfast"])
	assert.Equal(t, 3, counts["Lunch"])
	assert.Equal(t, 1, counts["Dinner"])
}

func TestMealCounts_EmptyBookingsKeepAllBuckets(t *testing.T) {
	counts := MealCounts(nil)

	assert.Len(t, counts, 3)
	for _, m := range models.AllMeals {
		assert.Contains(t, counts, string(m))
		assert.Zero(t, counts[string(m)])
	}
}

func TestRatingDistribution(t *testing.T) {
	feedbacks := []*models.Feedback{
		{Rating: 5}, {Rating: 5}, {Rating: 3}, {Rating: 1}, {Rating: 4},
	}

	dist := RatingDistribution(feedbacks)

	assert.Equal(t, map[int]int{1: 1, 2: 0, 3: 1, 4: 1, 5: 2}, dist)
}

func TestRatingDistribution_ClampsOutOfRange(t *testing.T) {
	feedbacks := []*models.Feedback{
		{Rating: 0}, {Rating: -3}, {Rating: 6}, {Rating: 99},
	}

	dist := RatingDistribution(feedbacks)

	assert.Equal(t, 2, dist[1])
	assert.Equal(t, 2, dist[5])
}

func TestStatusCounts(t *testing.T) {
	complaints := []*models.Complaint{
		{Status: models.StatusPending},
		{Status: models.StatusPending},
		{Status: models.StatusInProgress},
		{Status: models.StatusResolved},
	}

	counts := StatusCounts(complaints)

	assert.Equal(t, 2, counts[string(models.StatusPending)])
	assert.Equal(t, 1, counts[string(models.StatusInProgress)])
	assert.Equal(t, 1, counts[string(models.StatusResolved)])
}

func TestOpenComplaints(t *testing.T) {
	complaints := []*models.Complaint{
		{Status: models.StatusPending},
		{Status: models.StatusInProgress},
		{Status: models.StatusResolved},
		{Status: models.StatusResolved},
	}

	assert.Equal(t, 2, OpenComplaints(complaints))
}

func TestBookingSeries_FillsMissingDays(t *testing.T) {
	bookings := []*models.Booking{
		{Date: day("2024-05-01")},
		{Date: day("2024-05-01")},
		{Date: day("2024-05-03")},
	}

	points := BookingSeries(bookings, day("2024-05-03"), 3)

	assert.Len(t, points, 3)
	assert.Equal(t, day("2024-05-01"), points[0].Date)
	assert.Equal(t, 2, points[0].Count)
	assert.Equal(t, 0, points[1].Count)
	assert.Equal(t, 1, points[2].Count)
}

func TestBookingSeries_NonPositiveWindow(t *testing.T) {
	assert.Nil(t, BookingSeries(nil, day("2024-05-03"), 0))
	assert.Nil(t, BookingSeries(nil, day("2024-05-03"), -1))
}
