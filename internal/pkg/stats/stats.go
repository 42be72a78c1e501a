// Package stats holds the dashboard reductions: pure functions that fold
// already-fetched record lists into counts and distributions. Volumes are
// small enough that no SQL aggregation is needed.
package stats

import (
	"time"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/pkg/helpers"
)

// MealCounts groups the meals arrays of the given bookings by meal type.
// Unknown meal strings are counted under their own name rather than
// dropped, so a bad row is visible on the chart instead of silent.
func MealCounts(bookings []*models.Booking) map[string]int {
	counts := make(map[string]int, len(models.AllMeals))
	for _, m := range models.AllMeals {
		counts[string(m)] = 0
	}
	for _, b := range bookings {
		for _, meal := range b.Meals {
			counts[meal]++
		}
	}
	return counts
}

// RatingDistribution buckets feedback ratings into the fixed 1..5 range.
// Every bucket is present even when empty. Out-of-range ratings are
// clamped into the nearest bucket.
func RatingDistribution(feedbacks []*models.Feedback) map[int]int {
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, f := range feedbacks {
		r := f.Rating
		if r < 1 {
			r = 1
		}
		if r > 5 {
			r = 5
		}
		dist[r]++
	}
	return dist
}

// StatusCounts groups complaints by workflow status over the closed enum.
func StatusCounts(complaints []*models.Complaint) map[string]int {
	counts := make(map[string]int, len(models.AllComplaintStatuses))
	for _, s := range models.AllComplaintStatuses {
		counts[string(s)] = 0
	}
	for _, c := range complaints {
		counts[string(c.Status)]++
	}
	return counts
}

// OpenComplaints counts complaints not yet resolved.
func OpenComplaints(complaints []*models.Complaint) int {
	open := 0
	for _, c := range complaints {
		if c.Status != models.StatusResolved {
			open++
		}
	}
	return open
}

// SeriesPoint is one calendar day of a rolling window.
type SeriesPoint struct {
	Date  time.Time
	Count int
}

// BookingSeries computes day-over-day booking totals for the `days`
// calendar dates ending at `end` (inclusive). Days with no bookings get
// an explicit zero point so the chart axis stays continuous.
func BookingSeries(bookings []*models.Booking, end time.Time, days int) []SeriesPoint {
	if days <= 0 {
		return nil
	}

	perDay := make(map[string]int, days)
	for _, b := range bookings {
		perDay[helpers.FormatDate(b.Date)]++
	}

	points := make([]SeriesPoint, 0, days)
	start := end.AddDate(0, 0, -(days - 1))
	for d := 0; d < days; d++ {
		day := start.AddDate(0, 0, d)
		points = append(points, SeriesPoint{
			Date:  day,
			Count: perDay[helpers.FormatDate(day)],
		})
	}
	return points
}
