package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/app/models/dto"
	"github.com/messmate/messmate/internal/pkg/apperrors"
)

// fakeBookingStore upserts into a (student, date)-keyed map, mirroring
// the unique index on the bookings table.
type fakeBookingStore struct {
	rows   map[string]*models.Booking
	nextID int64
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{rows: make(map[string]*models.Booking)}
}

func bookingKey(studentID int64, date time.Time) string {
	return fmt.Sprintf("%d|%s", studentID, date.Format("2006-01-02"))
}

func (f *fakeBookingStore) Upsert(_ context.Context, booking *models.Booking) (*models.Booking, error) {
	key := bookingKey(booking.StudentID, booking.Date)
	if existing, ok := f.rows[key]; ok {
		existing.Meals = booking.Meals
		return existing, nil
	}
	f.nextID++
	booking.ID = f.nextID
	f.rows[key] = booking
	return booking, nil
}

func (f *fakeBookingStore) GetByDate(_ context.Context, date time.Time) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range f.rows {
		if b.Date.Equal(date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) GetByStudentID(_ context.Context, studentID int64) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range f.rows {
		if b.StudentID == studentID {
			out = append(out, b)
		}
	}
	return out, nil
}

func TestBookingUpsert_LatestSubmissionWins(t *testing.T) {
	store := newFakeBookingStore()
	svc := NewBookingService(store)

	first, err := svc.Upsert(context.Background(), &dto.UpsertBookingRequest{
		StudentID: 7, Date: "2024-05-01", Meals: []string{"Breakfast", "Lunch", "Dinner"},
	})
	require.NoError(t, err)

	second, err := svc.Upsert(context.Background(), &dto.UpsertBookingRequest{
		StudentID: 7, Date: "2024-05-01", Meals: []string{"Dinner"},
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, []string{"Dinner"}, second.Meals)
	assert.Len(t, store.rows, 1)
}

func TestBookingUpsert_EmptyMealsClearsBooking(t *testing.T) {
	store := newFakeBookingStore()
	svc := NewBookingService(store)

	_, err := svc.Upsert(context.Background(), &dto.UpsertBookingRequest{
		StudentID: 7, Date: "2024-05-01", Meals: []string{"Lunch"},
	})
	require.NoError(t, err)

	booking, err := svc.Upsert(context.Background(), &dto.UpsertBookingRequest{
		StudentID: 7, Date: "2024-05-01", Meals: nil,
	})
	require.NoError(t, err)

	assert.Empty(t, booking.Meals)
}

func TestBookingUpsert_SeparateRowsPerStudentAndDate(t *testing.T) {
	store := newFakeBookingStore()
	svc := NewBookingService(store)

	for _, req := range []*dto.UpsertBookingRequest{
		{StudentID: 1, Date: "2024-05-01", Meals: []string{"Lunch"}},
		{StudentID: 2, Date: "2024-05-01", Meals: []string{"Lunch"}},
		{StudentID: 1, Date: "2024-05-02", Meals: []string{"Lunch"}},
	} {
		_, err := svc.Upsert(context.Background(), req)
		require.NoError(t, err)
	}

	assert.Len(t, store.rows, 3)
}

func TestBookingUpsert_RejectsUnknownMeal(t *testing.T) {
	svc := NewBookingService(newFakeBookingStore())

	_, err := svc.Upsert(context.Background(), &dto.UpsertBookingRequest{
		StudentID: 7, Date: "2024-05-01", Meals: []string{"Brunch"},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidMeal)
}

func TestBookingUpsert_DeduplicatesMeals(t *testing.T) {
	svc := NewBookingService(newFakeBookingStore())

	booking, err := svc.Upsert(context.Background(), &dto.UpsertBookingRequest{
		StudentID: 7, Date: "2024-05-01", Meals: []string{"Lunch", "Lunch", "Breakfast"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Lunch", "Breakfast"}, booking.Meals)
}

func TestBookingUpsert_InvalidInput(t *testing.T) {
	svc := NewBookingService(newFakeBookingStore())

	_, err := svc.Upsert(context.Background(), &dto.UpsertBookingRequest{
		StudentID: 0, Date: "2024-05-01",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Upsert(context.Background(), &dto.UpsertBookingRequest{
		StudentID: 7, Date: "yesterday",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
}

func TestBookingListByStudent_InvalidID(t *testing.T) {
	svc := NewBookingService(newFakeBookingStore())

	_, err := svc.ListByStudent(context.Background(), -1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
