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

// fakeRosterStore mirrors the schema's referential actions: deleting a
// student removes that student's bookings and nulls the student_id on
// that student's complaints, leaving every other row untouched.
type fakeRosterStore struct {
	students   map[int64]*models.Student
	bookings   []*models.Booking
	complaints []*models.Complaint
}

func newFakeRosterStore() *fakeRosterStore {
	return &fakeRosterStore{students: make(map[int64]*models.Student)}
}

func (f *fakeRosterStore) GetAll(_ context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(f.students))
	for _, s := range f.students {
		if s.Role == models.RoleStudent {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRosterStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)

	kept := f.bookings[:0]
	for _, b := range f.bookings {
		if b.StudentID != id {
			kept = append(kept, b)
		}
	}
	f.bookings = kept

	for _, c := range f.complaints {
		if c.StudentID != nil && *c.StudentID == id {
			c.StudentID = nil
		}
	}
	return nil
}

func seedRoster(store *fakeRosterStore) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	ashaID, raviID := int64(1), int64(2)

	store.students[ashaID] = &models.Student{ID: ashaID, Name: "Asha", Email: "asha@example.com", Role: models.RoleStudent}
	store.students[raviID] = &models.Student{ID: raviID, Name: "Ravi", Email: "ravi@example.com", Role: models.RoleStudent}
	store.bookings = []*models.Booking{
		{ID: 10, StudentID: ashaID, Date: date, Meals: []string{"Lunch"}},
		{ID: 11, StudentID: ashaID, Date: date.AddDate(0, 0, 1), Meals: []string{"Dinner"}},
		{ID: 12, StudentID: raviID, Date: date, Meals: []string{"Breakfast"}},
	}
	store.complaints = []*models.Complaint{
		{ID: 20, StudentID: &ashaID, Name: "Asha", Subject: "Cold food", Status: models.StatusPending},
		{ID: 21, StudentID: &raviID, Name: "Ravi", Subject: "Long queue", Status: models.StatusResolved},
		{ID: 22, StudentID: nil, Name: "Visitor", Subject: "Parking", Status: models.StatusPending},
	}
}

func TestStudentDelete_CascadesBookingsAndDetachesComplaints(t *testing.T) {
	store := newFakeRosterStore()
	seedRoster(store)
	svc := NewStudentService(store)

	require.NoError(t, svc.Delete(context.Background(), 1))

	_, exists := store.students[1]
	assert.False(t, exists)

	require.Len(t, store.bookings, 1, "deleted student's bookings must go with the account")
	assert.Equal(t, int64(2), store.bookings[0].StudentID)

	require.Len(t, store.complaints, 3, "complaints survive account deletion")
	byID := make(map[int64]*models.Complaint, len(store.complaints))
	for _, c := range store.complaints {
		byID[c.ID] = c
	}
	assert.Nil(t, byID[20].StudentID, "deleted student's complaint keeps its text but loses the reference")
	assert.Equal(t, "Cold food", byID[20].Subject)
	require.NotNil(t, byID[21].StudentID, "other students' complaints keep their reference")
	assert.Equal(t, int64(2), *byID[21].StudentID)
	assert.Nil(t, byID[22].StudentID)
}

func TestStudentDelete_OtherStudentUntouched(t *testing.T) {
	store := newFakeRosterStore()
	seedRoster(store)
	svc := NewStudentService(store)

	require.NoError(t, svc.Delete(context.Background(), 1))

	ravi, exists := store.students[2]
	require.True(t, exists)
	assert.Equal(t, "ravi@example.com", ravi.Email)

	remaining, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, int64(2), remaining[0].ID)
}

func TestStudentDelete_NotFound(t *testing.T) {
	store := newFakeRosterStore()
	seedRoster(store)
	svc := NewStudentService(store)

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Len(t, store.students, 2)
}

func TestStudentDelete_InvalidID(t *testing.T) {
	svc := NewStudentService(newFakeRosterStore())

	err := svc.Delete(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
