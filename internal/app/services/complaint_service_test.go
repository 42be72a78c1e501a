package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/app/models/dto"
	"github.com/messmate/messmate/internal/pkg/apperrors"
)

type fakeComplaintStore struct {
	rows   map[int64]*models.Complaint
	nextID int64
}

func newFakeComplaintStore() *fakeComplaintStore {
	return &fakeComplaintStore{rows: make(map[int64]*models.Complaint)}
}

func (f *fakeComplaintStore) Create(_ context.Context, complaint *models.Complaint) (int64, error) {
	f.nextID++
	complaint.ID = f.nextID
	complaint.CreatedAt = time.Now()
	complaint.UpdatedAt = complaint.CreatedAt
	f.rows[complaint.ID] = complaint
	return complaint.ID, nil
}

func (f *fakeComplaintStore) GetAll(_ context.Context) ([]*models.Complaint, error) {
	out := make([]*models.Complaint, 0, len(f.rows))
	for _, c := range f.rows {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeComplaintStore) GetByStudentID(_ context.Context, studentID int64) ([]*models.Complaint, error) {
	var out []*models.Complaint
	for _, c := range f.rows {
		if c.StudentID != nil && *c.StudentID == studentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeComplaintStore) UpdateStatus(_ context.Context, id int64, status models.ComplaintStatus) (*models.Complaint, error) {
	complaint, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrComplaintNotFound
	}
	complaint.Status = status
	return complaint, nil
}

func TestComplaintSubmit_AlwaysStartsPending(t *testing.T) {
	svc := NewComplaintService(newFakeComplaintStore())

	complaint, err := svc.Submit(context.Background(), &dto.ComplaintRequest{
		Name: "Asha", Email: "asha@example.com", Subject: "Cold food", Message: "Dinner was cold",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, complaint.Status)
	assert.Nil(t, complaint.StudentID)
	assert.False(t, complaint.CreatedAt.IsZero())
	assert.False(t, complaint.UpdatedAt.IsZero())
}

func TestComplaintSubmit_KeepsStudentReference(t *testing.T) {
	svc := NewComplaintService(newFakeComplaintStore())
	studentID := int64(12)

	complaint, err := svc.Submit(context.Background(), &dto.ComplaintRequest{
		StudentID: &studentID,
		Name:      "Asha", Email: "asha@example.com", Subject: "s", Message: "m",
	})
	require.NoError(t, err)

	require.NotNil(t, complaint.StudentID)
	assert.Equal(t, int64(12), *complaint.StudentID)
}

func TestComplaintUpdateStatus_AcceptsClosedEnum(t *testing.T) {
	store := newFakeComplaintStore()
	svc := NewComplaintService(store)

	filed, err := svc.Submit(context.Background(), &dto.ComplaintRequest{
		Name: "Asha", Email: "asha@example.com", Subject: "s", Message: "m",
	})
	require.NoError(t, err)

	for _, status := range models.AllComplaintStatuses {
		updated, err := svc.UpdateStatus(context.Background(), filed.ID, string(status))
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestComplaintUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	store := newFakeComplaintStore()
	svc := NewComplaintService(store)

	filed, err := svc.Submit(context.Background(), &dto.ComplaintRequest{
		Name: "Asha", Email: "asha@example.com", Subject: "s", Message: "m",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), filed.ID, "Closed")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	assert.Equal(t, models.StatusPending, store.rows[filed.ID].Status, "store must not be touched")
}

func TestComplaintUpdateStatus_NotFound(t *testing.T) {
	svc := NewComplaintService(newFakeComplaintStore())

	_, err := svc.UpdateStatus(context.Background(), 99, string(models.StatusResolved))
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
}

func TestComplaintListByStudent_InvalidID(t *testing.T) {
	svc := NewComplaintService(newFakeComplaintStore())

	_, err := svc.ListByStudent(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
