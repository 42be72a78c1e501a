package services

import (
	"context"
	"fmt"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/app/models/dto"
	"github.com/messmate/messmate/internal/pkg/apperrors"
)

type complaintStore interface {
	Create(ctx context.Context, complaint *models.Complaint) (int64, error)
	GetAll(ctx context.Context) ([]*models.Complaint, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Complaint, error)
	UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) (*models.Complaint, error)
}

// ComplaintService defines complaint lifecycle operations.
type ComplaintService interface {
	Submit(ctx context.Context, req *dto.ComplaintRequest) (*models.Complaint, error)
	ListAll(ctx context.Context) ([]*models.Complaint, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Complaint, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Complaint, error)
}

type complaintServiceImpl struct {
	complaints complaintStore
}

// NewComplaintService creates a new complaint service instance.
func NewComplaintService(complaints complaintStore) ComplaintService {
	return &complaintServiceImpl{complaints: complaints}
}

// Submit files a new complaint. Status always starts at Pending
// regardless of what the client sends.
func (s *complaintServiceImpl) Submit(ctx context.Context, req *dto.ComplaintRequest) (*models.Complaint, error) {
	complaint := &models.Complaint{
		StudentID: req.StudentID,
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.StatusPending,
	}

	if _, err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// ListAll returns every complaint, newest first.
func (s *complaintServiceImpl) ListAll(ctx context.Context) ([]*models.Complaint, error) {
	complaints, err := s.complaints.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving complaints: %w", err)
	}
	return complaints, nil
}

// ListByStudent returns one student's complaints, newest first.
func (s *complaintServiceImpl) ListByStudent(ctx context.Context, studentID int64) ([]*models.Complaint, error) {
	if studentID <= 0 {
		return nil, apperrors.NewValidationError("studentId must be positive")
	}

	complaints, err := s.complaints.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student complaints: %w", err)
	}
	return complaints, nil
}

// UpdateStatus moves a complaint through its workflow. Only the closed
// set {Pending, In Progress, Resolved} is accepted; arbitrary strings
// are rejected before touching the store.
func (s *complaintServiceImpl) UpdateStatus(ctx context.Context, id int64, status string) (*models.Complaint, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid complaint ID")
	}
	if !models.IsValidComplaintStatus(status) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, status)
	}

	complaint, err := s.complaints.UpdateStatus(ctx, id, models.ComplaintStatus(status))
	if err != nil {
		return nil, err
	}
	return complaint, nil
}
