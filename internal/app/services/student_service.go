package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/pkg/apperrors"
)

type studentStore interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

// StudentService defines admin-side student roster operations.
type StudentService interface {
	List(ctx context.Context) ([]*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

type studentServiceImpl struct {
	students studentStore
}

// NewStudentService creates a new student service instance.
func NewStudentService(students studentStore) StudentService {
	return &studentServiceImpl{students: students}
}

// List returns all student accounts. The repository never selects the
// hash column for this projection.
func (s *studentServiceImpl) List(ctx context.Context) ([]*models.Student, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// Delete removes a student. The schema cascades to the student's
// bookings and nulls the student reference on their complaints.
func (s *studentServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid student ID")
	}

	if err := s.students.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
