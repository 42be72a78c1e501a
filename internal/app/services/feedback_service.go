package services

import (
	"context"
	"fmt"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/app/models/dto"
	"github.com/messmate/messmate/internal/pkg/apperrors"
)

type feedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) (int64, error)
	GetAll(ctx context.Context) ([]*models.Feedback, error)
}

// FeedbackService defines dining feedback operations.
type FeedbackService interface {
	Submit(ctx context.Context, req *dto.FeedbackRequest) (*models.Feedback, error)
	List(ctx context.Context) ([]*models.Feedback, error)
}

type feedbackServiceImpl struct {
	feedbacks feedbackStore
}

// NewFeedbackService creates a new feedback service instance.
func NewFeedbackService(feedbacks feedbackStore) FeedbackService {
	return &feedbackServiceImpl{feedbacks: feedbacks}
}

// Submit stores a feedback entry. Ratings outside 1-5 are rejected.
func (s *feedbackServiceImpl) Submit(ctx context.Context, req *dto.FeedbackRequest) (*models.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrInvalidRating
	}

	feedback := &models.Feedback{
		Name:     req.Name,
		Email:    req.Email,
		Rating:   req.Rating,
		Feedback: req.Feedback,
	}

	if _, err := s.feedbacks.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("error submitting feedback: %w", err)
	}
	return feedback, nil
}

// List returns all feedback entries, newest first.
func (s *feedbackServiceImpl) List(ctx context.Context) ([]*models.Feedback, error) {
	feedbacks, err := s.feedbacks.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}
	return feedbacks, nil
}
