package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/pkg/apperrors"
	"github.com/messmate/messmate/internal/pkg/dberrors"
	"github.com/messmate/messmate/internal/pkg/logger"
)

// FeedbackRepository handles feedback database operations. Rows are
// immutable once written.
type FeedbackRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeedbackRepository creates a new FeedbackRepository.
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new feedback entry.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) (int64, error) {
	sql, args, err := r.sb.Insert("feedbacks").
		Columns("name", "email", "rating", "feedback").
		Values(feedback.Name, feedback.Email, feedback.Rating, feedback.Feedback).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create feedback query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		if dberrors.IsCheckViolation(err) {
			return 0, apperrors.ErrInvalidRating
		}
		logger.Error().Err(err).Msg("Error executing create feedback query")
		return 0, fmt.Errorf("error creating feedback: %w", err)
	}

	return feedback.ID, nil
}

// GetAll retrieves all feedback entries, newest first.
func (r *FeedbackRepository) GetAll(ctx context.Context) ([]*models.Feedback, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "rating", "feedback", "created_at").
		From("feedbacks").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all feedbacks query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all feedbacks query")
		return nil, fmt.Errorf("error querying feedbacks: %w", err)
	}
	defer rows.Close()

	feedbacks := []*models.Feedback{}
	for rows.Next() {
		feedback := &models.Feedback{}
		if err := rows.Scan(&feedback.ID, &feedback.Name, &feedback.Email, &feedback.Rating, &feedback.Feedback, &feedback.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning feedback row: %w", err)
		}
		feedbacks = append(feedbacks, feedback)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}

	return feedbacks, nil
}
