package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/pkg/apperrors"
	"github.com/messmate/messmate/internal/pkg/logger"
)

// MenuRepository handles menu database operations. The date column carries
// a unique constraint, so one row exists per calendar date.
type MenuRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMenuRepository creates a new MenuRepository.
func NewMenuRepository(db *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert inserts the menu for menu.Date or overwrites the existing row.
// The write is a single INSERT .. ON CONFLICT statement against the
// unique date index, so concurrent upserts for the same date cannot
// produce two rows; the last writer wins.
func (r *MenuRepository) Upsert(ctx context.Context, menu *models.Menu) (*models.Menu, error) {
	sql, args, err := r.sb.Insert("menus").
		Columns("date", "breakfast", "lunch", "dinner").
		Values(menu.Date, menu.Breakfast, menu.Lunch, menu.Dinner).
		Suffix(`ON CONFLICT (date) DO UPDATE SET
			breakfast = EXCLUDED.breakfast,
			lunch = EXCLUDED.lunch,
			dinner = EXCLUDED.dinner
			RETURNING id, date, breakfast, lunch, dinner`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build upsert menu query: %w", err)
	}

	result := &models.Menu{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&result.ID, &result.Date, &result.Breakfast, &result.Lunch, &result.Dinner,
	)
	if err != nil {
		logger.Error().Err(err).Time("date", menu.Date).Msg("Error executing upsert menu query")
		return nil, fmt.Errorf("error upserting menu: %w", err)
	}

	return result, nil
}

// GetByDate retrieves the menu for a day-granularity date.
func (r *MenuRepository) GetByDate(ctx context.Context, date time.Time) (*models.Menu, error) {
	sql, args, err := r.sb.Select("id", "date", "breakfast", "lunch", "dinner").
		From("menus").
		Where(squirrel.Eq{"date": date}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get menu query: %w", err)
	}

	menu := &models.Menu{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&menu.ID, &menu.Date, &menu.Breakfast, &menu.Lunch, &menu.Dinner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMenuNotFound
		}
		logger.Error().Err(err).Time("date", date).Msg("Error scanning menu row")
		return nil, fmt.Errorf("error getting menu by date: %w", err)
	}

	return menu, nil
}
