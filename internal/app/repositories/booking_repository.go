package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/pkg/apperrors"
	"github.com/messmate/messmate/internal/pkg/dberrors"
	"github.com/messmate/messmate/internal/pkg/logger"
)

// BookingRepository handles booking database operations. The
// (student_id, date) pair carries a unique constraint.
type BookingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBookingRepository creates a new BookingRepository.
func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert inserts a booking for (booking.StudentID, booking.Date) or
// overwrites the meals of the existing row. Single atomic statement
// against the unique pair index; concurrent upserts for the same pair
// collapse into one row with the latest meals.
func (r *BookingRepository) Upsert(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	sql, args, err := r.sb.Insert("bookings").
		Columns("student_id", "date", "meals").
		Values(booking.StudentID, booking.Date, booking.Meals).
		Suffix(`ON CONFLICT (student_id, date) DO UPDATE SET
			meals = EXCLUDED.meals,
			updated_at = NOW()
			RETURNING id, student_id, date, meals, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build upsert booking query: %w", err)
	}

	result := &models.Booking{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&result.ID, &result.StudentID, &result.Date, &result.Meals,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", booking.StudentID).Time("date", booking.Date).Msg("Error executing upsert booking query")
		return nil, fmt.Errorf("error upserting booking: %w", err)
	}

	return result, nil
}

// GetByDate retrieves every booking for one calendar date with the
// student projection populated for the admin's daily roster.
func (r *BookingRepository) GetByDate(ctx context.Context, date time.Time) ([]*models.Booking, error) {
	sql, args, err := r.sb.Select(
		"b.id", "b.student_id", "b.date", "b.meals", "b.created_at", "b.updated_at",
		"s.id", "s.name", "s.email", "s.created_at",
	).
		From("bookings b").
		Join("students s ON s.id = b.student_id").
		Where(squirrel.Eq{"b.date": date}).
		OrderBy("s.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build daily bookings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Time("date", date).Msg("Error executing daily bookings query")
		return nil, fmt.Errorf("error querying daily bookings: %w", err)
	}
	defer rows.Close()

	bookings := []*models.Booking{}
	for rows.Next() {
		booking := &models.Booking{Student: &models.Student{}}
		if err := rows.Scan(
			&booking.ID, &booking.StudentID, &booking.Date, &booking.Meals,
			&booking.CreatedAt, &booking.UpdatedAt,
			&booking.Student.ID, &booking.Student.Name, &booking.Student.Email, &booking.Student.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

// GetByStudentID retrieves a student's bookings, most recent date first.
func (r *BookingRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Booking, error) {
	sql, args, err := r.sb.Select("id", "student_id", "date", "meals", "created_at", "updated_at").
		From("bookings").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student bookings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing student bookings query")
		return nil, fmt.Errorf("error querying student bookings: %w", err)
	}
	defer rows.Close()

	bookings := []*models.Booking{}
	for rows.Next() {
		booking := &models.Booking{}
		if err := rows.Scan(&booking.ID, &booking.StudentID, &booking.Date, &booking.Meals, &booking.CreatedAt, &booking.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

// GetByDateRange retrieves bookings whose date falls in [from, to],
// feeding the day-over-day series reduction.
func (r *BookingRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*models.Booking, error) {
	sql, args, err := r.sb.Select("id", "student_id", "date", "meals", "created_at", "updated_at").
		From("bookings").
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build bookings range query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing bookings range query")
		return nil, fmt.Errorf("error querying bookings range: %w", err)
	}
	defer rows.Close()

	bookings := []*models.Booking{}
	for rows.Next() {
		booking := &models.Booking{}
		if err := rows.Scan(&booking.ID, &booking.StudentID, &booking.Date, &booking.Meals, &booking.CreatedAt, &booking.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}
