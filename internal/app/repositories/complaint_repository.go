package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/pkg/apperrors"
	"github.com/messmate/messmate/internal/pkg/dberrors"
	"github.com/messmate/messmate/internal/pkg/helpers"
	"github.com/messmate/messmate/internal/pkg/logger"
)

// ComplaintRepository handles complaint database operations. Complaints
// are never deleted; student deletion nulls the reference via the schema.
type ComplaintRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewComplaintRepository creates a new ComplaintRepository.
func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const complaintColumns = "id, student_id, name, email, subject, message, status, created_at, updated_at"

func scanComplaint(row interface{ Scan(dest ...any) error }) (*models.Complaint, error) {
	complaint := &models.Complaint{}
	var studentID sql.NullInt64
	err := row.Scan(
		&complaint.ID, &studentID, &complaint.Name, &complaint.Email,
		&complaint.Subject, &complaint.Message, &complaint.Status,
		&complaint.CreatedAt, &complaint.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	complaint.StudentID = helpers.Int64Ptr(studentID)
	return complaint, nil
}

// Create inserts a new complaint with status Pending.
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) (int64, error) {
	sql, args, err := r.sb.Insert("complaints").
		Columns("student_id", "name", "email", "subject", "message", "status").
		Values(helpers.NullInt64(complaint.StudentID), complaint.Name, complaint.Email,
			complaint.Subject, complaint.Message, models.StatusPending).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create complaint query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&complaint.ID, &complaint.CreatedAt, &complaint.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error executing create complaint query")
		return 0, fmt.Errorf("error creating complaint: %w", err)
	}

	complaint.Status = models.StatusPending
	return complaint.ID, nil
}

// GetAll retrieves all complaints, newest first.
func (r *ComplaintRepository) GetAll(ctx context.Context) ([]*models.Complaint, error) {
	sql, args, err := r.sb.Select(complaintColumns).
		From("complaints").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all complaints query: %w", err)
	}

	return r.queryComplaints(ctx, sql, args)
}

// GetByStudentID retrieves one student's complaints, newest first.
func (r *ComplaintRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Complaint, error) {
	sql, args, err := r.sb.Select(complaintColumns).
		From("complaints").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student complaints query: %w", err)
	}

	return r.queryComplaints(ctx, sql, args)
}

// UpdateStatus moves a complaint to the given workflow status and
// returns the updated row.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) (*models.Complaint, error) {
	sql, args, err := r.sb.Update("complaints").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + complaintColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update complaint query: %w", err)
	}

	complaint, err := scanComplaint(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrComplaintNotFound
		}
		if dberrors.IsCheckViolation(err) {
			return nil, apperrors.ErrInvalidStatus
		}
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error executing update complaint query")
		return nil, fmt.Errorf("error updating complaint status: %w", err)
	}

	return complaint, nil
}

func (r *ComplaintRepository) queryComplaints(ctx context.Context, sql string, args []interface{}) ([]*models.Complaint, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing complaints query")
		return nil, fmt.Errorf("error querying complaints: %w", err)
	}
	defer rows.Close()

	complaints := []*models.Complaint{}
	for rows.Next() {
		complaint, err := scanComplaint(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning complaint row: %w", err)
		}
		complaints = append(complaints, complaint)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaint rows: %w", err)
	}

	return complaints, nil
}
