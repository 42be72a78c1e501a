package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/pkg/logger"
)

// ContactRepository handles contact message database operations. The
// table is append-only; rows are never updated or deleted.
type ContactRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new contact message.
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) (int64, error) {
	sql, args, err := r.sb.Insert("contacts").
		Columns("name", "email", "phone", "subject", "message").
		Values(contact.Name, contact.Email, contact.Phone, contact.Subject, contact.Message).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create contact query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&contact.ID, &contact.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create contact query")
		return 0, fmt.Errorf("error creating contact: %w", err)
	}

	return contact.ID, nil
}

// GetAll retrieves all contact messages, newest first.
func (r *ContactRepository) GetAll(ctx context.Context) ([]*models.Contact, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "phone", "subject", "message", "created_at").
		From("contacts").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all contacts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all contacts query")
		return nil, fmt.Errorf("error querying contacts: %w", err)
	}
	defer rows.Close()

	contacts := []*models.Contact{}
	for rows.Next() {
		contact := &models.Contact{}
		if err := rows.Scan(&contact.ID, &contact.Name, &contact.Email, &contact.Phone, &contact.Subject, &contact.Message, &contact.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning contact row: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}

	return contacts, nil
}
