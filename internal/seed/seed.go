// Package seed creates the default records the application needs on a
// fresh database.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/app/repositories"
	"github.com/messmate/messmate/internal/config"
	"github.com/messmate/messmate/internal/pkg/apperrors"
	"github.com/messmate/messmate/internal/pkg/auth"
)

// CreateDefaultAdmin ensures a mess administrator account exists. The
// credentials come from configuration; when no admin password is set the
// seed is skipped so no account with a known password is created.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Password == "" {
		lgr.Warn().Msg("No admin password configured, skipping default admin seed")
		return nil
	}

	studentRepo := repositories.NewStudentRepository(dbPool)

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.Student{
		Name:     "Mess Administrator",
		Email:    cfg.Admin.Email,
		Password: hash,
		Role:     models.RoleAdmin,
	}

	_, err = studentRepo.Create(ctx, admin)
	if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		lgr.Info().Str("email", cfg.Admin.Email).Msg("Default admin already exists")
		return nil
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin")
		return err
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Default admin created")
	return nil
}
