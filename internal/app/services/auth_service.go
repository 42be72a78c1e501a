package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/app/models/dto"
	"github.com/messmate/messmate/internal/pkg/apperrors"
	"github.com/messmate/messmate/internal/pkg/auth"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// studentAccountStore is the slice of the student repository the auth
// service needs.
type studentAccountStore interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
}

// AuthService defines registration and login operations.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.StudentResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authServiceImpl struct {
	students   studentAccountStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance.
func NewAuthService(students studentAccountStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		students:   students,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (s *authServiceImpl) validateRegistration(req *dto.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}
	if !emailRegex.MatchString(req.Email) {
		return apperrors.NewValidationError("invalid email format")
	}
	if len(req.Password) < 8 {
		return apperrors.NewValidationError("password must be at least 8 characters long")
	}
	return nil
}

// Register creates a new student account with a bcrypt-hashed password.
// A second registration for the same email fails with
// apperrors.ErrEmailAlreadyExists; the unique constraint on the email
// column guarantees no duplicate row even under concurrent submissions.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.StudentResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		Role:     models.RoleStudent,
	}

	if _, err := s.students.Create(ctx, student); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error registering student: %w", err)
	}

	s.logger.Info().Int64("studentID", student.ID).Msg("Student registered")

	resp := newStudentResponse(student)
	return &resp, nil
}

// Login verifies credentials and issues a token pair. The response
// carries only the public projection of the account, never the hash.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	student, err := s.students.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up account: %w", err)
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(student.ID, student.Email, string(student.Role))
	if err != nil {
		return nil, fmt.Errorf("error issuing tokens: %w", err)
	}

	s.logger.Info().Int64("studentID", student.ID).Msg("Login successful")

	return &dto.AuthResponse{
		Student: newStudentResponse(student),
		Token: dto.TokenResponse{
			AccessToken:  accessToken,
			TokenType:    "Bearer",
			ExpiresIn:    expiresIn,
			RefreshToken: refreshToken,
		},
	}, nil
}

func newStudentResponse(student *models.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:        student.ID,
		Name:      student.Name,
		Email:     student.Email,
		Role:      string(student.Role),
		CreatedAt: student.CreatedAt,
	}
}
