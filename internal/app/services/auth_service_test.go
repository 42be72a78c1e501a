package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/app/models/dto"
	"github.com/messmate/messmate/internal/pkg/apperrors"
	"github.com/messmate/messmate/internal/pkg/auth"
)

// fakeAccountStore keeps accounts in an email-keyed map, mirroring the
// unique constraint on the students table.
type fakeAccountStore struct {
	byEmail map[string]*models.Student
	nextID  int64
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{byEmail: make(map[string]*models.Student)}
}

func (f *fakeAccountStore) Create(_ context.Context, student *models.Student) (int64, error) {
	if _, ok := f.byEmail[student.Email]; ok {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	f.nextID++
	student.ID = f.nextID
	student.CreatedAt = time.Now()
	f.byEmail[student.Email] = student
	return student.ID, nil
}

func (f *fakeAccountStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	if student, ok := f.byEmail[email]; ok {
		return student, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func newTestAuthService(store *fakeAccountStore) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "messmate.test",
	})
	return NewAuthService(store, jwtService, zerolog.Nop())
}

func TestRegister_HashesPasswordAndDefaultsToStudentRole(t *testing.T) {
	store := newFakeAccountStore()
	svc := newTestAuthService(store)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Asha", Email: "Asha@Example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	assert.Equal(t, "asha@example.com", resp.Email, "email must be lowercased")
	assert.Equal(t, string(models.RoleStudent), resp.Role)

	stored := store.byEmail["asha@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "supersecret", stored.Password)
	assert.True(t, strings.HasPrefix(stored.Password, "$2"), "expected a bcrypt hash")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newFakeAccountStore())

	req := &dto.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "supersecret"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestAuthService(newFakeAccountStore())

	tests := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"empty name", dto.RegisterRequest{Email: "a@b.com", Password: "supersecret"}},
		{"bad email", dto.RegisterRequest{Name: "Asha", Email: "not-an-email", Password: "supersecret"}},
		{"short password", dto.RegisterRequest{Name: "Asha", Email: "a@b.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestLogin_Succeeds(t *testing.T) {
	svc := newTestAuthService(newFakeAccountStore())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "asha@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	assert.Equal(t, "asha@example.com", resp.Student.Email)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.NotEmpty(t, resp.Token.RefreshToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	svc := newTestAuthService(newFakeAccountStore())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	_, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "nobody@example.com", Password: "supersecret",
	})
	_, errWrongPass := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "asha@example.com", Password: "wrong",
	})

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestLogin_ResponseNeverCarriesHash(t *testing.T) {
	svc := newTestAuthService(newFakeAccountStore())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "asha@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	payload, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "$2", "bcrypt hash must never be serialized")
	assert.NotContains(t, strings.ToLower(string(payload)), "password")
}
