package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/messmate/messmate/internal/app/models/dto"
	"github.com/messmate/messmate/internal/pkg/apperrors"
)

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusBadRequest},
		{"invalid date", apperrors.ErrInvalidDate, http.StatusBadRequest},
		{"invalid meal", apperrors.ErrInvalidMeal, http.StatusBadRequest},
		{"invalid status", apperrors.ErrInvalidStatus, http.StatusBadRequest},
		{"invalid rating", apperrors.ErrInvalidRating, http.StatusBadRequest},
		{"validation", apperrors.NewValidationError("bad field"), http.StatusBadRequest},
		{"student missing", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"menu missing", apperrors.ErrMenuNotFound, http.StatusNotFound},
		{"complaint missing", apperrors.ErrComplaintNotFound, http.StatusNotFound},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"invalid token", apperrors.ErrTokenInvalid, http.StatusUnauthorized},
		{"forbidden", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"unknown", errors.New("pool exhausted"), http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("context: %w", apperrors.ErrMenuNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandleAPIError_InternalDetailsNeverLeak(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Internal server error", resp.Error.Message)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestHandleAPIError_ValidationMessageSurfaces(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, apperrors.NewValidationError("name cannot be empty"))

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotNil(t, resp.Error)
	assert.Equal(t, "name cannot be empty", resp.Error.Message)
}
