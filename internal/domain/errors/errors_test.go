package errors

import (
	"net/http"
	"testing"

	"estatex/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesDerivedCopies(t *testing.T) {
	derived := ErrValidationFailed.WithMessage("deposit is required for rental properties")

	assert.True(t, errors.Is(derived, ErrValidationFailed))
	assert.True(t, errors.Is(ErrValidationFailed.WithDetails("x"), ErrValidationFailed))
	assert.False(t, errors.Is(derived, ErrUnauthorized))
	assert.Equal(t, "deposit is required for rental properties", derived.Message())
	assert.Equal(t, http.StatusBadRequest, derived.HTTPCode())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrSubscriptionRequired.WrapMessage("gate")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "Access denied: Active subscription required", appErr.Message())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "list properties")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.True(t, errors.Is(err, cause))
}
