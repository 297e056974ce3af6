package errors

import (
	"net/http"
	"testing"

	"devicequote/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	err := errors.Wrap(ErrUpdateRejected.WithDetails("review 42"), "apply update")

	assert.True(t, errors.Is(err, ErrUpdateRejected))
	assert.False(t, errors.Is(err, ErrUnpriced))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
	assert.Equal(t, "review 42", appErr.Details())
}

func TestRecoveryErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrRecoveryExpired, ErrRecoveryNotFound))
	assert.NotEqual(t, ErrRecoveryExpired.HTTPCode(), ErrRecoveryNotFound.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "load dataset")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
}
