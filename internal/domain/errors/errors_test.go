package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	withDetails := ErrAlreadyCompleted.WithDetails("chore 42")

	assert.True(t, errors.Is(withDetails, ErrAlreadyCompleted))
	assert.True(t, errors.Is(errors.Wrap(withDetails, "complete chore"), ErrAlreadyCompleted))
	assert.False(t, errors.Is(withDetails, ErrAlreadyProcessed))
	assert.Equal(t, "chore 42", withDetails.Details())
}

func TestBaseError_HTTPCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *BaseError
		want int
	}{
		{"permission denied", ErrPermissionDenied, http.StatusForbidden},
		{"already completed", ErrAlreadyCompleted, http.StatusConflict},
		{"already processed", ErrAlreadyProcessed, http.StatusConflict},
		{"insufficient points", ErrInsufficientPoints, http.StatusUnprocessableEntity},
		{"chore not found", ErrChoreNotFound, http.StatusNotFound},
		{"validation", ErrValidationFailed, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPCode())
		})
	}
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert chore")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
