package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorMatchesKindAndCause(t *testing.T) {
	err := NewValidationErrorWithCause("At least one file must be uploaded", ErrNoFilesProvided)

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.True(t, errors.Is(err, ErrNoFilesProvided))
	assert.False(t, errors.Is(err, ErrInvalidSemester))
	assert.Equal(t, "At least one file must be uploaded", err.Error())
}

func TestWrappedCustomErrorStillMatches(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("list courses: %w", NewStorageError("failed to count courses", cause))

	assert.True(t, errors.Is(err, ErrStorage))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "failed to count courses: connection refused")

	var custom *CustomError
	assert.True(t, errors.As(err, &custom))
}

func TestCourseNotFoundError(t *testing.T) {
	err := NewCourseNotFoundError("CS999")
	assert.True(t, Is(err, ErrStorage, ErrResourceNotFound))
	assert.True(t, errors.Is(err, ErrCourseNotFound))
	assert.Equal(t, "Course with id CS999 not found", err.Error())
}

func TestAuthErrorMessage(t *testing.T) {
	err := NewAuthError(errors.New("metadata server unreachable"))
	assert.True(t, errors.Is(err, ErrAuthFailed))
	assert.Equal(t, "authentication with object store failed: metadata server unreachable", err.Error())
}

func TestValidationErrorWithCauseKeepsMessage(t *testing.T) {
	err := NewValidationErrorWithCause("Invalid semester", ErrInvalidSemester)
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.True(t, errors.Is(err, ErrInvalidSemester))
	assert.Equal(t, "Invalid semester", err.Error())
}
