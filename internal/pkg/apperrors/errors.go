package apperrors

import "errors"

// Error kinds surfaced by the catalog core
var (
	// ErrValidationFailed marks bad input shape or range.
	ErrValidationFailed = errors.New("validation failed")
	// ErrResourceNotFound marks a missing entity.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrUploadFailed marks a non-2xx answer from the object store.
	ErrUploadFailed = errors.New("upload failed")
	// ErrStorage marks any relational store failure.
	ErrStorage = errors.New("storage error")
	// ErrAuthFailed marks an identity provider failure.
	ErrAuthFailed = errors.New("authentication with object store failed")
)

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found")
)

// Upload validation errors
var (
	ErrNoFilesProvided     = errors.New("at least one file must be supplied")
	ErrInvalidSemester     = errors.New("invalid semester")
	ErrInvalidResourceType = errors.New("invalid resource type (must be either 0 for Notes, or 1 for Exams)")
	ErrInvalidAcademicYear = errors.New("invalid academic year")
	ErrInvalidFileName     = errors.New("invalid file name")
	ErrDuplicateFileName   = errors.New("duplicate file name")
)

// PublicMessageKey is the Details key holding a message safe to show clients
// for errors that are otherwise answered generically
const PublicMessageKey = "public"

// CustomError represents application-specific errors with additional context.
// Err is the error kind, Cause the underlying failure (if any).
type CustomError struct {
	Err     error
	Cause   error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *CustomError) Unwrap() []error {
	var errs []error
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation error with a client facing message
func NewValidationError(message string) *CustomError {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewValidationErrorWithCause creates a validation error carrying a client facing
// message and the specific sentinel it stems from
func NewValidationErrorWithCause(message string, cause error) *CustomError {
	return &CustomError{Err: ErrValidationFailed, Cause: cause, Message: message}
}

// NewCourseNotFoundError creates a not found error for a course id
func NewCourseNotFoundError(courseID string) *CustomError {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Cause:   ErrCourseNotFound,
		Message: "Course with id " + courseID + " not found",
	}
}

// NewStorageError wraps a relational store failure
func NewStorageError(message string, cause error) *CustomError {
	return &CustomError{Err: ErrStorage, Cause: cause, Message: joinMessage(message, cause)}
}

// NewUploadError wraps an object store rejection
func NewUploadError(message string, cause error) *CustomError {
	return &CustomError{Err: ErrUploadFailed, Cause: cause, Message: joinMessage(message, cause)}
}

// NewAuthError wraps an identity provider failure
func NewAuthError(cause error) *CustomError {
	return &CustomError{Err: ErrAuthFailed, Cause: cause, Message: joinMessage(ErrAuthFailed.Error(), cause)}
}

// Is returns whether err matches target or any of errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

func joinMessage(message string, cause error) string {
	if cause == nil {
		return message
	}
	if message == "" {
		return cause.Error()
	}
	return message + ": " + cause.Error()
}
