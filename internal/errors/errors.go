package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a record does not exist or was already deleted.
	ErrNotFound = errors.New("record not found")
	// ErrNotAuthenticated is returned when an operation requires a logged in user.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotAuthorized is returned on role or ownership mismatch.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrConflict is returned when a unique field is already taken.
	ErrConflict = errors.New("username or email already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrCenterInUse is returned when deleting a hawker center that still has stalls.
	ErrCenterInUse = errors.New("hawker center still has stalls")
)

// Messages shown to users. Not-found and not-authorized share one phrasing so a
// response never confirms that a resource exists to someone who may not see it.
const (
	MsgUnavailable      = "The requested item could not be found or you do not have access to it."
	MsgLoginRequired    = "Please log in to view this resource."
	MsgInvalidLogin     = "Invalid email or password."
	MsgConflict         = "Username or email already exists."
	MsgCenterInUse      = "Cannot delete hawker center. Please remove all associated stalls first."
	MsgGenericFailure   = "Something went wrong. Please try again."
	MsgValidationFailed = "Please check the highlighted fields."
	MsgTooManyAttempts  = "Too many login attempts. Please wait a moment and try again."
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Is and As re-export the standard helpers so callers need a single errors import.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }

// HTTPError represents an HTTP error with status code. Code is a stable
// machine-readable name for the failure, used in logs.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors with user-facing messages.
// Anything unrecognised is treated as a data access failure and never echoes
// the underlying error text.
func MapErrorToHTTP(err error) *HTTPError {
	if ve, ok := IsValidation(err); ok {
		return NewHTTPError(http.StatusBadRequest, ve.Message, "VALIDATION_ERROR")
	}
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return NewHTTPError(http.StatusUnauthorized, MsgLoginRequired, "NOT_AUTHENTICATED")
	case errors.Is(err, ErrNotAuthorized):
		return NewHTTPError(http.StatusForbidden, MsgUnavailable, "NOT_AUTHORIZED")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, MsgUnavailable, "NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, MsgInvalidLogin, "INVALID_CREDENTIALS")
	case errors.Is(err, ErrConflict):
		return NewHTTPError(http.StatusConflict, MsgConflict, "CONFLICT")
	case errors.Is(err, ErrCenterInUse):
		return NewHTTPError(http.StatusConflict, MsgCenterInUse, "CENTER_IN_USE")
	default:
		return NewHTTPError(http.StatusInternalServerError, MsgGenericFailure, "INTERNAL_ERROR")
	}
}
