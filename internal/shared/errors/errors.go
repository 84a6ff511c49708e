package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error types for different domains
type ErrorType string

const (
	ErrorTypeValidation         ErrorType = "VALIDATION_ERROR"
	ErrorTypeInvalidCredentials ErrorType = "INVALID_CREDENTIALS"
	ErrorTypeUnauthenticated    ErrorType = "UNAUTHENTICATED"
	ErrorTypeGeneration         ErrorType = "GENERATION_FAILED"
	ErrorTypeInternal           ErrorType = "INTERNAL_ERROR"
)

// Messages shown to clients. Authentication failures never reveal which check failed.
const (
	MessageInvalidCredentials = "Incorrect username or password"
	MessageUnauthenticated    = "Could not validate credentials"
	MessageInvalidBody        = "Invalid request body"
	MessageInternal           = "Internal Server Error"
)

// Common application errors
var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrGenerationFailed   = errors.New("generation failed")
)

// AppError represents a custom application error with context
type AppError struct {
	Type     ErrorType `json:"type"`
	Message  string    `json:"message"`
	HTTPCode int       `json:"-"`
	Cause    error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new application error
func NewAppError(errorType ErrorType, message string, httpCode int) *AppError {
	return &AppError{
		Type:     errorType,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// WithCause adds the underlying cause
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// Common error constructors

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return NewAppError(ErrorTypeValidation, message, http.StatusBadRequest)
}

// NewInvalidCredentialsError is returned by login for any credential failure
func NewInvalidCredentialsError() *AppError {
	return NewAppError(ErrorTypeInvalidCredentials, MessageInvalidCredentials, http.StatusUnauthorized).
		WithCause(ErrInvalidCredentials)
}

// NewUnauthenticatedError is returned by protected endpoints for absent, invalid or unknown sessions
func NewUnauthenticatedError() *AppError {
	return NewAppError(ErrorTypeUnauthenticated, MessageUnauthenticated, http.StatusUnauthorized).
		WithCause(ErrUnauthenticated)
}

// NewGenerationError wraps an upstream text-generation failure. The upstream text is
// part of the client-visible message.
func NewGenerationError(operation string, cause error) *AppError {
	message := fmt.Sprintf("Error generating %s: %v", operation, cause)
	return NewAppError(ErrorTypeGeneration, message, http.StatusInternalServerError).
		WithCause(fmt.Errorf("%w: %w", ErrGenerationFailed, cause))
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *AppError {
	return NewAppError(ErrorTypeInternal, message, http.StatusInternalServerError)
}

// IsAuthentication checks if an error is an authentication error
func IsAuthentication(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == ErrorTypeUnauthenticated || appErr.Type == ErrorTypeInvalidCredentials
	}
	return errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrInvalidCredentials)
}

// IsGeneration checks if an error is a text-generation failure
func IsGeneration(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == ErrorTypeGeneration
	}
	return errors.Is(err, ErrGenerationFailed)
}

// HTTPStatus returns the status code an error should be rendered with
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.HTTPCode != 0 {
		return appErr.HTTPCode
	}
	return http.StatusInternalServerError
}
