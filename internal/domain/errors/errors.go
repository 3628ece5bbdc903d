package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrIntentUnavailable  = errors.New("payment intent unavailable")
	ErrInternal           = errors.New("internal error")
)

// Kind is the closed set of error classes the API exposes
type Kind string

const (
	KindBadRequest   Kind = "BAD_REQUEST"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindForbidden    Kind = "FORBIDDEN"
	KindNotFound     Kind = "NOT_FOUND"
	KindInternal     Kind = "INTERNAL_SERVER_ERROR"
)

// Status maps a kind to its HTTP status
func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// AppError represents an application error carrying its kind
type AppError struct {
	Kind    Kind   `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status for the error
func (e *AppError) Status() int {
	return e.Kind.Status()
}

// NewAppError creates a new app error
func NewAppError(kind Kind, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func BadRequest(message string) *AppError {
	return NewAppError(KindBadRequest, message, ErrInvalidInput)
}

func InvalidCredentials() *AppError {
	return NewAppError(KindBadRequest, "Invalid Credentials", ErrInvalidCredentials)
}

func NotFound(message string) *AppError {
	return NewAppError(KindNotFound, message, ErrNotFound)
}

func Unauthorized(message string) *AppError {
	return NewAppError(KindUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(KindForbidden, message, ErrForbidden)
}

// InternalError hides err behind a generic message; err is kept for logging
func InternalError(err error) *AppError {
	if err == nil {
		err = ErrInternal
	}
	return NewAppError(KindInternal, "internal server error", err)
}

// Internal is InternalError with a caller-facing message
func Internal(message string, err error) *AppError {
	if err == nil {
		err = ErrInternal
	}
	return NewAppError(KindInternal, message, err)
}

// Wrap classifies err: AppErrors pass through, anything else becomes an internal error
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return InternalError(err)
}

// KindOf returns the kind of err, KindInternal for unclassified errors
func KindOf(err error) Kind {
	return Wrap(err).Kind
}
