package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be identified.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is known but lacks the role for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrAllAlreadyAssigned indicates that an assignment batch produced no new links.
var ErrAllAlreadyAssigned = errors.New("all provided ids are already assigned to this project")

// ErrStoreUnavailable indicates a transient failure of the persistent store.
var ErrStoreUnavailable = errors.New("store unavailable")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationFailedError returns an AppError that matches ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewConflictError returns an AppError that matches ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

// NewForbiddenError returns an AppError that matches ErrForbidden.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

// NewStoreUnavailableError wraps a driver error so that it matches ErrStoreUnavailable.
func NewStoreUnavailableError(message string, cause error) *AppError {
	return &AppError{Code: http.StatusServiceUnavailable, Message: message, Err: errors.Join(ErrStoreUnavailable, cause)}
}

// NewAllAlreadyAssignedError returns an AppError that matches ErrAllAlreadyAssigned.
func NewAllAlreadyAssignedError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrAllAlreadyAssigned}
}
