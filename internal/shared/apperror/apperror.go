// Package apperror defines the application error taxonomy shared by services
// and HTTP routers. Services return *AppError values; routers translate them
// to status codes and JSON bodies without leaking internal error text.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes an application error
type Kind int

const (
	Internal Kind = iota
	Database
	Validation
	Conflict
	Auth
	NotFound
)

type AppError struct {
	Kind    Kind
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

// StatusCode maps the error kind to an HTTP status code
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusConflict
	case Auth:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func NewInternalError(message string, err error) *AppError {
	return New(Internal, message, err)
}

func NewDatabaseError(message string, err error) *AppError {
	return New(Database, message, err)
}

func NewValidationError(message string, err error) *AppError {
	return New(Validation, message, err)
}

func NewConflictError(message string, err error) *AppError {
	return New(Conflict, message, err)
}

func NewAuthError(message string, err error) *AppError {
	return New(Auth, message, err)
}

func NewNotFoundError(message string, err error) *AppError {
	return New(NotFound, message, err)
}

func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

func IsNotFound(err error) bool { return IsKind(err, NotFound) }

func IsConflict(err error) bool { return IsKind(err, Conflict) }

func IsValidation(err error) bool { return IsKind(err, Validation) }

func IsAuth(err error) bool { return IsKind(err, Auth) }
