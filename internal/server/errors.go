// Package server provides the HTTP REST API over the contract registry:
// authentication, schema export, document validation, and tenant-scoped CRUD
// over validated documents.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/talentledger/contracts/internal/contract"
)

// APIError is the wire error envelope: { code, message, details? }.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrEmailAlreadyExists indicates the email is already registered.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrRecordNotFound indicates a record was not found within the caller's
// tenant. Cross-tenant access reports not-found, never forbidden, so record
// existence does not leak across the isolation boundary.
type ErrRecordNotFound struct {
	Kind string
	ID   uuid.UUID
}

func (e *ErrRecordNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// HTTPStatus returns the HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		emailExists *ErrEmailAlreadyExists
		badCreds    *ErrInvalidCredentials
		notFound    *ErrRecordNotFound
		validation  *contract.ValidationError
		unknownKind *contract.UnknownKindError
	)
	switch {
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &badCreds):
		return http.StatusUnauthorized
	case errors.As(err, &notFound), errors.As(err, &unknownKind):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// apiError converts an error to its wire envelope. Validation failures carry
// the full field error list in details so forms can render inline errors.
func apiError(err error) APIError {
	var validation *contract.ValidationError
	if errors.As(err, &validation) {
		return APIError{
			Code:    "validation_failed",
			Message: fmt.Sprintf("validation failed for %s", validation.Kind),
			Details: validation.Errors,
		}
	}

	var unknownKind *contract.UnknownKindError
	if errors.As(err, &unknownKind) {
		return APIError{Code: "unknown_kind", Message: unknownKind.Error()}
	}

	var notFound *ErrRecordNotFound
	if errors.As(err, &notFound) {
		return APIError{Code: "not_found", Message: notFound.Error()}
	}

	var emailExists *ErrEmailAlreadyExists
	if errors.As(err, &emailExists) {
		return APIError{Code: "email_exists", Message: emailExists.Error()}
	}

	var badCreds *ErrInvalidCredentials
	if errors.As(err, &badCreds) {
		return APIError{Code: "invalid_credentials", Message: badCreds.Error()}
	}

	return APIError{Code: "internal", Message: err.Error()}
}
