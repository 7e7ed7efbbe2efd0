package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/pathfinder/internal/schemas"
)

// ErrBadRequest indicates a request body that could not be decoded.
type ErrBadRequest struct {
	Cause error
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("invalid request body: %v", e.Cause)
}

func (e *ErrBadRequest) Unwrap() error {
	return e.Cause
}

// ErrValidation indicates request validation failure on a single field.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error  string               `json:"error"`
	Fields []schemas.FieldError `json:"fields,omitempty"`
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		badRequest *ErrBadRequest
		validation *ErrValidation
		schemaErr  *schemas.ValidationError
	)
	switch {
	case errors.As(err, &badRequest), errors.As(err, &validation), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// errorBody builds the response body for err. Internal errors are not echoed
// to the client.
func errorBody(err error) ErrorResponse {
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		return ErrorResponse{Error: "validation failed", Fields: schemaErr.Errors}
	}
	var validation *ErrValidation
	if errors.As(err, &validation) {
		return ErrorResponse{
			Error:  "validation failed",
			Fields: []schemas.FieldError{{Field: validation.Field, Message: validation.Message}},
		}
	}

	switch HTTPStatus(err) {
	case http.StatusBadRequest:
		return ErrorResponse{Error: err.Error()}
	case http.StatusGatewayTimeout:
		return ErrorResponse{Error: "analysis timed out"}
	default:
		return ErrorResponse{Error: "internal server error"}
	}
}
