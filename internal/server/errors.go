// Package server provides the HTTP JSON API for the scoring engine.
package server

import (
	"fmt"
	"net/http"
)

// ErrMissingField indicates a required request field was omitted. This
// is the InvalidInput class: it is rejected at the boundary and never
// silently defaulted.
type ErrMissingField struct {
	Field string
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// ErrInvalidBody indicates the request body was not valid JSON or did
// not conform to the request schema.
type ErrInvalidBody struct {
	Reason string
}

func (e *ErrInvalidBody) Error() string {
	return fmt.Sprintf("invalid request body: %s", e.Reason)
}

// HTTPStatus maps an error to its response status code.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrMissingField, *ErrInvalidBody:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
