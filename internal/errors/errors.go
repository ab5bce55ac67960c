package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrJobNotFound is returned when the referenced job id is absent from storage.
	ErrJobNotFound = errors.New("Job not found")
	// ErrMissingRequiredFields is returned when a create request omits a required field.
	ErrMissingRequiredFields = errors.New("title, company and location are required")
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError pairs a domain error message with an HTTP status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors
// surface as a 500 with a generic message.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrJobNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrMissingRequiredFields):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
