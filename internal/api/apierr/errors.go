package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/soccermanager/internal/model"
	"github.com/mcoot/soccermanager/internal/services/roster"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodePlayerExists     = "PLAYER_EXISTS"
	CodePlayerNotFound   = "PLAYER_NOT_FOUND"
	CodeRouteNotFound    = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError. cause, when set,
// is the model sentinel the error stands for.
type httpError struct {
	status   int
	apiError APIError
	cause    error
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// Unwrap exposes the model sentinel so callers can use errors.Is
func (e *httpError) Unwrap() error {
	return e.cause
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	if errors.Is(err, model.ErrInvalidPosition) {
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, err.Error()}, err}
	}
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}, err}
}

// FromOutcome converts a failed roster outcome to an error carrying the
// roster's own message. It returns nil for successful outcomes.
func FromOutcome(o roster.Outcome) error {
	switch o.Kind {
	case roster.OutcomeOK:
		return nil
	case roster.OutcomeInvalid:
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, o.Message}, model.ErrValidationFailed}
	case roster.OutcomeDuplicate:
		return &httpError{http.StatusConflict, APIError{CodePlayerExists, o.Message}, model.ErrPlayerExists}
	case roster.OutcomeNotFound:
		return NewNotFoundError(o.Message)
	default:
		return NewInternalError()
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}, nil}
}

// NewNotFoundError creates a player-not-found error with a specific message
func NewNotFoundError(message string) error {
	return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, message}, model.ErrPlayerNotFound}
}

// NewRouteNotFoundError is returned for paths that match no route
func NewRouteNotFoundError(path string) error {
	return &httpError{http.StatusNotFound, APIError{CodeRouteNotFound, "no route for " + path}, nil}
}

// NewMethodNotAllowedError is returned when the path exists but not for method
func NewMethodNotAllowedError(method string) error {
	return &httpError{http.StatusMethodNotAllowed, APIError{CodeMethodNotAllowed, method + " is not allowed here"}, nil}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}, nil}
}
