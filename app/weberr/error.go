package weberr

import (
	"errors"
	"net/http"
)

type ErrorResponse struct {
	Error  string                 `json:"error"`
	Fields map[string]interface{} `json:"fields,omitempty"`
}

// RequestError carries the status and body a handler failure is rendered with.
type RequestError struct {
	Err    error
	Status int
	Body   *ErrorResponse
}

func (e *RequestError) Error() string { return e.Err.Error() }

func (e *RequestError) Unwrap() error { return e.Err }

// NewError wraps err for rendering. Field details found anywhere in the chain
// are copied into the body.
func NewError(err error, msg string, status int) error {
	body := &ErrorResponse{Error: msg}
	if f, ok := Fields(err); ok {
		body.Fields = f
	}
	return &RequestError{Err: err, Status: status, Body: body}
}

// Response finds the outermost RequestError in err's chain.
func Response(err error) (*ErrorResponse, int, bool) {
	var re *RequestError
	if !errors.As(err, &re) {
		return nil, 0, false
	}
	return re.Body, re.Status, true
}

type fielder interface {
	Fields() map[string]interface{}
}

func Fields(err error) (map[string]interface{}, bool) {
	var fe fielder
	if errors.As(err, &fe) {
		return fe.Fields(), true
	}
	return nil, false
}

// NotFound reports the wrapped error's message, e.g. "product not found".
func NotFound(err error) error {
	return NewError(err, err.Error(), http.StatusNotFound)
}

func BadRequest(err error) error {
	return NewError(err, err.Error(), http.StatusBadRequest)
}

func InternalError(err error) error {
	return NewError(
		err,
		"the server encountered a problem and could not process your request",
		http.StatusInternalServerError,
	)
}

func TooManyRequests(err error) error {
	return NewError(err, "rate limit exceeded", http.StatusTooManyRequests)
}
