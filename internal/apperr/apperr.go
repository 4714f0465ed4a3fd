package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Stable error codes returned to clients.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeAIFormat     = "AI_FORMAT_ERROR"
	CodeAICurriculum = "AI_CURRICULUM_ERROR"
	CodeAITransport  = "AI_TRANSPORT_ERROR"
	CodeInvalidState = "INVALID_STATE"
	CodeInternal     = "INTERNAL_ERROR"
)

// Error carries an HTTP status, a stable code, and a user-presentable
// message. The wrapped error is for logs only and never reaches clients.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func Validation(message string) *Error {
	return New(http.StatusBadRequest, CodeValidation, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, CodeNotFound, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusForbidden, CodeUnauthorized, message)
}

func InvalidState(message string) *Error {
	return New(http.StatusConflict, CodeInvalidState, message)
}

func AIFormat(message string, err error) *Error {
	return &Error{Status: http.StatusBadGateway, Code: CodeAIFormat, Message: message, Err: err}
}

func AICurriculum(message string) *Error {
	return New(http.StatusBadGateway, CodeAICurriculum, message)
}

func AITransport(err error) *Error {
	return &Error{Status: http.StatusServiceUnavailable, Code: CodeAITransport, Message: "AI service is unavailable, please try again", Err: err}
}

func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: CodeInternal, Message: "something went wrong", Err: err}
}

// From extracts an *Error from err, wrapping anything else as internal.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code string) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == code
}
