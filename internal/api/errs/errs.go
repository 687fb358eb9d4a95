// Package errs provides types and support related to web error functionality.
package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrCode represents an error code in the system.
type ErrCode int

// A set of error codes the API maps onto HTTP statuses.
const (
	OK ErrCode = iota
	InvalidArgument
	NotFound
	AlreadyExists
	Internal
)

var codeNames = map[ErrCode]string{
	OK:              "ok",
	InvalidArgument: "invalid_argument",
	NotFound:        "not_found",
	AlreadyExists:   "already_exists",
	Internal:        "internal",
}

var httpStatus = map[ErrCode]int{
	OK:              http.StatusOK,
	InvalidArgument: http.StatusBadRequest,
	NotFound:        http.StatusNotFound,
	AlreadyExists:   http.StatusConflict,
	Internal:        http.StatusInternalServerError,
}

// String returns the code's snake_case name.
func (ec ErrCode) String() string {
	if name, ok := codeNames[ec]; ok {
		return name
	}
	return fmt.Sprintf("errcode(%d)", int(ec))
}

// Error represents an error in the system.
type Error struct {
	Code    ErrCode `json:"code"`
	Message string  `json:"message"`
}

// New constructs an error based on an app error.
func New(code ErrCode, err error) *Error {
	return &Error{Code: code, Message: err.Error()}
}

// Newf constructs an error based on an error format string.
func Newf(code ErrCode, format string, v ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, v...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Encode implements the web.Encoder interface.
func (e *Error) Encode() ([]byte, string, error) {
	type envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	data, err := json.Marshal(envelope{Code: e.Code.String(), Message: e.Message})
	if err != nil {
		return nil, "", err
	}
	return data, "application/json", nil
}

// HTTPStatus implements the web HTTPStatusSetter interface.
func (e *Error) HTTPStatus() int {
	if status, ok := httpStatus[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// IsError tests the concrete error is of the Error type.
func IsError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// GetError returns a copy of the Error pointer from the error interface.
func GetError(err error) *Error {
	var e *Error
	if !errors.As(err, &e) {
		return nil
	}
	return e
}
