package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var MissingIDError = &Failure{Code: http.StatusBadRequest, Message: "record id is not defined"}
var OperationInProgressError = &Failure{Code: http.StatusConflict, Message: "another request is still in progress"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Invalid returns a bad request Failure that names every rejected field.
func Invalid(msg string, fields map[string]string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Fields:  fields,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// ServiceUnavailable returns a new Failure for an unreachable external collaborator.
func ServiceUnavailable(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusServiceUnavailable,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetFields returns the rejected fields carried by err, if any.
func GetFields(err error) map[string]string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Fields
	}

	return nil
}

// IsClientError reports whether err carries a 4xx code.
func IsClientError(err error) bool {
	code := GetCode(err)

	return code >= http.StatusBadRequest && code < http.StatusInternalServerError
}
