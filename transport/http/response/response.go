package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error  *string           `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message and, for rejected
// input, the message of every failing field
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, code, Error{Error: &errMsg, Fields: failure.GetFields(err)})
}

// WithFile sends a binary attachment
func WithFile(writer http.ResponseWriter, name, contentType string, content []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.Header().Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	writer.Header().Set(constant.RequestHeaderContentLength, strconv.Itoa(len(content)))
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(content); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
