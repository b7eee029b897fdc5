package services

import (
	"context"
	"net/http"

	"github.com/YeshwantRaoB/organizon-web/common/logger"

	"go.uber.org/zap"
)

// ServiceError represents a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
	Details    interface{}
}

func (e *ServiceError) Error() string {
	return e.Message
}

func badRequest(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: msg}
}

func notFound(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Message: msg}
}

func conflict(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusConflict, Message: msg}
}

// internal logs err with the request id and hides it behind msg.
func internal(ctx context.Context, msg string, err error, fields ...zap.Field) *ServiceError {
	logger.Error(ctx, msg, err, fields...)
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: msg}
}
