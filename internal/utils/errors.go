package utils

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeConfiguration     ErrorCode = "CONFIGURATION_ERROR"
	ErrorCodeValidationError   ErrorCode = "VALIDATION_ERROR"
	ErrorCodeInvalidLinkFormat ErrorCode = "INVALID_LINK_FORMAT"
	ErrorCodeUpstreamTransport ErrorCode = "UPSTREAM_TRANSPORT_ERROR"
	ErrorCodeUpstreamProtocol  ErrorCode = "UPSTREAM_PROTOCOL_ERROR"
	ErrorCodeNoSuitableFormat  ErrorCode = "NO_SUITABLE_FORMAT"
	ErrorCodeAnalysisFailed    ErrorCode = "ANALYSIS_FAILED"
	ErrorCodeDatabaseError     ErrorCode = "DATABASE_ERROR"
	ErrorCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrorCodeUnauthorized      ErrorCode = "UNAUTHORIZED"
	ErrorCodeInternalError     ErrorCode = "INTERNAL_ERROR"
)

type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	Err        error                  `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewError(code ErrorCode, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func NewErrorWithDetails(code ErrorCode, message string, statusCode int, details map[string]interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// AsAppError returns the *AppError in err's chain, or a generic internal
// error when there is none.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	internal := NewInternalError()
	internal.Err = err
	return internal
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// Common error constructors
func NewValidationError(message string, details map[string]interface{}) *AppError {
	return NewErrorWithDetails(ErrorCodeValidationError, message, http.StatusBadRequest, details)
}

func NewConfigurationError(message string) *AppError {
	return NewError(ErrorCodeConfiguration, message, http.StatusInternalServerError)
}

func NewInvalidLinkError(link string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeInvalidLinkFormat,
		"Could not extract YouTube video ID from the provided URL. Please ensure it is a valid YouTube video link.",
		http.StatusBadRequest,
		map[string]interface{}{
			"expected_format": "https://www.youtube.com/watch?v=<11-character id>",
			"provided":        link,
		},
	)
}

func NewUpstreamTransportError(service string, err error) *AppError {
	appErr := NewErrorWithDetails(
		ErrorCodeUpstreamTransport,
		fmt.Sprintf("Network error when trying to contact %s: %v", service, err),
		http.StatusBadGateway,
		map[string]interface{}{"service": service},
	)
	appErr.Err = err
	return appErr
}

// NewUpstreamProtocolError reports a non-2xx or failure body from an upstream
// service. upstreamMessage is preferred when the upstream supplied one.
func NewUpstreamProtocolError(service string, status int, upstreamMessage string) *AppError {
	message := fmt.Sprintf("%s returned an error: %d %s", service, status, http.StatusText(status))
	if upstreamMessage != "" {
		message = fmt.Sprintf("%s returned an error: %d %s: %s", service, status, http.StatusText(status), upstreamMessage)
	}
	details := map[string]interface{}{
		"service":         service,
		"upstream_status": status,
	}
	if upstreamMessage != "" {
		details["upstream_message"] = upstreamMessage
	}
	return NewErrorWithDetails(ErrorCodeUpstreamProtocol, message, http.StatusBadGateway, details)
}

func NewNoSuitableFormatError(reason string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeNoSuitableFormat,
		"Could not find a suitable download link for the requested type/quality",
		http.StatusUnprocessableEntity,
		map[string]interface{}{"reason": reason},
	)
}

func NewAnalysisError(err error) *AppError {
	appErr := NewError(
		ErrorCodeAnalysisFailed,
		fmt.Sprintf("Could not analyze the video URL: %v", err),
		http.StatusBadGateway,
	)
	appErr.Err = err
	return appErr
}

func NewDatabaseError(err error) *AppError {
	appErr := NewError(
		ErrorCodeDatabaseError,
		"Database operation failed",
		http.StatusInternalServerError,
	)
	appErr.Err = err
	return appErr
}

func NewUnauthorizedError() *AppError {
	return NewError(
		ErrorCodeUnauthorized,
		"Invalid or missing authentication",
		http.StatusUnauthorized,
	)
}

func NewRateLimitError() *AppError {
	return NewError(
		ErrorCodeRateLimitExceeded,
		"Too many requests",
		http.StatusTooManyRequests,
	)
}

func NewInternalError() *AppError {
	return NewError(
		ErrorCodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
}
