package utils

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeMissingParameter ErrorCode = "MISSING_PARAMETER"
	ErrorCodeInvalidParameter ErrorCode = "INVALID_PARAMETER"
	ErrorCodeInvalidURL       ErrorCode = "INVALID_URL"
	ErrorCodeStreamNotFound   ErrorCode = "STREAM_NOT_FOUND"
	ErrorCodeProviderFailure  ErrorCode = "PROVIDER_FAILURE"
)

// AppError is the single error currency between services and handlers.
// Message is what the client sees; Code and StatusCode drive logging and
// response shaping.
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Common error constructors
func NewMissingParameterError(message string) *AppError {
	return NewError(ErrorCodeMissingParameter, message, http.StatusBadRequest)
}

func NewInvalidParameterError(param, value string) *AppError {
	return NewError(
		ErrorCodeInvalidParameter,
		fmt.Sprintf("Invalid value for parameter %s: %s", param, value),
		http.StatusBadRequest,
	)
}

func NewInvalidURLError(url string) *AppError {
	return NewError(
		ErrorCodeInvalidURL,
		fmt.Sprintf("Not a recognized YouTube video URL: %s", url),
		http.StatusNotFound,
	)
}

func NewStreamNotFoundError(itag int) *AppError {
	if itag > 0 {
		return NewError(
			ErrorCodeStreamNotFound,
			fmt.Sprintf("No stream with itag %d", itag),
			http.StatusNotFound,
		)
	}
	return NewError(
		ErrorCodeStreamNotFound,
		"No suitable stream available",
		http.StatusNotFound,
	)
}

// NewProviderError passes the upstream failure message through verbatim.
// The provider's own wording is the only diagnostic the caller gets.
func NewProviderError(err error) *AppError {
	return NewError(ErrorCodeProviderFailure, err.Error(), http.StatusInternalServerError)
}
