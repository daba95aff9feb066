package quote

import (
	"fmt"
	"net/http"
)

// Code is a stable, machine-readable error identifier returned to clients.
type Code string

const (
	CodeAPIKeyMissing       Code = "API_KEY_MISSING"
	CodeSymbolRequired      Code = "SYMBOL_REQUIRED"
	CodeInvalidSymbolFormat Code = "INVALID_SYMBOL_FORMAT"
	CodeRateLimitExceeded   Code = "RATE_LIMIT_EXCEEDED"
	CodeAPIInformation      Code = "API_INFORMATION"
	CodeSymbolNotFound      Code = "SYMBOL_NOT_FOUND"
	CodeRateLimitNote       Code = "RATE_LIMIT_NOTE"
	CodeInvalidAPIResponse  Code = "INVALID_API_RESPONSE"
	CodeNoTimeSeriesData    Code = "NO_TIME_SERIES_DATA"
	CodeRequestTimeout      Code = "REQUEST_TIMEOUT"
	CodeConnectionError     Code = "CONNECTION_ERROR"
	CodeRequestError        Code = "REQUEST_ERROR"
	CodeInternalError       Code = "INTERNAL_ERROR"
)

// Error is a classified failure. Message and Details are safe to show to
// clients; Err is the underlying cause and is only ever logged.
type Error struct {
	Code          Code
	Status        int
	Message       string
	Details       string
	AvailableKeys []string
	Err           error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func errAPIKeyMissing() *Error {
	return &Error{
		Code:    CodeAPIKeyMissing,
		Status:  http.StatusInternalServerError,
		Message: "API configuration error. Please contact support.",
	}
}

func errSymbolRequired() *Error {
	return &Error{
		Code:    CodeSymbolRequired,
		Status:  http.StatusBadRequest,
		Message: "Stock symbol is required",
	}
}

func errInvalidSymbolFormat(sym string) *Error {
	return &Error{
		Code:    CodeInvalidSymbolFormat,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Invalid stock symbol format: %s. Please use 1-5 uppercase letters.", sym),
	}
}

func errRateLimitExceeded(details string) *Error {
	return &Error{
		Code:    CodeRateLimitExceeded,
		Status:  http.StatusTooManyRequests,
		Message: "API rate limit reached. Please try again later or consider upgrading to a premium plan.",
		Details: details,
	}
}

func errAPIInformation(info string) *Error {
	return &Error{
		Code:    CodeAPIInformation,
		Status:  http.StatusBadRequest,
		Message: "API Information: " + info,
	}
}

func errSymbolNotFound(sym, details string) *Error {
	return &Error{
		Code:    CodeSymbolNotFound,
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("Stock symbol %q not found. Please check the symbol and try again.", sym),
		Details: details,
	}
}

func errRateLimitNote(details string) *Error {
	return &Error{
		Code:    CodeRateLimitNote,
		Status:  http.StatusTooManyRequests,
		Message: "API rate limit reached. Please try again later.",
		Details: details,
	}
}

func errInvalidAPIResponse() *Error {
	return &Error{
		Code:    CodeInvalidAPIResponse,
		Status:  http.StatusInternalServerError,
		Message: "Invalid API response format. Please try again.",
	}
}

func errNoTimeSeriesData(keys []string) *Error {
	return &Error{
		Code:          CodeNoTimeSeriesData,
		Status:        http.StatusNotFound,
		Message:       "No time series data available for this symbol.",
		AvailableKeys: keys,
	}
}

func errRequestTimeout(cause error) *Error {
	return &Error{
		Code:    CodeRequestTimeout,
		Status:  http.StatusRequestTimeout,
		Message: "Request timeout. Please try again.",
		Err:     cause,
	}
}

func errConnection(cause error) *Error {
	return &Error{
		Code:    CodeConnectionError,
		Status:  http.StatusServiceUnavailable,
		Message: "Network connection error. Please check your internet connection.",
		Err:     cause,
	}
}

func errRequest(cause error) *Error {
	return &Error{
		Code:    CodeRequestError,
		Status:  http.StatusInternalServerError,
		Message: "Network error while contacting the market data provider. Please try again.",
		Err:     cause,
	}
}

// ErrInternal is the generic classification for unanticipated failures.
func ErrInternal(cause error) *Error {
	return &Error{
		Code:    CodeInternalError,
		Status:  http.StatusInternalServerError,
		Message: "An unexpected error occurred. Please try again.",
		Err:     cause,
	}
}
