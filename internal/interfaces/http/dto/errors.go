package dto

import (
	"net/http"
	"strings"
)

// Transport-level error codes. Domain errors carry their own codes;
// these cover failures raised by the HTTP layer itself.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "INVALID_JSON"
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "FORBIDDEN"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "TOKEN_INVALID"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "CONFLICT"
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// Transport errors
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeConflict:     http.StatusConflict,
	ErrCodeRateLimited:  http.StatusTooManyRequests,

	// Resource errors
	"ALREADY_EXISTS":         http.StatusConflict,
	"DUPLICATE_REGISTRATION": http.StatusConflict,
	"CONCURRENCY_CONFLICT":   http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	"INVALID_STATUS":      http.StatusUnprocessableEntity,
	"CAR_UNAVAILABLE":     http.StatusUnprocessableEntity,
	"ALREADY_SOLD":        http.StatusUnprocessableEntity,
	"ALREADY_SIGNED":      http.StatusUnprocessableEntity,
	"ALREADY_CANCELED":    http.StatusUnprocessableEntity,
	"CONTRACT_CANCELED":   http.StatusUnprocessableEntity,
	"NOT_DRAFT":           http.StatusUnprocessableEntity,
	"ALREADY_DEACTIVATED": http.StatusUnprocessableEntity,
	"FEATURED_LIMIT":      http.StatusUnprocessableEntity,

	// Account errors
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_DISABLED":    http.StatusForbidden,
	"PROFILE_EXISTS":      http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Validation codes (INVALID_*) default to 400; anything else unknown
// is treated as an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
