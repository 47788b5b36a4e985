package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeInvalidJSON, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeTokenExpired, http.StatusUnauthorized},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeConflict, http.StatusConflict},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
		{"ALREADY_EXISTS", http.StatusConflict},
		{"DUPLICATE_REGISTRATION", http.StatusConflict},
		{"CONCURRENCY_CONFLICT", http.StatusConflict},
		{"INVALID_STATUS", http.StatusUnprocessableEntity},
		{"CAR_UNAVAILABLE", http.StatusUnprocessableEntity},
		{"ALREADY_SOLD", http.StatusUnprocessableEntity},
		{"ALREADY_SIGNED", http.StatusUnprocessableEntity},
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"ACCOUNT_DISABLED", http.StatusForbidden},
		{"PROFILE_EXISTS", http.StatusConflict},
		// Validation codes fall back to 400
		{"INVALID_YEAR", http.StatusBadRequest},
		{"INVALID_KIND", http.StatusBadRequest},
		{"INVALID_MODEL", http.StatusBadRequest},
		// Unknown code should return 500
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestErrorCodeHTTPStatusValues(t *testing.T) {
	for code, status := range ErrorCodeHTTPStatus {
		assert.GreaterOrEqual(t, status, 400, "Error code %s should map to an error status", code)
		assert.Less(t, status, 600, "Error code %s should map to a valid status", code)
	}
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse("NOT_FOUND", "Resource not found")

	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	assert.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "Resource not found", resp.Error.Message)
}

func TestNewSuccessResponse(t *testing.T) {
	data := map[string]string{"name": "test"}
	resp := NewSuccessResponse(data)

	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
	assert.Nil(t, resp.Meta)
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	tests := []struct {
		total         int64
		pageSize      int
		expectedPages int
	}{
		{100, 10, 10},
		{101, 10, 11},
		{0, 10, 0},
		{9, 10, 1},
		{11, 10, 2},
	}

	for _, tt := range tests {
		resp := NewSuccessResponseWithMeta(nil, tt.total, 1, tt.pageSize)
		assert.NotNil(t, resp.Meta)
		assert.Equal(t, tt.expectedPages, resp.Meta.TotalPages)
		assert.Equal(t, tt.total, resp.Meta.Total)
	}
}
