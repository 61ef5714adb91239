package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFieldValidationError(t *testing.T) {
	err := NewFieldValidationError(map[string][]string{
		"title":       {"Missing value"},
		"description": {"Missing value"},
	})

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, "description: Missing value; title: Missing value", err.Message)
	assert.Len(t, err.Fields, 2)
}

func TestErrorKindsAreDistinct(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		validation bool
		notFound   bool
		forbidden  bool
		code       int
	}{
		{"validation", NewValidationError("bad"), true, false, false, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), false, true, false, http.StatusNotFound},
		{"forbidden", NewForbiddenError("no"), false, false, true, http.StatusForbidden},
		{"internal", NewInternalError("boom"), false, false, false, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.validation, IsValidationError(tt.err))
			assert.Equal(t, tt.notFound, IsNotFoundError(tt.err))
			assert.Equal(t, tt.forbidden, IsForbiddenError(tt.err))
			assert.Equal(t, tt.code, GetAppError(tt.err).Code)
		})
	}
}

func TestGetAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading request: %w", NewNotFoundError("data request not found"))

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.True(t, IsNotFoundError(wrapped))
	assert.Equal(t, "not_found: data request not found", appErr.Error())

	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
	assert.False(t, IsAppError(fmt.Errorf("plain")))
}
