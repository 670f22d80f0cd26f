// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{Backend, http.StatusInternalServerError},
		{NotFound, http.StatusNotFound},
		{Conflict, http.StatusConflict},
		{BadRequest, http.StatusBadRequest},
		{Config, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.status, tt.kind.Status())
		})
	}
}

func TestKindOfWrapped(t *testing.T) {
	base := NewNotFoundError("store.GetApplication", "application not found")
	wrapped := fmt.Errorf("handler: %w", base)

	assert.Equal(t, NotFound, KindOf(wrapped))
	assert.True(t, Is(wrapped, NotFound))
	assert.False(t, Is(wrapped, Conflict))
	assert.False(t, Is(nil, Backend))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, Backend, KindOf(errors.New("boom")))
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("disk full")
	err := NewBackendError("store.CreateApplication", cause)

	assert.Equal(t, "store.CreateApplication: backend: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestToHTTP(t *testing.T) {
	t.Run("not found keeps message", func(t *testing.T) {
		body := ToHTTP(NewNotFoundError("op", "application not found"))
		assert.Equal(t, HTTPError{Code: "NOT_FOUND", Message: "application not found", Status: 404}, body)
	})

	t.Run("backend hides cause", func(t *testing.T) {
		body := ToHTTP(NewBackendError("op", errors.New("connection refused")))
		assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Code)
		assert.Equal(t, "Internal Server Error", body.Message)
		assert.Equal(t, 500, body.Status)
	})

	t.Run("unclassified error is backend", func(t *testing.T) {
		body := ToHTTP(errors.New("whatever"))
		assert.Equal(t, 500, body.Status)
	})

	t.Run("conflict", func(t *testing.T) {
		body := ToHTTP(NewConflictError("op", "constraint violation", nil))
		assert.Equal(t, "CONFLICT", body.Code)
		assert.Equal(t, 409, body.Status)
	})
}
