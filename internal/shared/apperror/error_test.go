package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"cadebeck-hr/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestAppError_WithCauseKeepsIdentity(t *testing.T) {
	sentinel := apperror.New(apperror.CodeConflict, "already exists", http.StatusConflict)
	cause := errors.New("duplicate key value")

	err := fmt.Errorf("create: %w", sentinel.WithCause(cause))

	assert.ErrorIs(t, err, sentinel)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, sentinel.Err)
}

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.ErrForbidden)
		assert.Equal(t, http.StatusForbidden, got.Status)
		assert.Equal(t, apperror.CodeForbidden, got.Code)
	})

	t.Run("unknown error is hidden", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "connection refused")
	})
}

func TestCodeOfAndMessageOf(t *testing.T) {
	assert.Equal(t, apperror.CodeForbidden, apperror.CodeOf(apperror.ErrForbidden))
	assert.Equal(t, apperror.CodeInternalError, apperror.CodeOf(errors.New("boom")))
	assert.Equal(t, "boom", apperror.MessageOf(errors.New("boom")))
}
