package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, ToDomainError(nil))
	})

	t.Run("passes DomainError through", func(t *testing.T) {
		orig := NewConflict("department name already exists", map[string]any{"name": "Engineering"})
		de := ToDomainError(orig)
		assert.Equal(t, "CONFLICT", de.Code)
		assert.Equal(t, http.StatusConflict, de.HTTPStatus)
		assert.False(t, de.Unexpected)
	})

	t.Run("unwraps wrapped DomainError", func(t *testing.T) {
		wrapped := fmt.Errorf("delete department: %w", NewNotFound("department", nil))
		de := ToDomainError(wrapped)
		assert.Equal(t, "NOT_FOUND", de.Code)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		de := ToDomainError(pgx.ErrNoRows)
		assert.Equal(t, "NOT_FOUND", de.Code)
		assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	})

	t.Run("unique violation is conflict", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "employees_email_active_uq"}
		de := ToDomainError(fmt.Errorf("insert employee: %w", pgErr))
		assert.Equal(t, "CONFLICT", de.Code)
		assert.Equal(t, "employees_email_active_uq", de.Details["constraint"])
	})

	t.Run("other postgres errors are internal", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "40001"}
		de := ToDomainError(pgErr)
		assert.Equal(t, "INTERNAL_ERROR", de.Code)
		assert.True(t, de.Unexpected)
	})

	t.Run("generic errors are internal and unexpected", func(t *testing.T) {
		cause := errors.New("connection reset")
		de := ToDomainError(cause)
		assert.Equal(t, "INTERNAL_ERROR", de.Code)
		assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
		assert.True(t, de.Unexpected)
		assert.ErrorIs(t, de, cause)
	})
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("invalid employee payload", map[string]any{"salary": "Salary must be a valid positive number"})
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "VALIDATION_FAILED", de.Code)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	assert.Contains(t, de.Details, "salary")
}

func TestDomainError_Error(t *testing.T) {
	plain := &DomainError{Message: "department not found"}
	assert.Equal(t, "department not found", plain.Error())

	withCause := &DomainError{Message: "internal server error", Err: errors.New("boom")}
	assert.Equal(t, "internal server error: boom", withCause.Error())
}
