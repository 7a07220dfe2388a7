package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "project"}
		assert.Equal(t, "project not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "project"}
		err2 := &NotFoundError{Entity: "project"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "project"}
		err2 := &NotFoundError{Entity: "group"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrProjectNotFound, ErrProjectNotFound))
		assert.False(t, errors.Is(ErrProjectNotFound, ErrUpdateNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get update: %w", ErrUpdateNotFound)
		assert.True(t, errors.Is(wrapped, ErrUpdateNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrGroupNotFound))
		assert.False(t, IsNotFound(ErrUpdatePublished))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "update", Context: "in the project"}
		assert.Equal(t, "update already exists in the project", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "group"}
		assert.Equal(t, "group already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "project", Context: "with this name"}
		err2 := &AlreadyExistsError{Entity: "project"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUpdateExists))
		assert.False(t, IsAlreadyExists(ErrUpdateNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrInvalidNextAdmin))
		assert.True(t, IsValidation(NewValidationError("email", "invalid")))
		assert.False(t, IsValidation(ErrProjectNotFound))
	})
}

func TestConflictError(t *testing.T) {
	assert.True(t, IsConflict(ErrChangeNotesNotDone))
	assert.True(t, IsConflict(fmt.Errorf("publish: %w", ErrUpdateNotInDevelopment)))
	assert.False(t, IsConflict(ErrNotAuthorized))
	assert.Equal(t, "custom", NewConflictError("custom").Error())
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidToken))
	assert.False(t, IsAuthentication(ErrNotGroupAdmin))
	assert.True(t, IsAuthorization(ErrActionOnSelf))
	assert.Equal(t, "You cannot execute this action on your account", ErrActionOnSelf.Error())
	assert.True(t, IsConfiguration(ErrStorageNotConfigured))
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}
