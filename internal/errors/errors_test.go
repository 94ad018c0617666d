package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	assert.Equal(t, "queue not found", ErrQueueNotFound.Error())
	assert.Equal(t, "webhook log entry not found", ErrWebhookLogNotFound.Error())

	wrapped := fmt.Errorf("failed to load: %w", ErrQueueNotFound)
	assert.True(t, errors.Is(wrapped, ErrQueueNotFound))
	assert.False(t, errors.Is(wrapped, ErrAgentNotFound))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsNotFound(ErrEmptyQueue))
}

func TestAlreadyExistsError(t *testing.T) {
	assert.Equal(t, "queue already exists with this name", ErrQueueExists.Error())
	assert.Equal(t, "agent already exists with this email", ErrAgentExists.Error())

	wrapped := fmt.Errorf("create failed: %w", ErrAgentExists)
	assert.True(t, errors.Is(wrapped, ErrAgentExists))
	assert.False(t, errors.Is(wrapped, ErrQueueExists))
	assert.True(t, IsAlreadyExists(wrapped))
	assert.False(t, IsAlreadyExists(ErrQueueNotFound))
}

func TestValidationError(t *testing.T) {
	withField := &ValidationError{Field: "date_end", Message: "must not precede date_start"}
	assert.Equal(t, "validation error: date_end - must not precede date_start", withField.Error())

	withoutField := &ValidationError{Message: "payload malformed"}
	assert.Equal(t, "validation error: payload malformed", withoutField.Error())
}

func TestConflictSentinels(t *testing.T) {
	wrapped := fmt.Errorf("advance failed: %w", ErrEmptyQueue)
	assert.True(t, errors.Is(wrapped, ErrEmptyQueue))
	assert.False(t, errors.Is(wrapped, ErrAlreadyMember))
	assert.False(t, IsNotFound(ErrNotMember))
}
