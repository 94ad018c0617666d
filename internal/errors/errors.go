package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrQueueNotFound       = &NotFoundError{Entity: "queue"}
	ErrAgentNotFound       = &NotFoundError{Entity: "agent"}
	ErrRosterEntryNotFound = &NotFoundError{Entity: "roster entry"}
	ErrAbsenceNotFound     = &NotFoundError{Entity: "absence"}
	ErrRotationLogNotFound = &NotFoundError{Entity: "rotation log entry"}
	ErrWebhookLogNotFound  = &NotFoundError{Entity: "webhook log entry"}
	ErrLeadNotFound        = &NotFoundError{Entity: "lead"}
)

// Already Exists Errors
var (
	ErrQueueExists = &AlreadyExistsError{Entity: "queue", Context: "with this name"}
	ErrAgentExists = &AlreadyExistsError{Entity: "agent", Context: "with this email"}
)

// Membership and rotation state conflicts. Expected control-flow outcomes
// surfaced to callers as typed results, not faults.
var (
	ErrEmptyQueue    = errors.New("queue has no members")
	ErrAlreadyMember = errors.New("agent is already a member of this queue")
	ErrNotMember     = errors.New("agent is not a member of this queue")
	ErrQueueInactive = errors.New("queue is not active")
)

// Authentication Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var alreadyExistsErr *AlreadyExistsError
	return errors.As(err, &alreadyExistsErr)
}
