// Package service implements the recipe service business logic.
package service

import (
	"errors"
	"strings"
)

var (
	ErrUnauthenticated    = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrPersistence        = errors.New("persistence failure")
)

// ValidationError lists every rule an input violated.
type ValidationError struct {
	Messages []string
}

func newValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
