package channels

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrChannelNotFound = errors.New("channel not found")
	ErrChannelExists   = errors.New("channel already exists")
)

// NotFoundError represents an error when a channel is not found
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("channel %s not found", e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrChannelNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(id string) error {
	return NotFoundError{ID: id}
}

// IsNotFound checks if an error is a channel not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrChannelNotFound)
}
