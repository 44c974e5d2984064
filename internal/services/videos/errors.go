package videos

import (
	"errors"
	"fmt"
)

// ErrVideoNotFound is returned when a video does not exist in the store
var ErrVideoNotFound = errors.New("video not found")

// NotFoundError represents an error when a video is not found
type NotFoundError struct {
	ID interface{}
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("video with identifier %v not found", e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrVideoNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(id interface{}) error {
	return NotFoundError{ID: id}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var notFoundErr NotFoundError
	return errors.As(err, &notFoundErr) || errors.Is(err, ErrVideoNotFound)
}
