package appearances

import (
	"errors"
	"fmt"
)

// ErrAppearanceNotFound is returned when an appearance does not exist
var ErrAppearanceNotFound = errors.New("appearance not found")

// NotFoundError represents an error when an appearance is not found
type NotFoundError struct {
	ID uint
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("appearance with ID %d not found", e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrAppearanceNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(id uint) error {
	return NotFoundError{ID: id}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var notFoundErr NotFoundError
	return errors.As(err, &notFoundErr) || errors.Is(err, ErrAppearanceNotFound)
}
