package recommender

import (
	"errors"
	"fmt"
)

// ErrCareerNotFound is matched by every CareerNotFoundError via errors.Is.
var ErrCareerNotFound = errors.New("career not found")

// CareerNotFoundError indicates an identity that is not a catalog key
type CareerNotFoundError struct {
	CareerID string
}

func (e *CareerNotFoundError) Error() string {
	return fmt.Sprintf("career not found: %q", e.CareerID)
}

// Is reports whether target is ErrCareerNotFound.
func (e *CareerNotFoundError) Is(target error) bool {
	return target == ErrCareerNotFound
}
