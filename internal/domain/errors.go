package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrGeneration     = errors.New("generation failed")
)

// GenerationError reports a failed call to the generation capability for one
// content type. It matches ErrGeneration with errors.Is.
type GenerationError struct {
	ContentType ContentType
	Err         error
}

func (e *GenerationError) Error() string {
	if e.ContentType == "" {
		return fmt.Sprintf("generation failed: %v", e.Err)
	}
	return fmt.Sprintf("failed to generate %s: %v", e.ContentType, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}

// InvalidRequestf builds an error wrapping ErrInvalidRequest.
func InvalidRequestf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
