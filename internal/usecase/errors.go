package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrUnsupportedSport is an invalid input raised for a sport the
	// requested view does not cover.
	ErrUnsupportedSport = fmt.Errorf("%w: unsupported sport", ErrInvalidInput)
)
