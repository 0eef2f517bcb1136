package errors

import (
	"errors"
	"fmt"
)

// Error taxonomy for the session layer
var (
	// Bad input detected locally, nothing was sent
	ErrValidation = errors.New("validation failed")

	// The API answered and refused the credential or the request
	ErrAuthRejected = errors.New("rejected by the api")

	// The API could not be reached or answered with something unreadable
	ErrTransport = errors.New("transport failure")

	// An authorized operation was invoked without a token. This is a caller bug.
	ErrNoToken = errors.New("no session token")

	// Storage errors
	ErrNotFound = errors.New("not found")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
