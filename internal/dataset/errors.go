package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeCount indicates a request for fewer than zero values
	ErrNegativeCount = errors.New("count has to be a non-negative integer")

	// ErrUnsupportedKind indicates the generator was handed a kind it has no
	// layout for. The argument layer only lets known kinds through, so this
	// is a bug rather than a user error.
	ErrUnsupportedKind = errors.New("unsupported dataset kind")
)

// WriteError reports a failure to produce the output file
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write to output file '%s': %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// IsWriteError checks if the error was caused by writing the output file
func IsWriteError(err error) bool {
	var we *WriteError
	return errors.As(err, &we)
}
