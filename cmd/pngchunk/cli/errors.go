package cli

import (
	"errors"
	"fmt"
)

// SilentError wraps an error that has already been printed to the user.
// Run checks for this type and skips printing when found.
type SilentError struct {
	err error
}

func (e *SilentError) Error() string {
	return e.err.Error()
}

func (e *SilentError) Unwrap() error {
	return e.err
}

// NewSilentError wraps err so Run knows not to print it again.
func NewSilentError(err error) error {
	return &SilentError{err: err}
}

// IsSilentError reports whether err (or any error in its chain) is a SilentError.
func IsSilentError(err error) bool {
	var se *SilentError
	return errors.As(err, &se)
}

// FilesFailedError is returned by commands that process several files and
// report each failure on stderr as they go.
type FilesFailedError struct {
	Failed int
	Total  int
}

func (e *FilesFailedError) Error() string {
	return fmt.Sprintf("%d of %d files failed", e.Failed, e.Total)
}
