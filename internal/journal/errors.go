package journal

import (
	"errors"
	"fmt"
)

// ErrBlockNotFound is returned when the target heading line is absent.
var ErrBlockNotFound = errors.New("block not found")

// ErrIO marks failures reading or writing a journal file.
var ErrIO = errors.New("journal i/o failed")

// IOError records which file operation failed.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both ErrIO and the underlying cause to errors.Is.
func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}
