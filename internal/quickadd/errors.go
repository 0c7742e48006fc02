package quickadd

import (
	"context"
	"errors"
	"fmt"

	"github.com/faizmokh/quickdaily/internal/journal"
)

var (
	// ErrConfigMissing is matched by every *ConfigMissingError.
	ErrConfigMissing = errors.New("configuration missing")
	// ErrFileNotFound is returned when today's daily file does not exist.
	ErrFileNotFound = errors.New("daily file not found")
	// ErrEmptyInput is returned when there is nothing to insert.
	ErrEmptyInput = errors.New("nothing to insert")
)

// ConfigMissingError names the unset preference.
type ConfigMissingError struct {
	Field string
}

func (e *ConfigMissingError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Field)
}

// Is lets errors.Is(err, ErrConfigMissing) match.
func (e *ConfigMissingError) Is(target error) bool {
	return target == ErrConfigMissing
}

// Describe turns a quick-add failure into a one-line notice for the user.
func Describe(err error) string {
	var missing *ConfigMissingError
	var ioErr *journal.IOError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &missing):
		return fmt.Sprintf("Set the %s first.", missing.Field)
	case errors.Is(err, ErrEmptyInput):
		return "Type something to insert first."
	case errors.Is(err, ErrFileNotFound):
		return err.Error()
	case errors.Is(err, journal.ErrBlockNotFound):
		return "Block heading not found in the daily file."
	case errors.As(err, &ioErr):
		return fmt.Sprintf("Could not %s %s: %v", ioErr.Op, ioErr.Path, ioErr.Err)
	case errors.Is(err, context.Canceled):
		return "Cancelled."
	default:
		return err.Error()
	}
}
