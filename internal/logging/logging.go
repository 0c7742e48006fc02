// Package logging builds the zerolog loggers shared by the CLI and the
// interactive panel.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/faizmokh/quickdaily/internal/files"
)

// New returns a JSON logger with timestamps. Verbose lowers the level to debug.
func New(w io.Writer, verbose bool) zerolog.Logger {
	return zerolog.New(w).
		Level(level(verbose)).
		With().
		Timestamp().
		Logger()
}

// NewConsole returns a human-readable logger for terminal output.
func NewConsole(w io.Writer, verbose bool) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return New(console, verbose)
}

// OpenFile opens (appending) the log file that sits next to the settings file.
func OpenFile(settingsPath string) (*os.File, error) {
	path := LogPath(settingsPath)
	if err := files.EnsureParentDir(path); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// LogPath places the log file in the settings directory.
func LogPath(settingsPath string) string {
	return filepath.Join(filepath.Dir(settingsPath), files.LogFileName)
}

func level(verbose bool) zerolog.Level {
	if verbose {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}
