package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/faizmokh/quickdaily/internal/dailyfmt"
	"github.com/faizmokh/quickdaily/internal/files"
)

var (
	// ErrUnknownKey is returned for keys outside Keys().
	ErrUnknownKey = errors.New("unknown settings key")
	// ErrInvalidValue is returned when a value cannot be parsed for its key.
	ErrInvalidValue = errors.New("invalid settings value")
)

var keys = []string{"vault", "format", "block", "timestamp", "theme", "collapsed", "locale", "text"}

// Keys lists the names accepted by Get and Set.
func Keys() []string {
	return append([]string(nil), keys...)
}

// Get renders the value stored under key.
func (s *Settings) Get(key string) (string, error) {
	switch strings.ToLower(key) {
	case "vault":
		return s.VaultDir, nil
	case "format":
		return s.DailyFormat, nil
	case "block":
		return s.BlockName, nil
	case "timestamp":
		return strconv.FormatBool(s.TimeStamp), nil
	case "theme":
		return string(s.Theme), nil
	case "collapsed":
		return strconv.FormatBool(s.Collapsed), nil
	case "locale":
		return s.Locale, nil
	case "text":
		return s.QuickAddText, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
}

// Set parses value and stores it under key.
func (s *Settings) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "vault":
		dir, err := files.ExpandPath(strings.TrimSpace(value))
		if err != nil {
			return err
		}
		s.VaultDir = dir
	case "format":
		s.DailyFormat = value
	case "block":
		s.BlockName = value
	case "text":
		s.QuickAddText = value
	case "timestamp":
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		s.TimeStamp = b
	case "collapsed":
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		s.Collapsed = b
	case "theme":
		switch Theme(strings.ToLower(strings.TrimSpace(value))) {
		case ThemeLight:
			s.Theme = ThemeLight
		case ThemeDark:
			s.Theme = ThemeDark
		default:
			return fmt.Errorf("%w: theme %q (expected light|dark)", ErrInvalidValue, value)
		}
	case "locale":
		locale, err := dailyfmt.ParseLocale(value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		s.Locale = string(locale)
	default:
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	return nil
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, value)
	}
	return b, nil
}
