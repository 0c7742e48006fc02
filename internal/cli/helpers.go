package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

func resolveDate(now time.Time, dateFlag string) (time.Time, error) {
	if dateFlag == "" {
		now = now.In(time.Local)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}

// resolveMoment combines --date and --time. Both empty means "now" and is
// reported as the zero time so the service applies its own clock.
func resolveMoment(now time.Time, dateFlag, timeFlag string) (time.Time, error) {
	if dateFlag == "" && timeFlag == "" {
		return time.Time{}, nil
	}

	date, err := resolveDate(now, dateFlag)
	if err != nil {
		return time.Time{}, err
	}
	return resolveTime(now, date, timeFlag)
}

func resolveTime(now, date time.Time, timeFlag string) (time.Time, error) {
	if timeFlag == "" {
		now = now.In(date.Location())
		return time.Date(date.Year(), date.Month(), date.Day(), now.Hour(), now.Minute(), now.Second(), 0, date.Location()), nil
	}

	layout := "15:04"
	if strings.Count(timeFlag, ":") == 2 {
		layout = "15:04:05"
	}
	parsed, err := time.ParseInLocation(layout, timeFlag, date.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time: %w", err)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), parsed.Second(), 0, date.Location()), nil
}

// readText picks the note source: arguments, the clipboard or stdin.
func (s *state) readText(args []string, fromClipboard, fromStdin bool) (string, error) {
	switch {
	case fromClipboard && fromStdin:
		return "", errors.New("use either --clipboard or --stdin, not both")
	case (fromClipboard || fromStdin) && len(args) > 0:
		return "", errors.New("text arguments cannot be combined with --clipboard or --stdin")
	case fromClipboard:
		text, err := s.readClipboard()
		if err != nil {
			return "", fmt.Errorf("read clipboard: %w", err)
		}
		return text, nil
	case fromStdin:
		data, err := io.ReadAll(s.stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	default:
		return strings.Join(args, " "), nil
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
