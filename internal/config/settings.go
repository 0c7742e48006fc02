// Package config loads and saves the persisted preferences record.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/faizmokh/quickdaily/internal/dailyfmt"
	"github.com/faizmokh/quickdaily/internal/files"
)

// Theme selects the light or dark palette.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ErrMalformedSettings is returned by Load, together with defaults, when the
// settings file is not a JSON object.
var ErrMalformedSettings = errors.New("malformed settings file")

// Settings holds every user preference. JSON keys match the init.json files
// written by earlier releases.
type Settings struct {
	Theme        Theme  `json:"theme"`
	TimeStamp    bool   `json:"ifTimeStamp"`
	Collapsed    bool   `json:"ifCollapsed"`
	VaultDir     string `json:"VaultDir"`
	DailyFormat  string `json:"DailyFormat"`
	BlockName    string `json:"BlockName"`
	QuickAddText string `json:"QuickAddText"`
	Locale       string `json:"locale"`
}

// DefaultSettings returns an unconfigured record.
func DefaultSettings() *Settings {
	return &Settings{
		Theme:  ThemeLight,
		Locale: string(dailyfmt.LocaleZH),
	}
}

// Load reads settings from path. A missing file yields defaults. Fields that
// are absent, of the wrong type or out of range keep their default.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return settings, fmt.Errorf("%w: %v", ErrMalformedSettings, err)
	}

	var theme string
	if decodeField(raw, "theme", &theme) && (theme == string(ThemeLight) || theme == string(ThemeDark)) {
		settings.Theme = Theme(theme)
	}
	decodeField(raw, "ifTimeStamp", &settings.TimeStamp)
	decodeField(raw, "ifCollapsed", &settings.Collapsed)
	decodeField(raw, "VaultDir", &settings.VaultDir)
	decodeField(raw, "DailyFormat", &settings.DailyFormat)
	decodeField(raw, "BlockName", &settings.BlockName)
	decodeField(raw, "QuickAddText", &settings.QuickAddText)

	var locale string
	if decodeField(raw, "locale", &locale) {
		if parsed, err := dailyfmt.ParseLocale(locale); err == nil {
			settings.Locale = string(parsed)
		}
	}

	return settings, nil
}

// decodeField unmarshals raw[key] into dst, leaving dst unchanged on failure.
func decodeField[T any](raw map[string]json.RawMessage, key string, dst *T) bool {
	msg, ok := raw[key]
	if !ok {
		return false
	}
	var value T
	if err := json.Unmarshal(msg, &value); err != nil {
		return false
	}
	*dst = value
	return true
}

// Save writes settings to path as indented JSON.
func (s *Settings) Save(path string) error {
	if err := files.EnsureParentDir(path); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(s); err != nil {
		return err
	}

	if err := files.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// DailyLocale returns the parsed locale, falling back to zh.
func (s *Settings) DailyLocale() dailyfmt.Locale {
	locale, err := dailyfmt.ParseLocale(s.Locale)
	if err != nil {
		return dailyfmt.LocaleZH
	}
	return locale
}

// ToggleTheme flips between light and dark.
func (s *Settings) ToggleTheme() {
	if s.Theme == ThemeDark {
		s.Theme = ThemeLight
		return
	}
	s.Theme = ThemeDark
}

// ToggleTimeStamp flips the timestamp suffix flag.
func (s *Settings) ToggleTimeStamp() {
	s.TimeStamp = !s.TimeStamp
}

// ToggleCollapsed flips whether the settings panel is hidden.
func (s *Settings) ToggleCollapsed() {
	s.Collapsed = !s.Collapsed
}
