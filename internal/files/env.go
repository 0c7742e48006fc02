package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// AppDirName is the folder under the user's config directory.
	AppDirName = "quickdaily"
	// SettingsFileName holds the persisted preferences record.
	SettingsFileName = "init.json"
	// LogFileName receives logs while the interactive panel owns the terminal.
	LogFileName = "quickdaily.log"
)

// ResolveSettingsPath determines where preferences are stored, defaulting to
// <user config dir>/quickdaily/init.json. The location can be overridden by
// exporting QUICKDAILY_CONFIG.
func ResolveSettingsPath() (string, error) {
	if override, ok := os.LookupEnv("QUICKDAILY_CONFIG"); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return ExpandPath(override)
		}
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppDirName, SettingsFileName), nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
