package files

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DailyExt is appended to every resolved daily name.
	DailyExt = ".md"

	dirPermissions  = 0o755
	filePermissions = 0o644
)

// ErrNoVault is returned when a Vault is requested without a directory.
var ErrNoVault = errors.New("vault directory is not set")

// Vault is the root directory holding the markdown journal files.
type Vault struct {
	dir string
}

// NewVault constructs a Vault rooted at dir after ~ expansion.
func NewVault(dir string) (*Vault, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, ErrNoVault
	}
	expanded, err := ExpandPath(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, err
	}
	return &Vault{dir: abs}, nil
}

// Dir returns the absolute vault directory.
func (v *Vault) Dir() string {
	return v.dir
}

// DailyPath joins the vault directory with the resolved daily name and the
// markdown extension. The file may not exist; checking is up to the caller.
func (v *Vault) DailyPath(resolvedName string) string {
	return filepath.Join(v.dir, resolvedName+DailyExt)
}

// Exists reports whether path names an existing non-directory file.
func Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
