package files

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDailyPath(t *testing.T) {
	tmp := t.TempDir()

	vault, err := NewVault(tmp)
	if err != nil {
		t.Fatalf("NewVault: %v", err)
	}

	path := vault.DailyPath("2024-03-07")
	want := filepath.Join(tmp, "2024-03-07.md")
	if path != want {
		t.Fatalf("DailyPath() = %q, want %q", path, want)
	}

	nested := vault.DailyPath("Daily/2024/03-07 星期四")
	wantNested := filepath.Join(tmp, "Daily", "2024", "03-07 星期四.md")
	if nested != wantNested {
		t.Fatalf("DailyPath(nested) = %q, want %q", nested, wantNested)
	}
}

func TestNewVaultRejectsEmptyDir(t *testing.T) {
	if _, err := NewVault("   "); !errors.Is(err, ErrNoVault) {
		t.Fatalf("NewVault(blank) error = %v, want ErrNoVault", err)
	}
}

func TestNewVaultExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	vault, err := NewVault("~/notes")
	if err != nil {
		t.Fatalf("NewVault: %v", err)
	}
	if want := filepath.Join(home, "notes"); vault.Dir() != want {
		t.Fatalf("Dir() = %q, want %q", vault.Dir(), want)
	}
}

func TestExists(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "note.md")

	ok, err := Exists(path)
	if err != nil || ok {
		t.Fatalf("Exists(missing) = %v, %v; want false, nil", ok, err)
	}

	if err := os.WriteFile(path, []byte("# Note\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	ok, err = Exists(path)
	if err != nil || !ok {
		t.Fatalf("Exists(file) = %v, %v; want true, nil", ok, err)
	}

	ok, err = Exists(tmp)
	if err != nil || ok {
		t.Fatalf("Exists(dir) = %v, %v; want false, nil", ok, err)
	}
}

func TestWriteFileAtomicKeepsMode(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "daily.md")

	if err := os.WriteFile(path, []byte("old\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("new\n")); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "new\n" {
		t.Fatalf("contents = %q, want %q", got, "new\n")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", info.Mode().Perm())
	}

	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp file cleanup, found %d entries", len(entries))
	}
}

func TestWriteFileAtomicWritesThroughSymlink(t *testing.T) {
	tmp := t.TempDir()
	real := filepath.Join(tmp, "real.md")
	if err := os.WriteFile(real, []byte("### Log\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	link := filepath.Join(tmp, "2024-03-07.md")
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if err := WriteFileAtomic(link, []byte("### Log\n\nnote\n")); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	got, err := os.ReadFile(real)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "### Log\n\nnote\n" {
		t.Fatalf("real file = %q", got)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat: %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Fatalf("link was replaced by a regular file")
	}
	if realInfo, _ := os.Stat(real); realInfo.Mode().Perm() != 0o600 {
		t.Fatalf("real file mode = %v, want 0600", realInfo.Mode().Perm())
	}
}
