package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/faizmokh/quickdaily/internal/config"
	"github.com/faizmokh/quickdaily/internal/journal"
	"github.com/faizmokh/quickdaily/internal/quickadd"
)

var testNow = time.Date(2024, time.March, 6, 14, 5, 9, 0, time.Local)

func clock() time.Time { return testNow }

type fixture struct {
	model        Model
	vault        string
	settingsPath string
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	vault := t.TempDir()
	settingsPath := filepath.Join(t.TempDir(), "init.json")

	settings := config.DefaultSettings()
	settings.VaultDir = vault
	settings.DailyFormat = "{YYYY}-{MM}-{DD}"
	settings.BlockName = "### Log"

	inserter := journal.NewInserter(journal.WithClock(clock))
	service := quickadd.NewService(inserter, quickadd.WithClock(clock))

	m := NewModel(context.Background(), Options{
		Service:      service,
		Settings:     settings,
		SettingsPath: settingsPath,
		Logger:       zerolog.Nop(),
		Now:          clock,
	})
	return fixture{model: m, vault: vault, settingsPath: settingsPath}
}

func press(t *testing.T, m Model, key tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out, cmd
}

func deliver(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestSubmitInsertsIntoDailyFile(t *testing.T) {
	fx := newFixture(t)
	path := filepath.Join(fx.vault, "2024-03-06.md")
	if err := os.WriteFile(path, []byte("### Log\n### Other\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	fx.model.refreshTarget()
	if fx.model.target != "2024-03-06.md" {
		t.Fatalf("target = %q", fx.model.target)
	}

	fx.model.note.SetValue("did X")
	m, cmd := press(t, fx.model, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.saving || cmd == nil {
		t.Fatalf("expected an insert command, saving=%v", m.saving)
	}

	msg := cmd()
	result, ok := msg.(addResultMsg)
	if !ok {
		t.Fatalf("cmd returned %T", msg)
	}
	if result.err != nil {
		t.Fatalf("insert failed: %v", result.err)
	}

	m = deliver(t, m, result)
	if m.saving {
		t.Fatalf("saving flag not cleared")
	}
	if !strings.Contains(m.statusLine, "Added to 2024-03-06.md") {
		t.Fatalf("status = %q", m.statusLine)
	}
	if m.note.Value() != "" {
		t.Fatalf("note should be cleared, got %q", m.note.Value())
	}

	got, _ := os.ReadFile(path)
	if string(got) != "### Log\n\ndid X\n### Other\n" {
		t.Fatalf("file contents = %q", got)
	}
}

func TestSubmitEmptyShowsNotice(t *testing.T) {
	fx := newFixture(t)

	m, cmd := press(t, fx.model, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = deliver(t, m, cmd())

	if m.errorLine != "Type something to insert first." {
		t.Fatalf("errorLine = %q", m.errorLine)
	}
	if !strings.Contains(m.View(), "Type something to insert first.") {
		t.Fatalf("view missing notice:\n%s", m.View())
	}
}

func TestSubmitMissingFileKeepsText(t *testing.T) {
	fx := newFixture(t)
	fx.model.note.SetValue("keep me")

	m, cmd := press(t, fx.model, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = deliver(t, m, cmd())

	if !strings.Contains(m.errorLine, "daily file not found") {
		t.Fatalf("errorLine = %q", m.errorLine)
	}
	if m.note.Value() != "keep me" {
		t.Fatalf("note = %q", m.note.Value())
	}
}

func TestToggleTimestampPersists(t *testing.T) {
	fx := newFixture(t)

	m, cmd := press(t, fx.model, tea.KeyMsg{Type: tea.KeyCtrlT})
	if !m.settings.TimeStamp {
		t.Fatalf("timestamp should be on")
	}
	if cmd == nil {
		t.Fatalf("expected a save command")
	}
	if saved, ok := cmd().(settingsSavedMsg); !ok || saved.err != nil {
		t.Fatalf("save result = %#v", saved)
	}

	loaded, err := config.Load(fx.settingsPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.TimeStamp {
		t.Fatalf("saved settings lost the toggle: %+v", loaded)
	}
}

func TestToggleThemeChangesPalette(t *testing.T) {
	fx := newFixture(t)

	m, _ := press(t, fx.model, tea.KeyMsg{Type: tea.KeyCtrlL})
	if m.settings.Theme != config.ThemeDark {
		t.Fatalf("theme = %q", m.settings.Theme)
	}
	if !strings.Contains(m.View(), "theme dark") {
		t.Fatalf("view should mention the theme:\n%s", m.View())
	}
}

func TestTabCyclesFocusAndCollapseResetsIt(t *testing.T) {
	fx := newFixture(t)

	m, _ := press(t, fx.model, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusVault {
		t.Fatalf("focus = %d, want vault", m.focus)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != focusBlock {
		t.Fatalf("focus = %d, want block", m.focus)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	if !m.settings.Collapsed || m.focus != focusNote {
		t.Fatalf("collapsed=%v focus=%d", m.settings.Collapsed, m.focus)
	}
	if strings.Contains(m.View(), "Format") {
		t.Fatalf("collapsed view should hide settings fields")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusNote {
		t.Fatalf("collapsed panel should keep focus on the note, got %d", m.focus)
	}
}

func TestApplyFieldsSavesSettings(t *testing.T) {
	fx := newFixture(t)
	fx.model.fields[1].SetValue("{YYYY}")
	fx.model.fields[2].SetValue("## Inbox")

	m, cmd := press(t, fx.model, tea.KeyMsg{Type: tea.KeyCtrlW})
	if m.settings.DailyFormat != "{YYYY}" || m.settings.BlockName != "## Inbox" {
		t.Fatalf("settings not applied: %+v", m.settings)
	}
	if m.target != "2024.md (missing)" {
		t.Fatalf("target = %q", m.target)
	}
	cmd()

	loaded, err := config.Load(fx.settingsPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.BlockName != "## Inbox" {
		t.Fatalf("BlockName = %q", loaded.BlockName)
	}
}

func TestQuitSavesDraft(t *testing.T) {
	fx := newFixture(t)
	fx.model.note.SetValue("half a thought")

	m, cmd := press(t, fx.model, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if m.settings.QuickAddText != "half a thought" {
		t.Fatalf("QuickAddText = %q", m.settings.QuickAddText)
	}
}

func TestSubmitKeepsTextTypedDuringInsert(t *testing.T) {
	fx := newFixture(t)
	path := filepath.Join(fx.vault, "2024-03-06.md")
	if err := os.WriteFile(path, []byte("### Log\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fx.model.note.SetValue("first")
	m, cmd := press(t, fx.model, tea.KeyMsg{Type: tea.KeyCtrlS})
	result := cmd()

	m.note.SetValue("first and more")
	m = deliver(t, m, result)

	if m.note.Value() != "first and more" {
		t.Fatalf("note = %q, want the newer text kept", m.note.Value())
	}
	if m.settings.QuickAddText != "first and more" {
		t.Fatalf("QuickAddText = %q", m.settings.QuickAddText)
	}
	if got, _ := os.ReadFile(path); string(got) != "### Log\n\nfirst\n" {
		t.Fatalf("file contents = %q", got)
	}
}
