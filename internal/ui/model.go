package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/faizmokh/quickdaily/internal/config"
	"github.com/faizmokh/quickdaily/internal/quickadd"
)

// Options carries the collaborators the panel needs.
type Options struct {
	Service      *quickadd.Service
	Settings     *config.Settings
	SettingsPath string
	Logger       zerolog.Logger
	Now          func() time.Time
}

// Model owns Bubble Tea state for the quick-add panel.
type Model struct {
	ctx          context.Context
	service      *quickadd.Service
	settings     *config.Settings
	settingsPath string
	logger       zerolog.Logger
	now          func() time.Time

	note   textarea.Model
	fields []textinput.Model
	focus  int

	target     string
	saving     bool
	statusLine string
	errorLine  string
}

const (
	focusNote = iota
	focusVault
	focusFormat
	focusBlock
	focusCount
)

var fieldKeys = []string{"vault", "format", "block"}

var fieldLabels = []string{"Vault", "Format", "Block"}

type addResultMsg struct {
	text   string
	result quickadd.Result
	err    error
}

type settingsSavedMsg struct {
	err error
}

// NewModel seeds the panel from the loaded settings.
func NewModel(ctx context.Context, opts Options) Model {
	settings := opts.Settings
	if settings == nil {
		settings = config.DefaultSettings()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	note := textarea.New()
	note.Placeholder = "Quick note..."
	note.ShowLineNumbers = false
	note.SetWidth(60)
	note.SetHeight(5)
	note.SetValue(settings.QuickAddText)
	note.Focus()

	fields := []textinput.Model{
		newField(settings.VaultDir, "/path/to/vault"),
		newField(settings.DailyFormat, "{YYYY}-{MM}-{DD}"),
		newField(settings.BlockName, "### Log"),
	}

	m := Model{
		ctx:          ctx,
		service:      opts.Service,
		settings:     settings,
		settingsPath: opts.SettingsPath,
		logger:       opts.Logger.With().Str("component", "ui").Logger(),
		now:          now,
		note:         note,
		fields:       fields,
		focus:        focusNote,
		statusLine:   "ctrl+s to insert.",
	}
	m.refreshTarget()
	return m
}

func newField(value, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 512
	ti.Width = 48
	ti.SetValue(value)
	return ti
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update wires panel state transitions from keys and async results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > 100 {
			width = 100
		}
		if width > 20 {
			m.note.SetWidth(width)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case addResultMsg:
		return m.handleAddResult(msg)
	case settingsSavedMsg:
		if msg.err != nil {
			m.errorLine = fmt.Sprintf("Saving settings failed: %v", msg.err)
			m.logger.Error().Err(msg.err).Msg("save settings")
		}
		return m, nil
	}
	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.settings.QuickAddText = m.note.Value()
		if save := m.saveSettingsCmd(); save != nil {
			return m, tea.Sequence(save, tea.Quit)
		}
		return m, tea.Quit
	case "ctrl+s":
		return m.submit()
	case "tab":
		return m.cycleFocus(1)
	case "shift+tab":
		return m.cycleFocus(-1)
	case "ctrl+t":
		m.settings.ToggleTimeStamp()
		m.statusLine = "Timestamp " + onOff(m.settings.TimeStamp) + "."
		m.errorLine = ""
		return m, m.saveSettingsCmd()
	case "ctrl+l":
		m.settings.ToggleTheme()
		m.statusLine = fmt.Sprintf("Theme %s.", m.settings.Theme)
		m.errorLine = ""
		return m, m.saveSettingsCmd()
	case "ctrl+g":
		m.settings.ToggleCollapsed()
		var cmd tea.Cmd
		if m.settings.Collapsed && m.focus != focusNote {
			cmd = m.setFocus(focusNote)
		}
		return m, tea.Batch(cmd, m.saveSettingsCmd())
	case "ctrl+w":
		return m.applyFields()
	}
	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusNote {
		m.note, cmd = m.note.Update(msg)
		return m, cmd
	}
	i := m.focus - 1
	m.fields[i], cmd = m.fields[i].Update(msg)
	return m, cmd
}

func (m Model) cycleFocus(delta int) (tea.Model, tea.Cmd) {
	count := focusCount
	if m.settings.Collapsed {
		count = 1
	}
	next := ((m.focus+delta)%count + count) % count
	cmd := m.setFocus(next)
	return m, cmd
}

func (m *Model) setFocus(target int) tea.Cmd {
	m.focus = target
	m.note.Blur()
	for i := range m.fields {
		m.fields[i].Blur()
	}
	if target == focusNote {
		return m.note.Focus()
	}
	return m.fields[target-1].Focus()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	text := m.note.Value()
	m.settings.QuickAddText = text
	req := quickadd.Request{Settings: *m.settings, Text: text}

	m.saving = true
	m.statusLine = "Inserting..."
	m.errorLine = ""
	return m, m.addCmd(req)
}

func (m Model) handleAddResult(msg addResultMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	if msg.err != nil {
		m.errorLine = quickadd.Describe(msg.err)
		m.statusLine = ""
		m.logger.Warn().Err(msg.err).Msg("quick add failed")
		return m, nil
	}

	m.errorLine = ""
	m.statusLine = fmt.Sprintf("Added to %s.", msg.result.Target.Name)
	// Text typed while the insert ran is kept.
	if m.note.Value() == msg.text {
		m.note.Reset()
	}
	m.settings.QuickAddText = m.note.Value()
	return m, m.saveSettingsCmd()
}

func (m Model) applyFields() (tea.Model, tea.Cmd) {
	for i, key := range fieldKeys {
		if err := m.settings.Set(key, m.fields[i].Value()); err != nil {
			m.errorLine = err.Error()
			return m, nil
		}
	}
	m.fields[0].SetValue(m.settings.VaultDir)
	m.refreshTarget()
	m.statusLine = "Settings saved."
	m.errorLine = ""
	return m, m.saveSettingsCmd()
}

func (m *Model) refreshTarget() {
	if m.service == nil {
		return
	}
	target, err := m.service.Resolve(*m.settings, m.now())
	switch {
	case err != nil:
		m.target = ""
	case !target.Exists:
		m.target = target.Name + " (missing)"
	default:
		m.target = target.Name
	}
}

func (m Model) addCmd(req quickadd.Request) tea.Cmd {
	service := m.service
	ctx := m.ctx
	return func() tea.Msg {
		res, err := service.Add(ctx, req)
		return addResultMsg{text: req.Text, result: res, err: err}
	}
}

func (m Model) saveSettingsCmd() tea.Cmd {
	if m.settingsPath == "" {
		return nil
	}
	snapshot := *m.settings
	path := m.settingsPath
	return func() tea.Msg {
		return settingsSavedMsg{err: snapshot.Save(path)}
	}
}

// View renders the frame.
func (m Model) View() string {
	p := paletteFor(m.settings.Theme)
	var b strings.Builder

	b.WriteString(p.title.Render("Quick Daily"))
	if m.target != "" {
		b.WriteString(p.muted.Render("  " + m.target))
	}
	b.WriteString("\n")

	noteBox := p.box
	if m.focus == focusNote {
		noteBox = p.focused
	}
	b.WriteString(noteBox.Render(m.note.View()))
	b.WriteString("\n")

	if !m.settings.Collapsed {
		for i, field := range m.fields {
			marker := "  "
			if m.focus == i+1 {
				marker = "> "
			}
			b.WriteString(marker)
			b.WriteString(p.label.Render(fieldLabels[i]))
			b.WriteString(field.View())
			b.WriteString("\n")
		}
	}

	b.WriteString(p.muted.Render(fmt.Sprintf("timestamp %s · theme %s", onOff(m.settings.TimeStamp), m.settings.Theme)))
	b.WriteString("\n")

	if m.errorLine != "" {
		b.WriteString(p.failure.Render("! " + m.errorLine))
		b.WriteString("\n")
	} else if m.statusLine != "" {
		b.WriteString(p.success.Render(m.statusLine))
		b.WriteString("\n")
	}

	b.WriteString(p.muted.Render("ctrl+s insert  tab focus  ctrl+w save settings  ctrl+t timestamp  ctrl+l theme  ctrl+g collapse  esc quit"))
	b.WriteString("\n")

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
