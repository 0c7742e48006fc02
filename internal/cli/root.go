package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/faizmokh/quickdaily/internal/config"
	"github.com/faizmokh/quickdaily/internal/files"
	"github.com/faizmokh/quickdaily/internal/journal"
	"github.com/faizmokh/quickdaily/internal/logging"
	"github.com/faizmokh/quickdaily/internal/quickadd"
	"github.com/faizmokh/quickdaily/internal/ui"
	"github.com/faizmokh/quickdaily/internal/version"
)

// state is shared by every subcommand of one invocation.
type state struct {
	settingsPath  string
	verbose       bool
	logger        zerolog.Logger
	now           func() time.Time
	stdin         io.Reader
	readClipboard func() (string, error)
}

func newState(settingsPath string) *state {
	return &state{
		settingsPath:  settingsPath,
		logger:        zerolog.Nop(),
		now:           time.Now,
		stdin:         os.Stdin,
		readClipboard: clipboard.ReadAll,
	}
}

func (s *state) loadSettings() (*config.Settings, error) {
	if s.settingsPath == "" {
		return nil, errors.New("settings path unknown; pass --config")
	}
	settings, err := config.Load(s.settingsPath)
	if errors.Is(err, config.ErrMalformedSettings) {
		s.logger.Warn().Err(err).Str("path", s.settingsPath).Msg("using default settings")
		return settings, nil
	}
	return settings, err
}

func (s *state) service() *quickadd.Service {
	inserter := journal.NewInserter(journal.WithClock(s.now), journal.WithLogger(s.logger))
	return quickadd.NewService(inserter, quickadd.WithClock(s.now), quickadd.WithLogger(s.logger))
}

// NewRootCommand creates the top-level Cobra command hosting the subcommands and the panel launcher.
func NewRootCommand(ctx context.Context, settingsPath string) *cobra.Command {
	return newRootCommand(ctx, newState(settingsPath))
}

func newRootCommand(ctx context.Context, st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quickdaily",
		Short:   "Append quick notes to a block of today's daily note.",
		Version: version.Info(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			st.logger = logging.NewConsole(cmd.ErrOrStderr(), st.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPanel(ctx, st)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&st.settingsPath, "config", st.settingsPath, "Path to the settings file")
	cmd.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "Log debug output to stderr")

	cmd.AddCommand(
		newAddCommand(ctx, st),
		newPathCommand(ctx, st),
		newBlocksCommand(ctx, st),
		newResolveCommand(ctx, st),
		newTokensCommand(ctx, st),
		newConfigCommand(ctx, st),
	)

	return cmd
}

// runPanel logs to a file because the terminal belongs to the panel.
func runPanel(ctx context.Context, st *state) error {
	logFile, err := logging.OpenFile(st.settingsPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	st.logger = logging.New(logFile, st.verbose)

	settings, err := st.loadSettings()
	if err != nil {
		return err
	}

	m := ui.NewModel(ctx, ui.Options{
		Service:      st.service(),
		Settings:     settings,
		SettingsPath: st.settingsPath,
		Logger:       st.logger,
		Now:          st.now,
	})
	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	settingsPath, err := files.ResolveSettingsPath()
	if err != nil {
		return err
	}
	return NewRootCommand(ctx, settingsPath).Execute()
}

// Main is a helper used by cmd/quickdaily/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", quickadd.Describe(err))
		os.Exit(1)
	}
}
