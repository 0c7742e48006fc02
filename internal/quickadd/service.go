// Package quickadd ties the pieces together: it validates preferences,
// resolves today's daily file and inserts text into the configured block.
package quickadd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/faizmokh/quickdaily/internal/config"
	"github.com/faizmokh/quickdaily/internal/dailyfmt"
	"github.com/faizmokh/quickdaily/internal/files"
	"github.com/faizmokh/quickdaily/internal/journal"
)

// Inserter is the block insertion step. *journal.Inserter satisfies it.
type Inserter interface {
	Insert(ctx context.Context, path, heading, text string, appendTimestamp bool) (journal.Insertion, error)
}

// Service runs quick-add requests.
type Service struct {
	inserter Inserter
	now      func() time.Time
	logger   zerolog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the clock used when a request carries no time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLogger attaches a logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger.With().Str("component", "quickadd").Logger()
	}
}

// NewService wires a Service around inserter.
func NewService(inserter Inserter, opts ...Option) *Service {
	s := &Service{
		inserter: inserter,
		now:      time.Now,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Request is one quick-add action.
type Request struct {
	Settings config.Settings
	Text     string
	// At selects the daily file; zero means now.
	At time.Time
}

// Target is the daily file a template resolves to.
type Target struct {
	Name   string
	Path   string
	Exists bool
}

// Result reports a successful insert.
type Result struct {
	Target    Target
	Insertion journal.Insertion
}

// Validate reports the first unset preference the quick-add flow needs.
func Validate(settings config.Settings) error {
	switch {
	case strings.TrimSpace(settings.VaultDir) == "":
		return &ConfigMissingError{Field: "vault directory"}
	case settings.DailyFormat == "":
		return &ConfigMissingError{Field: "daily format"}
	case strings.TrimSpace(settings.BlockName) == "":
		return &ConfigMissingError{Field: "block name"}
	}
	return nil
}

// Resolve computes the daily file for at without writing anything.
func (s *Service) Resolve(settings config.Settings, at time.Time) (Target, error) {
	if strings.TrimSpace(settings.VaultDir) == "" {
		return Target{}, &ConfigMissingError{Field: "vault directory"}
	}
	if settings.DailyFormat == "" {
		return Target{}, &ConfigMissingError{Field: "daily format"}
	}
	if at.IsZero() {
		at = s.now()
	}

	vault, err := files.NewVault(settings.VaultDir)
	if err != nil {
		return Target{}, err
	}

	name := dailyfmt.Resolve(settings.DailyFormat, at, settings.DailyLocale())
	path := vault.DailyPath(name)
	exists, err := files.Exists(path)
	if err != nil {
		return Target{}, &journal.IOError{Op: "stat", Path: path, Err: err}
	}

	return Target{Name: name + files.DailyExt, Path: path, Exists: exists}, nil
}

// Add validates the request, checks the daily file exists and inserts the
// text into the configured block. Nothing is written on any failure.
func (s *Service) Add(ctx context.Context, req Request) (Result, error) {
	if err := Validate(req.Settings); err != nil {
		return Result{}, err
	}
	if strings.TrimSpace(req.Text) == "" {
		return Result{}, ErrEmptyInput
	}

	target, err := s.Resolve(req.Settings, req.At)
	if err != nil {
		return Result{}, err
	}
	if !target.Exists {
		s.logger.Warn().Str("path", target.Path).Msg("daily file missing")
		return Result{Target: target}, fmt.Errorf("%w: %s", ErrFileNotFound, target.Path)
	}

	ins, err := s.inserter.Insert(ctx, target.Path, req.Settings.BlockName, req.Text, req.Settings.TimeStamp)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", target.Path).Str("block", req.Settings.BlockName).Msg("insert failed")
		return Result{Target: target}, err
	}

	s.logger.Info().Str("path", target.Path).Bool("timestamp", req.Settings.TimeStamp).Msg("quick add")
	return Result{Target: target, Insertion: ins}, nil
}
