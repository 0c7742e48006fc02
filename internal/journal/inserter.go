package journal

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/faizmokh/quickdaily/internal/files"
)

// Insertion describes a completed insert.
type Insertion struct {
	Section Section
	// Line is the index of the blank separator line that was inserted.
	Line int
	Text string
}

// Inserter appends text to the end of a heading-delimited block.
type Inserter struct {
	now    func() time.Time
	logger zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Option customizes an Inserter.
type Option func(*Inserter)

// WithClock overrides the clock used for timestamp suffixes.
func WithClock(now func() time.Time) Option {
	return func(in *Inserter) {
		in.now = now
	}
}

// WithLogger attaches a logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(in *Inserter) {
		in.logger = logger.With().Str("component", "journal").Logger()
	}
}

// NewInserter wires an Inserter using the local clock and a no-op logger.
func NewInserter(opts ...Option) *Inserter {
	in := &Inserter{
		now:    time.Now,
		logger: zerolog.Nop(),
		locks:  make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Insert reads path, finds the block titled heading and inserts a blank line
// followed by text right before the next heading (or at end of file). With
// appendTimestamp the text gets a " [HH:MM:SS]" suffix. The file is left
// untouched when the block is missing.
func (in *Inserter) Insert(ctx context.Context, path, heading, text string, appendTimestamp bool) (Insertion, error) {
	if err := ctx.Err(); err != nil {
		return Insertion{}, err
	}

	unlock := in.lock(path)
	defer unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return Insertion{}, &IOError{Op: "read", Path: path, Err: err}
	}

	doc := ParseDocument(data)
	section, err := FindBlock(doc.Lines, heading)
	if err != nil {
		in.logger.Debug().Str("path", path).Str("heading", heading).Msg("block missing")
		return Insertion{}, err
	}

	if appendTimestamp {
		text = WithTimestamp(text, in.now())
	}

	lines := append([]string{""}, splitText(text)...)
	doc.Insert(section.End, lines...)

	if err := ctx.Err(); err != nil {
		return Insertion{}, err
	}
	if err := files.WriteFileAtomic(path, doc.Bytes()); err != nil {
		return Insertion{}, &IOError{Op: "write", Path: path, Err: err}
	}

	in.logger.Info().
		Str("path", path).
		Str("heading", section.Heading).
		Int("line", section.End).
		Msg("inserted text")

	return Insertion{Section: section, Line: section.End, Text: text}, nil
}

// WithTimestamp appends " [HH:MM:SS]" in 24-hour local time.
func WithTimestamp(text string, at time.Time) string {
	return strings.TrimRight(text, "\r\n") + " [" + at.Format("15:04:05") + "]"
}

// lock serializes writers of the same path.
func (in *Inserter) lock(path string) func() {
	in.mu.Lock()
	m, ok := in.locks[path]
	if !ok {
		m = &sync.Mutex{}
		in.locks[path] = m
	}
	in.mu.Unlock()

	m.Lock()
	return m.Unlock
}
