// Package cli implements the csvplot command-line interface.
//
// This package provides commands for rendering CSV measurement tables as
// PNG line charts and for listing their rows. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - gen: Render a CSV file as a combined or split chart
//   - list: Print the rows of a CSV file as name=value pairs
//   - completion: Generate shell completion scripts
//
// # Configuration
//
// Defaults for gen come from an optional TOML file at --config or
// $XDG_CONFIG_HOME/csvplot/config.toml. Flags set on the command line win.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports each pipeline stage as it completes. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/csvplot/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Rendered chart (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// StageLogger reports pipeline stages at debug level. Register it with
// observability.SetPipelineHooks.
type StageLogger struct {
	logger *log.Logger
}

// NewStageLogger returns hooks that log to l.
func NewStageLogger(l *log.Logger) *StageLogger {
	return &StageLogger{logger: l}
}

var _ observability.PipelineHooks = (*StageLogger)(nil)

func (s *StageLogger) OnLoadStart(_ context.Context, path string) {
	s.logger.Debug("load started", "path", path)
}

func (s *StageLogger) OnLoadComplete(_ context.Context, path string, rows, columns int, d time.Duration, err error) {
	s.complete("load", d, err, "path", path, "rows", rows, "columns", columns)
}

func (s *StageLogger) OnLayoutStart(_ context.Context, strategy string, columns int) {
	s.logger.Debug("layout started", "strategy", strategy, "columns", columns)
}

func (s *StageLogger) OnLayoutComplete(_ context.Context, strategy string, panels int, d time.Duration, err error) {
	s.complete("layout", d, err, "strategy", strategy, "panels", panels)
}

func (s *StageLogger) OnDrawStart(_ context.Context, width, height int) {
	s.logger.Debug("draw started", "width", width, "height", height)
}

func (s *StageLogger) OnDrawComplete(_ context.Context, width, height int, d time.Duration, err error) {
	s.complete("draw", d, err, "width", width, "height", height)
}

func (s *StageLogger) OnPresentStart(_ context.Context, path string) {
	s.logger.Debug("present started", "path", path)
}

func (s *StageLogger) OnPresentComplete(_ context.Context, path string, d time.Duration, err error) {
	s.complete("present", d, err, "path", path)
}

func (s *StageLogger) complete(stage string, d time.Duration, err error, kv ...any) {
	kv = append(kv, "duration", d.Round(time.Microsecond))
	if err != nil {
		s.logger.Debug(stage+" failed", append(kv, "err", err)...)
		return
	}
	s.logger.Debug(stage+" done", kv...)
}
