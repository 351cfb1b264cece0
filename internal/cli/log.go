// Package cli implements the pprep command-line interface.
//
// The commands prepare photos for print formats, scale them, list inputs
// with their metadata and manage the metadata cache. The CLI is built on
// cobra; all commands log through charmbracelet/log and accept --verbose (-v)
// for debug output.
//
// # Commands
//
//   - prepare: lay photos out on a print format and render them
//   - scale: resize photos to a size or by a factor
//   - list: print matched files, optionally with EXIF data
//   - cache: clear or locate the metadata cache
//
// # Configuration
//
// Flag values come from, in order of precedence: the command line, a TOML
// job file given with --config, PPREP_* environment variables (also read
// from a .env file) and built-in defaults.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// timer logs the completion of a batch with its elapsed duration.
type timer struct {
	logger *log.Logger
	start  time.Time
}

func newTimer(l *log.Logger) *timer {
	return &timer{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Prepared 12 files (3.2s)".
func (t *timer) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(t.start).Round(time.Millisecond))
	t.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger stored in ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
