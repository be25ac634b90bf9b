// Package cli implements the archdiagram command-line interface.
//
// The default command renders the architecture diagram to architecture.svg
// in the working directory. Subcommands adjust output through flags or a
// config file, dump the diagram structure, and list the node palette.
//
// # Commands
//
//   - render: Render with overrides (--format, --direction, --config, ...)
//   - inspect: Print the declared nodes, clusters and edges as JSON, YAML or DOT
//   - kinds: List the node kinds the palette knows
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and diagram build and render events reach
// the same logger through observability hooks.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ccu3/archdiagram/pkg/observability"
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

// done logs msg along with the elapsed time, e.g. "Rendered architecture.svg (412ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Diagram Hooks
// =============================================================================

// logHooks reports diagram events through the CLI logger.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) observability.DiagramHooks {
	return logHooks{logger: l}
}

func (h logHooks) OnBuildComplete(_ context.Context, name string, stats observability.BuildStats, err error) {
	if err != nil {
		h.logger.Error("Diagram declaration failed", "diagram", name, "err", err)
		return
	}
	h.logger.Debug("Diagram declared", "diagram", name,
		"nodes", stats.Nodes, "clusters", stats.Clusters, "edges", stats.Edges)
}

func (h logHooks) OnRenderStart(_ context.Context, name, format string) {
	h.logger.Debug("Rendering", "diagram", name, "format", format)
}

func (h logHooks) OnRenderComplete(_ context.Context, name, format string, size int, elapsed time.Duration, err error) {
	if err != nil {
		h.logger.Error("Render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("Rendered", "format", format, "bytes", size, "elapsed", elapsed.Round(time.Millisecond))
}

func (h logHooks) OnWrite(_ context.Context, path string, size int, err error) {
	if err != nil {
		h.logger.Error("Write failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("Wrote", "path", path, "bytes", size)
}
