package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/overlay/pkg/observability"
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

// done logs msg along with the elapsed time since progress was created.
// Example output: "Parsed 12 shapes (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// parseLogger reports parser events through a logger. Dropped blocks and
// ignored lines are warnings; accepted shapes are debug output.
type parseLogger struct {
	logger *log.Logger
	source string
}

func (p parseLogger) OnShape(line int, kind string, count int) {
	p.logger.Debug("shape", "source", p.source, "line", line, "kind", kind, "total", count)
}

func (p parseLogger) OnDiagnostic(line int, err error) {
	p.logger.Warn("dropped", "source", p.source, "line", line, "err", err)
}

func (p parseLogger) OnParseComplete(shapes, diagnostics int, d time.Duration, err error) {
	p.logger.Debug("parse complete", "source", p.source, "shapes", shapes, "diagnostics", diagnostics, "duration", d)
}

var _ observability.ParseHooks = parseLogger{}

// ctxKey is the type for context keys used in this package.
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
