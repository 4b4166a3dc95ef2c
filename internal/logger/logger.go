// Package logger builds the process logger and carries it on a context.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
)

type options struct {
	level   slog.Level
	format  string
	console io.Writer
	writer  io.Writer
}

type Option func(*options)

// WithLevel sets the minimum level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithFormat sets the output format: "text" or "json".
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithConsole replaces stderr as the console destination. A nil writer
// silences the console.
func WithConsole(w io.Writer) Option {
	return func(o *options) {
		o.console = w
	}
}

// WithWriter adds a second destination, usually a log file.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// New returns a logger fanning out to the console and the optional writer.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:   slog.LevelInfo,
		format:  "text",
		console: os.Stderr,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     o.level,
		AddSource: o.level == slog.LevelDebug,
	}

	var handlers []slog.Handler
	if o.console != nil {
		handlers = append(handlers, newHandler(o.console, o.format, handlerOpts))
	}
	if o.writer != nil {
		handlers = append(handlers, newHandler(o.writer, o.format, handlerOpts))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ParseLevel accepts debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

type contextKey struct{}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// WithLogger returns a new context carrying l.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the context's logger, or a logger that drops
// everything when none was set.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return l
	}
	return discard
}

// Info logs at info level with the context's logger.
func Info(ctx context.Context, msg string, tags ...any) {
	log(ctx, slog.LevelInfo, msg, tags...)
}

// Debug logs at debug level with the context's logger.
func Debug(ctx context.Context, msg string, tags ...any) {
	log(ctx, slog.LevelDebug, msg, tags...)
}

// Warn logs at warn level with the context's logger.
func Warn(ctx context.Context, msg string, tags ...any) {
	log(ctx, slog.LevelWarn, msg, tags...)
}

// Error logs at error level with the context's logger.
func Error(ctx context.Context, msg string, tags ...any) {
	log(ctx, slog.LevelError, msg, tags...)
}

// log records the caller of the exported helper as the source, not this file.
func log(ctx context.Context, level slog.Level, msg string, tags ...any) {
	l := FromContext(ctx)
	if !l.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip Callers, log and the helper
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(tags...)
	_ = l.Handler().Handle(ctx, r)
}
