package logging

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	// LogDir is the directory for log files; empty disables file logging.
	LogDir string

	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string

	// MaxSizeMB is the max size in MB before rotation (default: 10).
	MaxSizeMB int

	// MaxBackups is rotated files to keep (default: 3).
	MaxBackups int
}

var (
	mu      sync.RWMutex
	current slog.Handler = slog.NewTextHandler(io.Discard, nil)
)

// Init initializes the global logging system. Without a log dir all output
// is discarded; a TUI cannot log to stderr while it owns the terminal.
func Init(cfg Config) {
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var w io.Writer = io.Discard
	if cfg.LogDir != "" {
		w = &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogDir, "browser.log"),
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		}
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	mu.Lock()
	current = h
	mu.Unlock()
}

func handler() slog.Handler {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// ForComponent returns a logger tagged with a component attribute. Safe to
// call from package initializers; output follows later Init calls.
func ForComponent(name string) *slog.Logger {
	return slog.New(&forwarder{attrs: []slog.Attr{slog.String("component", name)}})
}

// forwarder delegates to the handler installed by Init at log time rather
// than at logger-construction time.
type forwarder struct {
	attrs  []slog.Attr
	groups []string
}

func (f *forwarder) Enabled(ctx context.Context, level slog.Level) bool {
	return handler().Enabled(ctx, level)
}

func (f *forwarder) Handle(ctx context.Context, r slog.Record) error {
	h := handler()
	if len(f.attrs) > 0 {
		h = h.WithAttrs(f.attrs)
	}
	for _, g := range f.groups {
		h = h.WithGroup(g)
	}
	return h.Handle(ctx, r)
}

func (f *forwarder) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(f.attrs)+len(attrs))
	merged = append(merged, f.attrs...)
	merged = append(merged, attrs...)
	return &forwarder{attrs: merged, groups: f.groups}
}

func (f *forwarder) WithGroup(name string) slog.Handler {
	groups := make([]string, 0, len(f.groups)+1)
	groups = append(groups, f.groups...)
	groups = append(groups, name)
	return &forwarder{attrs: f.attrs, groups: groups}
}
