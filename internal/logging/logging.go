// Package logging provides the structured logger used by the wgolf command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Logger wraps slog.Logger with ladder-specific helpers.
type Logger struct {
	*slog.Logger
	closers []io.Closer
}

// New creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Leveler) *Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return New(slog.DiscardHandler)
}

// WithFile returns a Logger that writes every record both to l's handler
// and, as JSON, to the file at path. The file is appended to and created
// if missing. Close releases it.
func (l *Logger) WithFile(path string, level slog.Leveler) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	fileHandler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger:  slog.New(slogmulti.Fanout(l.Handler(), fileHandler)),
		closers: append(append([]io.Closer(nil), l.closers...), f),
	}, nil
}

// Close releases files opened by WithFile.
func (l *Logger) Close() error {
	var first error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	l.closers = nil
	return first
}

// WithWords adds the start and goal words to the logger.
func (l *Logger) WithWords(start, goal string) *Logger {
	return &Logger{
		Logger:  l.Logger.With("start", start, "goal", goal),
		closers: l.closers,
	}
}

// LogLoad logs a dictionary load.
func (l *Logger) LogLoad(path string, words, length int, err error) {
	if err != nil {
		l.Error("dictionary load failed",
			"path", path,
			"length", length,
			"error", err,
		)
		return
	}
	l.Info("dictionary loaded",
		"path", path,
		"words", words,
		"length", length,
	)
}

// LogSolve logs the outcome of one ladder search.
func (l *Logger) LogSolve(state string, steps, explored int, err error) {
	if err != nil {
		l.Error("ladder search failed", "error", err)
		return
	}
	l.Info("ladder search completed",
		"state", state,
		"steps", steps,
		"explored", explored,
	)
}
