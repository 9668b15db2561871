// Package log provides a leveled logger for the huffcode command.
// Messages are single lines of the form
//
//	LEVEL [name] message key=value ...
//
// intended to be read by people, not machines.
package log

import (
	"io"
	"log/slog"
	"sync"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Warn  = slog.LevelWarn
	Error = slog.LevelError
)

// Logger is a leveled logger.
type Logger struct{ *slog.Logger }

// New builds a logger that writes messages at lvl and above to w.
func New(w io.Writer, lvl Level) *Logger {
	return &Logger{slog.New(&handler{
		W:     w,
		Level: lvl,
		mu:    new(sync.Mutex),
	})}
}

// WithName builds a new logger with the provided name.
// Names of nested loggers are joined with '.'.
// The returned logger is safe to use concurrently with this logger.
func (l *Logger) WithName(name string) *Logger {
	h, ok := l.Handler().(*handler)
	if !ok {
		return l
	}
	return &Logger{slog.New(h.withName(name))}
}

// OmitEmpty builds an attribute with fn unless value is the zero value,
// in which case it returns an empty attribute that loggers skip.
//
//	logger.Info("done", log.OmitEmpty(slog.String, "file", path))
func OmitEmpty[T comparable](fn func(string, T) slog.Attr, key string, value T) slog.Attr {
	var zero T
	if value == zero {
		return slog.Attr{}
	}
	return fn(key, value)
}
