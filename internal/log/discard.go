package log

import "log/slog"

// Discard is a logger that drops all messages.
var Discard = &Logger{slog.New(slog.DiscardHandler)}
