// Package notify is the port through which the core surfaces transient
// operator-facing messages. The console frontend renders them; here they are
// only emitted.
package notify

import "log/slog"

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

type Sink interface {
	Notify(level Level, msg string)
}

// Log writes notifications to the structured log. The default sink.
type Log struct {
	Logger *slog.Logger
}

func (l *Log) Notify(level Level, msg string) {
	switch level {
	case LevelError:
		l.Logger.Error("notification", "msg", msg)
	case LevelWarning:
		l.Logger.Warn("notification", "msg", msg)
	default:
		l.Logger.Info("notification", "msg", msg)
	}
}
