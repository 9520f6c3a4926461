package logger

import (
	"log/slog"
	"os"
)

// ConsoleLogger is an implementation of Logger that logs text lines to stdout.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &ConsoleLogger{slogLogger{logger: slog.New(handler)}}
}

// Fatal logs a fatal message and exits.
func (l *ConsoleLogger) Fatal(args ...interface{}) {
	l.Error(args...)
	os.Exit(1)
}

// Panic logs a panic message and panics.
func (l *ConsoleLogger) Panic(args ...interface{}) {
	msg, _ := splitArgs(args...)
	l.Error(args...)
	panic(msg)
}
