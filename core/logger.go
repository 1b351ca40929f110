package core

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger is the sink for non-fatal diagnostics: unknown annotation keys,
// missing uncertainty definitions and similar soft failures.
type Logger interface {
	Debug(msg string)
	Debugf(format string, args ...any)
	Info(msg string)
	Infof(format string, args ...any)
	Warn(msg string)
	Warnf(format string, args ...any)
	Error(msg string)
	Errorf(format string, args ...any)
}

var logger Logger = NewStderrLogger(slog.LevelWarn)

// SetLogger replaces the package logger. Passing nil restores the default
// stderr logger.
func SetLogger(l Logger) {
	if l == nil {
		l = NewStderrLogger(slog.LevelWarn)
	}
	logger = l
}

// Log returns the package logger for use by the sibling packages.
func Log() Logger {
	return logger
}

var _ Logger = (*slogLogger)(nil)

type slogLogger struct {
	l *slog.Logger
}

// NewStderrLogger returns a Logger writing slog text records to stderr.
func NewStderrLogger(level slog.Level) Logger {
	return &slogLogger{
		l: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
}

func (s *slogLogger) Debug(msg string)                  { s.l.Debug(msg) }
func (s *slogLogger) Debugf(format string, args ...any) { s.l.Debug(fmt.Sprintf(format, args...)) }
func (s *slogLogger) Info(msg string)                   { s.l.Info(msg) }
func (s *slogLogger) Infof(format string, args ...any)  { s.l.Info(fmt.Sprintf(format, args...)) }
func (s *slogLogger) Warn(msg string)                   { s.l.Warn(msg) }
func (s *slogLogger) Warnf(format string, args ...any)  { s.l.Warn(fmt.Sprintf(format, args...)) }
func (s *slogLogger) Error(msg string)                  { s.l.Error(msg) }
func (s *slogLogger) Errorf(format string, args ...any) { s.l.Error(fmt.Sprintf(format, args...)) }
