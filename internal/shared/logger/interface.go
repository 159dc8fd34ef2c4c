package logger

import (
	"io"
	"log/slog"
)

// Interface is the logger handed to use cases, handlers and adapters.
// The *w variants take alternating key/value pairs.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Interface

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

type slogLogger struct {
	l *slog.Logger
}

func NewLogger() Interface {
	return &slogLogger{l: Get()}
}

// NewNopLogger discards everything.
func NewNopLogger() Interface {
	return &slogLogger{l: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) With(args ...any) Interface {
	return &slogLogger{l: s.l.With(args...)}
}

func (s *slogLogger) Debugw(msg string, kv ...any) { s.l.Debug(msg, kv...) }
func (s *slogLogger) Infow(msg string, kv ...any)  { s.l.Info(msg, kv...) }
func (s *slogLogger) Warnw(msg string, kv ...any)  { s.l.Warn(msg, kv...) }
func (s *slogLogger) Errorw(msg string, kv ...any) { s.l.Error(msg, kv...) }
