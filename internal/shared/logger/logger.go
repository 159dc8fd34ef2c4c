// Package logger wraps log/slog with a tint console handler for local runs
// and a JSON handler for production.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/nhadat/marketplace/internal/shared/config"
)

var (
	mu      sync.Mutex
	process *slog.Logger
)

// Init installs the process logger. debug adds source locations to every
// level; otherwise only warnings and errors carry them.
func Init(cfg *config.LoggerConfig, debug bool) error {
	out, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}
	level := ParseLevel(cfg.Level)

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	} else {
		h = consoleHandler(out, level)
	}

	withSource := []slog.Level{slog.LevelWarn, slog.LevelError}
	if debug {
		withSource = append(withSource, slog.LevelDebug, slog.LevelInfo)
	}
	install(slog.New(NewConditionalSourceHandler(h, withSource...)))
	return nil
}

func install(l *slog.Logger) {
	mu.Lock()
	process = l
	mu.Unlock()
	slog.SetDefault(l)
}

// ParseLevel falls back to info for unknown names.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func consoleHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if err, ok := a.Value.Any().(error); ok && a.Key == "error" {
				return tint.Err(err)
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Get returns the process logger. Before Init it lazily builds an info-level
// console logger so CLI helpers and tests can log.
func Get() *slog.Logger {
	mu.Lock()
	l := process
	mu.Unlock()
	if l != nil {
		return l
	}
	l = slog.New(NewConditionalSourceHandler(consoleHandler(os.Stdout, slog.LevelInfo), slog.LevelWarn, slog.LevelError))
	install(l)
	return l
}

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }
