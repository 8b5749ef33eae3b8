// Package logger holds the process-wide structured logger.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// Environment variable name for log level configuration.
const envLogLevel = "PNGME_LOG_LEVEL"

var (
	atomicLevel = &dynamicLevel{v: int64(slog.LevelWarn)}

	mu       sync.Mutex
	global   *slog.Logger
	initOnce sync.Once
)

// dynamicLevel is an atomic Leveler.
type dynamicLevel struct{ v int64 }

func (d *dynamicLevel) Level() slog.Level { return slog.Level(atomic.LoadInt64(&d.v)) }
func (d *dynamicLevel) set(l slog.Level)  { atomic.StoreInt64(&d.v, int64(l)) }

// Init sets up the text logger on stderr with the level from PNGME_LOG_LEVEL
// (default warn). Safe to call multiple times; the first call wins.
func Init() {
	initOnce.Do(func() {
		if env := os.Getenv(envLogLevel); env != "" {
			if lvl, ok := parseLevel(env); ok {
				atomicLevel.set(lvl)
			}
		}
		mu.Lock()
		if global == nil {
			global = newLogger(os.Stderr, false)
		}
		mu.Unlock()
	})
}

func newLogger(w io.Writer, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: atomicLevel}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning", "":
		return slog.LevelWarn, true
	case "error", "err":
		return slog.LevelError, true
	}
	return 0, false
}

// SetLevel changes the runtime log level.
func SetLevel(level string) error {
	Init()
	lvl, ok := parseLevel(level)
	if !ok {
		return errors.New("invalid log level: " + level)
	}
	atomicLevel.set(lvl)
	return nil
}

// Level returns the current runtime level as string.
func Level() string {
	Init()
	return atomicLevel.Level().String()
}

// UseWriter swaps the output writer and handler format. Retains current level.
func UseWriter(w io.Writer, json bool) {
	Init()
	mu.Lock()
	global = newLogger(w, json)
	mu.Unlock()
}

// Logger returns the global logger.
func Logger() *slog.Logger {
	Init()
	mu.Lock()
	defer mu.Unlock()
	return global
}

func Debug(msg string, args ...any) { Logger().Debug(msg, args...) }
func Info(msg string, args ...any)  { Logger().Info(msg, args...) }
func Warn(msg string, args ...any)  { Logger().Warn(msg, args...) }
func Error(msg string, args ...any) { Logger().Error(msg, args...) }

// WithFile attaches the file path being operated on.
func WithFile(l *slog.Logger, path string) *slog.Logger {
	return l.With("file", path)
}
