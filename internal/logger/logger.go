// Package logger holds the process-wide diagnostic logger.
// Diagnostics go to stderr so they never mix with command output.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu            sync.RWMutex
	defaultLogger = newLogger(os.Stderr, log.WarnLevel)
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "tada",
	})
}

// ParseLevel maps a config string to a level; unknown values mean warn.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// Init replaces the default logger. Call it once the config is known.
func Init(w io.Writer, level string) {
	if w == nil {
		w = os.Stderr
	}
	SetLogger(newLogger(w, ParseLevel(level)))
}

// SetLogger swaps the default logger, mostly for tests.
func SetLogger(l *log.Logger) {
	mu.Lock()
	defaultLogger = l
	mu.Unlock()
}

func current() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

func Debug(msg string, args ...any) { current().Debug(msg, args...) }
func Info(msg string, args ...any)  { current().Info(msg, args...) }
func Warn(msg string, args ...any)  { current().Warn(msg, args...) }
func Error(msg string, args ...any) { current().Error(msg, args...) }
