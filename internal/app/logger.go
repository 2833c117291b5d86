// Package app holds the ambient application layer: logging, path
// resolution, and read-only configuration access.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Logger is the logging interface used across the module.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// stderrLogger writes leveled lines to stderr. Everything below the
// configured level is dropped; stdout stays reserved for command output.
type stderrLogger struct {
	output io.Writer
	level  int
}

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

// NewStderrLogger creates a logger filtering below the named level.
// Unknown names default to "info".
func NewStderrLogger(level string) Logger {
	return &stderrLogger{output: os.Stderr, level: parseLevel(level)}
}

func parseLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (l *stderrLogger) log(level int, prefix, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	fmt.Fprintf(l.output, prefix+format+"\n", args...)
}

func (l *stderrLogger) Debug(format string, args ...interface{}) {
	l.log(levelDebug, "DEBUG: ", format, args...)
}

func (l *stderrLogger) Info(format string, args ...interface{}) {
	l.log(levelInfo, "INFO: ", format, args...)
}

func (l *stderrLogger) Warn(format string, args ...interface{}) {
	l.log(levelWarn, "WARN: ", format, args...)
}

func (l *stderrLogger) Error(format string, args ...interface{}) {
	l.log(levelError, "ERROR: ", format, args...)
}

// globalLogger is the logger instance shared across packages.
var globalLogger Logger = NewStderrLogger("info")

// SetLogger replaces the global logger. Nil is ignored.
func SetLogger(logger Logger) {
	if logger != nil {
		globalLogger = logger
	}
}

// GetLogger returns the current global logger.
func GetLogger() Logger {
	return globalLogger
}
