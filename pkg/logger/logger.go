// Package logger provides a small leveled logger writing to a file or
// stdout. Packages depend on a local three-method Logger interface and
// receive this implementation from main.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Level численный уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger leveled printf-style logger
type Logger struct {
	std   *log.Logger
	file  *os.File
	level Level
}

// New creates a logger writing to the given file path. An empty path or
// "stdout" writes to standard output. Level is one of debug, info,
// warn, error (case-insensitive); unknown values default to info.
func New(path, level string) (*Logger, error) {
	l := &Logger{level: parseLevel(level)}

	if path == "" || path == "stdout" {
		l.std = log.New(os.Stdout, "", log.LstdFlags)
		return l, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: failed to open log file %s: %w", path, err)
	}

	l.file = f
	l.std = log.New(f, "", log.LstdFlags)
	return l, nil
}

// Close releases the underlying file, if any
func (l *Logger) Close() {
	if l.file != nil {
		_ = l.file.Close()
	}
}

// Debug logs at debug level
func (l *Logger) Debug(format string, v ...interface{}) {
	l.logf(LevelDebug, "DEBUG", format, v...)
}

// Info logs at info level
func (l *Logger) Info(format string, v ...interface{}) {
	l.logf(LevelInfo, "INFO", format, v...)
}

// Warn logs at warn level
func (l *Logger) Warn(format string, v ...interface{}) {
	l.logf(LevelWarn, "WARN", format, v...)
}

// Error logs at error level
func (l *Logger) Error(format string, v ...interface{}) {
	l.logf(LevelError, "ERROR", format, v...)
}

// Fatal logs at error level and exits the process
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.logf(LevelError, "FATAL", format, v...)
	l.Close()
	os.Exit(1)
}

func (l *Logger) logf(level Level, tag, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.std.Printf("[%s] %s", tag, fmt.Sprintf(format, v...))
}

func parseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}
