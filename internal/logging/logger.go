package logging

import (
	"fmt"
	"log"
	"strings"
)

// Level represents the logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel parses a case-insensitive level name. Unknown names map to info.
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger provides leveled logging on top of a standard library *log.Logger.
type Logger struct {
	level Level
	out   *log.Logger
}

// New creates a logger writing through the default std logger.
func New(level string) *Logger {
	return &Logger{level: ParseLevel(level), out: log.Default()}
}

// NewWithOutput creates a logger writing through out.
func NewWithOutput(level string, out *log.Logger) *Logger {
	if out == nil {
		out = log.Default()
	}
	return &Logger{level: ParseLevel(level), out: out}
}

// Level reports the minimum level that is emitted.
func (l *Logger) Level() Level { return l.level }

func (l *Logger) enabled(level Level) bool {
	return l != nil && level >= l.level
}

func (l *Logger) printf(level Level, tag, format string, v ...any) {
	if !l.enabled(level) {
		return
	}
	l.out.Printf("["+tag+"] "+format, v...)
}

// Debugf logs a debug message.
func (l *Logger) Debugf(format string, v ...any) { l.printf(LevelDebug, "DEBUG", format, v...) }

// Infof logs an info message.
func (l *Logger) Infof(format string, v ...any) { l.printf(LevelInfo, "INFO", format, v...) }

// Warnf logs a warning message.
func (l *Logger) Warnf(format string, v ...any) { l.printf(LevelWarn, "WARN", format, v...) }

// Errorf logs an error message.
func (l *Logger) Errorf(format string, v ...any) { l.printf(LevelError, "ERROR", format, v...) }

// Fatalf logs an error message and exits.
func (l *Logger) Fatalf(format string, v ...any) {
	out := log.Default()
	if l != nil && l.out != nil {
		out = l.out
	}
	out.Fatalf("[FATAL] "+format, v...)
}

// Info logs an info message built with fmt.Sprint.
func (l *Logger) Info(v ...any) {
	if l.enabled(LevelInfo) {
		l.out.Print("[INFO] ", fmt.Sprint(v...))
	}
}
