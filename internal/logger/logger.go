// Package logger provides leveled logging for the planet commands.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger writes INFO and WARN lines to one writer and ERROR lines to
// another.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// New creates a logger writing to stdout and stderr with the given tag,
// e.g. "planet-stream".
func New(tag string) *Logger {
	return NewWithWriters(tag, os.Stdout, os.Stderr)
}

// NewWithWriters creates a logger with explicit destinations.
func NewWithWriters(tag string, out, errOut io.Writer) *Logger {
	flags := log.Ldate | log.Ltime
	return &Logger{
		infoLogger:  log.New(out, fmt.Sprintf("[%s] INFO ", tag), flags),
		warnLogger:  log.New(out, fmt.Sprintf("[%s] WARN ", tag), flags),
		errorLogger: log.New(errOut, fmt.Sprintf("[%s] ERROR ", tag), flags),
	}
}

// Info logs informational messages.
func (l *Logger) Info(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

// Warn logs warning messages.
func (l *Logger) Warn(format string, args ...any) {
	l.warnLogger.Printf(format, args...)
}

// Error logs error messages.
func (l *Logger) Error(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}

// Fatal logs an error and exits with status 1.
func (l *Logger) Fatal(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
	os.Exit(1)
}

// Event logs a simulation event such as a volcano starting, tagged with the
// tick it happened on.
func (l *Logger) Event(kind string, tick uint64, details string) {
	l.infoLogger.Printf("[EVENT:%s] tick:%d | %s", kind, tick, details)
}
