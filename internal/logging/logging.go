package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is the process-wide logger. Setup replaces it.
var Logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})

// Setup configures the process-wide logger.
// A nil writer means stderr.
func Setup(verbose, jsonOutput bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	opts := log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: jsonOutput,
		TimeFormat:      time.RFC3339,
		Formatter:       log.TextFormatter,
	}
	if verbose {
		opts.Level = log.DebugLevel
	}
	if jsonOutput {
		opts.Formatter = log.JSONFormatter
	}

	Logger = log.NewWithOptions(w, opts)
}

// Debug logs at debug level.
func Debug(msg string, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs at info level.
func Info(msg string, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs at warn level.
func Warn(msg string, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs at error level.
func Error(msg string, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// With returns a child logger carrying the given key/value pairs.
func With(keyvals ...interface{}) *log.Logger {
	return Logger.With(keyvals...)
}
