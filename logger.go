package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a case-insensitive level name
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG, nil
	case "", "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger writes structured logs away from the terminal the UI draws on
type Logger struct {
	mu       sync.Mutex
	level    LogLevel
	logger   *slog.Logger
	file     *os.File
	errors   int
	warnings int
}

// NewLogger creates a logger writing to w
func NewLogger(level LogLevel, w io.Writer) *Logger {
	return &Logger{
		level: level,
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})),
	}
}

// NewFileLogger creates a logger writing to sidediff.log in the first
// writable candidate directory. If none can be opened it logs to stderr and
// also returns the error.
func NewFileLogger(level LogLevel) (*Logger, error) {
	var tried []string
	var lastErr error
	for _, dir := range logDirCandidates() {
		path := filepath.Join(dir, "sidediff.log")
		tried = append(tried, path)
		file, err := openLogFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		logger := NewLogger(level, file)
		logger.file = file
		return logger, nil
	}
	return NewLogger(level, os.Stderr), fmt.Errorf("failed to open log file (tried %s): %w", strings.Join(tried, ", "), lastErr)
}

func logDirCandidates() []string {
	var dirs []string
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		dirs = append(dirs, filepath.Join(state, "sidediff"))
	} else if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "state", "sidediff"))
	}
	return append(dirs, os.TempDir())
}

func openLogFile(path string) (*os.File, error) {
	const logFilePermission = 0o644
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
}

func (l *Logger) log(level LogLevel, msg string, err error, fields map[string]any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}
	switch level {
	case ERROR:
		l.errors++
	case WARN:
		l.warnings++
	}

	args := make([]any, 0, 2*len(fields)+2)
	if err != nil {
		args = append(args, "error", err)
	}
	for _, key := range sortedFieldKeys(fields) {
		args = append(args, key, fields[key])
	}
	l.logger.Log(context.Background(), toSlogLevel(level), msg, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]any) {
	l.log(DEBUG, msg, nil, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]any) {
	l.log(INFO, msg, nil, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, err error, fields map[string]any) {
	l.log(WARN, msg, err, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, err error, fields map[string]any) {
	l.log(ERROR, msg, err, fields)
}

// Counts returns the number of errors and warnings logged so far
func (l *Logger) Counts() (errors, warnings int) {
	if l == nil {
		return 0, 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errors, l.warnings
}

// Path returns the log file path, or "" when logging to a stream
func (l *Logger) Path() string {
	if l == nil || l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Close closes the log file if one is open
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func toSlogLevel(level LogLevel) slog.Level {
	switch level {
	case DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func sortedFieldKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
