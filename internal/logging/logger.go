package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level represents log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a flag value such as "debug" or "WARN" to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "", "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger writes leveled lines to a single writer.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	level    Level
	enabled  bool
	filePath string
	now      func() time.Time
}

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// Initialize opens today's log file under logDir and makes it the default
// logger. Until it is called every helper is a no-op.
func Initialize(logDir string, level Level) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, fmt.Sprintf("daytone-%s.log", time.Now().Format("2006-01-02")))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	setDefault(&Logger{
		writer:   file,
		level:    level,
		enabled:  true,
		filePath: logPath,
		now:      time.Now,
	})
	return nil
}

// UseWriter installs a logger writing to w. Used by headless commands that
// log to stderr.
func UseWriter(w io.Writer, level Level) {
	setDefault(&Logger{writer: w, level: level, enabled: true, now: time.Now})
}

func setDefault(l *Logger) {
	defaultMu.Lock()
	old := defaultLogger
	defaultLogger = l
	defaultMu.Unlock()
	closeWriter(old)
}

func current() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetEnabled enables or disables logging
func SetEnabled(enabled bool) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

func log(level Level, format string, args ...any) {
	l := current()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.level {
		return
	}

	timestamp := l.now().Format("2006-01-02 15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(l.writer, "[%s] %s: %s\n", timestamp, level.String(), msg)
}

// Debug logs a debug message
func Debug(format string, args ...any) {
	log(LevelDebug, format, args...)
}

// Info logs an info message
func Info(format string, args ...any) {
	log(LevelInfo, format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...any) {
	log(LevelWarn, format, args...)
}

// Error logs an error message
func Error(format string, args ...any) {
	log(LevelError, format, args...)
}

// WithError logs err with context if it is non-nil.
func WithError(err error, context string) {
	if err != nil {
		log(LevelError, "%s: %v", context, err)
	}
}

// Close closes the log file and drops the default logger.
func Close() error {
	defaultMu.Lock()
	l := defaultLogger
	defaultLogger = nil
	defaultMu.Unlock()
	return closeWriter(l)
}

func closeWriter(l *Logger) error {
	if l == nil || l.writer == nil {
		return nil
	}
	if closer, ok := l.writer.(io.Closer); ok && l.filePath != "" {
		return closer.Close()
	}
	return nil
}

// GetLogPath returns the current log file path
func GetLogPath() string {
	if l := current(); l != nil {
		return l.filePath
	}
	return ""
}
