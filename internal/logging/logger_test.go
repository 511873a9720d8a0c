package logging

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
)

func setupLogger(t *testing.T, level Level) (string, func()) {
	t.Helper()

	logDir := t.TempDir()
	if err := Initialize(logDir, level); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	logPath := GetLogPath()
	if logPath == "" {
		t.Fatalf("GetLogPath returned empty path")
	}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			_ = Close()
		})
	}
	t.Cleanup(cleanup)

	return logPath, cleanup
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	return string(data)
}

func TestInitializeAndLogWrites(t *testing.T) {
	logPath, cleanup := setupLogger(t, LevelInfo)

	Info("tuned to %s", "Focus")
	cleanup()

	if !strings.Contains(logPath, "daytone-") {
		t.Fatalf("expected daytone log file, got %q", logPath)
	}
	content := readLog(t, logPath)
	if !strings.Contains(content, "INFO: tuned to Focus") {
		t.Fatalf("expected log line to contain message, got: %q", content)
	}
}

func TestSetEnabledDisablesLogging(t *testing.T) {
	logPath, cleanup := setupLogger(t, LevelDebug)

	SetEnabled(false)
	Info("should not write")
	cleanup()

	if content := readLog(t, logPath); len(strings.TrimSpace(content)) != 0 {
		t.Fatalf("expected no log output when disabled, got: %q", content)
	}
}

func TestLevelFiltering(t *testing.T) {
	logPath, cleanup := setupLogger(t, LevelWarn)

	Info("info message")
	Warn("warn message")
	cleanup()

	content := readLog(t, logPath)
	if strings.Contains(content, "INFO: info message") {
		t.Fatalf("did not expect info log at warn level: %q", content)
	}
	if !strings.Contains(content, "WARN: warn message") {
		t.Fatalf("expected warn log, got: %q", content)
	}
}

func TestUseWriter(t *testing.T) {
	var buf bytes.Buffer
	UseWriter(&buf, LevelDebug)
	t.Cleanup(func() { _ = Close() })

	Debug("step %d", 3)
	WithError(nil, "ignored")
	WithError(os.ErrNotExist, "load state")

	out := buf.String()
	if !strings.Contains(out, "DEBUG: step 3") {
		t.Fatalf("expected debug line, got %q", out)
	}
	if strings.Contains(out, "ignored") {
		t.Fatalf("expected nil error to be skipped, got %q", out)
	}
	if !strings.Contains(out, "ERROR: load state: file does not exist") {
		t.Fatalf("expected error line, got %q", out)
	}
}

func TestLoggingWithoutInitializeIsNoop(t *testing.T) {
	_ = Close()
	Info("nobody listens")
	if GetLogPath() != "" {
		t.Fatalf("expected empty log path")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"":        LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q): expected %v, got %v (%v)", in, want, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
