package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
)

func resetMouseFilterState() {
	lastMouseMotionEvent = time.Time{}
	lastMouseX = 0
	lastMouseY = 0
}

func TestMouseMotionThrottledAtSamePosition(t *testing.T) {
	resetMouseFilterState()

	motion := tea.MouseMotionMsg{X: 10, Y: 10, Button: tea.MouseLeft}
	if mouseEventFilter(nil, motion) == nil {
		t.Fatalf("expected first motion event to pass through")
	}
	if mouseEventFilter(nil, motion) != nil {
		t.Fatalf("expected repeated motion at the same cell to be throttled")
	}
	moved := tea.MouseMotionMsg{X: 11, Y: 10, Button: tea.MouseLeft}
	if mouseEventFilter(nil, moved) == nil {
		t.Fatalf("expected motion to a new cell to pass through")
	}
}

func TestMouseFilterPassesClicks(t *testing.T) {
	resetMouseFilterState()
	click := tea.MouseClickMsg{X: 1, Y: 1, Button: tea.MouseLeft}
	for i := 0; i < 2; i++ {
		if mouseEventFilter(nil, click) == nil {
			t.Fatalf("expected click %d to pass through", i)
		}
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--home", t.TempDir()))
	err := root.Execute()
	return out.String(), err
}

func TestTuneCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no gesture", []string{"tune"}, "Productivity"},
		{"drag one slot left", []string{"tune", "--drag", "-18"}, "Focus"},
		{"drag two slots right", []string{"tune", "--drag", "36"}, "Discovery"},
		{"tap right of centre", []string{"tune", "--tap", "70"}, "Focus"},
		{"genre tap below centre", []string{"tune", "--tuner", "genre", "--tap", "11"}, "Vaporwave"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTuneVerbose(t *testing.T) {
	out, err := execute(t, "tune", "--drag", "-18", "-v")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out, "gesture=drag") {
		t.Fatalf("expected gesture details, got %q", out)
	}
}

func TestTuneUnknownTuner(t *testing.T) {
	if _, err := execute(t, "tune", "--tuner", "volume"); err == nil {
		t.Fatalf("expected error for unknown tuner")
	}
}

func TestSessionNameCommand(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { copyToClipboard = orig })

	out, err := execute(t, "session-name", "--copy")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	name := strings.TrimSpace(out)
	if !strings.HasPrefix(name, "Your Session ") || !strings.HasSuffix(name, "_mp3") {
		t.Fatalf("expected session name, got %q", name)
	}
	if copied != name {
		t.Fatalf("expected %q copied, got %q", name, copied)
	}
}

func TestSessionNameCopyFailure(t *testing.T) {
	orig := copyToClipboard
	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { copyToClipboard = orig })

	if _, err := execute(t, "session-name", "--copy"); err == nil {
		t.Fatalf("expected copy failure to be reported")
	}
}
