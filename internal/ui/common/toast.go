package common

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/daytone/daytone/internal/messages"
)

// Toast represents a notification message
type Toast struct {
	Message  string
	Level    messages.ToastLevel
	Duration time.Duration
}

// ToastModel shows one notification at a time.
type ToastModel struct {
	current *Toast
	seq     int
	styles  Styles
}

// NewToastModel creates a new toast model
func NewToastModel() *ToastModel {
	return &ToastModel{styles: DefaultStyles()}
}

// ToastDismissed is sent when a toast should be dismissed. Seq identifies
// the toast that scheduled it so a newer toast is not cut short.
type ToastDismissed struct {
	Seq int
}

// Show displays a toast notification
func (m *ToastModel) Show(message string, level messages.ToastLevel, duration time.Duration) tea.Cmd {
	m.seq++
	m.current = &Toast{Message: message, Level: level, Duration: duration}
	seq := m.seq
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return ToastDismissed{Seq: seq}
	})
}

// ShowMessage displays a toast request with the duration for its level.
func (m *ToastModel) ShowMessage(msg messages.Toast) tea.Cmd {
	return m.Show(msg.Message, msg.Level, durationFor(msg.Level))
}

func durationFor(level messages.ToastLevel) time.Duration {
	switch level {
	case messages.ToastError:
		return 5 * time.Second
	case messages.ToastWarning:
		return 4 * time.Second
	default:
		return 3 * time.Second
	}
}

// Update handles messages
func (m *ToastModel) Update(msg tea.Msg) (*ToastModel, tea.Cmd) {
	if d, ok := msg.(ToastDismissed); ok && d.Seq == m.seq {
		m.current = nil
	}
	return m, nil
}

// View renders the toast notification
func (m *ToastModel) View() string {
	if m.current == nil {
		return ""
	}

	var style lipgloss.Style
	var icon string

	switch m.current.Level {
	case messages.ToastSuccess:
		style = m.styles.ToastSuccess
		icon = "✓ "
	case messages.ToastError:
		style = m.styles.ToastError
		icon = "✗ "
	case messages.ToastWarning:
		style = m.styles.ToastWarning
		icon = "! "
	default:
		style = m.styles.ToastInfo
		icon = "i "
	}

	return style.Render(icon + m.current.Message)
}

// Visible returns whether a toast is showing
func (m *ToastModel) Visible() bool {
	return m.current != nil
}

// Dismiss immediately hides the toast
func (m *ToastModel) Dismiss() {
	m.current = nil
}
