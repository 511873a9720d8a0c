package tuner

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/daytone/daytone/internal/carousel"
	"github.com/daytone/daytone/internal/config"
	"github.com/daytone/daytone/internal/messages"
	"github.com/daytone/daytone/internal/ui/common"
)

var testMotion = config.MotionConfig{
	TapThreshold:    1,
	SnapGain:        0.15,
	SettleThreshold: 0.5,
	FrameInterval:   16 * time.Millisecond,
	Rewrap:          true,
}

func newChannelTuner(t *testing.T) *Model {
	t.Helper()
	m, err := New("channel", config.TunerConfig{
		Items:      []string{"Productivity", "Focus", "Daily Flow", "Discovery", "Entertainment"},
		Axis:       "horizontal",
		ItemExtent: 18,
	}, testMotion)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.SetRegion(common.HitRegion{X: 0, Y: 2, Width: 60, Height: 3})
	return m
}

func newGenreTuner(t *testing.T) *Model {
	t.Helper()
	m, err := New("genre", config.TunerConfig{
		Items:      []string{"Lo-fi", "Vaporwave", "Ambient", "Post-rock", "Jazz"},
		Axis:       "vertical",
		ItemExtent: 3,
	}, testMotion)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.SetRegion(common.HitRegion{X: 4, Y: 5, Width: 20, Height: 15})
	return m
}

// settle delivers pending frames until the tuner rests and returns the
// final command.
func settle(t *testing.T, m *Model) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for i := 0; m.ctrl.Pending() != 0; i++ {
		if i > 500 {
			t.Fatalf("tuner did not settle")
		}
		m, cmd = m.Update(FrameMsg{Tuner: m.Name(), Frame: m.ctrl.Pending()})
	}
	return cmd
}

func changed(t *testing.T, cmd tea.Cmd) messages.ChannelChanged {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a channel change command")
	}
	raw := cmd()
	msg, ok := raw.(messages.ChannelChanged)
	if !ok {
		t.Fatalf("expected ChannelChanged, got %T", raw)
	}
	return msg
}

func click(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func TestDragOneSlotLeftSelectsNext(t *testing.T) {
	m := newChannelTuner(t)
	if m.Selected() != "Productivity" {
		t.Fatalf("expected Productivity, got %s", m.Selected())
	}

	m, _ = m.Update(click(30, 3))
	if !m.Dragging() {
		t.Fatalf("expected press to start a drag")
	}
	m, _ = m.Update(tea.MouseMotionMsg{X: 12, Y: 3, Button: tea.MouseLeft})
	if got := m.ctrl.HighlightedLogicalIndex(); got != 1 {
		t.Fatalf("expected live highlight on Focus, got %d", got)
	}
	m, cmd := m.Update(tea.MouseReleaseMsg{X: 12, Y: 3})
	if cmd == nil {
		t.Fatalf("expected a frame to be scheduled")
	}

	msg := changed(t, settle(t, m))
	if msg.Tuner != "channel" || msg.Item != "Focus" || msg.Index != 1 {
		t.Fatalf("unexpected change %+v", msg)
	}
}

func TestTapRightOfCentre(t *testing.T) {
	m := newChannelTuner(t)
	m, _ = m.Update(click(48, 3))
	m, _ = m.Update(tea.MouseReleaseMsg{X: 48, Y: 3})
	if g := m.ctrl.LastGesture(); g.Kind != carousel.GestureTap || g.Move != 1 {
		t.Fatalf("expected tap moving one slot, got %+v", g)
	}
	if msg := changed(t, settle(t, m)); msg.Item != "Focus" {
		t.Fatalf("expected Focus, got %s", msg.Item)
	}
}

func TestVerticalTapBelowCentre(t *testing.T) {
	m := newGenreTuner(t)
	m, _ = m.Update(click(10, 15))
	m, _ = m.Update(tea.MouseReleaseMsg{X: 10, Y: 15})
	if msg := changed(t, settle(t, m)); msg.Tuner != "genre" || msg.Item != "Vaporwave" {
		t.Fatalf("unexpected change %+v", msg)
	}
}

func TestPressOutsideRegionIgnored(t *testing.T) {
	m := newChannelTuner(t)
	m, _ = m.Update(click(30, 10))
	if m.Dragging() {
		t.Fatalf("expected press outside the strip to be ignored")
	}
	_, cmd := m.Update(tea.MouseReleaseMsg{X: 30, Y: 10})
	if cmd != nil {
		t.Fatalf("expected no frame")
	}
}

func TestDisabledIgnoresGestures(t *testing.T) {
	m := newChannelTuner(t)
	m.SetDisabled(true)
	m, _ = m.Update(click(48, 3))
	if m.Dragging() {
		t.Fatalf("expected disabled tuner to ignore press")
	}
	if m.Nudge(1) != nil {
		t.Fatalf("expected disabled tuner to ignore nudges")
	}
	m.SetDisabled(false)
	if m.Nudge(1) == nil {
		t.Fatalf("expected nudge after re-enable")
	}
}

func TestFramesForOtherTunersIgnored(t *testing.T) {
	m := newChannelTuner(t)
	f := m.ctrl.SnapTo(12)
	m, cmd := m.Update(FrameMsg{Tuner: "genre", Frame: f})
	if cmd != nil || m.ctrl.Pending() != f {
		t.Fatalf("expected frame for another tuner to be ignored")
	}
}

func TestNewPressCancelsSnap(t *testing.T) {
	m := newChannelTuner(t)
	m, _ = m.Update(click(48, 3))
	m, _ = m.Update(tea.MouseReleaseMsg{X: 48, Y: 3})
	stale := m.ctrl.Pending()

	m, _ = m.Update(click(30, 3))
	if m.ctrl.Pending() != 0 || m.ctrl.State() != carousel.Dragging {
		t.Fatalf("expected press to cancel snap")
	}
	m, cmd := m.Update(FrameMsg{Tuner: "channel", Frame: stale})
	if cmd != nil {
		t.Fatalf("expected stale frame to be dropped")
	}
}

func TestNudgeAccumulatesWhileSnapping(t *testing.T) {
	m := newChannelTuner(t)
	m.Nudge(1)
	m.Nudge(1)
	if msg := changed(t, settle(t, m)); msg.Item != "Daily Flow" {
		t.Fatalf("expected two slots forward, got %s", msg.Item)
	}
	m.Nudge(-3)
	if msg := changed(t, settle(t, m)); msg.Item != "Entertainment" {
		t.Fatalf("expected wrap backwards to Entertainment, got %s", msg.Item)
	}
}

func TestHorizontalView(t *testing.T) {
	m := newChannelTuner(t)
	m.SetTickMarks(true)
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	plain := ansi.Strip(lines[0])
	if ansi.StringWidth(plain) != 60 {
		t.Fatalf("expected 60 cells, got %d", ansi.StringWidth(plain))
	}
	if idx := strings.Index(plain, "Productivity"); idx < 20 || idx > 30 {
		t.Fatalf("expected Productivity centred, got %q", plain)
	}
	if !strings.Contains(ansi.Strip(lines[1]), "┃") {
		t.Fatalf("expected tick ruler, got %q", lines[1])
	}
	if strings.Index(ansi.Strip(lines[2]), "▲") != 30 {
		t.Fatalf("expected pointer at centre, got %q", lines[2])
	}
}

func TestVerticalView(t *testing.T) {
	m := newGenreTuner(t)
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 15 {
		t.Fatalf("expected 15 lines, got %d", len(lines))
	}
	centre := ansi.Strip(lines[7])
	if !strings.HasPrefix(centre, "▶") || !strings.Contains(centre, "Lo-fi") {
		t.Fatalf("expected Lo-fi at the pointer, got %q", centre)
	}
	if !strings.Contains(ansi.Strip(lines[4]), "Jazz") || !strings.Contains(ansi.Strip(lines[10]), "Vaporwave") {
		t.Fatalf("expected neighbours above and below, got %q / %q", lines[4], lines[10])
	}
}

func TestFit(t *testing.T) {
	if got := fit("Jazz", 8); got != "  Jazz  " {
		t.Fatalf("unexpected fit %q", got)
	}
	if got := fit("Entertainment", 8); ansi.StringWidth(got) != 8 || !strings.Contains(got, "…") {
		t.Fatalf("expected truncated label, got %q", got)
	}
}

func TestCancelDropsHeldPress(t *testing.T) {
	m := newChannelTuner(t)
	if m.Cancel() != nil {
		t.Fatalf("expected cancel without a press to do nothing")
	}

	m, _ = m.Update(click(30, 3))
	m, _ = m.Update(tea.MouseMotionMsg{X: 20, Y: 3, Button: tea.MouseLeft})
	if cmd := m.Cancel(); cmd == nil {
		t.Fatalf("expected cancel to schedule a snap frame")
	}
	if m.Dragging() || m.ctrl.State() != carousel.Snapping {
		t.Fatalf("expected snapping after cancel, got pressed=%v state=%v", m.Dragging(), m.ctrl.State())
	}

	// Motion after the cancel no longer moves the track.
	before := m.ctrl.Offset()
	m, _ = m.Update(tea.MouseMotionMsg{X: 5, Y: 3, Button: tea.MouseLeft})
	if m.ctrl.Offset() != before {
		t.Fatalf("expected motion to be ignored after cancel")
	}

	msg := changed(t, settle(t, m))
	if msg.Item != "Focus" {
		t.Fatalf("expected Focus after a ten-cell drag, got %q", msg.Item)
	}
}
