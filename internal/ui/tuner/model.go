// Package tuner renders a carousel controller as a terminal strip and feeds
// it mouse gestures and animation frames.
package tuner

import (
	"fmt"
	"math"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/daytone/daytone/internal/carousel"
	"github.com/daytone/daytone/internal/config"
	"github.com/daytone/daytone/internal/logging"
	"github.com/daytone/daytone/internal/messages"
	"github.com/daytone/daytone/internal/perf"
	"github.com/daytone/daytone/internal/ui/common"
)

// FrameMsg delivers one snap animation frame to the tuner named Tuner.
type FrameMsg struct {
	Tuner string
	Frame carousel.Frame
}

// liveSpan is the viewport handed to the controller. It follows the
// tuner's screen region so taps are measured against the current layout.
type liveSpan struct {
	start  float64
	length float64
}

func (s *liveSpan) Span() (float64, float64) { return s.start, s.length }

// Model is one tuner strip.
type Model struct {
	name string
	ctrl *carousel.Controller
	axis carousel.Axis

	extent   int
	span     *liveSpan
	region   common.HitRegion
	interval time.Duration

	styles    common.Styles
	tickMarks bool

	pressed bool
	changes []string

	now func() time.Time
}

// New builds a tuner from its config.
func New(name string, tc config.TunerConfig, motion config.MotionConfig) (*Model, error) {
	span := &liveSpan{}
	cfg, err := tc.Carousel(motion, span)
	if err != nil {
		return nil, fmt.Errorf("%s tuner: %w", name, err)
	}
	ctrl, err := carousel.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s tuner: %w", name, err)
	}

	m := &Model{
		name:     name,
		ctrl:     ctrl,
		axis:     cfg.Axis,
		extent:   max(1, int(math.Round(cfg.ItemExtent))),
		span:     span,
		interval: motion.FrameInterval,
		styles:   common.DefaultStyles(),
		now:      time.Now,
	}
	ctrl.OnChannelChanged(func(item string) {
		m.changes = append(m.changes, item)
	})
	return m, nil
}

// Name returns the tuner's name, used to route frames.
func (m *Model) Name() string { return m.name }

// Controller exposes the underlying carousel.
func (m *Model) Controller() *carousel.Controller { return m.ctrl }

// Selected returns the last announced item.
func (m *Model) Selected() string { return m.ctrl.Selected() }

// SetDisabled toggles the loading flag. A disabled tuner ignores new
// gestures and keyboard nudges.
func (m *Model) SetDisabled(disabled bool) { m.ctrl.SetDisabled(disabled) }

// Disabled reports the loading flag.
func (m *Model) Disabled() bool { return m.ctrl.Disabled() }

// SetTickMarks toggles the ruler under a horizontal strip.
func (m *Model) SetTickMarks(on bool) { m.tickMarks = on }

// SetRegion places the strip on screen. The track viewport is the region's
// extent along the tuner axis.
func (m *Model) SetRegion(r common.HitRegion) {
	m.region = r
	if m.axis == carousel.Horizontal {
		m.span.start, m.span.length = float64(r.X), float64(r.Width)
	} else {
		m.span.start, m.span.length = float64(r.Y), float64(r.Height)
	}
}

// Region returns the strip's screen rectangle.
func (m *Model) Region() common.HitRegion { return m.region }

// Dragging reports whether a press on this tuner is still held.
func (m *Model) Dragging() bool { return m.pressed }

// Update handles mouse gestures and frames addressed to this tuner.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft || !m.region.Contains(msg.X, msg.Y) {
			return m, nil
		}
		if !m.ctrl.PointerDown(m.event(msg.X, msg.Y)) {
			logging.Debug("%s tuner: press ignored while disabled", m.name)
			return m, nil
		}
		m.pressed = true

	case tea.MouseMotionMsg:
		if m.pressed {
			m.ctrl.PointerMove(m.event(msg.X, msg.Y))
		}

	case tea.MouseReleaseMsg:
		if !m.pressed {
			return m, nil
		}
		m.pressed = false
		f := m.ctrl.PointerUp(m.event(msg.X, msg.Y))
		g := m.ctrl.LastGesture()
		logging.Debug("%s tuner: %s distance=%.1f move=%d", m.name, g.Kind, g.Distance, g.Move)
		return m, m.frameCmd(f)

	case FrameMsg:
		if msg.Tuner != m.name {
			return m, nil
		}
		perf.Count("frame."+m.name, 1)
		next := m.ctrl.Step(msg.Frame)
		return m, common.SafeBatch(m.frameCmd(next), m.flush())
	}
	return m, nil
}

// Cancel drops a held press, for when the strip loses the pointer before
// the release arrives. The track snaps to the nearest slot.
func (m *Model) Cancel() tea.Cmd {
	if !m.pressed {
		return nil
	}
	m.pressed = false
	logging.Debug("%s tuner: press cancelled", m.name)
	return m.frameCmd(m.ctrl.CancelDrag())
}

// Nudge snaps delta slots away from where the tuner is heading, as if the
// neighbouring slot had been tapped.
func (m *Model) Nudge(delta int) tea.Cmd {
	if m.ctrl.Disabled() || m.pressed || delta == 0 {
		return nil
	}
	base := m.ctrl.HighlightedPhysicalIndex()
	if target, ok := m.ctrl.Target(); ok {
		base = carousel.IndexAt(target, m.ctrl.Config().ItemExtent)
	}
	return m.frameCmd(m.ctrl.SnapTo(base + delta))
}

// event converts a cell position to a pointer event. Cells are measured at
// their centre.
func (m *Model) event(x, y int) carousel.PointerEvent {
	return carousel.PointerEvent{
		Position: m.axis.Project(float64(x)+0.5, float64(y)+0.5),
		Time:     m.now(),
	}
}

func (m *Model) frameCmd(f carousel.Frame) tea.Cmd {
	if f == 0 {
		return nil
	}
	name := m.name
	return common.SafeTick(m.interval, func(time.Time) tea.Msg {
		return FrameMsg{Tuner: name, Frame: f}
	})
}

// flush announces the settle that just happened, if it changed the item.
// A single step settles at most once.
func (m *Model) flush() tea.Cmd {
	if len(m.changes) == 0 {
		return nil
	}
	msg := messages.ChannelChanged{
		Tuner: m.name,
		Index: m.ctrl.SelectedIndex(),
		Item:  m.changes[len(m.changes)-1],
	}
	m.changes = m.changes[:0]
	return func() tea.Msg { return msg }
}
