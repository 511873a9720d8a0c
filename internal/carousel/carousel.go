// Package carousel implements a drag-to-snap carousel controller.
//
// A Controller owns a wrapped track made of a logical item set repeated an
// odd number of times. Pointer input moves the track 1:1 along a single axis;
// on release the gesture is classified as a tap or a drag and the offset is
// eased toward a slot with a per-frame step function. The host drives the
// animation by calling Step with the Frame token it was handed, so any
// scheduling primitive (tea.Tick, a timer, a render loop) can be used.
//
// The controller has no knowledge of rendering. Hosts read Offset and
// HighlightedPhysicalIndex after every input or frame and draw accordingly.
package carousel

import (
	"fmt"
	"strings"
	"time"
)

// Axis selects the direction a controller tracks.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Project returns the component of a 2D position along the axis.
func (a Axis) Project(x, y float64) float64 {
	if a == Vertical {
		return y
	}
	return x
}

// ParseAxis converts a config string into an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h", "x":
		return Horizontal, nil
	case "vertical", "v", "y":
		return Vertical, nil
	default:
		return 0, fmt.Errorf("unknown axis %q", s)
	}
}

// State is the interaction state of a controller.
type State int

const (
	Idle State = iota
	Dragging
	Snapping
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Snapping:
		return "snapping"
	default:
		return "unknown"
	}
}

// PointerEvent is raw input projected onto the controller's axis.
type PointerEvent struct {
	Position float64
	Time     time.Time
}

// Viewport reports where the visible window of the track sits along the
// controller's axis, in the same coordinate space as PointerEvent.Position.
type Viewport interface {
	Span() (start, length float64)
}

// Span is a fixed Viewport.
type Span struct {
	Start  float64
	Length float64
}

// Span implements Viewport.
func (s Span) Span() (float64, float64) { return s.Start, s.Length }

// Frame identifies one scheduled animation step. The zero Frame means no
// step is pending.
type Frame uint64

// GestureKind classifies a completed pointer gesture.
type GestureKind int

const (
	GestureNone GestureKind = iota
	GestureTap
	GestureDrag
)

func (g GestureKind) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureDrag:
		return "drag"
	default:
		return "none"
	}
}

// Gesture describes the most recent pointer release.
type Gesture struct {
	Kind     GestureKind
	Distance float64
	Duration time.Duration
	// Move is the number of slots a tap asked to travel. Zero for drags.
	Move int
}

// Slot is one physical entry of the materialized track.
type Slot struct {
	Physical int
	Logical  int
	Label    string
}
