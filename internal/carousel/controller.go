package carousel

import "math"

// Controller is one drag-to-snap carousel. It is not safe for concurrent
// use; hosts call it from their event loop.
type Controller struct {
	cfg   Config
	items []string
	track []Slot

	state  State
	offset float64
	target float64

	origin          float64
	downEvent       PointerEvent
	dragStartOffset float64

	highlighted int
	published   int
	disabled    bool

	pending Frame
	frames  uint64

	last      Gesture
	listeners []func(item string)
}

// New validates cfg, materializes the repeated track and centres the first
// item of the middle repetition.
func New(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	items := append([]string(nil), cfg.Items...)
	cfg.Items = items

	n := len(items)
	track := make([]Slot, 0, n*cfg.RepeatCount)
	for set := 0; set < cfg.RepeatCount; set++ {
		for i, item := range items {
			track = append(track, Slot{Physical: set*n + i, Logical: i, Label: item})
		}
	}

	c := &Controller{
		cfg:   cfg,
		items: items,
		track: track,
	}
	c.setOffset(OffsetAt(cfg.CenterSetIndex()*n, cfg.ItemExtent))
	c.published = Logical(c.highlighted, n)
	return c, nil
}

// Config returns the effective configuration, defaults applied.
func (c *Controller) Config() Config {
	cfg := c.cfg
	cfg.Items = append([]string(nil), c.items...)
	return cfg
}

// Track returns the materialized physical slots.
func (c *Controller) Track() []Slot { return append([]Slot(nil), c.track...) }

// State returns the interaction state.
func (c *Controller) State() State { return c.state }

// Offset returns the current track translation.
func (c *Controller) Offset() float64 { return c.offset }

// Target returns the snap target while snapping.
func (c *Controller) Target() (float64, bool) {
	if c.state != Snapping {
		return 0, false
	}
	return c.target, true
}

// HighlightedPhysicalIndex returns the physical slot nearest the viewport
// centre. It tracks the offset live, including mid-drag.
func (c *Controller) HighlightedPhysicalIndex() int { return c.highlighted }

// HighlightedLogicalIndex is HighlightedPhysicalIndex folded onto the items.
func (c *Controller) HighlightedLogicalIndex() int {
	return Logical(c.highlighted, len(c.items))
}

// SelectedIndex returns the last published logical item index.
func (c *Controller) SelectedIndex() int { return c.published }

// Selected returns the last published logical item.
func (c *Controller) Selected() string { return c.items[c.published] }

// Disabled reports whether new drags are currently ignored.
func (c *Controller) Disabled() bool { return c.disabled }

// SetDisabled sets the external loading flag. It is consulted at drag
// start only; a drag already in progress is unaffected.
func (c *Controller) SetDisabled(disabled bool) { c.disabled = disabled }

// OnChannelChanged registers fn to be called when a settle lands on a
// different logical item than the one last published.
func (c *Controller) OnChannelChanged(fn func(item string)) {
	if fn == nil {
		return
	}
	c.listeners = append(c.listeners, fn)
}

// Pending returns the frame the host should deliver next, or zero.
func (c *Controller) Pending() Frame { return c.pending }

// LastGesture describes the most recent release.
func (c *Controller) LastGesture() Gesture { return c.last }

// PointerDown starts a drag. It returns false if the controller is
// disabled. Any pending snap frame is dropped.
func (c *Controller) PointerDown(ev PointerEvent) bool {
	if c.disabled {
		return false
	}
	c.cancelFrame()
	c.state = Dragging
	c.origin = ev.Position
	c.downEvent = ev
	c.dragStartOffset = c.offset
	return true
}

// PointerMove tracks the pointer 1:1 while dragging.
func (c *Controller) PointerMove(ev PointerEvent) {
	if c.state != Dragging {
		return
	}
	c.setOffset(c.dragStartOffset + (ev.Position - c.origin))
}

// PointerUp ends a drag and starts the snap. The returned frame must be
// passed to Step by the host. Zero is returned if no drag was active.
func (c *Controller) PointerUp(ev PointerEvent) Frame {
	if c.state != Dragging {
		return 0
	}

	dist := math.Abs(ev.Position - c.origin)
	gesture := Gesture{Distance: dist}
	if !ev.Time.IsZero() && !c.downEvent.Time.IsZero() {
		gesture.Duration = ev.Time.Sub(c.downEvent.Time)
	}

	var target float64
	if dist < c.cfg.TapThreshold {
		gesture.Kind = GestureTap
		gesture.Move = c.tapMove(ev.Position)
		target = OffsetAt(c.highlighted+gesture.Move, c.cfg.ItemExtent)
	} else {
		gesture.Kind = GestureDrag
		target = Nearest(c.offset, c.cfg.ItemExtent)
	}
	c.last = gesture
	return c.snapTo(target)
}

// CancelDrag ends a held press without a release event and snaps to the
// nearest slot. It is a no-op unless a drag is active.
func (c *Controller) CancelDrag() Frame {
	if c.state != Dragging {
		return 0
	}
	c.last = Gesture{Kind: GestureDrag, Distance: math.Abs(c.offset - c.dragStartOffset)}
	return c.snapTo(Nearest(c.offset, c.cfg.ItemExtent))
}

// tapMove converts a tap position into a slot count relative to the
// viewport centre.
func (c *Controller) tapMove(pos float64) int {
	start, length := c.cfg.Viewport.Span()
	return Round((pos - start - length/2) / c.cfg.ItemExtent)
}

// SnapTo animates toward physical slot index, as a tap on it would.
func (c *Controller) SnapTo(index int) Frame {
	if c.state == Dragging {
		return 0
	}
	c.cancelFrame()
	return c.snapTo(OffsetAt(index, c.cfg.ItemExtent))
}

func (c *Controller) snapTo(target float64) Frame {
	c.state = Snapping
	c.target = target
	return c.schedule()
}

// Step advances the snap animation by one frame. A frame other than the
// pending one is stale and ignored. The next frame to deliver is returned,
// or zero once the controller has settled.
func (c *Controller) Step(f Frame) Frame {
	if f == 0 || f != c.pending || c.state != Snapping {
		return 0
	}
	c.pending = 0

	diff := c.target - c.offset
	if math.Abs(diff) < c.cfg.SettleThreshold {
		c.settle()
		return 0
	}
	c.setOffset(c.offset + diff*c.cfg.SnapGain)
	return c.schedule()
}

func (c *Controller) settle() {
	c.state = Idle
	c.setOffset(c.target)

	n := len(c.items)
	logical := Logical(c.highlighted, n)
	if c.cfg.Rewrap {
		first := c.cfg.CenterSetIndex() * n
		if c.highlighted < first || c.highlighted >= first+n {
			c.setOffset(OffsetAt(first+logical, c.cfg.ItemExtent))
		}
	}
	c.target = c.offset

	if logical == c.published {
		return
	}
	c.published = logical
	item := c.items[logical]
	for _, fn := range c.listeners {
		fn(item)
	}
}

func (c *Controller) schedule() Frame {
	c.frames++
	c.pending = Frame(c.frames)
	return c.pending
}

func (c *Controller) cancelFrame() {
	c.pending = 0
	if c.state == Snapping {
		c.state = Idle
	}
}

func (c *Controller) setOffset(offset float64) {
	c.offset = offset
	c.highlighted = IndexAt(offset, c.cfg.ItemExtent)
}
