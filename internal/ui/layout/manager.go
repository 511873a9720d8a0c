package layout

import (
	"github.com/daytone/daytone/internal/ui/common"
)

// LayoutMode determines which radio panels are visible
type LayoutMode int

const (
	LayoutWide     LayoutMode = iota // Genre tuner + now-playing panel
	LayoutCompact                    // Genre tuner only
	LayoutTooSmall                   // Nothing fits
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutWide:
		return "wide"
	case LayoutCompact:
		return "compact"
	default:
		return "too-small"
	}
}

// Rows fixed by the layout.
const (
	HeaderRow    = 0
	channelLabel = 2
	channelTop   = 3
	channelRows  = 3
	genreTop     = channelTop + channelRows + 1
)

// Manager places the header, tuners and panels for a terminal size.
type Manager struct {
	mode LayoutMode

	width  int
	height int

	gutter      int
	gapX        int
	genreWidth  int
	genreMaxH   int
	minWidth    int
	minHeight   int
	minWideInfo int

	channel common.HitRegion
	genre   common.HitRegion
	info    common.HitRegion
	body    common.HitRegion
}

// NewManager creates a new layout manager
func NewManager() *Manager {
	return &Manager{
		gutter:      2,
		gapX:        2,
		genreWidth:  24,
		genreMaxH:   15,
		minWidth:    30,
		minHeight:   14,
		minWideInfo: 24,
	}
}

// Resize recalculates layout based on new dimensions
func (m *Manager) Resize(width, height int) {
	m.width, m.height = width, height
	if width < m.minWidth || height < m.minHeight {
		m.mode = LayoutTooSmall
		m.channel, m.genre, m.info, m.body = common.HitRegion{}, common.HitRegion{}, common.HitRegion{}, common.HitRegion{}
		return
	}

	inner := width - 2*m.gutter
	m.body = common.HitRegion{ID: "body", X: m.gutter, Y: channelLabel, Width: inner, Height: height - channelLabel - 1}
	m.channel = common.HitRegion{ID: "channel", X: m.gutter, Y: channelTop, Width: inner, Height: channelRows}

	genreH := min(m.genreMaxH, height-genreTop-1)
	if inner-m.genreWidth-m.gapX >= m.minWideInfo {
		m.mode = LayoutWide
		m.genre = common.HitRegion{ID: "genre", X: m.gutter, Y: genreTop, Width: m.genreWidth, Height: genreH}
		infoX := m.gutter + m.genreWidth + m.gapX
		m.info = common.HitRegion{ID: "info", X: infoX, Y: genreTop, Width: width - m.gutter - infoX, Height: genreH}
		return
	}
	m.mode = LayoutCompact
	m.genre = common.HitRegion{ID: "genre", X: m.gutter, Y: genreTop, Width: inner, Height: genreH}
	m.info = common.HitRegion{}
}

// Mode returns the current layout mode.
func (m *Manager) Mode() LayoutMode { return m.mode }

// Width returns the terminal width.
func (m *Manager) Width() int { return m.width }

// Height returns the terminal height.
func (m *Manager) Height() int { return m.height }

// Gutter returns the left and right margin.
func (m *Manager) Gutter() int { return m.gutter }

// ChannelLabelRow is the row above the channel strip.
func (m *Manager) ChannelLabelRow() int { return channelLabel }

// FooterRow is the last row.
func (m *Manager) FooterRow() int { return m.height - 1 }

// Channel returns the channel strip region.
func (m *Manager) Channel() common.HitRegion { return m.channel }

// Genre returns the genre strip region.
func (m *Manager) Genre() common.HitRegion { return m.genre }

// Info returns the now-playing panel region. It is empty in compact mode.
func (m *Manager) Info() common.HitRegion { return m.info }

// Body returns the area between header and footer, used by the write view.
func (m *Manager) Body() common.HitRegion { return m.body }

// ShowInfo reports whether the now-playing panel fits.
func (m *Manager) ShowInfo() bool { return m.mode == LayoutWide }
