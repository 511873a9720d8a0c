package tuner

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/daytone/daytone/internal/carousel"
)

// View renders the visible window of the track.
func (m *Model) View() string {
	if m.region.Width <= 0 || m.region.Height <= 0 {
		return ""
	}
	if m.axis == carousel.Horizontal {
		return m.viewHorizontal()
	}
	return m.viewVertical()
}

func (m *Model) slotStyle(physical int) lipgloss.Style {
	switch {
	case m.ctrl.Disabled():
		return m.styles.TunerDisabled
	case physical == m.ctrl.HighlightedPhysicalIndex():
		return m.styles.TunerActive
	default:
		return m.styles.TunerItem
	}
}

// firstVisible returns the track coordinate shown at the leading edge of a
// viewport of size cells.
func (m *Model) firstVisible(size int) int {
	return carousel.Round(-float64(size)/2 - m.ctrl.Offset())
}

func (m *Model) viewHorizontal() string {
	w, h := m.region.Width, m.region.Height
	track := m.ctrl.Track()
	total := len(track) * m.extent
	left := m.firstVisible(w)

	var labels strings.Builder
	for _, slot := range track {
		labels.WriteString(m.slotStyle(slot.Physical).Render(fit(slot.Label, m.extent)))
	}

	lines := []string{window(labels.String(), total, left, w)}
	if m.tickMarks {
		lines = append(lines, m.styles.TunerTick.Render(window(ruler(len(track), m.extent), total, left, w)))
	}
	pointer := strings.Repeat(" ", w/2) + m.styles.TunerPointer.Render("▲")
	lines = append(lines, pointer)

	return strings.Join(pad(lines, h, w), "\n")
}

func (m *Model) viewVertical() string {
	w, h := m.region.Width, m.region.Height
	track := m.ctrl.Track()
	total := len(track) * m.extent
	top := m.firstVisible(h)
	center := h / 2
	labelWidth := max(1, w-2)

	lines := make([]string, h)
	for r := 0; r < h; r++ {
		marker := "  "
		if r == center {
			marker = m.styles.TunerPointer.Render("▶") + " "
		}
		u := top + r
		if u < 0 || u >= total || u%m.extent != m.extent/2 {
			lines[r] = marker + strings.Repeat(" ", labelWidth)
			continue
		}
		slot := track[u/m.extent]
		lines[r] = marker + m.slotStyle(slot.Physical).Render(fit(slot.Label, labelWidth))
	}
	return strings.Join(lines, "\n")
}

// fit centres label in width cells, truncating with an ellipsis.
func fit(label string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(label) > width-2 && width > 2 {
		label = runewidth.Truncate(label, width-2, "…")
	}
	lw := runewidth.StringWidth(label)
	if lw > width {
		label = runewidth.Truncate(label, width, "")
		lw = runewidth.StringWidth(label)
	}
	left := (width - lw) / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", width-lw-left)
}

// ruler draws a major tick at each slot centre and minor ticks between.
func ruler(slots, extent int) string {
	var b strings.Builder
	for i := 0; i < slots; i++ {
		for j := 0; j < extent; j++ {
			switch {
			case j == extent/2:
				b.WriteString("┃")
			case j%3 == 0:
				b.WriteString("╵")
			default:
				b.WriteString(" ")
			}
		}
	}
	return b.String()
}

// window returns width cells of s starting at cell left, padding with
// spaces where the track does not reach.
func window(s string, total, left, width int) string {
	var b strings.Builder
	if left < 0 {
		n := min(-left, width)
		b.WriteString(strings.Repeat(" ", n))
		width -= n
		left = 0
	}
	if width > 0 && left < total {
		right := min(total, left+width)
		b.WriteString(ansi.Cut(s, left, right))
		width -= right - left
	}
	if width > 0 {
		b.WriteString(strings.Repeat(" ", width))
	}
	return b.String()
}

func pad(lines []string, h, w int) []string {
	if len(lines) > h {
		return lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, strings.Repeat(" ", w))
	}
	return lines
}
