package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/daytone/daytone/internal/keymap"
	"github.com/daytone/daytone/internal/messages"
	"github.com/daytone/daytone/internal/perf"
	"github.com/daytone/daytone/internal/ui/common"
	"github.com/daytone/daytone/internal/ui/layout"
)

// Header zone ids.
const (
	zoneTabRadio = "tab-radio"
	zoneTabWrite = "tab-write"
	zonePlay     = "play"
	zoneFree     = "free"
)

const (
	brandText     = " daytone "
	bannerSep     = "   ·   "
	tuningStatus  = "Tuning…"
	minBannerCell = 8
)

// View renders the screen.
func (a *App) View() tea.View {
	defer perf.Time("view")()

	view := tea.View{
		AltScreen:       true,
		MouseMode:       tea.MouseModeCellMotion,
		BackgroundColor: common.ColorBackground,
		ForegroundColor: common.ColorForeground,
	}

	view.SetContent(a.zone.Scan(a.render()))
	return view
}

// render composes the whole screen as styled text.
func (a *App) render() string {
	if a.quitting {
		return "Goodbye!\n"
	}
	if !a.ready {
		return "Loading..."
	}
	if a.layout.Mode() == layout.LayoutTooSmall {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, "Terminal too small")
	}
	if a.pricing.Visible() {
		return a.pricing.View()
	}

	c := newCanvas(a.width, a.height)
	c.draw(0, 0, a.renderHeader())
	if a.view == messages.ViewRadio {
		a.drawRadio(c)
	} else {
		body := a.layout.Body()
		c.draw(body.X, body.Y, clampLines(a.write.View(), body.Width, body.Height))
	}
	c.draw(a.layout.Gutter(), a.layout.FooterRow(), a.renderFooter())
	return c.render()
}

type headerItem struct {
	id   string
	text string
}

// headerItems lays out the header row. Items with an id are clickable.
func (a *App) headerItems() []headerItem {
	tab := func(v messages.View, label string) string {
		if a.view == v {
			return a.styles.ActiveTab.Render(label)
		}
		return a.styles.Tab.Render(label)
	}

	play, status := "▶ Play", a.styles.OffAir.Render("OFF AIR")
	if a.playback.Playing() {
		play, status = "❚❚ Pause", a.styles.Live.Render("● LIVE")
	}

	left := []headerItem{
		{"", a.styles.Title.Render(brandText)},
		{zoneTabRadio, tab(messages.ViewRadio, "Radio")},
		{"", " "},
		{zoneTabWrite, tab(messages.ViewWrite, "Write")},
		{"", "  "},
	}
	right := []headerItem{
		{"", "  "},
		{zonePlay, a.styles.PlayButton.Render(play)},
		{"", " "},
		{"", status},
		{"", "  "},
		{zoneFree, a.styles.ActiveTab.Render("Free")},
		{"", " "},
	}

	used := 0
	for _, it := range append(append([]headerItem{}, left...), right...) {
		used += lipgloss.Width(it.text)
	}
	bw := a.width - used
	items := left
	if bw >= minBannerCell {
		items = append(items, headerItem{"", a.styles.Banner.Render(a.bannerWindow(bw))})
	} else if bw > 0 {
		items = append(items, headerItem{"", strings.Repeat(" ", bw)})
	}
	return append(items, right...)
}

// headerRegions returns the screen rectangles of the clickable header items.
func (a *App) headerRegions() []common.HitRegion {
	var regions []common.HitRegion
	x := 0
	for _, it := range a.headerItems() {
		w := lipgloss.Width(it.text)
		if it.id != "" {
			regions = append(regions, common.HitRegion{ID: it.id, X: x, Y: 0, Width: w, Height: 1})
		}
		x += w
	}
	return regions
}

// headerHit resolves a click on the header row. Zones recorded by the last
// scan win; the computed layout covers clicks before the first scan lands.
func (a *App) headerHit(x, y int) (string, bool) {
	for _, id := range []string{zoneTabRadio, zoneTabWrite, zonePlay, zoneFree} {
		z := a.zone.Get(id)
		if z == nil || z.IsZero() {
			continue
		}
		if x >= z.StartX && x <= z.EndX && y >= z.StartY && y <= z.EndY {
			return id, true
		}
	}
	for _, r := range a.headerRegions() {
		if r.Contains(x, y) {
			return r.ID, true
		}
	}
	return "", false
}

func (a *App) renderHeader() string {
	var b strings.Builder
	for _, it := range a.headerItems() {
		if it.id != "" {
			b.WriteString(a.zone.Mark(it.id, it.text))
			continue
		}
		b.WriteString(it.text)
	}
	return b.String()
}

// bannerWindow returns width cells of the looping session banner.
func (a *App) bannerWindow(width int) string {
	unit := a.sessionName + bannerSep
	uw := ansi.StringWidth(unit)
	if uw == 0 {
		return strings.Repeat(" ", width)
	}
	loop := strings.Repeat(unit, width/uw+2)
	start := a.bannerPos % uw
	return ansi.Cut(loop, start, start+width)
}

func (a *App) drawRadio(c *canvas) {
	g := a.layout.Gutter()

	label := a.styles.Muted.Render("Channel  ") + a.styles.Bold.Render(a.channel.Selected())
	if a.channel.Disabled() {
		label = a.styles.Muted.Render("Channel  ") + a.styles.TunerDisabled.Render(tuningStatus)
	}
	c.draw(g, a.layout.ChannelLabelRow(), label)

	ch := a.layout.Channel()
	c.draw(ch.X, ch.Y, a.channel.View())

	gr := a.layout.Genre()
	c.draw(gr.X, gr.Y, a.genre.View())

	if a.layout.ShowInfo() {
		info := a.layout.Info()
		c.draw(info.X, info.Y, clampLines(a.renderInfo(), info.Width, info.Height))
	}
}

func (a *App) renderInfo() string {
	status := a.styles.OffAir.Render("OFF AIR")
	if a.playback.Playing() {
		status = a.styles.Live.Render("● LIVE")
	}
	channel := a.channel.Selected()
	if a.channel.Disabled() {
		channel = tuningStatus
	}
	lines := []string{
		a.styles.Muted.Render("Now playing"),
		"",
		a.styles.Bold.Render(channel),
		a.styles.Body.Render(a.genre.Selected()),
		"",
		status,
		"",
		a.styles.Muted.Render(a.sessionName),
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderFooter() string {
	hints := keymap.RadioHints(a.keymap)
	if a.view == messages.ViewWrite {
		hints = keymap.WriteHints(a.keymap)
	}
	parts := make([]string, 0, len(hints))
	if a.config.UI.ShowKeymapHints {
		for _, h := range hints {
			if h.Key == "" {
				continue
			}
			parts = append(parts, a.styles.HelpKey.Render(h.Key)+" "+a.styles.HelpDesc.Render(h.Desc))
		}
	}
	line := strings.Join(parts, "  ")
	if a.toast.Visible() {
		line = a.toast.View()
	}
	return clampLines(line, a.width-2*a.layout.Gutter(), 1)
}

// canvas is a fixed grid of styled lines that blocks are drawn onto.
type canvas struct {
	width int
	lines []string
}

func newCanvas(width, height int) *canvas {
	lines := make([]string, max(0, height))
	blank := strings.Repeat(" ", max(0, width))
	for i := range lines {
		lines[i] = blank
	}
	return &canvas{width: width, lines: lines}
}

// draw overwrites the cells covered by block, with its top-left at x, y.
func (c *canvas) draw(x, y int, block string) {
	if block == "" || x >= c.width {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(c.lines) {
			continue
		}
		line = ansi.Cut(line, 0, c.width-x)
		w := ansi.StringWidth(line)
		if w == 0 {
			continue
		}
		cur := c.lines[row]
		c.lines[row] = ansi.Cut(cur, 0, x) + line + ansi.Cut(cur, x+w, c.width)
	}
}

func (c *canvas) render() string {
	return strings.Join(c.lines, "\n")
}

// clampLines truncates each line to width cells and keeps at most height
// lines.
func clampLines(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}
	return strings.Join(lines, "\n")
}
