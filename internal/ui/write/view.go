package write

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/daytone/daytone/internal/drafts"
	"github.com/daytone/daytone/internal/ui/common"
)

// View renders the view and records its hit regions.
func (m *Model) View() string {
	w := m.region.Width
	hits := m.hits[:0]
	var blocks []string
	row := 0

	add := func(id, block string) {
		h := lipgloss.Height(block)
		if id != "" {
			hits = append(hits, common.HitRegion{ID: id, X: 0, Y: row, Width: max(w, lipgloss.Width(block)), Height: h})
		}
		blocks = append(blocks, block)
		row += h
	}

	add(regionCard, m.card.View())
	add("", "")
	add(regionArea, m.area.View())
	add("", "")

	buttonStyle := m.styles.Button
	label := m.ButtonLabel()
	if label == drafts.LabelSave {
		buttonStyle = m.styles.ActiveButton
	}
	button := buttonStyle.Render(label)
	copyButton := m.styles.Button.Render("Copy")
	hits = append(hits,
		common.HitRegion{ID: regionButton, X: 0, Y: row, Width: lipgloss.Width(button), Height: 1},
		common.HitRegion{ID: regionCopy, X: lipgloss.Width(button) + 2, Y: row, Width: lipgloss.Width(copyButton), Height: 1},
	)
	blocks = append(blocks, button+"  "+copyButton)
	row++

	if m.showSlots {
		for _, slot := range m.book.Slots() {
			style := m.styles.SlotRow
			if slot.Empty() {
				style = m.styles.EmptySlotRow
			}
			line := style.Render(slot.Label)
			hits = append(hits, common.HitRegion{ID: fmt.Sprintf(regionSlot, slot.Index), X: 0, Y: row, Width: max(w, lipgloss.Width(line)), Height: 1})
			blocks = append(blocks, line)
			row++
		}
	}

	m.hits = hits
	return strings.Join(blocks, "\n")
}
