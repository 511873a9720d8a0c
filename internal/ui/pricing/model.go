// Package pricing renders the plan comparison modal opened from the header
// badge.
package pricing

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/daytone/daytone/internal/messages"
	"github.com/daytone/daytone/internal/ui/common"
)

// Plan is one column of the modal.
type Plan struct {
	Name     string
	Price    string
	Features []string
}

// DefaultPlans are shown when no others are set.
var DefaultPlans = []Plan{
	{
		Name:     "Free",
		Price:    "$0",
		Features: []string{"5 channels", "5 genres", "3 drafts"},
	},
	{
		Name:     "Plus",
		Price:    "$4/mo",
		Features: []string{"Unlimited channels", "Session recaps", "Unlimited drafts"},
	},
}

// Model is the pricing modal.
type Model struct {
	plans   []Plan
	visible bool
	width   int
	height  int
	panel   common.HitRegion
	styles  common.Styles
}

// New returns a hidden modal.
func New() *Model {
	return &Model{plans: DefaultPlans, styles: common.DefaultStyles()}
}

// SetSize sets the screen the modal is centred in.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

// Open shows the modal.
func (m *Model) Open() { m.visible = true }

// Close hides the modal.
func (m *Model) Close() { m.visible = false }

// Visible reports whether the modal is open.
func (m *Model) Visible() bool { return m.visible }

// Panel returns the screen rectangle of the last rendered panel.
func (m *Model) Panel() common.HitRegion { return m.panel }

// Update closes the modal on esc or on a click outside the panel. Clicks
// inside the panel are swallowed.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "esc" {
			return m, m.close()
		}
	case tea.MouseClickMsg:
		if !m.panel.Contains(msg.X, msg.Y) {
			return m, m.close()
		}
	}
	return m, nil
}

func (m *Model) close() tea.Cmd {
	m.visible = false
	return func() tea.Msg { return messages.ClosePricing{} }
}

// View renders the modal centred on a blank screen, or "" when hidden.
func (m *Model) View() string {
	if !m.visible {
		return ""
	}

	columns := make([]string, 0, len(m.plans))
	for _, p := range m.plans {
		lines := []string{
			m.styles.PlanName.Render(p.Name),
			m.styles.PlanPrice.Render(p.Price),
			"",
		}
		for _, f := range p.Features {
			lines = append(lines, m.styles.Body.Render("• "+f))
		}
		columns = append(columns, lipgloss.NewStyle().Width(24).Render(strings.Join(lines, "\n")))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.ModalTitle.Render("Choose your plan"),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		m.styles.Muted.Render("esc or click outside to close"),
	)
	box := m.styles.ModalBox.Render(body)

	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	m.panel = common.HitRegion{
		ID:     "pricing",
		X:      max(0, (m.width-bw)/2),
		Y:      max(0, (m.height-bh)/2),
		Width:  bw,
		Height: bh,
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
