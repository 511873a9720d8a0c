// Package prompts renders the rotating prompt card and its topic editor.
package prompts

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/daytone/daytone/internal/logging"
	"github.com/daytone/daytone/internal/prompts"
	"github.com/daytone/daytone/internal/ui/common"
)

// Model is the prompt card. While editing it shows one text input per
// topic instead.
type Model struct {
	deck   *prompts.Deck
	styles common.Styles
	width  int

	editing bool
	inputs  []textinput.Model
	focus   int
}

// New returns a card over deck.
func New(deck *prompts.Deck) *Model {
	return &Model{deck: deck, styles: common.DefaultStyles()}
}

// Deck returns the underlying topics.
func (m *Model) Deck() *prompts.Deck { return m.deck }

// SetWidth sets the card width in cells.
func (m *Model) SetWidth(width int) {
	m.width = width
	for i := range m.inputs {
		m.inputs[i].SetWidth(m.inputWidth())
	}
}

// Editing reports whether the topic editor is open.
func (m *Model) Editing() bool { return m.editing }

// Rotate shows the next topic.
func (m *Model) Rotate() {
	if m.editing {
		return
	}
	m.deck.Next()
}

// OpenEditor shows the topic list with the first topic focused.
func (m *Model) OpenEditor() tea.Cmd {
	m.editing = true
	m.inputs = m.inputs[:0]
	for _, topic := range m.deck.Topics() {
		m.inputs = append(m.inputs, m.newInput(topic))
	}
	m.focus = 0
	return m.focusInput(0)
}

// CloseEditor returns to the card.
func (m *Model) CloseEditor() {
	m.editing = false
	m.inputs = nil
}

func (m *Model) newInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Enter topic..."
	ti.Prompt = ""
	ti.CharLimit = 80
	ti.SetWidth(m.inputWidth())
	ti.SetVirtualCursor(true)
	ti.SetValue(value)
	return ti
}

func (m *Model) inputWidth() int {
	return max(10, m.width-8)
}

func (m *Model) focusInput(i int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	i = min(max(i, 0), len(m.inputs)-1)
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

// AddTopic appends a new topic and focuses it.
func (m *Model) AddTopic() tea.Cmd {
	i, ok := m.deck.Add()
	if !ok {
		logging.Debug("topic limit %d reached", prompts.MaxTopics)
		return nil
	}
	if !m.editing {
		return nil
	}
	m.inputs = append(m.inputs, m.newInput(m.deck.Topics()[i]))
	return m.focusInput(i)
}

// RemoveTopic deletes the focused topic unless it is the last one.
func (m *Model) RemoveTopic() tea.Cmd {
	if !m.editing || !m.deck.Remove(m.focus) {
		return nil
	}
	m.inputs = append(m.inputs[:m.focus], m.inputs[m.focus+1:]...)
	if m.focus >= len(m.inputs) {
		m.focus = len(m.inputs) - 1
	}
	return m.focusInput(m.focus)
}

// Update drives the topic editor. Edits are applied to the deck as they
// are typed.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if !m.editing {
		return m, nil
	}
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc", "enter":
			m.CloseEditor()
			return m, nil
		case "tab", "down":
			return m, m.focusInput((m.focus + 1) % len(m.inputs))
		case "shift+tab", "up":
			return m, m.focusInput((m.focus - 1 + len(m.inputs)) % len(m.inputs))
		case "ctrl+a":
			return m, m.AddTopic()
		case "ctrl+d":
			return m, m.RemoveTopic()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.deck.Edit(m.focus, m.inputs[m.focus].Value())
	return m, cmd
}

// View renders the card or the topic editor.
func (m *Model) View() string {
	if m.editing {
		return m.viewEditor()
	}
	return m.viewCard()
}

func (m *Model) viewCard() string {
	inner := max(10, m.width-4)
	text := m.deck.Current()
	icon := m.deck.Icon().Glyph()
	if text == "" {
		icon = " "
	}
	line := m.styles.Title.Render(icon) + " " + m.styles.Body.Render(runewidth.Truncate(text, inner-2, "…"))

	card := m.styles.Card.Width(m.width).Render(line)
	return lipgloss.JoinVertical(lipgloss.Center, card, m.dots())
}

// dots renders the pagination row, one dot per topic.
func (m *Model) dots() string {
	parts := make([]string, m.deck.Len())
	for i := range parts {
		if i == m.deck.Index() {
			parts[i] = m.styles.ActiveDot.Render("●")
		} else {
			parts[i] = m.styles.Dot.Render("○")
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) viewEditor() string {
	rows := make([]string, 0, len(m.inputs)+2)
	rows = append(rows, m.styles.Bold.Render("Topics"))
	for i := range m.inputs {
		marker := "  "
		if i == m.focus {
			marker = m.styles.ActiveDot.Render("›") + " "
		}
		rows = append(rows, marker+m.inputs[i].View()+" "+m.styles.Muted.Render("✕"))
	}
	hint := "tab next · ctrl+a add · ctrl+d delete · esc done"
	if m.deck.Len() >= prompts.MaxTopics {
		hint = "tab next · ctrl+d delete · esc done"
	}
	rows = append(rows, m.styles.Muted.Render(hint))
	return m.styles.Card.Width(m.width).Render(strings.Join(rows, "\n"))
}
