// Package write is the journaling view: a prompt card, a free-text area and
// the three-slot draft menu.
package write

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/daytone/daytone/internal/drafts"
	"github.com/daytone/daytone/internal/logging"
	"github.com/daytone/daytone/internal/messages"
	"github.com/daytone/daytone/internal/prompts"
	"github.com/daytone/daytone/internal/ui/common"
	uiprompts "github.com/daytone/daytone/internal/ui/prompts"
)

// Hit region IDs.
const (
	regionCard   = "card"
	regionArea   = "area"
	regionButton = "draft-button"
	regionCopy   = "copy"
	regionSlot   = "slot-%d"
)

// Model is the write view.
type Model struct {
	area   textarea.Model
	book   *drafts.Book
	card   *uiprompts.Model
	styles common.Styles

	region    common.HitRegion
	hits      []common.HitRegion
	lastSaved string
	showSlots bool

	copyText func(string) error
}

// New builds the view over a draft book and prompt deck.
func New(book *drafts.Book, deck *prompts.Deck) *Model {
	ta := textarea.New()
	ta.Placeholder = "Start writing..."
	ta.ShowLineNumbers = false
	ta.Prompt = "│ "
	ta.CharLimit = 0

	return &Model{
		area:     ta,
		book:     book,
		card:     uiprompts.New(deck),
		styles:   common.DefaultStyles(),
		copyText: common.CopyToClipboard,
	}
}

// SetRegion places the view on screen.
func (m *Model) SetRegion(r common.HitRegion) {
	m.region = r
	m.card.SetWidth(r.Width)
	m.area.SetWidth(max(10, r.Width))
	m.area.SetHeight(max(3, r.Height-12))
}

// Focus focuses the text area.
func (m *Model) Focus() tea.Cmd { return m.area.Focus() }

// Blur removes focus from the text area.
func (m *Model) Blur() { m.area.Blur() }

// Text returns the trimmed draft text.
func (m *Model) Text() string { return strings.TrimSpace(m.area.Value()) }

// SetText replaces the draft text.
func (m *Model) SetText(text string) { m.area.SetValue(text) }

// Card returns the prompt card.
func (m *Model) Card() *uiprompts.Model { return m.card }

// SlotsVisible reports whether the draft menu is open.
func (m *Model) SlotsVisible() bool { return m.showSlots }

// ButtonLabel is the draft button's current caption.
func (m *Model) ButtonLabel() string {
	return drafts.ButtonLabel(m.Text(), m.lastSaved)
}

// PressButton saves when there is unsaved text and toggles the draft menu
// otherwise.
func (m *Model) PressButton() tea.Cmd {
	if drafts.CanSave(m.Text(), m.lastSaved) {
		return m.Save()
	}
	m.showSlots = !m.showSlots
	return nil
}

// Save stores the current text as a draft.
func (m *Model) Save() tea.Cmd {
	d, ok, err := m.book.Save(m.Text())
	if err != nil {
		logging.Error("draft save failed: %v", err)
		return toast(messages.ToastError, "Could not save draft: "+err.Error())
	}
	if !ok {
		return nil
	}
	m.lastSaved = d.Content
	logging.Info("draft %s saved (%d runes)", d.ID, len([]rune(d.Content)))
	saved := messages.DraftSaved{ID: d.ID, Content: d.Content}
	return common.SafeBatch(
		func() tea.Msg { return saved },
		toast(messages.ToastSuccess, "Draft saved"),
	)
}

// Leave is called when switching away from the view. Unsaved text is kept
// as a draft.
func (m *Model) Leave() tea.Cmd {
	m.showSlots = false
	if !drafts.CanSave(m.Text(), m.lastSaved) {
		return nil
	}
	return m.Save()
}

// LoadSlot puts draft i in the editor. Later saves update it in place.
func (m *Model) LoadSlot(i int) tea.Cmd {
	d, ok := m.book.Load(i)
	if !ok {
		return nil
	}
	m.area.SetValue(d.Content)
	m.area.MoveToEnd()
	m.lastSaved = d.Content
	m.showSlots = false
	logging.Debug("loaded draft %s", d.ID)
	return m.area.Focus()
}

// Copy puts the text on the clipboard.
func (m *Model) Copy() tea.Cmd {
	text := m.Text()
	if text == "" {
		return toast(messages.ToastInfo, "Nothing to copy")
	}
	if err := m.copyText(text); err != nil {
		logging.Warn("clipboard copy failed: %v", err)
		return toast(messages.ToastError, "Copy failed")
	}
	return toast(messages.ToastSuccess, "Copied to clipboard")
}

// Update handles typing and clicks. Mouse coordinates are screen
// coordinates.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return m, nil
		}
		return m, m.click(msg.X, msg.Y)
	case tea.KeyPressMsg:
		if m.card.Editing() {
			var cmd tea.Cmd
			m.card, cmd = m.card.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m *Model) click(x, y int) tea.Cmd {
	lx, ly := m.region.Local(x, y)
	for _, h := range m.hits {
		if !h.Contains(lx, ly) {
			continue
		}
		switch h.ID {
		case regionCard:
			m.card.Rotate()
			return nil
		case regionArea:
			return m.area.Focus()
		case regionButton:
			return m.PressButton()
		case regionCopy:
			return m.Copy()
		default:
			var i int
			if _, err := fmt.Sscanf(h.ID, regionSlot, &i); err == nil {
				return m.LoadSlot(i)
			}
		}
	}
	return nil
}

func toast(level messages.ToastLevel, text string) tea.Cmd {
	return func() tea.Msg { return messages.Toast{Message: text, Level: level} }
}
