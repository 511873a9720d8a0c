package prompts

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/daytone/daytone/internal/prompts"
)

func newCard() *Model {
	m := New(prompts.NewDeck(prompts.DefaultTopics))
	m.SetWidth(60)
	return m
}

func TestRotateAdvancesCard(t *testing.T) {
	m := newCard()
	m.Rotate()
	if m.Deck().Index() != 1 {
		t.Fatalf("expected index 1, got %d", m.Deck().Index())
	}
	view := m.View()
	if !strings.Contains(view, "on your mind") {
		t.Fatalf("expected second topic in view, got %q", view)
	}
	if strings.Count(view, "●") != 1 || strings.Count(view, "○") != 3 {
		t.Fatalf("expected one active dot of four, got %q", view)
	}
}

func TestEditorTypesIntoFocusedTopic(t *testing.T) {
	m := newCard()
	m.OpenEditor()
	if !m.Editing() {
		t.Fatalf("expected editor open")
	}
	m.Rotate()
	if m.Deck().Index() != 0 {
		t.Fatalf("expected rotation to be ignored while editing")
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: '!', Text: "!"})
	if got := m.Deck().Current(); !strings.HasSuffix(got, "!") {
		t.Fatalf("expected live edit, got %q", got)
	}
}

func TestEditorAddAndRemove(t *testing.T) {
	m := newCard()
	m.OpenEditor()
	for m.Deck().Len() < prompts.MaxTopics {
		m.AddTopic()
	}
	if m.AddTopic() != nil || m.Deck().Len() != prompts.MaxTopics {
		t.Fatalf("expected add to stop at %d", prompts.MaxTopics)
	}
	if m.focus != prompts.MaxTopics-1 {
		t.Fatalf("expected newest topic focused, got %d", m.focus)
	}

	for m.Deck().Len() > 1 {
		m.RemoveTopic()
	}
	m.RemoveTopic()
	if m.Deck().Len() != 1 || len(m.inputs) != 1 {
		t.Fatalf("expected one topic to remain")
	}
}

func TestEditorNavigationAndClose(t *testing.T) {
	m := newCard()
	m.OpenEditor()
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if m.focus != 1 {
		t.Fatalf("expected focus 1, got %d", m.focus)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.focus != len(prompts.DefaultTopics)-1 {
		t.Fatalf("expected wrap to last, got %d", m.focus)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.Editing() {
		t.Fatalf("expected esc to close the editor")
	}
}
