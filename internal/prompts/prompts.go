// Package prompts holds the rotating conversation topics shown on the write
// view's prompt card.
package prompts

// Topic limits for the edit overlay.
const (
	MaxTopics = 7
	MinTopics = 1

	// NewTopic is the text of a freshly added topic.
	NewTopic = "New Topic"
)

// Icon identifies the glyph drawn beside a topic.
type Icon int

const (
	IconSchedule Icon = iota
	IconMind
	IconLearned
	IconConcerns

	iconCount
)

// Glyph returns the terminal rendering of the icon.
func (i Icon) Glyph() string {
	switch i {
	case IconSchedule:
		return "◷"
	case IconMind:
		return "✺"
	case IconLearned:
		return "✎"
	case IconConcerns:
		return "⚑"
	default:
		return " "
	}
}

// DefaultTopics seeds a new deck.
var DefaultTopics = []string{
	"Let’s talk about tomorrow’s schedule",
	"Let's talk about what's on your mind",
	"Let's talk about what you learned today",
	"Let's talk about your concerns",
}

// Deck is an ordered list of topics with a current position.
type Deck struct {
	topics  []string
	current int
}

// NewDeck copies topics into a deck positioned on the first one.
func NewDeck(topics []string) *Deck {
	return &Deck{topics: append([]string(nil), topics...)}
}

// Len returns the number of topics.
func (d *Deck) Len() int { return len(d.topics) }

// Topics returns a copy of the topic list.
func (d *Deck) Topics() []string { return append([]string(nil), d.topics...) }

// Index returns the current position.
func (d *Deck) Index() int { return d.current }

// Current returns the current topic, or "" for an empty deck.
func (d *Deck) Current() string {
	if len(d.topics) == 0 {
		return ""
	}
	return d.topics[d.current]
}

// Icon returns the glyph for the current position. Icons cycle every four
// topics.
func (d *Deck) Icon() Icon {
	return Icon(d.current % int(iconCount))
}

// Next advances to the following topic, wrapping at the end.
func (d *Deck) Next() {
	if len(d.topics) == 0 {
		return
	}
	d.current = (d.current + 1) % len(d.topics)
}

// Edit replaces topic i.
func (d *Deck) Edit(i int, text string) bool {
	if i < 0 || i >= len(d.topics) {
		return false
	}
	d.topics[i] = text
	return true
}

// Add appends NewTopic unless the deck is full and returns the new index.
func (d *Deck) Add() (int, bool) {
	if len(d.topics) >= MaxTopics {
		return -1, false
	}
	d.topics = append(d.topics, NewTopic)
	return len(d.topics) - 1, true
}

// Remove deletes topic i unless only MinTopics remain. The current position
// is clamped to the shortened list.
func (d *Deck) Remove(i int) bool {
	if len(d.topics) <= MinTopics || i < 0 || i >= len(d.topics) {
		return false
	}
	d.topics = append(d.topics[:i], d.topics[i+1:]...)
	if d.current >= len(d.topics) {
		d.current = len(d.topics) - 1
	}
	return true
}
