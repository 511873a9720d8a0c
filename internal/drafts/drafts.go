// Package drafts keeps the three most recent write-view drafts in the shared
// store.
package drafts

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daytone/daytone/internal/logging"
)

const (
	// Key is the store key holding the JSON draft list.
	Key = "drafts"
	// MaxDrafts is the number of slots.
	MaxDrafts = 3
	// MinLength is the shortest trimmed text worth saving, in runes.
	MinLength = 2

	previewRunes = 15
)

// Button labels.
const (
	LabelSave   = "Save"
	LabelDrafts = "Drafts"
)

// KV is the storage the list lives in.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Draft is one saved text.
type Draft struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

// Slot is one row of the draft menu.
type Slot struct {
	Index int
	Label string
	Draft *Draft
}

// Empty reports whether the slot holds no draft.
func (s Slot) Empty() bool { return s.Draft == nil }

// Book saves and loads drafts and remembers which draft the editor is on.
type Book struct {
	kv     KV
	loaded string

	now   func() time.Time
	newID func() string
}

// New returns a Book over kv.
func New(kv KV) *Book {
	return &Book{kv: kv, now: time.Now, newID: uuid.NewString}
}

// List returns the stored drafts, newest first. A missing or unreadable
// value yields an empty list.
func (b *Book) List() []Draft {
	raw, ok := b.kv.Get(Key)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	var list []Draft
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		logging.Warn("ignoring unreadable drafts: %v", err)
		return nil
	}
	if len(list) > MaxDrafts {
		list = list[:MaxDrafts]
	}
	return list
}

// Slots returns exactly MaxDrafts rows for the menu.
func (b *Book) Slots() []Slot {
	list := b.List()
	slots := make([]Slot, MaxDrafts)
	for i := range slots {
		slots[i].Index = i
		if i < len(list) {
			d := list[i]
			slots[i].Draft = &d
			slots[i].Label = fmt.Sprintf("Draft %d: %s", i+1, Preview(d.Content))
			continue
		}
		slots[i].Label = fmt.Sprintf("Draft %d: Empty", i+1)
	}
	return slots
}

// Load selects slot i for editing and returns its content.
func (b *Book) Load(i int) (Draft, bool) {
	list := b.List()
	if i < 0 || i >= len(list) {
		return Draft{}, false
	}
	b.loaded = list[i].ID
	return list[i], true
}

// Loaded returns the id of the draft being edited, if any.
func (b *Book) Loaded() string { return b.loaded }

// Reset forgets the loaded draft so the next save starts a new one.
func (b *Book) Reset() { b.loaded = "" }

// Save stores text. Text shorter than MinLength after trimming is ignored
// and reported as not saved. Editing a loaded draft updates it in place.
// Otherwise a new draft is prepended, or the oldest slot is reused when
// all slots are full.
func (b *Book) Save(text string) (Draft, bool, error) {
	text = strings.TrimSpace(text)
	if len([]rune(text)) < MinLength {
		return Draft{}, false, nil
	}

	list := b.List()
	now := b.now()

	idx := -1
	if b.loaded != "" {
		for i := range list {
			if list[i].ID == b.loaded {
				idx = i
				break
			}
		}
		if idx < 0 {
			logging.Debug("loaded draft %s vanished, saving as new", b.loaded)
			b.loaded = ""
		}
	}

	switch {
	case idx >= 0:
		list[idx].Content = text
		list[idx].Date = now
	case len(list) >= MaxDrafts:
		idx = len(list) - 1
		list[idx] = Draft{ID: b.newID(), Content: text, Date: now}
	default:
		list = append([]Draft{{ID: b.newID(), Content: text, Date: now}}, list...)
		idx = 0
	}

	data, err := json.Marshal(list)
	if err != nil {
		return Draft{}, false, err
	}
	if err := b.kv.Set(Key, string(data)); err != nil {
		return Draft{}, false, fmt.Errorf("save draft: %w", err)
	}
	b.loaded = list[idx].ID
	return list[idx], true, nil
}

// Preview abbreviates content for a slot label.
func Preview(content string) string {
	r := []rune(content)
	if len(r) > previewRunes {
		return string(r[:previewRunes]) + "..."
	}
	return content
}

// ButtonLabel is "Save" when text is long enough and differs from what was
// last saved, and "Drafts" otherwise.
func ButtonLabel(text, lastSaved string) string {
	if CanSave(text, lastSaved) {
		return LabelSave
	}
	return LabelDrafts
}

// CanSave reports whether the draft button would save.
func CanSave(text, lastSaved string) bool {
	text = strings.TrimSpace(text)
	return len([]rune(text)) >= MinLength && text != lastSaved
}
