package keymap

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/daytone/daytone/internal/config"
)

// Action identifies a configurable keybinding.
type Action string

const (
	ActionQuit       Action = "quit"
	ActionTogglePlay Action = "toggle_play"
	ActionRadio      Action = "view_radio"
	ActionWrite      Action = "view_write"
	ActionCycleView  Action = "cycle_view"
	ActionPricing    Action = "pricing"
	ActionClose      Action = "close"
	ActionHints      Action = "toggle_hints"
	ActionTickMarks  Action = "toggle_tick_marks"

	ActionChannelPrev Action = "channel_prev"
	ActionChannelNext Action = "channel_next"
	ActionGenrePrev   Action = "genre_prev"
	ActionGenreNext   Action = "genre_next"

	ActionSaveDraft  Action = "save_draft"
	ActionCopy       Action = "copy"
	ActionNextPrompt Action = "next_prompt"
	ActionEditTopics Action = "edit_topics"
)

type bindingDef struct {
	action Action
	keys   []string
	desc   string
}

// KeyMap defines all keybindings for the application.
type KeyMap struct {
	Quit       key.Binding
	TogglePlay key.Binding
	Radio      key.Binding
	Write      key.Binding
	CycleView  key.Binding
	Pricing    key.Binding
	Close      key.Binding
	Hints      key.Binding
	TickMarks  key.Binding

	ChannelPrev key.Binding
	ChannelNext key.Binding
	GenrePrev   key.Binding
	GenreNext   key.Binding

	SaveDraft  key.Binding
	Copy       key.Binding
	NextPrompt key.Binding
	EditTopics key.Binding
}

var defaults = []bindingDef{
	{ActionQuit, []string{"ctrl+c", "ctrl+q"}, "quit"},
	{ActionTogglePlay, []string{"ctrl+p"}, "play/pause"},
	{ActionRadio, []string{"f1"}, "radio"},
	{ActionWrite, []string{"f2"}, "write"},
	{ActionCycleView, []string{"tab"}, "switch view"},
	{ActionPricing, []string{"f3"}, "pricing"},
	{ActionClose, []string{"esc"}, "close"},
	{ActionHints, []string{"f4"}, "hints"},
	{ActionTickMarks, []string{"f5"}, "tick marks"},

	{ActionChannelPrev, []string{"left", "h"}, "prev channel"},
	{ActionChannelNext, []string{"right", "l"}, "next channel"},
	{ActionGenrePrev, []string{"up", "k"}, "prev genre"},
	{ActionGenreNext, []string{"down", "j"}, "next genre"},

	{ActionSaveDraft, []string{"ctrl+s"}, "save draft"},
	{ActionCopy, []string{"ctrl+y"}, "copy"},
	{ActionNextPrompt, []string{"ctrl+n"}, "next prompt"},
	{ActionEditTopics, []string{"ctrl+e"}, "edit topics"},
}

// New builds a keymap from defaults, applying any user overrides.
func New(cfg config.KeyMapConfig) KeyMap {
	b := make(map[Action]key.Binding, len(defaults))
	for _, def := range defaults {
		b[def.action] = bindingFromDef(cfg, def)
	}
	return KeyMap{
		Quit:       b[ActionQuit],
		TogglePlay: b[ActionTogglePlay],
		Radio:      b[ActionRadio],
		Write:      b[ActionWrite],
		CycleView:  b[ActionCycleView],
		Pricing:    b[ActionPricing],
		Close:      b[ActionClose],
		Hints:      b[ActionHints],
		TickMarks:  b[ActionTickMarks],

		ChannelPrev: b[ActionChannelPrev],
		ChannelNext: b[ActionChannelNext],
		GenrePrev:   b[ActionGenrePrev],
		GenreNext:   b[ActionGenreNext],

		SaveDraft:  b[ActionSaveDraft],
		Copy:       b[ActionCopy],
		NextPrompt: b[ActionNextPrompt],
		EditTopics: b[ActionEditTopics],
	}
}

func bindingFromDef(cfg config.KeyMapConfig, def bindingDef) key.Binding {
	keys, ok := cfg.BindingFor(string(def.action))
	if !ok {
		keys = def.keys
	}
	helpKey := strings.Join(keys, "/")
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKey, def.desc),
	)
}

// PrimaryKey returns the first key in the binding, if present.
func PrimaryKey(binding key.Binding) string {
	keys := binding.Keys()
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// BindingHint returns a single key hint for a binding, falling back to help text.
func BindingHint(binding key.Binding) string {
	key := PrimaryKey(binding)
	if key == "" {
		return binding.Help().Key
	}
	return key
}

// PairHint joins two bindings with a slash using their primary keys.
func PairHint(a, b key.Binding) string {
	left := BindingHint(a)
	right := BindingHint(b)
	if left == "" {
		return right
	}
	if right == "" {
		return left
	}
	return left + "/" + right
}

// Hint is one entry of the footer help line.
type Hint struct {
	Key  string
	Desc string
}

// RadioHints lists the footer hints for the radio view.
func RadioHints(km KeyMap) []Hint {
	return []Hint{
		{PairHint(km.ChannelPrev, km.ChannelNext), "channel"},
		{PairHint(km.GenrePrev, km.GenreNext), "genre"},
		{BindingHint(km.TogglePlay), km.TogglePlay.Help().Desc},
		{BindingHint(km.CycleView), km.CycleView.Help().Desc},
		{BindingHint(km.Pricing), km.Pricing.Help().Desc},
		{BindingHint(km.Hints), km.Hints.Help().Desc},
		{BindingHint(km.Quit), km.Quit.Help().Desc},
	}
}

// WriteHints lists the footer hints for the write view.
func WriteHints(km KeyMap) []Hint {
	return []Hint{
		{BindingHint(km.SaveDraft), km.SaveDraft.Help().Desc},
		{BindingHint(km.Copy), km.Copy.Help().Desc},
		{BindingHint(km.NextPrompt), km.NextPrompt.Help().Desc},
		{BindingHint(km.EditTopics), km.EditTopics.Help().Desc},
		{BindingHint(km.TogglePlay), km.TogglePlay.Help().Desc},
		{BindingHint(km.CycleView), km.CycleView.Help().Desc},
	}
}
