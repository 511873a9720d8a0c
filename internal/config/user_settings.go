package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// UISetting names a display preference that can be flipped at runtime. The
// value doubles as its key under "ui" in the config file.
type UISetting string

const (
	SettingKeymapHints UISetting = "show_keymap_hints"
	SettingTickMarks   UISetting = "tick_marks"
)

// UISettings stores user-facing display preferences.
type UISettings struct {
	ShowKeymapHints bool
	// TickMarks draws the minor/major tick ruler under channel labels.
	TickMarks bool
}

func defaultUISettings() UISettings {
	return UISettings{
		ShowKeymapHints: true,
		TickMarks:       true,
	}
}

func (s *UISettings) field(name UISetting) (*bool, error) {
	switch name {
	case SettingKeymapHints:
		return &s.ShowKeymapHints, nil
	case SettingTickMarks:
		return &s.TickMarks, nil
	}
	return nil, fmt.Errorf("unknown ui setting %q", name)
}

// Get reports the value of a setting.
func (s UISettings) Get(name UISetting) (bool, error) {
	p, err := s.field(name)
	if err != nil {
		return false, err
	}
	return *p, nil
}

// loadUISettings overlays the "ui" object of the config file on the
// defaults. Unknown keys and unreadable files leave the defaults alone.
func loadUISettings(path string) UISettings {
	settings := defaultUISettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return settings
	}
	var raw struct {
		UI map[UISetting]json.RawMessage `json:"ui"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return settings
	}
	for name, v := range raw.UI {
		p, err := settings.field(name)
		if err != nil {
			continue
		}
		var b bool
		if json.Unmarshal(v, &b) == nil {
			*p = b
		}
	}
	return settings
}

// saveUISettings rewrites the "ui" object in place, keeping every other key
// of the file, including ui keys this build does not know.
func saveUISettings(path string, settings UISettings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	doc := map[string]json.RawMessage{}
	ui := map[string]any{}
	if existing, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(existing, &doc); err != nil {
			return fmt.Errorf("config %s is not a JSON object: %w", path, err)
		}
		if prev, ok := doc["ui"]; ok {
			_ = json.Unmarshal(prev, &ui)
		}
	}
	ui[string(SettingKeymapHints)] = settings.ShowKeymapHints
	ui[string(SettingTickMarks)] = settings.TickMarks

	encoded, err := json.Marshal(ui)
	if err != nil {
		return err
	}
	doc["ui"] = encoded

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return atomic.WriteFile(path, bytes.NewReader(data))
}

// SaveUISettings persists UI settings to the config file.
func (c *Config) SaveUISettings() error {
	if c == nil || c.Paths == nil {
		return nil
	}
	return saveUISettings(c.Paths.ConfigPath, c.UI)
}

// ToggleUISetting flips a setting and persists it, returning the new value.
// The in-memory value is restored if the write fails.
func (c *Config) ToggleUISetting(name UISetting) (bool, error) {
	p, err := c.UI.field(name)
	if err != nil {
		return false, err
	}
	*p = !*p
	if err := c.SaveUISettings(); err != nil {
		*p = !*p
		return *p, fmt.Errorf("save %s: %w", name, err)
	}
	return *p, nil
}
