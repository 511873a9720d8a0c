package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/daytone/daytone/internal/carousel"
)

// KeyMapConfig holds user overrides for keybindings.
type KeyMapConfig struct {
	Bindings map[string][]string `json:"bindings,omitempty"`
}

// BindingFor returns the configured keys for an action, if present.
func (k KeyMapConfig) BindingFor(action string) ([]string, bool) {
	if len(k.Bindings) == 0 {
		return nil, false
	}
	if keys, ok := k.Bindings[action]; ok {
		return keys, true
	}
	if keys, ok := k.Bindings[strings.ToLower(action)]; ok {
		return keys, true
	}
	return nil, false
}

// TunerConfig describes one carousel. Extents are in terminal cells.
type TunerConfig struct {
	Items       []string `json:"items,omitempty"`
	Axis        string   `json:"axis,omitempty"`
	ItemExtent  float64  `json:"item_extent,omitempty"`
	RepeatCount int      `json:"repeat_count,omitempty"`
}

// MotionConfig tunes gesture classification and the snap animation for
// both tuners.
type MotionConfig struct {
	TapThreshold    float64
	SnapGain        float64
	SettleThreshold float64
	FrameInterval   time.Duration
	Rewrap          bool
	// TuningDuration is how long the channel tuner stays disabled after a
	// channel change.
	TuningDuration time.Duration
}

// Config holds the application configuration
type Config struct {
	Paths   *Paths
	Channel TunerConfig
	Genre   TunerConfig
	Motion  MotionConfig
	UI      UISettings
	KeyMap  KeyMapConfig
}

// DefaultConfig returns the default configuration rooted at ~/.daytone.
func DefaultConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return defaultsFor(paths), nil
}

func defaultsFor(paths *Paths) *Config {
	return &Config{
		Paths: paths,
		Channel: TunerConfig{
			Items:       []string{"Productivity", "Focus", "Daily Flow", "Discovery", "Entertainment"},
			Axis:        carousel.Horizontal.String(),
			ItemExtent:  18,
			RepeatCount: 5,
		},
		Genre: TunerConfig{
			Items:       []string{"Lo-fi", "Vaporwave", "Ambient", "Post-rock", "Jazz"},
			Axis:        carousel.Vertical.String(),
			ItemExtent:  3,
			RepeatCount: 5,
		},
		Motion: MotionConfig{
			// Terminal mouse reports whole cells, so any movement is a drag.
			TapThreshold:    1,
			SnapGain:        carousel.DefaultSnapGain,
			SettleThreshold: carousel.DefaultSettleThreshold,
			FrameInterval:   16 * time.Millisecond,
			Rewrap:          true,
			TuningDuration:  600 * time.Millisecond,
		},
		UI:     defaultUISettings(),
		KeyMap: KeyMapConfig{},
	}
}

// Load loads config overrides from ~/.daytone/config.json if present.
func Load() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return LoadFrom(paths)
}

type fileConfig struct {
	Tuners struct {
		Channel *TunerConfig `json:"channel"`
		Genre   *TunerConfig `json:"genre"`
	} `json:"tuners"`
	Motion struct {
		TapThreshold    *float64 `json:"tap_threshold"`
		SnapGain        *float64 `json:"snap_gain"`
		SettleThreshold *float64 `json:"settle_threshold"`
		FrameIntervalMs *int     `json:"frame_interval_ms"`
		Rewrap          *bool    `json:"rewrap"`
		TuningMs        *int     `json:"tuning_ms"`
	} `json:"motion"`
	KeyMap KeyMapConfig `json:"keymap,omitempty"`
}

// LoadFrom loads the config file named by paths over the defaults. A
// missing file yields the defaults; a malformed or invalid one is an error.
func LoadFrom(paths *Paths) (*Config, error) {
	cfg := defaultsFor(paths)

	data, err := os.ReadFile(paths.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var file fileConfig
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", paths.ConfigPath, err)
	}

	if file.Tuners.Channel != nil {
		cfg.Channel = cfg.Channel.merge(*file.Tuners.Channel)
	}
	if file.Tuners.Genre != nil {
		cfg.Genre = cfg.Genre.merge(*file.Tuners.Genre)
	}

	m := file.Motion
	if m.TapThreshold != nil {
		cfg.Motion.TapThreshold = *m.TapThreshold
	}
	if m.SnapGain != nil {
		cfg.Motion.SnapGain = *m.SnapGain
	}
	if m.SettleThreshold != nil {
		cfg.Motion.SettleThreshold = *m.SettleThreshold
	}
	if m.FrameIntervalMs != nil && *m.FrameIntervalMs > 0 {
		cfg.Motion.FrameInterval = time.Duration(*m.FrameIntervalMs) * time.Millisecond
	}
	if m.Rewrap != nil {
		cfg.Motion.Rewrap = *m.Rewrap
	}
	if m.TuningMs != nil && *m.TuningMs >= 0 {
		cfg.Motion.TuningDuration = time.Duration(*m.TuningMs) * time.Millisecond
	}

	if len(file.KeyMap.Bindings) > 0 {
		cfg.KeyMap = file.KeyMap
	}
	cfg.UI = loadUISettings(paths.ConfigPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", paths.ConfigPath, err)
	}
	return cfg, nil
}

func (t TunerConfig) merge(o TunerConfig) TunerConfig {
	if len(o.Items) > 0 {
		t.Items = o.Items
	}
	if o.Axis != "" {
		t.Axis = o.Axis
	}
	if o.ItemExtent != 0 {
		t.ItemExtent = o.ItemExtent
	}
	if o.RepeatCount != 0 {
		t.RepeatCount = o.RepeatCount
	}
	return t
}

// Validate checks both tuners against the carousel preconditions.
func (c *Config) Validate() error {
	if _, err := c.Channel.Carousel(c.Motion, carousel.Span{}); err != nil {
		return fmt.Errorf("channel tuner: %w", err)
	}
	if _, err := c.Genre.Carousel(c.Motion, carousel.Span{}); err != nil {
		return fmt.Errorf("genre tuner: %w", err)
	}
	if c.Motion.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %v", c.Motion.FrameInterval)
	}
	return nil
}

// Carousel builds the controller config for this tuner.
func (t TunerConfig) Carousel(m MotionConfig, viewport carousel.Viewport) (carousel.Config, error) {
	axis, err := carousel.ParseAxis(t.Axis)
	if err != nil {
		return carousel.Config{}, err
	}
	cfg := carousel.Config{
		Items:           t.Items,
		Axis:            axis,
		ItemExtent:      t.ItemExtent,
		RepeatCount:     t.RepeatCount,
		Viewport:        viewport,
		TapThreshold:    m.TapThreshold,
		SnapGain:        m.SnapGain,
		SettleThreshold: m.SettleThreshold,
		Rewrap:          m.Rewrap,
	}
	if err := cfg.Validate(); err != nil {
		return carousel.Config{}, err
	}
	return cfg, nil
}
