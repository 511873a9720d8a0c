package carousel

import (
	"errors"
	"fmt"
)

const (
	DefaultRepeatCount     = 5
	DefaultTapThreshold    = 5.0
	DefaultSnapGain        = 0.15
	DefaultSettleThreshold = 0.5
)

var (
	ErrNoItems     = errors.New("carousel: item set is empty")
	ErrBadExtent   = errors.New("carousel: item extent must be positive")
	ErrBadRepeat   = errors.New("carousel: repeat count must be odd and at least 3")
	ErrBadAxis     = errors.New("carousel: unknown axis")
	ErrNoViewport  = errors.New("carousel: viewport is required")
	ErrBadGain     = errors.New("carousel: snap gain must be in (0, 1]")
	ErrBadTap      = errors.New("carousel: tap threshold must not be negative")
	ErrBadSettling = errors.New("carousel: settle threshold must be positive")
)

// Config is fixed at construction. Zero values for RepeatCount and the
// tuning fields select the defaults.
type Config struct {
	Items       []string
	Axis        Axis
	ItemExtent  float64
	RepeatCount int
	Viewport    Viewport

	// TapThreshold is the release distance below which a gesture is a tap.
	TapThreshold float64
	// SnapGain is the fraction of the remaining distance covered per step.
	SnapGain float64
	// SettleThreshold is the distance at which the snap lands exactly.
	SettleThreshold float64

	// Rewrap moves the track back into the centre repetition after each
	// settle. The logical selection is unchanged and nothing is announced.
	Rewrap bool
}

func (c Config) withDefaults() Config {
	if c.RepeatCount == 0 {
		c.RepeatCount = DefaultRepeatCount
	}
	if c.TapThreshold == 0 {
		c.TapThreshold = DefaultTapThreshold
	}
	if c.SnapGain == 0 {
		c.SnapGain = DefaultSnapGain
	}
	if c.SettleThreshold == 0 {
		c.SettleThreshold = DefaultSettleThreshold
	}
	return c
}

// Validate reports the first construction precondition the config violates.
// Defaults are applied before checking.
func (c Config) Validate() error {
	c = c.withDefaults()
	if len(c.Items) == 0 {
		return ErrNoItems
	}
	if c.Axis != Horizontal && c.Axis != Vertical {
		return fmt.Errorf("%w: %d", ErrBadAxis, c.Axis)
	}
	if !(c.ItemExtent > 0) {
		return fmt.Errorf("%w: %v", ErrBadExtent, c.ItemExtent)
	}
	if c.RepeatCount < 3 || c.RepeatCount%2 == 0 {
		return fmt.Errorf("%w: %d", ErrBadRepeat, c.RepeatCount)
	}
	if c.Viewport == nil {
		return ErrNoViewport
	}
	if !(c.SnapGain > 0 && c.SnapGain <= 1) {
		return fmt.Errorf("%w: %v", ErrBadGain, c.SnapGain)
	}
	if c.TapThreshold < 0 {
		return fmt.Errorf("%w: %v", ErrBadTap, c.TapThreshold)
	}
	if !(c.SettleThreshold > 0) {
		return fmt.Errorf("%w: %v", ErrBadSettling, c.SettleThreshold)
	}
	return nil
}

// CenterSetIndex is the repetition the track starts in.
func (c Config) CenterSetIndex() int {
	return c.withDefaults().RepeatCount / 2
}
