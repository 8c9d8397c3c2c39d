package runes

import (
	"errors"
	"fmt"
)

// Config holds the tunables of a RadialMenu. Durations are in seconds.
type Config struct {
	// Spacing is the per-step offset of the stack fan-out. Its magnitude is
	// also the ring radius in spiral mode.
	Spacing Vec2 `yaml:"spacing"`

	ExpandDuration   float32 `yaml:"expandDuration"`
	CollapseDuration float32 `yaml:"collapseDuration"`
	ExpandEase       Ease    `yaml:"expandEase"`
	CollapseEase     Ease    `yaml:"collapseEase"`

	ExpandFadeDuration   float32 `yaml:"expandFadeDuration"`
	CollapseFadeDuration float32 `yaml:"collapseFadeDuration"`

	// UseSpiral lays the ring out on a circle instead of using the designed
	// positions. Change it at runtime with RadialMenu.ToggleSpiralMode.
	UseSpiral bool `yaml:"useSpiral"`
}

// DefaultConfig returns a Config with the timings used by the demo.
func DefaultConfig() Config {
	return Config{
		Spacing:              Vec2{0, -72},
		ExpandDuration:       0.35,
		CollapseDuration:     0.25,
		ExpandEase:           EaseOutBack,
		CollapseEase:         EaseInQuad,
		ExpandFadeDuration:   0.25,
		CollapseFadeDuration: 0.2,
	}
}

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("runes: invalid menu config")

// Validate checks that all durations are positive and both easing curves are
// known.
func (c Config) Validate() error {
	durations := []struct {
		name string
		v    float32
	}{
		{"expandDuration", c.ExpandDuration},
		{"collapseDuration", c.CollapseDuration},
		{"expandFadeDuration", c.ExpandFadeDuration},
		{"collapseFadeDuration", c.CollapseFadeDuration},
	}
	for _, d := range durations {
		if !(d.v > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, d.name, d.v)
		}
	}
	if !c.ExpandEase.Valid() {
		return fmt.Errorf("%w: expandEase %v", ErrInvalidConfig, c.ExpandEase)
	}
	if !c.CollapseEase.Valid() {
		return fmt.Errorf("%w: collapseEase %v", ErrInvalidConfig, c.CollapseEase)
	}
	return nil
}
