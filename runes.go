package runes

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: clamp(c.A),
	}
}

// Vec2 is a 2D vector used for positions, offsets and spacing.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the magnitude of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Icon is an opaque image handle shown by a Node. Icons are compared by
// pointer identity; Name is only used for layouts, events and logging.
type Icon struct {
	Name  string
	Image *ebiten.Image
}

// String returns the icon name, or "<nil>" for a nil icon.
func (i *Icon) String() string {
	if i == nil {
		return "<nil>"
	}
	return i.Name
}

// Ease selects an easing curve for position transitions.
type Ease uint8

const (
	EaseLinear Ease = iota
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseInExpo
	EaseOutExpo
	EaseInOutExpo
	EaseInBack
	EaseOutBack
	EaseInOutBack
	EaseInElastic
	EaseOutElastic
	EaseInOutElastic
	EaseInBounce
	EaseOutBounce
	EaseInOutBounce

	easeCount
)

var easeNames = [easeCount]string{
	"linear",
	"inQuad", "outQuad", "inOutQuad",
	"inCubic", "outCubic", "inOutCubic",
	"inSine", "outSine", "inOutSine",
	"inExpo", "outExpo", "inOutExpo",
	"inBack", "outBack", "inOutBack",
	"inElastic", "outElastic", "inOutElastic",
	"inBounce", "outBounce", "inOutBounce",
}

var easeFuncs = [easeCount]ease.TweenFunc{
	ease.Linear,
	ease.InQuad, ease.OutQuad, ease.InOutQuad,
	ease.InCubic, ease.OutCubic, ease.InOutCubic,
	ease.InSine, ease.OutSine, ease.InOutSine,
	ease.InExpo, ease.OutExpo, ease.InOutExpo,
	ease.InBack, ease.OutBack, ease.InOutBack,
	ease.InElastic, ease.OutElastic, ease.InOutElastic,
	ease.InBounce, ease.OutBounce, ease.InOutBounce,
}

// Valid reports whether e names a known curve.
func (e Ease) Valid() bool { return e < easeCount }

// String returns the curve name used in layout files.
func (e Ease) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Ease(%d)", uint8(e))
	}
	return easeNames[e]
}

// Func returns the gween easing function for e. Unknown values fall back to
// linear.
func (e Ease) Func() ease.TweenFunc {
	if !e.Valid() {
		return ease.Linear
	}
	return easeFuncs[e]
}

// ParseEase looks up a curve by name. Matching ignores case, so "OutBack" and
// "outback" both resolve to EaseOutBack.
func ParseEase(name string) (Ease, error) {
	for i, n := range easeNames {
		if strings.EqualFold(n, name) {
			return Ease(i), nil
		}
	}
	return EaseLinear, fmt.Errorf("runes: unknown ease %q", name)
}

// MarshalYAML writes the curve by name.
func (e Ease) MarshalYAML() (any, error) {
	return e.String(), nil
}

// UnmarshalYAML reads the curve by name.
func (e *Ease) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("runes: line %d: ease must be a name: %w", value.Line, err)
	}
	return e.UnmarshalText([]byte(name))
}

// UnmarshalText implements encoding.TextUnmarshaler so curves can be written
// by name in JSON documents too.
func (e *Ease) UnmarshalText(text []byte) error {
	v, err := ParseEase(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// EventType identifies a kind of menu event.
type EventType uint8

const (
	EventExpand     EventType = iota // menu opened
	EventCollapse                    // menu closed
	EventSelect                      // ring item selected and swapped onto the main control
	EventSpiralMode                  // spiral layout mode changed
)

func (t EventType) String() string {
	switch t {
	case EventExpand:
		return "expand"
	case EventCollapse:
		return "collapse"
	case EventSelect:
		return "select"
	case EventSpiralMode:
		return "spiral"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)
