package runes

import (
	"errors"
	"fmt"
)

// Construction errors returned by NewRadialMenu.
var (
	ErrNilMainControl = errors.New("runes: nil main control")
	ErrNilTweener     = errors.New("runes: nil tweener")
	ErrNilItem        = errors.New("runes: nil menu item")
	ErrDuplicateItem  = errors.New("runes: node used more than once in a menu")
)

// MenuEvent describes a state change of a RadialMenu. It is forwarded to the
// scene's EntityStore when the menu is attached to a Scene.
type MenuEvent struct {
	Type     EventType
	Menu     string
	Index    int    // selected ring slot (EventSelect), otherwise the active slot
	Icon     string // name of the icon now on the main control
	Expanded bool
	Spiral   bool
}

// RadialMenu is a main control that reveals a ring of selectable items and a
// linear stack of secondary items. Selecting a ring item moves its icon onto
// the main control and collapses the menu.
//
// All methods must be called from the game loop goroutine.
type RadialMenu struct {
	// Name identifies the menu in events and debug output.
	Name string

	// OnSelect, when set, runs after a ring item has been swapped onto the
	// main control and before the menu collapses.
	OnSelect func(index int, icon *Icon)

	// OnToggle, when set, runs after every expand or collapse request.
	OnToggle func(expanded bool)

	main      *Node
	mainClick CallbackHandle
	ring      []*RuneItem
	stack     []*RuneItem

	designed        []Vec2 // ring layout as authored
	home            []Vec2 // ring targets for the current expand cycle
	collapsedOrigin Vec2
	stackOrigin     Vec2

	cfg Config
	tw  Tweener

	expanded   bool
	activeSlot int

	scene    *Scene
	disposed bool
}

// NewRadialMenu builds a menu around main. Ring items take their index from
// their position in ring; stack items are numbered after the ring, so
// clicking one only closes the menu.
//
// The current positions of the ring nodes are captured as the expanded
// layout, main's position becomes the collapse point, and the first stack
// node's position becomes the stack origin. Every item is then moved to its
// collapse point and hidden.
func NewRadialMenu(main *Node, ring, stack []*Node, cfg Config, tw Tweener) (*RadialMenu, error) {
	if main == nil {
		return nil, ErrNilMainControl
	}
	if tw == nil {
		return nil, ErrNilTweener
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seen := map[*Node]string{main: "main"}
	check := func(group string, nodes []*Node) error {
		for i, n := range nodes {
			slot := fmt.Sprintf("%s[%d]", group, i)
			if n == nil {
				return fmt.Errorf("%w: %s", ErrNilItem, slot)
			}
			if prev, ok := seen[n]; ok {
				return fmt.Errorf("%w: %s is also %s", ErrDuplicateItem, slot, prev)
			}
			seen[n] = slot
		}
		return nil
	}
	if err := check("ring", ring); err != nil {
		return nil, err
	}
	if err := check("stack", stack); err != nil {
		return nil, err
	}

	m := &RadialMenu{
		Name:            main.Name,
		main:            main,
		cfg:             cfg,
		tw:              tw,
		collapsedOrigin: main.Position(),
		ring:            make([]*RuneItem, len(ring)),
		stack:           make([]*RuneItem, len(stack)),
		designed:        make([]Vec2, len(ring)),
		home:            make([]Vec2, len(ring)),
	}

	for i, n := range ring {
		m.ring[i] = newRuneItem(m, i, n)
		m.designed[i] = n.Position()
	}
	copy(m.home, m.designed)
	for i, n := range stack {
		m.stack[i] = newRuneItem(m, len(ring)+i, n)
	}

	switch {
	case len(stack) > 0:
		m.stackOrigin = stack[0].Position()
	case len(ring) > 0:
		m.stackOrigin = ring[0].Position()
	default:
		m.stackOrigin = m.collapsedOrigin
	}

	m.ResetPositions()
	m.mainClick = main.AddClickListener(func(ClickContext) { m.ToggleMenu() })
	return m, nil
}

// ResetPositions stops every in-flight transition and snaps the menu to its
// collapsed layout: ring items on the main control, stack items on the stack
// origin, all hidden. It does not change the expanded flag.
func (m *RadialMenu) ResetPositions() {
	for _, it := range m.ring {
		it.stop()
		it.SetPosition(m.collapsedOrigin)
		it.node.Alpha = 0
	}
	for _, it := range m.stack {
		it.stop()
		it.SetPosition(m.stackOrigin)
		it.node.Alpha = 0
	}
}

// ToggleMenu flips between expanded and collapsed and requests the matching
// transitions. It never waits for running transitions; any still in flight
// are cancelled and replaced.
func (m *RadialMenu) ToggleMenu() {
	if m.disposed {
		return
	}
	m.expanded = !m.expanded
	if m.expanded {
		m.expand()
	} else {
		m.collapse()
	}

	evt := EventCollapse
	if m.expanded {
		evt = EventExpand
	}
	m.emit(evt, m.activeSlot)
	if m.OnToggle != nil {
		m.OnToggle(m.expanded)
	}
}

func (m *RadialMenu) expand() {
	cfg := &m.cfg
	if cfg.UseSpiral {
		m.spiral()
	} else {
		copy(m.home, m.designed)
	}

	for i, it := range m.ring {
		it.moveTo(m.tw, m.home[i], cfg.ExpandDuration, cfg.ExpandEase)
		it.fadeTo(m.tw, 1, cfg.ExpandFadeDuration, 0)
	}
	targets := StackLayout(m.stackOrigin, cfg.Spacing, len(m.stack))
	for i, it := range m.stack {
		it.moveTo(m.tw, targets[i], cfg.ExpandDuration, cfg.ExpandEase)
		it.fadeTo(m.tw, 1, cfg.ExpandFadeDuration, 0)
	}
}

func (m *RadialMenu) collapse() {
	cfg := &m.cfg
	for _, it := range m.ring {
		it.moveTo(m.tw, m.collapsedOrigin, cfg.CollapseDuration, cfg.CollapseEase)
		it.fadeTo(m.tw, 0, cfg.CollapseFadeDuration, FromCurrent)
	}
	for _, it := range m.stack {
		it.moveTo(m.tw, m.stackOrigin, cfg.CollapseDuration, cfg.CollapseEase)
		it.fadeTo(m.tw, 0, cfg.CollapseFadeDuration, FromCurrent)
	}
}

// spiral overwrites the ring targets with an even circle around the main
// control whose radius is the spacing magnitude. With one ring item or
// fewer the targets are left as they are.
func (m *RadialMenu) spiral() {
	if !m.cfg.UseSpiral {
		return
	}
	pts := SpiralLayout(m.collapsedOrigin, m.cfg.Spacing.Len(), len(m.ring))
	if pts == nil {
		return
	}
	copy(m.home, pts)
}

// ToggleSpiralMode switches the ring between the designed layout and the
// spiral layout. While collapsed the change applies on the next expand. While
// expanded the menu snaps shut and immediately expands again with the new
// layout.
func (m *RadialMenu) ToggleSpiralMode(enabled bool) {
	if m.disposed {
		return
	}
	m.cfg.UseSpiral = enabled
	m.emit(EventSpiralMode, m.activeSlot)
	if !m.expanded {
		return
	}
	m.ResetPositions()
	m.expanded = false
	m.ToggleMenu()
}

// OnItemClick runs the select-and-swap protocol for ring slot index, whose
// icon is icon. It does nothing while the menu is collapsed. An index outside
// the ring only closes the menu.
func (m *RadialMenu) OnItemClick(index int, icon *Icon) {
	if m.disposed || !m.expanded {
		return
	}
	if index >= 0 && index < len(m.ring) {
		clicked := m.ring[index]
		prev := m.ring[m.activeSlot]

		clickedPos, prevPos := clicked.Position(), prev.Position()
		prev.SetPosition(clickedPos)
		clicked.SetPosition(prevPos)

		old := m.main.Icon
		m.main.Icon = icon
		clicked.SetIcon(old)

		m.activeSlot = index
		m.emit(EventSelect, index)
		if m.OnSelect != nil {
			m.OnSelect(index, icon)
		}
	}
	m.ToggleMenu()
}

// Dispose releases the main control's listener and every item listener and
// cancels running transitions. The nodes themselves stay with their owner.
// Safe to call more than once.
func (m *RadialMenu) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.mainClick.Remove()
	for _, it := range m.ring {
		it.Dispose()
	}
	for _, it := range m.stack {
		it.Dispose()
	}
	if m.scene != nil {
		m.scene.RemoveMenu(m)
	}
}

func (m *RadialMenu) emit(t EventType, index int) {
	if m.scene == nil {
		return
	}
	m.scene.emitMenuEvent(MenuEvent{
		Type:     t,
		Menu:     m.Name,
		Index:    index,
		Icon:     m.main.Icon.String(),
		Expanded: m.expanded,
		Spiral:   m.cfg.UseSpiral,
	})
}

// --- Accessors ---

// IsExpanded reports whether the menu is open.
func (m *RadialMenu) IsExpanded() bool { return m.expanded }

// IsDisposed reports whether Dispose has been called.
func (m *RadialMenu) IsDisposed() bool { return m.disposed }

// UseSpiral reports whether the ring uses the spiral layout.
func (m *RadialMenu) UseSpiral() bool { return m.cfg.UseSpiral }

// Config returns the menu configuration, including the current spiral mode.
func (m *RadialMenu) Config() Config { return m.cfg }

// ActiveSlot returns the ring slot whose icon is shown on the main control.
func (m *RadialMenu) ActiveSlot() int { return m.activeSlot }

// MainControl returns the main control node.
func (m *RadialMenu) MainControl() *Node { return m.main }

// MainIcon returns the icon shown on the main control.
func (m *RadialMenu) MainIcon() *Icon { return m.main.Icon }

// RingItems returns the ring items in slot order. The returned slice MUST NOT
// be mutated.
func (m *RadialMenu) RingItems() []*RuneItem { return m.ring }

// StackItems returns the stack items in order. The returned slice MUST NOT be
// mutated.
func (m *RadialMenu) StackItems() []*RuneItem { return m.stack }

// HomePositions returns a copy of the ring's expanded targets.
func (m *RadialMenu) HomePositions() []Vec2 {
	out := make([]Vec2, len(m.home))
	copy(out, m.home)
	return out
}

// CollapsedOrigin returns the point ring items collapse to.
func (m *RadialMenu) CollapsedOrigin() Vec2 { return m.collapsedOrigin }

// StackOrigin returns the point stack items collapse to.
func (m *RadialMenu) StackOrigin() Vec2 { return m.stackOrigin }
