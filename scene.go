package runes

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, menu events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event MenuEvent)
}

// Scene is the top-level object that owns the nodes, menus, tween engine and
// input state.
type Scene struct {
	// ClearColor fills the screen before drawing. A zero alpha skips the fill.
	ClearColor Color

	nodes  []*Node
	sorted []*Node // draw order, rebuilt on demand
	menus  []*RadialMenu
	tweens *TweenEngine
	store  EntityStore
	debug  bool

	// Input state
	handlers    handlerRegistry
	pointers    [maxPointers]pointerState
	touchIDs    []ebiten.TouchID
	lastTouchX  float64
	lastTouchY  float64
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	updateFunc func() error
	drawFunc   func(screen *ebiten.Image)
}

// NewScene creates an empty scene with its own tween engine.
func NewScene() *Scene {
	return &Scene{tweens: NewTweenEngine()}
}

// Tweens returns the scene's tween engine. Menus created with NewMenu use it.
func (s *Scene) Tweens() *TweenEngine {
	return s.tweens
}

// AddNode appends n to the draw list. Nodes draw in ZIndex order, ties in
// insertion order; later nodes are hit first.
func (s *Scene) AddNode(n *Node) {
	if s.debug {
		debugCheckDisposed(n, "AddNode")
	}
	s.nodes = append(s.nodes, n)
}

// RemoveNode removes n from the draw list. It does not dispose n.
func (s *Scene) RemoveNode(n *Node) {
	if i := slices.Index(s.nodes, n); i >= 0 {
		s.nodes = slices.Delete(s.nodes, i, i+1)
	}
}

// Nodes returns the scene's nodes in insertion order. The returned slice MUST
// NOT be mutated.
func (s *Scene) Nodes() []*Node {
	return s.nodes
}

// NewMenu adds main, ring and stack to the scene, builds a RadialMenu on the
// scene's tween engine and attaches it. The main control draws above its
// items so a collapsed menu shows only the main control.
func (s *Scene) NewMenu(main *Node, ring, stack []*Node, cfg Config) (*RadialMenu, error) {
	m, err := NewRadialMenu(main, ring, stack, cfg, s.tweens)
	if err != nil {
		return nil, err
	}
	for _, n := range ring {
		s.AddNode(n)
	}
	for _, n := range stack {
		s.AddNode(n)
	}
	if main.ZIndex <= maxZ(ring, stack) {
		main.ZIndex = maxZ(ring, stack) + 1
	}
	s.AddNode(main)
	s.AddMenu(m)
	return m, nil
}

func maxZ(groups ...[]*Node) int {
	z := 0
	for _, g := range groups {
		for _, n := range g {
			z = max(z, n.ZIndex)
		}
	}
	return z
}

// AddMenu attaches m so its events reach the scene's EntityStore and debug
// log. NewMenu calls this for you.
func (s *Scene) AddMenu(m *RadialMenu) {
	if m.scene == s {
		return
	}
	m.scene = s
	s.menus = append(s.menus, m)
}

// RemoveMenu detaches m. Disposing a menu detaches it automatically.
func (s *Scene) RemoveMenu(m *RadialMenu) {
	if i := slices.Index(s.menus, m); i >= 0 {
		s.menus = slices.Delete(s.menus, i, i+1)
	}
	if m.scene == s {
		m.scene = nil
	}
}

// DisposeMenu tears m down completely: it disposes the menu, then removes
// its main control, ring and stack nodes from the scene and disposes them.
// Use it when the menu's nodes were created for it, as NewMenu and
// Layout.Build do.
func (s *Scene) DisposeMenu(m *RadialMenu) {
	m.Dispose()
	s.RemoveMenu(m)
	nodes := []*Node{m.main}
	for _, it := range m.ring {
		nodes = append(nodes, it.node)
	}
	for _, it := range m.stack {
		nodes = append(nodes, it.node)
	}
	for _, n := range nodes {
		s.RemoveNode(n)
		n.Dispose()
	}
}

// Menus returns the attached menus. The returned slice MUST NOT be mutated.
func (s *Scene) Menus() []*RadialMenu {
	return s.menus
}

// Menu returns the attached menu with the given name, or nil.
func (s *Scene) Menu(name string) *RadialMenu {
	for _, m := range s.menus {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// SetUpdateFunc sets a callback that runs at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDrawFunc sets a callback that runs at the end of every Draw, after the
// nodes. Use it for overlays such as labels or a HUD.
func (s *Scene) SetDrawFunc(fn func(screen *ebiten.Image)) {
	s.drawFunc = fn
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// Update processes input (delivering clicks to menus synchronously) and then
// advances running transitions by one tick.
func (s *Scene) Update() error {
	return s.update(float32(1.0/float64(ebiten.TPS())), true)
}

// update is Update with an explicit time step. Real devices are polled only
// when poll is true, which keeps headless runs deterministic.
func (s *Scene) update(dt float32, poll bool) error {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput(poll)
	s.tweens.Update(dt)
	s.pruneDisposed()
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// pruneDisposed drops disposed nodes from the draw list.
func (s *Scene) pruneDisposed() {
	s.nodes = slices.DeleteFunc(s.nodes, (*Node).IsDisposed)
}

// sortNodes rebuilds the draw order.
func (s *Scene) sortNodes() {
	s.sorted = append(s.sorted[:0], s.nodes...)
	slices.SortStableFunc(s.sorted, func(a, b *Node) int {
		return a.ZIndex - b.ZIndex
	})
}

func (s *Scene) emitMenuEvent(evt MenuEvent) {
	s.debugLog(evt)
	if s.store != nil {
		s.store.EmitEvent(evt)
	}
}
