package runes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	maxPointers = 2 // pointer 0 = mouse, 1 = primary touch
)

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area, relative to the node center.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area, relative to the node center. Round rune
// icons usually want HitCircle{Radius: size / 2}.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Per-pointer state ---

type pointerState struct {
	down    bool
	hitNode *Node
	button  MouseButton // button captured at press time
}

// --- Handler registry ---

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

type handlerRegistry struct {
	click  []clickHandler
	nextID uint32
}

func (r *handlerRegistry) addClick(fn func(ClickContext)) CallbackHandle {
	r.nextID++
	r.click = append(r.click, clickHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r}
}

func (r *handlerRegistry) has(id uint32) bool {
	for i := range r.click {
		if r.click[i].id == id {
			return true
		}
	}
	return false
}

func (r *handlerRegistry) clear() {
	for i := range r.click {
		r.click[i] = clickHandler{}
	}
	r.click = r.click[:0]
}

// CallbackHandle allows removing a registered click listener. The zero value
// is a valid handle whose Remove does nothing.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires. Calling Remove more
// than once is safe.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.click = removeClickHandler(h.reg.click, h.id)
}

// Active reports whether the callback is still registered.
func (h CallbackHandle) Active() bool {
	return h.reg != nil && h.reg.has(h.id)
}

func removeClickHandler(s []clickHandler, id uint32) []clickHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = clickHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Scene-level event registration ---

// OnClick registers a scene-level callback for click events. It fires before
// the clicked node's own listeners, including for clicks on empty space
// (ctx.Node is nil).
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	return s.handlers.addClick(fn)
}

// --- Hit testing ---

// hitTest finds the topmost interactable node at (x, y). Returns nil if
// nothing is hit. Fully transparent nodes are skipped so a collapsed menu
// cannot be clicked through its hidden items.
func (s *Scene) hitTest(x, y float64) *Node {
	s.sortNodes()
	for i := len(s.sorted) - 1; i >= 0; i-- {
		n := s.sorted[i]
		if !n.Visible || !n.Interactable || n.disposed || n.Alpha <= 0 {
			continue
		}
		if n.containsLocal(x-n.X, y-n.Y) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput handles mouse and touch input. Injected events take priority
// over real devices; real devices are only polled when poll is true.
func (s *Scene) processInput(poll bool) {
	if s.processInjectedInput() {
		return
	}
	if !poll {
		return
	}
	s.processMousePointer()
	s.processTouchPointer()
}

func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := false
	button := MouseButtonLeft
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed = true
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed = true
		button = MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed = true
		button = MouseButtonMiddle
	}
	s.processPointer(0, float64(mx), float64(my), pressed, button)
}

func (s *Scene) processTouchPointer() {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	ps := &s.pointers[1]
	if len(s.touchIDs) == 0 {
		if ps.down {
			s.processPointer(1, s.lastTouchX, s.lastTouchY, false, MouseButtonLeft)
		}
		return
	}
	tx, ty := ebiten.TouchPosition(s.touchIDs[0])
	s.lastTouchX, s.lastTouchY = float64(tx), float64(ty)
	s.processPointer(1, s.lastTouchX, s.lastTouchY, true, MouseButtonLeft)
}

// processPointer runs the click state machine for a single pointer. A click
// fires when the pointer is pressed and released over the same node.
func (s *Scene) processPointer(pointerID int, x, y float64, pressed bool, button MouseButton) {
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.hitNode = s.hitTest(x, y)
	case !pressed && ps.down:
		target := s.hitTest(x, y)
		if ps.hitNode == target {
			s.fireClick(target, pointerID, x, y, ps.button)
		}
		ps.down = false
		ps.hitNode = nil
	}
}

func (s *Scene) fireClick(node *Node, pointerID int, x, y float64, button MouseButton) {
	ctx := ClickContext{
		Node: node, GlobalX: x, GlobalY: y,
		Button: button, PointerID: pointerID,
	}
	if node != nil {
		ctx.UserData = node.UserData
		ctx.LocalX = x - node.X
		ctx.LocalY = y - node.Y
	}
	hs := make([]clickHandler, len(s.handlers.click))
	copy(hs, s.handlers.click)
	for _, h := range hs {
		if s.handlers.has(h.id) {
			h.fn(ctx)
		}
	}
	if node != nil {
		node.fireClick(ctx)
	}
}
