package runes

// HitShape is used for custom hit testing regions. Coordinates are local to
// the node center.
type HitShape interface {
	Contains(x, y float64) bool
}

// ClickContext carries click event data.
type ClickContext struct {
	Node      *Node
	UserData  any
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	PointerID int
}

// --- ID counter ---

// nodeIDCounter is a plain counter; runes is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the visual surface behind the main control and every menu item: an
// icon drawn centered on (X, Y) with an opacity, plus a clickable area.
//
// The menu and the tween engine are the only writers of X, Y and Alpha; only
// the menu writes Icon. Renderers treat the node as read-only.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Position of the node center.
	X, Y float64

	// Size in pixels. Zero means "use the icon image bounds".
	Width, Height float64

	// Appearance
	Icon   *Icon
	Alpha  float64
	Color  Color
	ZIndex int

	// Visibility & interaction
	Visible      bool
	Interactable bool
	HitShape     HitShape

	// Metadata
	UserData any

	handlers handlerRegistry
	disposed bool
}

// NewNode creates a visible, interactable node showing icon.
func NewNode(name string, icon *Icon) *Node {
	return &Node{
		ID:           nextNodeID(),
		Name:         name,
		Icon:         icon,
		Alpha:        1,
		Color:        ColorWhite,
		Visible:      true,
		Interactable: true,
	}
}

// Position returns the node center.
func (n *Node) Position() Vec2 {
	return Vec2{n.X, n.Y}
}

// SetPosition moves the node center to p.
func (n *Node) SetPosition(p Vec2) {
	n.X = p.X
	n.Y = p.Y
}

// Size returns the node dimensions, falling back to the icon image bounds when
// Width and Height are both zero.
func (n *Node) Size() (w, h float64) {
	if n.Width != 0 || n.Height != 0 {
		return n.Width, n.Height
	}
	if n.Icon != nil && n.Icon.Image != nil {
		b := n.Icon.Image.Bounds()
		return float64(b.Dx()), float64(b.Dy())
	}
	return 0, 0
}

// AddClickListener registers fn to run when this node is clicked. The
// returned handle must be removed when the listener's owner goes away.
func (n *Node) AddClickListener(fn func(ClickContext)) CallbackHandle {
	if n.disposed {
		return CallbackHandle{}
	}
	return n.handlers.addClick(fn)
}

// ClickListenerCount returns the number of registered click listeners.
func (n *Node) ClickListenerCount() int {
	return len(n.handlers.click)
}

// Click delivers a click to this node's listeners as if the pointer had been
// pressed and released over its center.
func (n *Node) Click() {
	n.fireClick(ClickContext{Node: n, UserData: n.UserData, GlobalX: n.X, GlobalY: n.Y})
}

func (n *Node) fireClick(ctx ClickContext) {
	if n.disposed || len(n.handlers.click) == 0 {
		return
	}
	// Listeners may remove themselves (or dispose the node) while running.
	hs := make([]clickHandler, len(n.handlers.click))
	copy(hs, n.handlers.click)
	for _, h := range hs {
		if n.disposed {
			return
		}
		if !n.handlers.has(h.id) {
			continue
		}
		h.fn(ctx)
	}
}

// Dispose drops every listener and marks the node unusable. Running tweens
// targeting the node stop on their next update.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	n.handlers.clear()
}

// IsDisposed reports whether Dispose has been called.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// containsLocal tests whether (lx, ly), relative to the node center, falls
// inside the node's hit region. Uses HitShape if set; otherwise the node's
// centered bounding box.
func (n *Node) containsLocal(lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	w, h := n.Size()
	if w == 0 && h == 0 {
		return false
	}
	return lx >= -w/2 && lx <= w/2 && ly >= -h/2 && ly <= h/2
}
