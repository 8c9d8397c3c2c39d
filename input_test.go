package runes

import (
	"testing"
)

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"inside", 60, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNodeContainsLocalUsesCenteredBox(t *testing.T) {
	n := NewNode("box", nil)
	n.Width, n.Height = 20, 10

	tests := []struct {
		name   string
		lx, ly float64
		want   bool
	}{
		{"center", 0, 0, true},
		{"left edge", -10, 0, true},
		{"bottom edge", 0, 5, true},
		{"outside right", 11, 0, false},
		{"outside top", 0, -6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.containsLocal(tt.lx, tt.ly); got != tt.want {
				t.Errorf("containsLocal(%v, %v) = %v, want %v", tt.lx, tt.ly, got, tt.want)
			}
		})
	}

	empty := NewNode("empty", nil)
	if empty.containsLocal(0, 0) {
		t.Error("node without size or shape should not be hit-testable")
	}
}

// --- Hit testing ---

func newHitNode(name string, x, y float64, z int) *Node {
	n := NewNode(name, nil)
	n.X, n.Y = x, y
	n.Width, n.Height = 20, 20
	n.ZIndex = z
	return n
}

func TestHitTestTopmost(t *testing.T) {
	s := NewScene()
	low := newHitNode("low", 50, 50, 0)
	high := newHitNode("high", 55, 55, 1)
	s.AddNode(high)
	s.AddNode(low)

	if got := s.hitTest(52, 52); got != high {
		t.Errorf("hitTest = %v, want high", got)
	}
	if got := s.hitTest(42, 42); got != low {
		t.Errorf("hitTest = %v, want low", got)
	}
	if got := s.hitTest(200, 200); got != nil {
		t.Errorf("hitTest on empty space = %v, want nil", got)
	}
}

func TestHitTestSkipsHiddenNodes(t *testing.T) {
	s := NewScene()
	under := newHitNode("under", 50, 50, 0)
	over := newHitNode("over", 50, 50, 1)
	s.AddNode(under)
	s.AddNode(over)

	over.Alpha = 0
	if got := s.hitTest(50, 50); got != under {
		t.Errorf("transparent node was hit: %v", got)
	}
	over.Alpha = 1
	over.Visible = false
	if got := s.hitTest(50, 50); got != under {
		t.Errorf("invisible node was hit: %v", got)
	}
	over.Visible = true
	over.Interactable = false
	if got := s.hitTest(50, 50); got != under {
		t.Errorf("non-interactable node was hit: %v", got)
	}
}

// --- Click state machine ---

func TestProcessPointerClick(t *testing.T) {
	s := NewScene()
	n := newHitNode("btn", 50, 50, 0)
	s.AddNode(n)

	var clicks []ClickContext
	n.AddClickListener(func(ctx ClickContext) { clicks = append(clicks, ctx) })

	s.processPointer(0, 52, 48, true, MouseButtonLeft)
	if len(clicks) != 0 {
		t.Fatal("click fired on press")
	}
	s.processPointer(0, 52, 48, false, MouseButtonLeft)
	if len(clicks) != 1 {
		t.Fatalf("clicks = %d, want 1", len(clicks))
	}
	ctx := clicks[0]
	if ctx.Node != n || ctx.LocalX != 2 || ctx.LocalY != -2 || ctx.GlobalX != 52 {
		t.Errorf("ctx = %+v", ctx)
	}
}

func TestProcessPointerReleaseElsewhereIsNotAClick(t *testing.T) {
	s := NewScene()
	a := newHitNode("a", 50, 50, 0)
	b := newHitNode("b", 150, 50, 0)
	s.AddNode(a)
	s.AddNode(b)

	var count int
	a.AddClickListener(func(ClickContext) { count++ })
	b.AddClickListener(func(ClickContext) { count++ })

	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	s.processPointer(0, 150, 50, false, MouseButtonLeft)

	if count != 0 {
		t.Errorf("clicks = %d, want 0", count)
	}
}

func TestSceneOnClickFiresForEmptySpace(t *testing.T) {
	s := NewScene()
	var got []*Node
	h := s.OnClick(func(ctx ClickContext) { got = append(got, ctx.Node) })

	s.processPointer(0, 10, 10, true, MouseButtonLeft)
	s.processPointer(0, 10, 10, false, MouseButtonLeft)
	if len(got) != 1 || got[0] != nil {
		t.Fatalf("got = %v, want one click with nil node", got)
	}

	h.Remove()
	s.processPointer(0, 10, 10, true, MouseButtonLeft)
	s.processPointer(0, 10, 10, false, MouseButtonLeft)
	if len(got) != 1 {
		t.Errorf("removed handler still fired")
	}
}

// --- Handles ---

func TestCallbackHandleRemove(t *testing.T) {
	n := NewNode("n", nil)
	var a, b int
	ha := n.AddClickListener(func(ClickContext) { a++ })
	n.AddClickListener(func(ClickContext) { b++ })

	if !ha.Active() {
		t.Fatal("handle should be active")
	}
	ha.Remove()
	ha.Remove()
	if ha.Active() {
		t.Fatal("handle should be inactive after Remove")
	}

	n.Click()
	if a != 0 || b != 1 {
		t.Errorf("a = %d, b = %d, want 0 and 1", a, b)
	}

	var zero CallbackHandle
	zero.Remove() // must not panic
	if zero.Active() {
		t.Error("zero handle reports active")
	}
}

func TestListenerRemovingAnotherDuringDispatch(t *testing.T) {
	n := NewNode("n", nil)
	var second CallbackHandle
	var ranSecond bool
	n.AddClickListener(func(ClickContext) { second.Remove() })
	second = n.AddClickListener(func(ClickContext) { ranSecond = true })

	n.Click()
	if ranSecond {
		t.Error("listener removed mid-dispatch still ran")
	}
}

func TestAddClickListenerOnDisposedNode(t *testing.T) {
	n := NewNode("n", nil)
	n.Dispose()
	h := n.AddClickListener(func(ClickContext) { t.Error("listener on disposed node ran") })
	if h.Active() {
		t.Error("handle on disposed node reports active")
	}
	n.Click()
}

// --- Injection ---

func TestInjectClickConsumesTwoFrames(t *testing.T) {
	s := NewScene()
	n := newHitNode("btn", 100, 100, 0)
	s.AddNode(n)
	var count int
	n.AddClickListener(func(ClickContext) { count++ })

	s.InjectClickNode(n)
	if s.PendingInput() != 2 {
		t.Fatalf("pending = %d, want 2", s.PendingInput())
	}
	_ = s.update(1.0/60, false)
	if count != 0 {
		t.Fatal("click fired after press frame")
	}
	_ = s.update(1.0/60, false)
	if count != 1 {
		t.Fatalf("clicks = %d, want 1", count)
	}
	if s.PendingInput() != 0 {
		t.Errorf("pending = %d, want 0", s.PendingInput())
	}
}
