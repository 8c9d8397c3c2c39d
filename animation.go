package runes

import (
	"github.com/tanema/gween"
)

// FromCurrent tells AnimateOpacity to start from the node's current alpha.
const FromCurrent = -1.0

// Tween is a handle to a running transition.
type Tween interface {
	// Cancel stops the transition where it is. Cancelling a finished or
	// already cancelled transition does nothing.
	Cancel()
	// Done reports whether the transition finished or was cancelled.
	Done() bool
}

// Tweener issues fire-and-forget transitions on nodes. The menu never waits
// for a transition; it only keeps the returned handle so it can cancel it.
type Tweener interface {
	AnimatePosition(n *Node, to Vec2, duration float32, e Ease) Tween
	// AnimateOpacity fades n.Alpha to the target. A from value in [0, 1] is
	// applied immediately before the fade starts; FromCurrent (or any
	// negative value) starts from the current alpha.
	AnimateOpacity(n *Node, to float64, duration float32, from float64) Tween
}

// TweenGroup animates up to 2 float64 fields on a Node simultaneously. The
// group writes values on every Update. If the target node is disposed, the
// group stops immediately.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *Node
	done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target node has been disposed, the group finishes and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.done = allDone
}

// Cancel stops the group; fields keep their last written values.
func (g *TweenGroup) Cancel() {
	g.done = true
}

// Done reports whether the group finished or was cancelled.
func (g *TweenGroup) Done() bool {
	return g.done
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target over the specified duration using the easing curve.
func TweenPosition(node *Node, to Vec2, duration float32, e Ease) *TweenGroup {
	fn := e.Func()
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y), float32(to.Y), duration, fn)
	g.fields[0] = &node.X
	g.fields[1] = &node.Y
	return g
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration. Fades are always linear.
func TweenAlpha(node *Node, to float64, duration float32) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Alpha), float32(to), duration, EaseLinear.Func())
	g.fields[0] = &node.Alpha
	return g
}

// TweenEngine owns running TweenGroups and advances them once per frame.
// It implements Tweener.
type TweenEngine struct {
	active []*TweenGroup
}

// NewTweenEngine returns an empty engine.
func NewTweenEngine() *TweenEngine {
	return &TweenEngine{}
}

// AnimatePosition starts moving n to the target.
func (e *TweenEngine) AnimatePosition(n *Node, to Vec2, duration float32, ease Ease) Tween {
	return e.add(TweenPosition(n, to, duration, ease))
}

// AnimateOpacity starts fading n to the target alpha.
func (e *TweenEngine) AnimateOpacity(n *Node, to float64, duration float32, from float64) Tween {
	if from >= 0 {
		n.Alpha = from
	}
	return e.add(TweenAlpha(n, to, duration))
}

func (e *TweenEngine) add(g *TweenGroup) *TweenGroup {
	e.active = append(e.active, g)
	return g
}

// Update advances every running group by dt seconds and drops finished ones.
func (e *TweenEngine) Update(dt float32) {
	live := e.active[:0]
	for _, g := range e.active {
		g.Update(dt)
		if !g.done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(e.active); i++ {
		e.active[i] = nil
	}
	e.active = live
}

// Active returns the number of groups still running.
func (e *TweenEngine) Active() int {
	n := 0
	for _, g := range e.active {
		if !g.done {
			n++
		}
	}
	return n
}
