package runes

// RuneItem is the menu's handle on one selectable slot. It owns nothing but
// its index: the icon and position it shows live on the underlying Node and
// are reassigned by the menu throughout its life.
type RuneItem struct {
	index int
	node  *Node
	menu  *RadialMenu
	click CallbackHandle

	// Latest transitions issued for this item; replaced on every request.
	move Tween
	fade Tween
}

// newRuneItem wraps node and starts forwarding its clicks to menu as
// OnItemClick(index, icon).
func newRuneItem(menu *RadialMenu, index int, node *Node) *RuneItem {
	it := &RuneItem{index: index, node: node, menu: menu}
	it.click = node.AddClickListener(it.onClick)
	return it
}

func (it *RuneItem) onClick(ClickContext) {
	it.menu.OnItemClick(it.index, it.node.Icon)
}

// Index returns the item's stable index.
func (it *RuneItem) Index() int { return it.index }

// Node returns the visual surface behind the item.
func (it *RuneItem) Node() *Node { return it.node }

// Icon returns the icon currently shown by the item.
func (it *RuneItem) Icon() *Icon { return it.node.Icon }

// SetIcon replaces the icon shown by the item.
func (it *RuneItem) SetIcon(icon *Icon) { it.node.Icon = icon }

// Position returns the item's current position.
func (it *RuneItem) Position() Vec2 { return it.node.Position() }

// SetPosition moves the item immediately, without a transition.
func (it *RuneItem) SetPosition(p Vec2) { it.node.SetPosition(p) }

// moveTo cancels the previous move and animates toward p.
func (it *RuneItem) moveTo(tw Tweener, p Vec2, duration float32, e Ease) {
	if it.move != nil {
		it.move.Cancel()
	}
	it.move = tw.AnimatePosition(it.node, p, duration, e)
}

// fadeTo cancels the previous fade and animates alpha toward to.
func (it *RuneItem) fadeTo(tw Tweener, to float64, duration float32, from float64) {
	if it.fade != nil {
		it.fade.Cancel()
	}
	it.fade = tw.AnimateOpacity(it.node, to, duration, from)
}

// stop cancels any in-flight transitions.
func (it *RuneItem) stop() {
	if it.move != nil {
		it.move.Cancel()
		it.move = nil
	}
	if it.fade != nil {
		it.fade.Cancel()
		it.fade = nil
	}
}

// Dispose stops the item's transitions and releases its click listener.
// Safe to call more than once.
func (it *RuneItem) Dispose() {
	it.stop()
	it.click.Remove()
}
