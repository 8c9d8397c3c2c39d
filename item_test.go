package runes

import "testing"

// stubMenu builds an expanded menu whose ring is the given nodes, without any
// stack, on a recording tweener.
func stubMenu(t *testing.T, ring ...*Node) *RadialMenu {
	t.Helper()
	main := NewNode("main", &Icon{Name: "main"})
	m, err := NewRadialMenu(main, ring, nil, testConfig(), &recordingTweener{})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestRuneItemForwardsClickWithCurrentIcon(t *testing.T) {
	n0 := NewNode("a", &Icon{Name: "a"})
	n1 := NewNode("b", &Icon{Name: "b"})
	m := stubMenu(t, n0, n1)
	var selected []string
	m.OnSelect = func(index int, icon *Icon) {
		selected = append(selected, icon.Name)
	}

	// The icon travels with the node, so the item reports whatever it shows
	// at click time.
	swapped := &Icon{Name: "swapped"}
	m.RingItems()[1].SetIcon(swapped)

	m.ToggleMenu()
	n1.Click()

	if len(selected) != 1 || selected[0] != "swapped" {
		t.Errorf("selected = %v, want [swapped]", selected)
	}
	if m.MainIcon() != swapped {
		t.Errorf("main icon = %v, want swapped", m.MainIcon())
	}
}

func TestRuneItemAccessors(t *testing.T) {
	n := NewNode("a", &Icon{Name: "a"})
	n.X, n.Y = 5, 6
	m := stubMenu(t, n)
	it := m.RingItems()[0]

	it.SetPosition(Vec2{7, 8})
	if it.Position() != (Vec2{7, 8}) || n.X != 7 || n.Y != 8 {
		t.Errorf("position = %v, node = (%v,%v)", it.Position(), n.X, n.Y)
	}
	icon := &Icon{Name: "z"}
	it.SetIcon(icon)
	if it.Icon() != icon || n.Icon != icon {
		t.Error("SetIcon did not reach the node")
	}
}

func TestRuneItemDisposeIsScoped(t *testing.T) {
	n := NewNode("a", nil)
	m := stubMenu(t, n)
	it := m.RingItems()[0]

	// A second listener owned by someone else survives the item.
	var other int
	n.AddClickListener(func(ClickContext) { other++ })

	if n.ClickListenerCount() != 2 {
		t.Fatalf("listeners = %d, want 2", n.ClickListenerCount())
	}
	it.Dispose()
	it.Dispose()
	if n.ClickListenerCount() != 1 {
		t.Fatalf("listeners after Dispose = %d, want 1", n.ClickListenerCount())
	}

	m.ToggleMenu()
	n.Click()
	if !m.IsExpanded() {
		t.Error("disposed item still forwarded its click")
	}
	if other != 1 {
		t.Errorf("other listener ran %d times, want 1", other)
	}
}
