package runes

import (
	"math"
	"testing"
)

func TestSpiralLayoutFourPoints(t *testing.T) {
	got := SpiralLayout(Vec2{0, 0}, Vec2{10, 0}.Len(), 4)
	want := []Vec2{{10, 0}, {0, 10}, {-10, 0}, {0, -10}}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !vecNear(got[i], want[i], 1e-9) {
			t.Errorf("slot %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSpiralLayoutIsCenteredAndEven(t *testing.T) {
	center := Vec2{320, 240}
	const radius = 64.0
	pts := SpiralLayout(center, radius, 6)

	for i, p := range pts {
		if d := p.Sub(center).Len(); math.Abs(d-radius) > 1e-9 {
			t.Errorf("slot %d at distance %f, want %f", i, d, radius)
		}
	}
	// Neighbouring slots are one step (60°) apart, so their chord is radius.
	for i := range pts {
		next := pts[(i+1)%len(pts)]
		if d := next.Sub(pts[i]).Len(); math.Abs(d-radius) > 1e-9 {
			t.Errorf("chord %d = %f, want %f", i, d, radius)
		}
	}
}

func TestSpiralLayoutDegenerate(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		if got := SpiralLayout(Vec2{}, 10, n); got != nil {
			t.Errorf("SpiralLayout(n=%d) = %v, want nil", n, got)
		}
	}
}

func TestStackLayout(t *testing.T) {
	got := StackLayout(Vec2{100, 100}, Vec2{0, -30}, 3)
	want := []Vec2{{100, 70}, {100, 40}, {100, 10}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %v, want %v", i, got[i], want[i])
		}
	}
	if StackLayout(Vec2{}, Vec2{1, 1}, 0) != nil {
		t.Error("empty stack should have no positions")
	}
}
