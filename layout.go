package runes

import "math"

// SpiralLayout places n points evenly on a circle of the given radius around
// center. Point i sits at angle i*360/n degrees, measured counter-clockwise
// from the +x axis. Returns nil for n <= 1; a single item has no ring to lay
// out.
func SpiralLayout(center Vec2, radius float64, n int) []Vec2 {
	if n <= 1 {
		return nil
	}
	step := 2 * math.Pi / float64(n)
	out := make([]Vec2, n)
	for i := range out {
		angle := float64(i) * step
		out[i] = Vec2{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return out
}

// StackLayout returns the expanded positions of m stack items fanned out from
// origin: item i lands at origin + spacing*(i+1).
func StackLayout(origin, spacing Vec2, m int) []Vec2 {
	if m <= 0 {
		return nil
	}
	out := make([]Vec2, m)
	for i := range out {
		out[i] = origin.Add(spacing.Scale(float64(i + 1)))
	}
	return out
}
