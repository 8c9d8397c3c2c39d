package runes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Draw fills the screen with ClearColor and draws every visible node in
// ZIndex order, then runs the draw callback.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.RGBA())
	}
	s.sortNodes()
	var op ebiten.DrawImageOptions
	for _, n := range s.sorted {
		drawNode(screen, n, &op)
	}
	if s.drawFunc != nil {
		s.drawFunc(screen)
	}
}

// drawNode draws n's icon centered on (X, Y), stretched to the node size and
// scaled by its tint and alpha. Nodes without an icon image draw nothing.
func drawNode(screen *ebiten.Image, n *Node, op *ebiten.DrawImageOptions) {
	if !n.Visible || n.disposed || n.Alpha <= 0 {
		return
	}
	if n.Icon == nil || n.Icon.Image == nil {
		return
	}
	img := n.Icon.Image
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	w, h := n.Size()

	op.GeoM.Reset()
	op.ColorScale.Reset()
	op.GeoM.Scale(w/iw, h/ih)
	op.GeoM.Translate(n.X-w/2, n.Y-h/2)

	a := n.Color.A * n.Alpha
	op.ColorScale.Scale(float32(n.Color.R*a), float32(n.Color.G*a), float32(n.Color.B*a), float32(a))
	screen.DrawImage(img, op)
}
