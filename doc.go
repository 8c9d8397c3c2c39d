// Package runes is a radial ("rune") pop-up menu for [Ebitengine].
//
// A menu is a main control that, when clicked, reveals a ring of selectable
// items around it and a secondary stack of items fanned out in a line.
// Clicking a ring item moves its icon onto the main control, hands the old
// main icon back to that slot, and collapses the menu.
//
// # Quick start
//
// The simplest way to get started is a [Layout] document and [Run]:
//
//	layout, err := runes.LoadLayout(data)
//	// ...
//	scene := runes.NewScene()
//	menus, err := layout.Build(scene, icons)
//	// ...
//	runes.Run(scene, runes.RunConfig{Title: "Runes", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Building menus by hand
//
// [NewRadialMenu] takes the main control, the ring nodes and the stack nodes
// as explicit ordered lists. The ring nodes' positions at construction time
// are the expanded layout; the main control's position is where the ring
// collapses to. [Scene.NewMenu] does the same and also adds the nodes to the
// scene.
//
//	main := runes.NewNode("spells", fire)
//	main.X, main.Y = 320, 240
//	ring := []*runes.Node{ /* nodes placed at their expanded positions */ }
//	menu, err := scene.NewMenu(main, ring, nil, runes.DefaultConfig())
//
// # Layout modes
//
// By default the ring expands to its designed positions. In spiral mode
// ([Config.UseSpiral], [RadialMenu.ToggleSpiralMode]) the ring is spread
// evenly on a circle around the main control instead, with the spacing
// magnitude as radius.
//
// # Transitions
//
// Every expand and collapse is a set of fire-and-forget requests to a
// [Tweener]. The scene's [TweenEngine] runs them on [gween]. Each item keeps
// its latest transition handles and cancels them before issuing new ones, so
// toggling quickly never leaves two transitions fighting over one item.
//
// # ECS
//
// Menu events can be forwarded to an ECS through [EntityStore]; the
// runes/ecs module provides a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package runes
