// Package bramble is a retained-mode UI and input-handling layer for
// [Ebitengine].
//
// Bramble provides the box tree, row/column/grid layout, anchoring,
// hit-testing, drag-and-drop with snap targets, rubber-band selection,
// keyboard focus, and movable windows and modal dialogs that tools and game
// UIs built on a 2D engine need.
//
// # Quick start
//
// Implement [ebiten.Game] and hand Update and Draw to a [Scene]:
//
//	type Game struct{ scene *bramble.Scene }
//
//	func (g *Game) Update() error              { g.scene.Update(); return nil }
//	func (g *Game) Draw(screen *ebiten.Image)  { g.scene.Draw(screen) }
//	func (g *Game) Layout(w, h int) (int, int) { return 640, 480 }
//
// # Box tree
//
// Every visual element is a [Box]. Boxes form a tree rooted at [Scene.Root];
// a box's rect is relative to its parent, and children inherit opacity.
// Hit-testing clips to parents: a box never receives events outside its
// parent's bounds.
//
//	panel := bramble.NewBox("panel", bramble.Rect{X: 20, Y: 20, Width: 200, Height: 120})
//	panel.Background = bramble.Color{R: 0.2, G: 0.2, B: 0.25, A: 1}
//	if err := scene.Root().AddChild(panel); err != nil { ... }
//
// Attach a [Layout] to make a box arrange its children, or build rows,
// columns, and grids directly with [NewRow], [NewColumn], and [NewGrid].
// Trees can also be declared in YAML and built with [LoadTree].
//
// # Interaction
//
// Interaction is callback-based and opt-in per box: set OnClick, OnDrop,
// OnFocus, and friends, and flip the capability flags (Focusable,
// Selectable, DropTarget, [DragPolicy]). Raw input enters through
// [Scene.Push] — or [Scene.PumpInput] when Ebitengine drives the loop — and
// is dispatched once per [Scene.Step], after layout settles.
//
// The Inject helpers ([Scene.InjectClick], [Scene.InjectDrag]) feed
// synthetic input through the same path, which is how the package's own
// tests drive scenes headlessly.
//
// # Windows
//
// [NewWindow] builds a focusable, draggable panel with a title bar and close
// button; [NewDialog] shows one modally over a scrim. Both are styled by the
// scene's [Theme], which can be loaded from TOML.
//
// [Ebitengine]: https://ebitengine.org
package bramble
