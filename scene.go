package bramble

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Scene is the top-level object that owns the box tree, focus state, drag
// state, the raw input queue, and active tweens. All mutation happens on the
// thread running the host engine's per-frame update callback; nothing here is
// safe for concurrent use.
type Scene struct {
	root          *Box
	width, height float64
	theme         Theme
	debug         bool

	// KeyMap receives key-down events that no focused box consumed.
	KeyMap *KeyMap

	// RubberBandSelect enables drag-to-select on empty canvas.
	RubberBandSelect bool

	queue     []Event
	drag      dragController
	focus     focusContext
	modals    []*Box
	selection []*Box
	tweens    []*TweenGroup

	pointerDown bool
	pressBox    *Box
	hoverBox    *Box

	runner *TestRunner

	// ScreenshotDir is where Screenshot writes PNGs. Empty means
	// "screenshots".
	ScreenshotDir   string
	screenshotQueue []string

	ebitenRenderer EbitenRenderer

	// Edge-detection state for PumpInput.
	prevButtons        [3]bool
	prevCursorX        float64
	prevCursorY        float64
	justPressedKeyBuf  []ebiten.Key
	justReleasedKeyBuf []ebiten.Key
	pumpedOnce         bool
}

// NewScene creates a scene with a screen-sized root box. The root is visible
// and input-enabled; a pointer event outside it hits nothing.
func NewScene(width, height float64) *Scene {
	return &Scene{
		root:   NewBox("root", Rect{0, 0, width, height}),
		width:  width,
		height: height,
		theme:  DefaultTheme(),
	}
}

// Root returns the scene's root box.
func (s *Scene) Root() *Box {
	return s.root
}

// ScreenRect returns the screen-space rect that boxes with no parent target
// are anchored against.
func (s *Scene) ScreenRect() Rect {
	return Rect{0, 0, s.width, s.height}
}

// Resize updates the screen size and the root box to match.
func (s *Scene) Resize(width, height float64) {
	s.width = width
	s.height = height
	s.root.SetSize(width, height)
}

// Theme returns the active theme.
func (s *Scene) Theme() Theme {
	return s.theme
}

// SetTheme replaces the active theme. Existing windows keep the metrics they
// were built with; new ones pick up the change.
func (s *Scene) SetTheme(t Theme) {
	s.theme = t
}

// SetDebugMode enables or disables debug mode. When enabled, dropped events
// and cancelled interactions are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update pumps raw input from Ebitengine and advances the scene by one frame.
// Call it from your ebiten.Game's Update method. Hosts that manage their own
// input can call Push and Step directly instead.
func (s *Scene) Update() {
	s.PumpInput()
	s.Step(1.0 / float64(ebiten.TPS()))
}

// Step advances the scene by one frame: invalidated layout groups recompute
// and anchors re-resolve first, then the queued events are dispatched in
// arrival order, then per-box update hooks and tweens run. Because layout
// settles before dispatch, a box added last frame is hit-testable by this
// frame's events.
func (s *Scene) Step(dt float64) {
	if s.runner != nil {
		s.runner.step(s)
	}

	s.validateFocus()
	if s.drag.state != dragIdle {
		s.drag.validate(s)
	}
	s.pruneModals()

	s.layoutPass(s.root)
	s.resolveAnchors(s.root)

	// Drain a snapshot so events pushed by handlers run next frame.
	batch := s.queue
	s.queue = nil
	for _, ev := range batch {
		s.dispatch(ev)
	}

	s.updateHooks(s.root, dt)
	s.advanceTweens(dt)
}

// layoutPass recomputes invalidated layout groups children-first, so
// auto-sized inner groups settle before their enclosing group measures them.
func (s *Scene) layoutPass(b *Box) {
	for _, child := range b.children {
		s.layoutPass(child)
	}
	if b.layout != nil && b.layoutDirty {
		b.layout.recompute(b)
		b.layoutDirty = false
	}
}

// resolveAnchors re-resolves every anchored box against the current frame's
// rects. SetAnchor rejects cycles up front, so a cyclic chain here can only
// have been assembled through later reparenting; it is skipped with a
// diagnostic rather than looping.
func (s *Scene) resolveAnchors(b *Box) {
	if b.anchor != nil {
		if err := anchorTargets(b, nil); err != nil {
			s.debugf("anchor on %q skipped: %v", b.Name, err)
		} else {
			resolveAnchor(b, s.ScreenRect())
		}
	}
	for _, child := range b.children {
		s.resolveAnchors(child)
	}
}

func (s *Scene) updateHooks(b *Box, dt float64) {
	if b.OnUpdate != nil {
		b.OnUpdate(dt)
	}
	for _, child := range b.children {
		s.updateHooks(child, dt)
	}
}

// Animate registers a tween group to be advanced by each Step until done.
func (s *Scene) Animate(g *TweenGroup) {
	if g == nil || g.Done {
		return
	}
	s.tweens = append(s.tweens, g)
}

// animate is the internal spelling used by the drag controller.
func (s *Scene) animate(g *TweenGroup) {
	s.Animate(g)
}

func (s *Scene) advanceTweens(dt float64) {
	alive := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(float32(dt))
		if !g.Done {
			alive = append(alive, g)
		}
	}
	for i := len(alive); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = alive
}

func (s *Scene) dragThreshold() float64 {
	if s.theme.DragThreshold > 0 {
		return s.theme.DragThreshold
	}
	return defaultDragThreshold
}

// PushModal confines hit-testing and drop evaluation to the subtree rooted at
// b until PopModal is called. Used by dialogs; nested modals stack, and the
// most recently pushed live modal wins.
func (s *Scene) PushModal(b *Box) {
	if b == nil {
		return
	}
	s.modals = append(s.modals, b)
}

// PopModal removes b from the modal stack.
func (s *Scene) PopModal(b *Box) {
	for i := len(s.modals) - 1; i >= 0; i-- {
		if s.modals[i] == b {
			s.modals = append(s.modals[:i], s.modals[i+1:]...)
			return
		}
	}
}

// modalRoot returns the topmost live modal box, or nil when no modal is open.
func (s *Scene) modalRoot() *Box {
	for i := len(s.modals) - 1; i >= 0; i-- {
		m := s.modals[i]
		if !m.IsDisposed() && isAttached(m, s.root) {
			return m
		}
	}
	return nil
}

// pruneModals drops disposed or detached entries from the modal stack.
func (s *Scene) pruneModals() {
	alive := s.modals[:0]
	for _, m := range s.modals {
		if !m.IsDisposed() && isAttached(m, s.root) {
			alive = append(alive, m)
		}
	}
	for i := len(alive); i < len(s.modals); i++ {
		s.modals[i] = nil
	}
	s.modals = alive
}

// Selection returns the committed selection set in selection order. The
// returned slice MUST NOT be mutated.
func (s *Scene) Selection() []*Box {
	return s.selection
}

// ClearSelection deselects every selected box, firing OnDeselect hooks.
func (s *Scene) ClearSelection() {
	for _, b := range s.selection {
		if b.IsDisposed() || !b.selected {
			continue
		}
		b.selected = false
		if b.OnDeselect != nil {
			b.OnDeselect()
		}
	}
	s.selection = s.selection[:0]
}

func (s *Scene) selectBox(b *Box) {
	if b.selected {
		return
	}
	b.selected = true
	s.selection = append(s.selection, b)
	if b.OnSelect != nil {
		b.OnSelect()
	}
}

// PumpInput reads Ebitengine's mouse and keyboard state and queues the
// corresponding raw events. Only transitions are queued: a press, a release,
// a cursor move, a key edge.
func (s *Scene) PumpInput() {
	mods := readModifiers()

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if !s.pumpedOnce {
		s.pumpedOnce = true
		s.prevCursorX, s.prevCursorY = x, y
	} else if x != s.prevCursorX || y != s.prevCursorY {
		s.Push(Event{Type: EventPointerMove, X: x, Y: y, Modifiers: mods})
		s.prevCursorX, s.prevCursorY = x, y
	}

	buttons := [3]ebiten.MouseButton{
		ebiten.MouseButtonLeft,
		ebiten.MouseButtonRight,
		ebiten.MouseButtonMiddle,
	}
	for i, mb := range buttons {
		pressed := ebiten.IsMouseButtonPressed(mb)
		if pressed == s.prevButtons[i] {
			continue
		}
		s.prevButtons[i] = pressed
		t := EventPointerUp
		if pressed {
			t = EventPointerDown
		}
		s.Push(Event{Type: t, X: x, Y: y, Button: MouseButton(i), Modifiers: mods})
	}

	s.justPressedKeyBuf = inpututil.AppendJustPressedKeys(s.justPressedKeyBuf[:0])
	for _, k := range s.justPressedKeyBuf {
		s.Push(Event{Type: EventKeyDown, X: x, Y: y, Key: k, Modifiers: mods})
	}
	s.justReleasedKeyBuf = inpututil.AppendJustReleasedKeys(s.justReleasedKeyBuf[:0])
	for _, k := range s.justReleasedKeyBuf {
		s.Push(Event{Type: EventKeyUp, X: x, Y: y, Key: k, Modifiers: mods})
	}
}

func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}
