package bramble

import "github.com/hajimehoshi/ebiten/v2"

// Inject helpers queue synthetic input through the same path real input
// takes, so scripted interactions and tests exercise hit-testing, dragging,
// and focus exactly as a user would.

// InjectPress queues a left-button pointer press at the given screen
// coordinates. Processed on the next Step.
func (s *Scene) InjectPress(x, y float64) {
	s.Push(Event{Type: EventPointerDown, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectMove queues a pointer move to the given screen coordinates.
func (s *Scene) InjectMove(x, y float64) {
	s.Push(Event{Type: EventPointerMove, X: x, Y: y})
}

// InjectRelease queues a left-button pointer release at the given screen
// coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.Push(Event{Type: EventPointerUp, X: x, Y: y})
}

// InjectClick queues a press followed by a release at the same coordinates.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag gesture: press at (fromX, fromY), steps
// linearly interpolated moves, and release at (toX, toY). steps below 1 is
// raised to 1 so the gesture always crosses the drag threshold when the
// distance does.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, steps int) {
	s.InjectDragMod(fromX, fromY, toX, toY, steps, 0)
}

// InjectDragMod is InjectDrag with modifier keys held for the whole gesture.
func (s *Scene) InjectDragMod(fromX, fromY, toX, toY float64, steps int, mods KeyModifiers) {
	if steps < 1 {
		steps = 1
	}
	s.Push(Event{Type: EventPointerDown, X: fromX, Y: fromY, Button: MouseButtonLeft, Modifiers: mods})
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.Push(Event{Type: EventPointerMove, X: x, Y: y, Modifiers: mods})
	}
	s.Push(Event{Type: EventPointerUp, X: toX, Y: toY, Modifiers: mods})
}

// InjectKeyDown queues a key press for the focused box or the scene key map.
func (s *Scene) InjectKeyDown(key ebiten.Key, mods KeyModifiers) {
	s.Push(Event{Type: EventKeyDown, Key: key, Modifiers: mods})
}

// InjectKeyUp queues a key release.
func (s *Scene) InjectKeyUp(key ebiten.Key, mods KeyModifiers) {
	s.Push(Event{Type: EventKeyUp, Key: key, Modifiers: mods})
}
