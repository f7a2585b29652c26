package bramble

import "github.com/hajimehoshi/ebiten/v2"

// Event is a raw input event as delivered by the host engine, in screen
// coordinates. Events are queued with Scene.Push and drained once per frame,
// in arrival order, by Scene.Step.
type Event struct {
	Type      EventType
	X, Y      float64
	Button    MouseButton
	Key       ebiten.Key
	Modifiers KeyModifiers
}

// Push appends a raw event to the scene's input queue. The host engine (or
// the Inject helpers) calls this; the event is processed during the next
// Step.
func (s *Scene) Push(ev Event) {
	s.queue = append(s.queue, ev)
}

// HitTest finds the topmost visible, input-enabled box under the screen-space
// point, or nil when no box contains it. When a modal dialog is open the
// search is confined to its subtree.
//
// Children are only considered when the parent's rect contains the point:
// a box cannot receive events outside its parent's bounds.
func (s *Scene) HitTest(x, y float64) *Box {
	root := s.root
	if m := s.modalRoot(); m != nil {
		root = m
	}
	return hitTest(root, x, y)
}

// hitTest walks the subtree depth-first, visiting siblings in reverse paint
// order so the topmost hit wins. Invisible or input-disabled subtrees are
// pruned.
func hitTest(b *Box, x, y float64) *Box {
	if !b.Visible || !b.InputEnabled {
		return nil
	}
	if !b.AbsoluteRect().Contains(x, y) {
		return nil
	}
	order := b.paintOrder()
	for i := len(order) - 1; i >= 0; i-- {
		if hit := hitTest(order[i], x, y); hit != nil {
			return hit
		}
	}
	return b
}

// dispatch routes one raw event. Pointer events consult the drag controller
// first; what the controller does not consume is delivered to the hit box and
// bubbled to its ancestors until some handler consumes it. Key events go to
// the focused box without hit-testing, falling back to the scene key map.
// Events that reach nobody are dropped, not errors.
func (s *Scene) dispatch(ev Event) {
	switch ev.Type {
	case EventPointerDown:
		s.dispatchPointerDown(ev)
	case EventPointerMove:
		s.dispatchPointerMove(ev)
	case EventPointerUp:
		s.dispatchPointerUp(ev)
	case EventKeyDown, EventKeyUp:
		s.dispatchKey(ev)
	}
}

func (s *Scene) dispatchPointerDown(ev Event) {
	if s.pointerDown {
		// A press while a pointer interaction is in flight is spurious
		// (multi-touch duplication); drop it without touching the session.
		s.debugf("ignoring pointer press at (%.0f, %.0f): session already active", ev.X, ev.Y)
		return
	}
	s.pointerDown = true

	hit := s.HitTest(ev.X, ev.Y)
	s.pressBox = hit

	s.drag.press(s, ev, hit)

	if hit == nil {
		s.debugf("pointer press at (%.0f, %.0f) hit nothing", ev.X, ev.Y)
		return
	}
	s.debugCheckTreeDepth(hit)

	s.bubblePointer(hit, ev, func(b *Box, pe PointerEvent) bool {
		if b.OnPointerDown != nil {
			return b.OnPointerDown(pe)
		}
		return false
	})

	// Click-to-focus: the nearest focus-capable box in the hit chain takes
	// keyboard focus.
	for b := hit; b != nil; b = b.Parent {
		if b.Focusable {
			_ = s.RequestFocus(b)
			break
		}
	}
}

func (s *Scene) dispatchPointerMove(ev Event) {
	if s.drag.move(s, ev) {
		// An active drag owns the pointer, so the hovered box gets its leave
		// now instead of on the first move after the drag ends.
		if s.hoverBox != nil {
			if !s.hoverBox.IsDisposed() && s.hoverBox.OnPointerLeave != nil {
				s.hoverBox.OnPointerLeave(s.pointerEvent(s.hoverBox, ev))
			}
			s.hoverBox = nil
		}
		return
	}

	// Hover tracking: fire enter/leave when the box under the pointer
	// changes.
	hit := s.HitTest(ev.X, ev.Y)
	if hit != s.hoverBox {
		if s.hoverBox != nil && !s.hoverBox.IsDisposed() && s.hoverBox.OnPointerLeave != nil {
			s.hoverBox.OnPointerLeave(s.pointerEvent(s.hoverBox, ev))
		}
		if hit != nil && hit.OnPointerEnter != nil {
			hit.OnPointerEnter(s.pointerEvent(hit, ev))
		}
		s.hoverBox = hit
	}
}

func (s *Scene) dispatchPointerUp(ev Event) {
	if !s.pointerDown {
		return
	}
	s.pointerDown = false

	pressBox := s.pressBox
	s.pressBox = nil

	if s.drag.release(s, ev) {
		return
	}

	hit := s.HitTest(ev.X, ev.Y)
	if hit == nil {
		return
	}

	s.bubblePointer(hit, ev, func(b *Box, pe PointerEvent) bool {
		if b.OnPointerUp != nil {
			return b.OnPointerUp(pe)
		}
		return false
	})

	// A press and release over the same box is a click.
	if pressBox == hit && hit.OnClick != nil {
		hit.OnClick(s.pointerEvent(hit, ev))
	}
}

func (s *Scene) dispatchKey(ev Event) {
	ke := KeyEvent{Key: ev.Key, Modifiers: ev.Modifiers, Pressed: ev.Type == EventKeyDown}

	if f := s.focus.current; f != nil {
		if f.OnKey != nil && f.OnKey(ke) {
			return
		}
	}
	if s.KeyMap != nil && s.KeyMap.dispatch(ke) {
		return
	}
	s.debugf("key %v dropped: no focus target or binding", ev.Key)
}

// bubblePointer delivers a pointer event to the hit box and then to each
// ancestor in turn, stopping at the first handler that consumes it. Returns
// whether anyone consumed the event.
func (s *Scene) bubblePointer(hit *Box, ev Event, deliver func(*Box, PointerEvent) bool) bool {
	for b := hit; b != nil; b = b.Parent {
		if deliver(b, s.pointerEvent(b, ev)) {
			return true
		}
	}
	return false
}

// pointerEvent builds the callback payload for a given receiving box.
func (s *Scene) pointerEvent(b *Box, ev Event) PointerEvent {
	pe := PointerEvent{
		Target:    b,
		X:         ev.X,
		Y:         ev.Y,
		Button:    ev.Button,
		Modifiers: ev.Modifiers,
	}
	if b != nil {
		abs := b.AbsoluteRect()
		pe.LocalX = ev.X - abs.X
		pe.LocalY = ev.Y - abs.Y
	}
	return pe
}
