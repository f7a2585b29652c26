package bramble

import (
	"math"

	"github.com/tanema/gween/ease"
)

// defaultDragThreshold is the minimum pointer travel, in pixels, before a
// press becomes a drag. Prevents accidental drags from simple clicks.
const defaultDragThreshold = 4.0

type dragState uint8

const (
	dragIdle dragState = iota
	dragPressed
	dragDragging
)

// dragController is the per-scene state machine for pointer-driven drags:
// Idle -> Pressed -> Dragging -> (Dropped | Cancelled) -> Idle. At most one
// session is active per scene at a time.
type dragController struct {
	state   dragState
	subject *Box // box being moved; nil in rubber-band mode
	rubber  bool // rubber-band selection session

	// SnapBack / SnapToTargets come from the policy box, which may differ
	// from the subject (title bars drag their window).
	policy DragPolicy

	originX, originY float64 // pointer position at press
	startRect        Rect    // subject's pre-drag relative rect

	band    Rect   // current rubber-band rect, screen space
	pending []*Box // provisionally selected boxes
}

// press begins a potential session. Over a draggable box the session subject
// is that box (or the box its policy redirects to); over empty canvas a
// rubber-band selection starts when the scene allows it. Anything else leaves
// the controller idle so plain clicks pass through.
func (d *dragController) press(s *Scene, ev Event, hit *Box) {
	if d.state != dragIdle {
		return
	}

	for b := hit; b != nil; b = b.Parent {
		if b.DragPolicy.Draggable {
			subject := b
			if b.DragPolicy.Subject != nil {
				subject = b.DragPolicy.Subject
			}
			d.state = dragPressed
			d.subject = subject
			d.rubber = false
			d.policy = b.DragPolicy
			d.originX, d.originY = ev.X, ev.Y
			d.startRect = subject.Rect
			return
		}
	}

	if s.RubberBandSelect && (hit == nil || hit == s.root) {
		d.state = dragPressed
		d.subject = nil
		d.rubber = true
		d.policy = DragPolicy{}
		d.originX, d.originY = ev.X, ev.Y
		d.band = Rect{X: ev.X, Y: ev.Y}
		d.pending = d.pending[:0]
	}
}

// move advances the session on pointer movement. Returns true when the event
// was consumed by an active drag.
func (d *dragController) move(s *Scene, ev Event) bool {
	if d.state == dragIdle {
		return false
	}
	if !d.validate(s) {
		return false
	}

	if d.state == dragPressed {
		dx := ev.X - d.originX
		dy := ev.Y - d.originY
		if math.Sqrt(dx*dx+dy*dy) <= s.dragThreshold() {
			return false
		}
		d.state = dragDragging
		if d.subject != nil && d.subject.OnDragStart != nil {
			d.subject.OnDragStart(d.dragEvent(ev))
		}
	}

	if d.rubber {
		d.band = RectFromPoints(Vec2{d.originX, d.originY}, Vec2{ev.X, ev.Y})
		d.updatePending(s)
		return true
	}

	// The subject follows the pointer offset from its pre-drag position.
	d.subject.Rect.X = d.startRect.X + (ev.X - d.originX)
	d.subject.Rect.Y = d.startRect.Y + (ev.Y - d.originY)

	// Snap preview: while the pointer is over an accepting target, show the
	// subject center-aligned on it. Recomputing the base position above means
	// leaving the target restores pointer-following automatically.
	if d.policy.SnapToTargets {
		if target := d.bestTarget(s, ev.X, ev.Y); target != nil {
			d.alignCenters(d.subject, target)
		}
	}

	if d.subject.OnDrag != nil {
		d.subject.OnDrag(d.dragEvent(ev))
	}
	return true
}

// release ends the session. Returns true when the event was consumed (a drag
// or selection actually happened); a press that never crossed the threshold
// resolves to false so the click can be dispatched normally.
func (d *dragController) release(s *Scene, ev Event) bool {
	if d.state == dragIdle {
		return false
	}
	if !d.validate(s) {
		return false
	}
	if d.state == dragPressed {
		d.reset()
		return false
	}

	if d.rubber {
		d.finalizeSelection(s, ev)
		d.reset()
		return true
	}

	subject := d.subject
	dragEv := d.dragEvent(ev)

	if target := d.bestTarget(s, ev.X, ev.Y); target != nil {
		// Dropped: commit the subject onto the target's drop point. Both
		// sides of the drop see the same event.
		d.alignCenters(subject, target)
		drop := DropEvent{Subject: subject, Target: target, X: ev.X, Y: ev.Y}
		if target.OnDrop != nil {
			target.OnDrop(drop)
		}
		if subject.OnDrop != nil {
			subject.OnDrop(drop)
		}
	} else if d.policy.SnapBack {
		// Cancelled: restore the pre-drag rect.
		if dur := s.theme.SnapBackSeconds; dur > 0 {
			s.animate(TweenPosition(subject, d.startRect.X, d.startRect.Y, float32(dur), ease.OutQuad))
		} else {
			subject.Rect.X = d.startRect.X
			subject.Rect.Y = d.startRect.Y
		}
		s.debugf("drag of %q cancelled: no drop target accepted, snapping back", subject.Name)
	}

	d.reset()
	if subject.OnDragEnd != nil {
		subject.OnDragEnd(dragEv)
	}
	return true
}

// validate cancels the session when the subject was disposed or detached
// while the drag was in flight. Returns false when the session was cancelled.
func (d *dragController) validate(s *Scene) bool {
	if d.state == dragIdle || d.rubber {
		return d.state != dragIdle
	}
	if d.subject == nil || d.subject.IsDisposed() || !isAttached(d.subject, s.root) {
		s.debugf("drag cancelled: subject was removed mid-session")
		d.reset()
		return false
	}
	return true
}

func (d *dragController) reset() {
	d.state = dragIdle
	d.subject = nil
	d.rubber = false
	d.policy = DragPolicy{}
	d.pending = d.pending[:0]
	d.band = Rect{}
}

func (d *dragController) dragEvent(ev Event) DragEvent {
	return DragEvent{
		Subject:   d.subject,
		X:         ev.X,
		Y:         ev.Y,
		StartX:    d.originX,
		StartY:    d.originY,
		DeltaX:    ev.X - d.originX,
		DeltaY:    ev.Y - d.originY,
		Modifiers: ev.Modifiers,
	}
}

// --- Drop target evaluation ---

// dropCandidate pairs a target with its paint-order position so z-order can
// break area ties.
type dropCandidate struct {
	box   *Box
	order int
}

// bestTarget ranks the accepting drop targets under the pointer and returns
// the winner: largest overlap area with the subject's rect wins, topmost
// paint order breaks ties. Nil when nothing under the point accepts.
func (d *dragController) bestTarget(s *Scene, x, y float64) *Box {
	subject := d.subject
	subjRect := subject.AbsoluteRect()

	root := s.root
	if m := s.modalRoot(); m != nil {
		root = m
	}

	order := 0
	var candidates []dropCandidate
	collectDropTargets(root, subject, x, y, &order, &candidates)

	var best *dropCandidate
	var bestArea float64
	for i := range candidates {
		c := &candidates[i]
		area := subjRect.Intersection(c.box.AbsoluteRect()).Area()
		switch {
		case best == nil, area > bestArea, area == bestArea && c.order > best.order:
			best = c
			bestArea = area
		}
	}
	if best == nil {
		return nil
	}
	return best.box
}

// collectDropTargets gathers every visible, input-enabled drop target whose
// rect contains the point, excluding the subject's own subtree. Children are
// only visited when the parent contains the point, mirroring hit-test
// clipping.
func collectDropTargets(b, subject *Box, x, y float64, order *int, out *[]dropCandidate) {
	if !b.Visible || !b.InputEnabled || b == subject {
		return
	}
	if !b.AbsoluteRect().Contains(x, y) {
		return
	}
	*order++
	if b.DropTarget && (b.AcceptDrop == nil || b.AcceptDrop(subject)) {
		*out = append(*out, dropCandidate{box: b, order: *order})
	}
	for _, child := range b.paintOrder() {
		collectDropTargets(child, subject, x, y, order, out)
	}
}

// alignCenters moves subject so its center coincides with target's center.
func (d *dragController) alignCenters(subject, target *Box) {
	want := target.AbsoluteRect().Center()
	have := subject.AbsoluteRect().Center()
	subject.Rect.X += want.X - have.X
	subject.Rect.Y += want.Y - have.Y
}

// --- Rubber-band selection ---

// updatePending recomputes the provisional selection: every selectable box
// whose absolute rect intersects the band.
func (d *dragController) updatePending(s *Scene) {
	d.pending = d.pending[:0]
	collectSelectable(s.root, d.band, &d.pending)
}

func collectSelectable(b *Box, band Rect, out *[]*Box) {
	if !b.Visible {
		return
	}
	if b.Selectable && b.AbsoluteRect().Intersects(band) {
		*out = append(*out, b)
	}
	for _, child := range b.children {
		collectSelectable(child, band, out)
	}
}

// finalizeSelection commits the provisional set. Holding Shift adds to the
// existing selection; otherwise the previous selection is cleared first.
func (d *dragController) finalizeSelection(s *Scene, ev Event) {
	if ev.Modifiers&ModShift == 0 {
		s.ClearSelection()
	}
	for _, b := range d.pending {
		s.selectBox(b)
	}
}
