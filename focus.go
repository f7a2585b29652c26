package bramble

// focusContext tracks which box currently owns keyboard input for one scene.
// Scoping it to the scene (rather than a package global) lets multiple
// independent windows coexist in one process without cross-talk.
type focusContext struct {
	current *Box
}

// Focused returns the box currently owning keyboard input, or nil.
func (s *Scene) Focused() *Box {
	return s.focus.current
}

// RequestFocus gives keyboard focus to the box. The previously focused box
// is blurred (its OnBlur hook fires) before the new one's OnFocus fires.
// Returns ErrNotFocusable, with focus unchanged, when the box lacks the
// capability. Requesting focus on the already-focused box is a no-op.
func (s *Scene) RequestFocus(b *Box) error {
	if b == nil {
		s.ClearFocus()
		return nil
	}
	if !b.Focusable {
		return ErrNotFocusable
	}
	if s.focus.current == b {
		return nil
	}
	s.blurCurrent()
	s.focus.current = b
	if b.OnFocus != nil {
		b.OnFocus()
	}
	return nil
}

// ClearFocus removes keyboard focus entirely. Idempotent.
func (s *Scene) ClearFocus() {
	s.blurCurrent()
}

func (s *Scene) blurCurrent() {
	cur := s.focus.current
	if cur == nil {
		return
	}
	s.focus.current = nil
	if !cur.IsDisposed() && cur.OnBlur != nil {
		cur.OnBlur()
	}
}

// validateFocus drops focus when the focused box was disposed, detached from
// the tree, or lost the ability to receive input since the last frame. A key
// event arriving afterwards is a silent no-op, never an error.
func (s *Scene) validateFocus() {
	cur := s.focus.current
	if cur == nil {
		return
	}
	if cur.IsDisposed() || !isAttached(cur, s.root) || !cur.InputEnabled || !cur.Focusable {
		s.blurCurrent()
	}
}
