package bramble

import (
	"errors"
	"testing"
)

func TestAnchorPointIn(t *testing.T) {
	r := Rect{10, 20, 100, 60}
	tests := []struct {
		name  string
		point AnchorPoint
		want  Vec2
	}{
		{"top-left", TopLeft, Vec2{10, 20}},
		{"top-center", TopCenter, Vec2{60, 20}},
		{"top-right", TopRight, Vec2{110, 20}},
		{"center-left", CenterLeft, Vec2{10, 50}},
		{"center", Center, Vec2{60, 50}},
		{"center-right", CenterRight, Vec2{110, 50}},
		{"bottom-left", BottomLeft, Vec2{10, 80}},
		{"bottom-center", BottomCenter, Vec2{60, 80}},
		{"bottom-right", BottomRight, Vec2{110, 80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.point.In(r); got != tt.want {
				t.Errorf("%v.In(%v) = %v, want %v", tt.point, r, got, tt.want)
			}
		})
	}
}

func TestAnchorToScreen(t *testing.T) {
	s := NewScene(800, 600)
	b := NewBox("panel", Rect{Width: 100, Height: 50})
	if err := s.Root().AddChild(b); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := b.SetAnchor(&Anchor{Self: Center, Target: Center}); err != nil {
		t.Fatalf("SetAnchor: %v", err)
	}

	s.Step(0)

	want := Rect{350, 275, 100, 50}
	if b.Rect != want {
		t.Errorf("anchored rect = %v, want %v", b.Rect, want)
	}
}

func TestAnchorFollowsTarget(t *testing.T) {
	s := NewScene(800, 600)
	target := NewBox("target", Rect{100, 100, 200, 100})
	dep := NewBox("dep", Rect{Width: 50, Height: 20})
	if err := s.Root().AddChild(target); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := s.Root().AddChild(dep); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := dep.SetAnchor(&Anchor{Self: TopLeft, Target: BottomLeft, Of: target, Offset: Vec2{0, 4}}); err != nil {
		t.Fatalf("SetAnchor: %v", err)
	}

	s.Step(0)
	if want := (Rect{100, 204, 50, 20}); dep.Rect != want {
		t.Fatalf("dep rect = %v, want %v", dep.Rect, want)
	}

	// Moving the target moves the dependent on the next frame.
	target.SetPosition(300, 50)
	s.Step(0)
	if want := (Rect{300, 154, 50, 20}); dep.Rect != want {
		t.Errorf("dep rect after target move = %v, want %v", dep.Rect, want)
	}
}

func TestAnchorChainResolvesInOrder(t *testing.T) {
	s := NewScene(800, 600)
	a := NewBox("a", Rect{10, 10, 40, 40})
	b := NewBox("b", Rect{Width: 30, Height: 30})
	c := NewBox("c", Rect{Width: 20, Height: 20})
	for _, box := range []*Box{a, b, c} {
		if err := s.Root().AddChild(box); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}
	// c depends on b, which depends on a. Resolution must settle a's
	// dependents before c reads b.
	if err := b.SetAnchor(&Anchor{Self: TopLeft, Target: TopRight, Of: a}); err != nil {
		t.Fatalf("SetAnchor b: %v", err)
	}
	if err := c.SetAnchor(&Anchor{Self: TopLeft, Target: TopRight, Of: b}); err != nil {
		t.Fatalf("SetAnchor c: %v", err)
	}

	s.Step(0)

	if want := (Rect{50, 10, 30, 30}); b.Rect != want {
		t.Fatalf("b rect = %v, want %v", b.Rect, want)
	}
	if want := (Rect{80, 10, 20, 20}); c.Rect != want {
		t.Errorf("c rect = %v, want %v", c.Rect, want)
	}
}

func TestSetAnchorRejectsCycle(t *testing.T) {
	a := NewBox("a", Rect{0, 0, 10, 10})
	b := NewBox("b", Rect{0, 0, 10, 10})

	if err := a.SetAnchor(&Anchor{Self: TopLeft, Target: TopLeft, Of: b}); err != nil {
		t.Fatalf("first SetAnchor: %v", err)
	}
	err := b.SetAnchor(&Anchor{Self: TopLeft, Target: TopLeft, Of: a})
	if !errors.Is(err, ErrCyclicAnchor) {
		t.Fatalf("cyclic SetAnchor error = %v, want ErrCyclicAnchor", err)
	}
	// The failed call must not have installed the anchor.
	if b.Anchor() != nil {
		t.Error("rejected anchor was installed")
	}
}

func TestSetAnchorRejectsSelf(t *testing.T) {
	a := NewBox("a", Rect{0, 0, 10, 10})
	if err := a.SetAnchor(&Anchor{Of: a}); !errors.Is(err, ErrCyclicAnchor) {
		t.Fatalf("self anchor error = %v, want ErrCyclicAnchor", err)
	}
}
