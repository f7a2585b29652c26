package bramble

import (
	"errors"
	"testing"
)

func TestAddChildErrors(t *testing.T) {
	parent := NewBox("parent", Rect{0, 0, 100, 100})
	child := NewBox("child", Rect{0, 0, 10, 10})
	if err := parent.AddChild(child); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	t.Run("nil child", func(t *testing.T) {
		if err := parent.AddChild(nil); !errors.Is(err, ErrNilChild) {
			t.Errorf("error = %v, want ErrNilChild", err)
		}
	})

	t.Run("self as child", func(t *testing.T) {
		if err := parent.AddChild(parent); !errors.Is(err, ErrCycle) {
			t.Errorf("error = %v, want ErrCycle", err)
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		other := NewBox("other", Rect{})
		if err := parent.AddChildAt(other, 5); !errors.Is(err, ErrIndexRange) {
			t.Errorf("error = %v, want ErrIndexRange", err)
		}
		if other.Parent != nil {
			t.Error("failed AddChildAt mutated the child")
		}
	})
}

func TestAddChildRejectsCycleWithoutMutation(t *testing.T) {
	a := NewBox("a", Rect{})
	b := NewBox("b", Rect{})
	c := NewBox("c", Rect{})
	if err := a.AddChild(b); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := b.AddChild(c); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	// Attaching an ancestor under its own descendant must fail and leave
	// every parent pointer and child list untouched.
	if err := c.AddChild(a); !errors.Is(err, ErrCycle) {
		t.Fatalf("error = %v, want ErrCycle", err)
	}
	if a.Parent != nil {
		t.Error("a gained a parent from the rejected add")
	}
	if c.NumChildren() != 0 {
		t.Error("c gained a child from the rejected add")
	}
	if b.Parent != a || c.Parent != b {
		t.Error("tree structure changed after rejected add")
	}
}

func TestAddChildReparents(t *testing.T) {
	p1 := NewBox("p1", Rect{})
	p2 := NewBox("p2", Rect{})
	child := NewBox("child", Rect{})
	if err := p1.AddChild(child); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := p2.AddChild(child); err != nil {
		t.Fatalf("reparenting AddChild: %v", err)
	}
	if child.Parent != p2 {
		t.Errorf("child.Parent = %v, want p2", child.Parent)
	}
	if p1.NumChildren() != 0 {
		t.Errorf("old parent still has %d children", p1.NumChildren())
	}
}

func TestAddChildAtSameParentIndexAdjustment(t *testing.T) {
	parent := NewBox("parent", Rect{})
	a := NewBox("a", Rect{})
	b := NewBox("b", Rect{})
	c := NewBox("c", Rect{})
	for _, box := range []*Box{a, b, c} {
		if err := parent.AddChild(box); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}

	// Moving "a" to the end within the same parent.
	if err := parent.AddChildAt(a, 3); err != nil {
		t.Fatalf("AddChildAt: %v", err)
	}
	want := []*Box{b, c, a}
	for i, w := range want {
		if parent.ChildAt(i) != w {
			t.Fatalf("child[%d] = %q, want %q", i, parent.ChildAt(i).Name, w.Name)
		}
	}
}

func TestRemoveChild(t *testing.T) {
	parent := NewBox("parent", Rect{})
	child := NewBox("child", Rect{})
	stranger := NewBox("stranger", Rect{})
	if err := parent.AddChild(child); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	if err := parent.RemoveChild(stranger); !errors.Is(err, ErrNotChild) {
		t.Errorf("removing non-child: error = %v, want ErrNotChild", err)
	}
	if err := parent.RemoveChild(child); err != nil {
		t.Fatalf("RemoveChild: %v", err)
	}
	if child.Parent != nil || parent.NumChildren() != 0 {
		t.Error("child not fully detached")
	}
	// Detached, not disposed: the box is reusable.
	if child.IsDisposed() {
		t.Error("RemoveChild disposed the child")
	}
}

func TestAbsoluteRect(t *testing.T) {
	grand := NewBox("grand", Rect{10, 20, 500, 500})
	parent := NewBox("parent", Rect{5, 5, 100, 100})
	child := NewBox("child", Rect{1, 2, 10, 10})
	if err := grand.AddChild(parent); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := parent.AddChild(child); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	want := Rect{16, 27, 10, 10}
	if got := child.AbsoluteRect(); got != want {
		t.Errorf("AbsoluteRect = %v, want %v", got, want)
	}
}

func TestPaintOrder(t *testing.T) {
	parent := NewBox("parent", Rect{})
	low := NewBox("low", Rect{})
	high := NewBox("high", Rect{})
	mid1 := NewBox("mid1", Rect{})
	mid2 := NewBox("mid2", Rect{})
	high.ZIndex = 10
	mid1.ZIndex = 5
	mid2.ZIndex = 5
	for _, box := range []*Box{high, mid1, low, mid2} {
		if err := parent.AddChild(box); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}

	order := parent.paintOrder()
	wantNames := []string{"low", "mid1", "mid2", "high"}
	for i, name := range wantNames {
		if order[i].Name != name {
			t.Fatalf("paintOrder[%d] = %q, want %q", i, order[i].Name, name)
		}
	}
}

func TestBringToFront(t *testing.T) {
	parent := NewBox("parent", Rect{})
	a := NewBox("a", Rect{})
	b := NewBox("b", Rect{})
	b.ZIndex = 7
	if err := parent.AddChild(a); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := parent.AddChild(b); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	a.BringToFront()
	order := parent.paintOrder()
	if order[len(order)-1] != a {
		t.Errorf("topmost after BringToFront = %q, want a", order[len(order)-1].Name)
	}
	if a.ZIndex < b.ZIndex {
		t.Errorf("a.ZIndex = %d, want >= %d", a.ZIndex, b.ZIndex)
	}
}

func TestDisposeRecurses(t *testing.T) {
	parent := NewBox("parent", Rect{})
	child := NewBox("child", Rect{})
	grandchild := NewBox("grandchild", Rect{})
	if err := parent.AddChild(child); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := child.AddChild(grandchild); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	child.OnClick = func(PointerEvent) {}

	child.Dispose()

	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Fatal("subtree not disposed")
	}
	if parent.NumChildren() != 0 {
		t.Error("disposed child still attached to parent")
	}
	if child.OnClick != nil {
		t.Error("callbacks not released on dispose")
	}
	// Disposing twice is harmless.
	child.Dispose()
}
