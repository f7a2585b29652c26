package bramble

import (
	"errors"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Structural and policy errors. Structural violations are rejected before any
// mutation takes place, so a failed call leaves the tree unchanged.
var (
	ErrNilChild     = errors.New("bramble: child is nil")
	ErrCycle        = errors.New("bramble: adding child would create a cycle")
	ErrNotChild     = errors.New("bramble: box is not a child of this parent")
	ErrIndexRange   = errors.New("bramble: child index out of range")
	ErrCyclicAnchor = errors.New("bramble: anchor chain contains a cycle")
	ErrNotFocusable = errors.New("bramble: box is not focusable")
)

// boxIDCounter is a plain counter (no atomic — bramble is single-threaded).
var boxIDCounter uint32

func nextBoxID() uint32 {
	boxIDCounter++
	return boxIDCounter
}

// PointerEvent carries pointer event data delivered to box callbacks.
// X and Y are screen coordinates; LocalX and LocalY are relative to the
// receiving box's absolute rect.
type PointerEvent struct {
	Target    *Box
	X, Y      float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// DragEvent carries drag progress data. Subject is the box being moved, or
// nil during a rubber-band selection.
type DragEvent struct {
	Subject   *Box
	X, Y      float64
	StartX    float64
	StartY    float64
	DeltaX    float64
	DeltaY    float64
	Modifiers KeyModifiers
}

// DropEvent is delivered when a drag commits onto a drop target.
type DropEvent struct {
	Subject *Box
	Target  *Box
	X, Y    float64
}

// KeyEvent carries keyboard event data.
type KeyEvent struct {
	Key       ebiten.Key
	Modifiers KeyModifiers
	Pressed   bool
}

// DragPolicy describes how a box participates in pointer dragging.
// The zero value is not draggable.
type DragPolicy struct {
	// Draggable enables drag-to-move on this box.
	Draggable bool
	// SnapBack restores the pre-drag rect when the drag is released with no
	// accepting drop target.
	SnapBack bool
	// SnapToTargets previews center-alignment on an accepting drop target
	// while the subject overlaps it mid-drag.
	SnapToTargets bool
	// Subject, when set, is the box moved by the drag instead of the box the
	// policy is attached to. Used for window title bars.
	Subject *Box
}

// Box is a positioned, sized, z-ordered node in the widget tree. A single
// flat struct is used for every widget kind to avoid interface dispatch on
// the hot path; behavior differences are capability flags and callbacks.
type Box struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Box
	children []*Box

	// Rect is relative to the parent's absolute rect; a box with no parent
	// is positioned in screen space. Use SetRect/SetSize/SetPosition so the
	// enclosing layout group is invalidated, or MarkLayoutDirty after bulk
	// field edits.
	Rect Rect

	// Ordering among siblings. Higher draws on top; ties go to the
	// later-added sibling.
	ZIndex int

	// Visibility & interaction
	Visible      bool
	InputEnabled bool
	Alpha        float64

	// Capabilities
	Focusable  bool
	Selectable bool
	DropTarget bool
	// AcceptDrop filters drop subjects; nil accepts everything. Only
	// consulted when DropTarget is true.
	AcceptDrop func(subject *Box) bool

	DragPolicy DragPolicy

	// Paint
	Background Color
	Texture    *ebiten.Image

	// Metadata
	UserData any

	// Per-box callbacks (nil by default; zero cost when unused). Pointer and
	// key callbacks return true to consume the event and stop it bubbling.
	OnPointerDown  func(PointerEvent) bool
	OnPointerUp    func(PointerEvent) bool
	OnPointerEnter func(PointerEvent)
	OnPointerLeave func(PointerEvent)
	OnClick        func(PointerEvent)
	OnDragStart    func(DragEvent)
	OnDrag         func(DragEvent)
	OnDragEnd      func(DragEvent)
	OnDrop         func(DropEvent)
	OnFocus        func()
	OnBlur         func()
	OnKey          func(KeyEvent) bool
	OnSelect       func()
	OnDeselect     func()
	OnUpdate       func(dt float64)

	// Internal
	anchor         *Anchor
	layout         *Layout
	layoutDirty    bool
	selected       bool
	disposed       bool
	childrenSorted bool
	sortedChildren []*Box // reused buffer for ZIndex-sorted traversal order
}

// NewBox creates a box with the given name and parent-relative rect.
// Boxes are visible and input-enabled by default and have no capabilities.
func NewBox(name string, rect Rect) *Box {
	return &Box{
		ID:             nextBoxID(),
		Name:           name,
		Rect:           rect,
		Visible:        true,
		InputEnabled:   true,
		Alpha:          1,
		childrenSorted: true,
	}
}

// --- Tree manipulation ---

// AddChild appends child to this box's children.
// If child already has a parent, it is removed from that parent first.
// Returns ErrNilChild or ErrCycle without mutating the tree on failure.
func (b *Box) AddChild(child *Box) error {
	return b.AddChildAt(child, len(b.children))
}

// AddChildAt inserts child at the given index among this box's children.
// Same reparenting and cycle-check behavior as AddChild.
func (b *Box) AddChildAt(child *Box, index int) error {
	if child == nil {
		return ErrNilChild
	}
	if isAncestor(child, b) {
		return ErrCycle
	}
	if index < 0 || index > len(b.children) {
		return ErrIndexRange
	}
	if child.Parent != nil {
		oldIndex := child.Parent.childIndex(child)
		if child.Parent == b && oldIndex < index {
			index--
		}
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = b
	b.children = append(b.children, nil)
	copy(b.children[index+1:], b.children[index:])
	b.children[index] = child
	b.childrenSorted = false
	markLayoutDirty(b)
	return nil
}

// RemoveChild detaches child from this box. Returns ErrNotChild if child is
// not a direct child of this box.
func (b *Box) RemoveChild(child *Box) error {
	if child == nil {
		return ErrNilChild
	}
	if child.Parent != b {
		return ErrNotChild
	}
	b.removeChildByPtr(child)
	child.Parent = nil
	b.childrenSorted = false
	markLayoutDirty(b)
	return nil
}

// RemoveChildAt removes and returns the child at the given index.
func (b *Box) RemoveChildAt(index int) (*Box, error) {
	if index < 0 || index >= len(b.children) {
		return nil, ErrIndexRange
	}
	child := b.children[index]
	copy(b.children[index:], b.children[index+1:])
	b.children[len(b.children)-1] = nil
	b.children = b.children[:len(b.children)-1]
	child.Parent = nil
	b.childrenSorted = false
	markLayoutDirty(b)
	return child, nil
}

// RemoveFromParent detaches this box from its parent.
// No-op if this box has no parent.
func (b *Box) RemoveFromParent() {
	if b.Parent == nil {
		return
	}
	_ = b.Parent.RemoveChild(b)
}

// RemoveChildren detaches all children from this box. Children are NOT
// disposed.
func (b *Box) RemoveChildren() {
	for _, child := range b.children {
		child.Parent = nil
	}
	b.children = b.children[:0]
	b.childrenSorted = true
	markLayoutDirty(b)
}

// Children returns the child list in insertion order. The returned slice
// MUST NOT be mutated by the caller.
func (b *Box) Children() []*Box {
	return b.children
}

// NumChildren returns the number of children.
func (b *Box) NumChildren() int {
	return len(b.children)
}

// ChildAt returns the child at the given index, or nil when out of range.
func (b *Box) ChildAt(index int) *Box {
	if index < 0 || index >= len(b.children) {
		return nil
	}
	return b.children[index]
}

// SetChildIndex moves child to a new index among its siblings.
func (b *Box) SetChildIndex(child *Box, index int) error {
	if child == nil {
		return ErrNilChild
	}
	if child.Parent != b {
		return ErrNotChild
	}
	if index < 0 || index >= len(b.children) {
		return ErrIndexRange
	}
	oldIndex := b.childIndex(child)
	if oldIndex == index {
		return nil
	}
	if oldIndex < index {
		copy(b.children[oldIndex:], b.children[oldIndex+1:index+1])
	} else {
		copy(b.children[index+1:], b.children[index:oldIndex])
	}
	b.children[index] = child
	b.childrenSorted = false
	markLayoutDirty(b)
	return nil
}

// --- Property setters ---

// SetRect sets the parent-relative rect and invalidates the enclosing layout.
func (b *Box) SetRect(r Rect) {
	b.Rect = r
	markLayoutDirty(b)
}

// SetSize changes the box's size without moving it.
func (b *Box) SetSize(w, h float64) {
	b.Rect.Width = w
	b.Rect.Height = h
	markLayoutDirty(b)
}

// SetPosition changes the box's parent-relative position without resizing it.
func (b *Box) SetPosition(x, y float64) {
	b.Rect.X = x
	b.Rect.Y = y
}

// SetVisible shows or hides this box and its subtree.
func (b *Box) SetVisible(v bool) {
	if b.Visible == v {
		return
	}
	b.Visible = v
	markLayoutDirty(b)
}

// SetInputEnabled enables or disables hit-testing for this box and its
// subtree.
func (b *Box) SetInputEnabled(v bool) {
	b.InputEnabled = v
}

// SetZIndex sets the box's ZIndex and marks the parent's children as
// unsorted.
func (b *Box) SetZIndex(z int) {
	if b.ZIndex == z {
		return
	}
	b.ZIndex = z
	if b.Parent != nil {
		b.Parent.childrenSorted = false
	}
}

// BringToFront moves this box above all of its current siblings.
func (b *Box) BringToFront() {
	if b.Parent == nil {
		return
	}
	top := b.ZIndex
	for _, sib := range b.Parent.children {
		if sib != b && sib.ZIndex >= top {
			top = sib.ZIndex
		}
	}
	b.SetZIndex(top)
	// Equal ZIndex ties break later-added-wins, so also move to the end.
	_ = b.Parent.SetChildIndex(b, len(b.Parent.children)-1)
}

// SetAnchor attaches a relative-positioning rule to this box, replacing any
// existing one. Rejected with ErrCyclicAnchor, before mutation, when the rule
// would close a cycle in the anchor graph. Pass nil to clear.
func (b *Box) SetAnchor(a *Anchor) error {
	if a != nil && a.Of != nil {
		if a.Of == b {
			return ErrCyclicAnchor
		}
		// Walk the prospective target chain with a visited set; reaching b
		// again means the new edge closes a cycle.
		visited := map[*Box]struct{}{}
		for cur := a.Of; cur != nil; {
			if cur == b {
				return ErrCyclicAnchor
			}
			if _, seen := visited[cur]; seen {
				// Pre-existing cycle further up the chain; adding to it is
				// rejected the same way.
				return ErrCyclicAnchor
			}
			visited[cur] = struct{}{}
			if cur.anchor == nil {
				break
			}
			cur = cur.anchor.Of
		}
	}
	b.anchor = a
	return nil
}

// Anchor returns the box's positioning rule, or nil.
func (b *Box) Anchor() *Anchor {
	return b.anchor
}

// SetLayout attaches a layout policy to this box, making it a layout group
// that arranges its direct children. Pass nil to detach.
func (b *Box) SetLayout(l *Layout) {
	b.layout = l
	b.layoutDirty = l != nil
}

// Layout returns the box's layout policy, or nil.
func (b *Box) Layout() *Layout {
	return b.layout
}

// MarkLayoutDirty invalidates the layout group enclosing this box. Useful
// after bulk-setting Rect fields directly.
func (b *Box) MarkLayoutDirty() {
	markLayoutDirty(b)
}

// Selected reports whether this box is in the committed selection set.
func (b *Box) Selected() bool {
	return b.selected
}

// --- Geometry ---

// AbsoluteRect returns this box's rect in screen coordinates, composed from
// the relative rects of all its ancestors.
func (b *Box) AbsoluteRect() Rect {
	r := b.Rect
	for p := b.Parent; p != nil; p = p.Parent {
		r.X += p.Rect.X
		r.Y += p.Rect.Y
	}
	return r
}

// ContainsAbsolute reports whether the screen-space point lies inside this
// box's absolute rect.
func (b *Box) ContainsAbsolute(x, y float64) bool {
	return b.AbsoluteRect().Contains(x, y)
}

// --- Disposal ---

// Dispose removes this box from its parent, marks it as disposed, and
// recursively disposes all descendants. A scene holding this box as its
// focus or drag subject releases it during its next step.
func (b *Box) Dispose() {
	if b.disposed {
		return
	}
	b.RemoveFromParent()
	b.dispose()
}

func (b *Box) dispose() {
	b.disposed = true
	b.ID = 0
	for _, child := range b.children {
		child.Parent = nil
		child.dispose()
	}
	b.children = nil
	b.sortedChildren = nil
	b.Parent = nil
	b.anchor = nil
	b.layout = nil
	b.Texture = nil
	b.UserData = nil
	b.AcceptDrop = nil
	b.DragPolicy = DragPolicy{}
	b.OnPointerDown = nil
	b.OnPointerUp = nil
	b.OnPointerEnter = nil
	b.OnPointerLeave = nil
	b.OnClick = nil
	b.OnDragStart = nil
	b.OnDrag = nil
	b.OnDragEnd = nil
	b.OnDrop = nil
	b.OnFocus = nil
	b.OnBlur = nil
	b.OnKey = nil
	b.OnSelect = nil
	b.OnDeselect = nil
	b.OnUpdate = nil
}

// IsDisposed returns true if this box has been disposed.
func (b *Box) IsDisposed() bool {
	return b.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of box (or the box
// itself).
func isAncestor(candidate, box *Box) bool {
	for p := box; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// isAttached reports whether box is part of the tree rooted at root.
func isAttached(box, root *Box) bool {
	for p := box; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}

// childIndex returns the index of child in b.children, or -1.
func (b *Box) childIndex(child *Box) int {
	for i, c := range b.children {
		if c == child {
			return i
		}
	}
	return -1
}

// removeChildByPtr removes child from b.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (b *Box) removeChildByPtr(child *Box) {
	for i, c := range b.children {
		if c == child {
			copy(b.children[i:], b.children[i+1:])
			b.children[len(b.children)-1] = nil
			b.children = b.children[:len(b.children)-1]
			return
		}
	}
}

// markLayoutDirty invalidates the nearest enclosing layout group: the box
// itself when it is a group, otherwise the closest ancestor group.
func markLayoutDirty(b *Box) {
	for p := b; p != nil; p = p.Parent {
		if p.layout != nil {
			p.layoutDirty = true
			return
		}
	}
}

// paintOrder returns the children sorted for painting: ascending ZIndex,
// insertion order breaking ties (later-added on top). The sorted slice is
// cached and reused until the child list or a ZIndex changes.
func (b *Box) paintOrder() []*Box {
	if len(b.children) == 0 {
		return nil
	}
	if b.childrenSorted && b.sortedChildren != nil {
		return b.sortedChildren
	}
	b.sortedChildren = append(b.sortedChildren[:0], b.children...)
	sort.SliceStable(b.sortedChildren, func(i, j int) bool {
		return b.sortedChildren[i].ZIndex < b.sortedChildren[j].ZIndex
	})
	b.childrenSorted = true
	return b.sortedChildren
}
