package bramble

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is plain opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent draws nothing; it is the zero value of Color.
var ColorTransparent = Color{}

// Vec2 is a 2D vector used for positions, offsets, sizes, and deltas
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns the component-wise difference of v and other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. Width and Height are never
// negative; use RectFromPoints to build a normalized rect from two corners.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromPoints returns the normalized rectangle spanning the two given
// corner points, in any order.
func RectFromPoints(a, b Vec2) Rect {
	x, y := a.X, a.Y
	w, h := b.X-a.X, b.Y-a.Y
	if w < 0 {
		x, w = b.X, -w
	}
	if h < 0 {
		y, h = b.Y, -h
	}
	return Rect{x, y, w, h}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Intersection returns the overlapping region of r and other, or a zero Rect
// when they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.X+r.Width, other.X+other.Width)
	y2 := min(r.Y+r.Height, other.Y+other.Height)
	if x2 < x1 || y2 < y1 {
		return Rect{}
	}
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.X+r.Width, other.X+other.Width)
	y2 := max(r.Y+r.Height, other.Y+other.Height)
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// Area returns Width * Height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Vec2 {
	return Vec2{r.X, r.Y}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{r.X + dx, r.Y + dy, r.Width, r.Height}
}

// Insets describes spacing around the inside edges of a rectangle,
// used for layout padding.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// UniformInsets returns Insets with the same value on all four sides.
func UniformInsets(v float64) Insets {
	return Insets{v, v, v, v}
}

// Horizontal returns Left + Right.
func (i Insets) Horizontal() float64 {
	return i.Left + i.Right
}

// Vertical returns Top + Bottom.
func (i Insets) Vertical() float64 {
	return i.Top + i.Bottom
}

// Shrink returns r reduced by the insets on each side.
func (i Insets) Shrink(r Rect) Rect {
	return Rect{
		X:      r.X + i.Left,
		Y:      r.Y + i.Top,
		Width:  max(0, r.Width-i.Horizontal()),
		Height: max(0, r.Height-i.Vertical()),
	}
}

// HAlign selects a horizontal reference edge within a rectangle.
type HAlign uint8

const (
	HAlignLeft   HAlign = iota // left edge
	HAlignCenter               // horizontal center
	HAlignRight                // right edge
)

// VAlign selects a vertical reference edge within a rectangle.
type VAlign uint8

const (
	VAlignTop    VAlign = iota // top edge
	VAlignCenter               // vertical center
	VAlignBottom               // bottom edge
)

// Alignment controls how a layout group distributes excess main-axis space
// when the group has a fixed size larger than its content.
type Alignment uint8

const (
	AlignStart   Alignment = iota // pack children at the start, excess at the end
	AlignEnd                      // pack children at the end, excess at the start
	AlignCenter                   // excess split evenly on both ends
	AlignJustify                  // excess distributed into the gaps between children
)

// EventType identifies a kind of raw input event delivered by the host engine.
type EventType uint8

const (
	EventPointerDown EventType = iota // a pointer button was pressed
	EventPointerMove                  // the pointer moved
	EventPointerUp                    // a pointer button was released
	EventKeyDown                      // a key was pressed
	EventKeyUp                        // a key was released
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
