package bramble

import "math"

// LayoutKind selects the arrangement policy of a layout group.
type LayoutKind uint8

const (
	LayoutRow    LayoutKind = iota // children packed left-to-right
	LayoutColumn                   // children packed top-to-bottom
	LayoutGrid                     // children placed row-major into columns
)

// Layout is an arrangement policy attached to a Box via SetLayout. The owning
// box becomes a layout group: each recompute writes the parent-relative rects
// of its direct children. Recomputation is idempotent and never reaches into
// grandchildren; a child that is itself a group arranges its own children
// independently, bottom-up.
type Layout struct {
	Kind LayoutKind

	// Reverse flips the main axis: right-to-left for rows, bottom-to-top for
	// columns. Ignored by grids.
	Reverse bool

	// Spacing is the gap between consecutive children on the main axis.
	Spacing float64

	// Padding is applied inside the group's edges.
	Padding Insets

	// Align distributes excess main-axis space when the group has FixedSize
	// and its content is smaller than the available area.
	Align Alignment

	// Stretch sizes each child's cross axis to fill the group. Ignored by
	// grids.
	Stretch bool

	// FixedSize keeps the group's current rect. When false the group
	// auto-sizes to its content plus padding.
	FixedSize bool

	// Columns fixes the grid column count. When zero, the count is derived
	// from TargetAspect (or approximates a square when that is also zero).
	Columns int

	// TargetAspect is the approximate width/height ratio a derived grid
	// should fill. Only consulted when Columns is zero.
	TargetAspect float64
}

// RecomputeLayout immediately arranges this box's children per its layout
// policy. No-op when the box has no layout attached. The scene runs this
// automatically once per frame for every invalidated group, before
// hit-testing and drawing; calling it directly is only needed when absolute
// rects are read between mutation and the next frame.
func (b *Box) RecomputeLayout() {
	if b.layout == nil {
		return
	}
	b.layout.recompute(b)
	b.layoutDirty = false
}

// layoutChildren returns the children participating in layout: visible boxes
// in insertion order. Hidden children keep their rects and occupy no space.
func layoutChildren(b *Box) []*Box {
	kids := make([]*Box, 0, len(b.children))
	for _, c := range b.children {
		if c.Visible {
			kids = append(kids, c)
		}
	}
	return kids
}

func (l *Layout) recompute(b *Box) {
	kids := layoutChildren(b)
	if len(kids) == 0 {
		if !l.FixedSize {
			l.resize(b, l.Padding.Horizontal(), l.Padding.Vertical())
		}
		return
	}

	switch l.Kind {
	case LayoutRow:
		l.recomputeLine(b, kids, true)
	case LayoutColumn:
		l.recomputeLine(b, kids, false)
	case LayoutGrid:
		l.recomputeGrid(b, kids)
	}
}

// recomputeLine lays out a row (horizontal=true) or column (horizontal=false).
func (l *Layout) recomputeLine(b *Box, kids []*Box, horizontal bool) {
	var contentMain, contentCross float64
	for _, c := range kids {
		if horizontal {
			contentMain += c.Rect.Width
			contentCross = max(contentCross, c.Rect.Height)
		} else {
			contentMain += c.Rect.Height
			contentCross = max(contentCross, c.Rect.Width)
		}
	}
	contentMain += l.Spacing * float64(len(kids)-1)

	var innerMain, innerCross float64
	if l.FixedSize {
		if horizontal {
			innerMain = b.Rect.Width - l.Padding.Horizontal()
			innerCross = b.Rect.Height - l.Padding.Vertical()
		} else {
			innerMain = b.Rect.Height - l.Padding.Vertical()
			innerCross = b.Rect.Width - l.Padding.Horizontal()
		}
	} else {
		innerMain = contentMain
		innerCross = contentCross
		if horizontal {
			l.resize(b, contentMain+l.Padding.Horizontal(), contentCross+l.Padding.Vertical())
		} else {
			l.resize(b, contentCross+l.Padding.Horizontal(), contentMain+l.Padding.Vertical())
		}
	}

	offset, gap := distribute(innerMain-contentMain, len(kids), l.Align)
	gap += l.Spacing

	pos := offset
	if horizontal {
		pos += l.Padding.Left
	} else {
		pos += l.Padding.Top
	}

	for i := range kids {
		c := kids[i]
		if l.Reverse {
			c = kids[len(kids)-1-i]
		}
		if horizontal {
			c.Rect.X = pos
			c.Rect.Y = l.Padding.Top
			if l.Stretch {
				c.Rect.Height = innerCross
			}
			pos += c.Rect.Width + gap
		} else {
			c.Rect.Y = pos
			c.Rect.X = l.Padding.Left
			if l.Stretch {
				c.Rect.Width = innerCross
			}
			pos += c.Rect.Height + gap
		}
	}
}

func (l *Layout) recomputeGrid(b *Box, kids []*Box) {
	cols := l.gridColumns(len(kids))
	rows := (len(kids) + cols - 1) / cols

	// Each cell is sized to the widest child of its column and the tallest
	// child of its row.
	colW := make([]float64, cols)
	rowH := make([]float64, rows)
	for i, c := range kids {
		col, row := i%cols, i/cols
		colW[col] = max(colW[col], c.Rect.Width)
		rowH[row] = max(rowH[row], c.Rect.Height)
	}

	var contentW, contentH float64
	for _, w := range colW {
		contentW += w
	}
	contentW += l.Spacing * float64(cols-1)
	for _, h := range rowH {
		contentH += h
	}
	contentH += l.Spacing * float64(rows-1)

	innerW, innerH := contentW, contentH
	if l.FixedSize {
		innerW = b.Rect.Width - l.Padding.Horizontal()
		innerH = b.Rect.Height - l.Padding.Vertical()
	} else {
		l.resize(b, contentW+l.Padding.Horizontal(), contentH+l.Padding.Vertical())
	}

	offX, gapX := distribute(innerW-contentW, cols, l.Align)
	offY, gapY := distribute(innerH-contentH, rows, l.Align)
	gapX += l.Spacing
	gapY += l.Spacing

	y := l.Padding.Top + offY
	for row := 0; row < rows; row++ {
		x := l.Padding.Left + offX
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(kids) {
				break
			}
			kids[i].Rect.X = x
			kids[i].Rect.Y = y
			x += colW[col] + gapX
		}
		y += rowH[row] + gapY
	}
}

// gridColumns returns the effective column count for n children.
func (l *Layout) gridColumns(n int) int {
	if l.Columns > 0 {
		return l.Columns
	}
	aspect := l.TargetAspect
	if aspect <= 0 {
		aspect = 1
	}
	cols := int(math.Round(math.Sqrt(float64(n) * aspect)))
	if cols < 1 {
		cols = 1
	}
	if cols > n {
		cols = n
	}
	return cols
}

// distribute converts excess main-axis space into a leading offset and an
// extra per-gap amount according to the alignment policy. Negative excess
// (overflowing content) is ignored.
func distribute(excess float64, n int, align Alignment) (offset, gap float64) {
	if excess <= 0 || n == 0 {
		return 0, 0
	}
	switch align {
	case AlignEnd:
		return excess, 0
	case AlignCenter:
		return excess / 2, 0
	case AlignJustify:
		if n > 1 {
			return 0, excess / float64(n-1)
		}
		return excess / 2, 0
	default: // AlignStart
		return 0, 0
	}
}

// resize applies an auto-size result to the group box and invalidates the
// enclosing group when the size actually changed.
func (l *Layout) resize(b *Box, w, h float64) {
	if b.Rect.Width == w && b.Rect.Height == h {
		return
	}
	b.Rect.Width = w
	b.Rect.Height = h
	if b.Parent != nil {
		markLayoutDirty(b.Parent)
	}
}

// --- Layout factories ---

// NewRow creates a box that arranges its children left-to-right with the
// given spacing, auto-sizing to its content.
func NewRow(name string, spacing float64) *Box {
	b := NewBox(name, Rect{})
	b.SetLayout(&Layout{Kind: LayoutRow, Spacing: spacing})
	return b
}

// NewColumn creates a box that arranges its children top-to-bottom with the
// given spacing, auto-sizing to its content.
func NewColumn(name string, spacing float64) *Box {
	b := NewBox(name, Rect{})
	b.SetLayout(&Layout{Kind: LayoutColumn, Spacing: spacing})
	return b
}

// NewGrid creates a box that places its children row-major into the given
// number of columns. columns == 0 derives a count approximating a square.
func NewGrid(name string, columns int, spacing float64) *Box {
	b := NewBox(name, Rect{})
	b.SetLayout(&Layout{Kind: LayoutGrid, Columns: columns, Spacing: spacing})
	return b
}
