package bramble

// AnchorPoint names one of the nine reference points of a rectangle as a pair
// of edge alignments.
type AnchorPoint struct {
	Horizontal HAlign
	Vertical   VAlign
}

// The nine basic anchor points of a rectangle.
var (
	TopLeft      = AnchorPoint{HAlignLeft, VAlignTop}
	TopCenter    = AnchorPoint{HAlignCenter, VAlignTop}
	TopRight     = AnchorPoint{HAlignRight, VAlignTop}
	CenterLeft   = AnchorPoint{HAlignLeft, VAlignCenter}
	Center       = AnchorPoint{HAlignCenter, VAlignCenter}
	CenterRight  = AnchorPoint{HAlignRight, VAlignCenter}
	BottomLeft   = AnchorPoint{HAlignLeft, VAlignBottom}
	BottomCenter = AnchorPoint{HAlignCenter, VAlignBottom}
	BottomRight  = AnchorPoint{HAlignRight, VAlignBottom}
)

// In returns the absolute coordinate of this anchor point within the given
// rectangle.
func (p AnchorPoint) In(r Rect) Vec2 {
	var v Vec2

	switch p.Horizontal {
	case HAlignLeft:
		v.X = r.X
	case HAlignCenter:
		v.X = r.X + r.Width/2
	case HAlignRight:
		v.X = r.X + r.Width
	}

	switch p.Vertical {
	case VAlignTop:
		v.Y = r.Y
	case VAlignCenter:
		v.Y = r.Y + r.Height/2
	case VAlignBottom:
		v.Y = r.Y + r.Height
	}
	return v
}

// Anchor is a relative-positioning rule: the Self point of the owning box is
// placed on the Target point of the Of box (or the screen when Of is nil),
// displaced by Offset. Anchors are re-resolved every frame, so moving the
// target moves its dependents.
type Anchor struct {
	Self   AnchorPoint
	Target AnchorPoint
	Of     *Box
	Offset Vec2
}

// anchorTargets follows the chain of anchor targets starting at b, calling
// visit for each box reached (excluding b itself). It uses an explicit
// visited set rather than recursion so deep chains cannot blow the stack and
// cycles terminate deterministically. Returns ErrCyclicAnchor when the chain
// revisits a box.
func anchorTargets(b *Box, visit func(*Box)) error {
	visited := map[*Box]struct{}{b: {}}
	for cur := b; cur != nil && cur.anchor != nil; {
		next := cur.anchor.Of
		if next == nil {
			break
		}
		if _, seen := visited[next]; seen {
			return ErrCyclicAnchor
		}
		visited[next] = struct{}{}
		if visit != nil {
			visit(next)
		}
		cur = next
	}
	return nil
}

// resolveAnchor computes and applies the anchored position of b, given the
// screen rect for boxes anchored to the screen. The target's own anchor (and
// its target's, transitively) is resolved first, worklist style.
//
// Callers must have validated the chain with anchorTargets beforehand;
// resolveAnchor assumes the anchor graph is acyclic.
func resolveAnchor(b *Box, screen Rect) {
	// Build the dependency chain bottom-up, then resolve it in reverse so
	// each box sees its target's final absolute rect.
	var chain []*Box
	for cur := b; cur != nil && cur.anchor != nil; cur = cur.anchor.Of {
		chain = append(chain, cur)
		if cur.anchor.Of == nil {
			break
		}
	}

	for i := len(chain) - 1; i >= 0; i-- {
		applyAnchor(chain[i], screen)
	}
}

// applyAnchor repositions a single box per its anchor, assuming the target's
// absolute rect is already final.
func applyAnchor(b *Box, screen Rect) {
	a := b.anchor

	targetRect := screen
	if a.Of != nil {
		targetRect = a.Of.AbsoluteRect()
	}

	at := a.Target.In(targetRect)

	// The self point offset within the box's own rect, relative to its origin.
	self := a.Self.In(Rect{0, 0, b.Rect.Width, b.Rect.Height})

	absX := at.X - self.X + a.Offset.X
	absY := at.Y - self.Y + a.Offset.Y

	// Convert the absolute position back to parent-relative coordinates.
	if b.Parent != nil {
		parentAbs := b.Parent.AbsoluteRect()
		absX -= parentAbs.X
		absY -= parentAbs.Y
	}
	b.Rect.X = absX
	b.Rect.Y = absY
}
