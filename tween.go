package bramble

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Box simultaneously. Create
// one via the convenience constructors (TweenPosition, TweenSize, TweenAlpha)
// and hand it to Scene.Animate, or call Update(dt) yourself each frame. If
// the target box is disposed mid-flight, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Box
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target box has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil && g.target.layout != nil {
		g.target.layoutDirty = true
	}
}

// TweenPosition creates a TweenGroup that animates the box's parent-relative
// origin to the given coordinates over the specified duration using the
// easing function.
func TweenPosition(b *Box, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: b}
	g.tweens[0] = gween.New(float32(b.Rect.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(b.Rect.Y), float32(toY), duration, fn)
	g.fields[0] = &b.Rect.X
	g.fields[1] = &b.Rect.Y
	return g
}

// TweenSize creates a TweenGroup that animates the box's width and height to
// the given values over the specified duration using the easing function.
func TweenSize(b *Box, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: b}
	g.tweens[0] = gween.New(float32(b.Rect.Width), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(b.Rect.Height), float32(toH), duration, fn)
	g.fields[0] = &b.Rect.Width
	g.fields[1] = &b.Rect.Height
	return g
}

// TweenAlpha creates a TweenGroup that animates the box's opacity to the
// target value over the specified duration using the easing function.
func TweenAlpha(b *Box, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: b}
	g.tweens[0] = gween.New(float32(b.Alpha), float32(to), duration, fn)
	g.fields[0] = &b.Alpha
	return g
}

// TweenColor creates a TweenGroup that animates all four components of the
// box's background color to the target color over the specified duration.
func TweenColor(b *Box, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: b}
	g.tweens[0] = gween.New(float32(b.Background.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(b.Background.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(b.Background.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(b.Background.A), float32(to.A), duration, fn)
	g.fields[0] = &b.Background.R
	g.fields[1] = &b.Background.G
	g.fields[2] = &b.Background.B
	g.fields[3] = &b.Background.A
	return g
}
