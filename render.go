package bramble

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var colorWhiteRGBA = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Renderer receives draw instructions in screen space, back to front. The
// core never talks to the GPU directly, so tests can pass a recording
// renderer and headless hosts can skip drawing entirely.
type Renderer interface {
	// DrawRect fills a screen-space rect with a solid color.
	DrawRect(r Rect, c Color)
	// DrawTexture draws an image stretched over a screen-space rect with the
	// given opacity.
	DrawTexture(img *ebiten.Image, r Rect, alpha float64)
}

// Render walks the visible tree back to front and emits one fill and/or
// texture per box, then the rubber-band overlay when a selection drag is in
// flight. Alpha multiplies down the tree.
func (s *Scene) Render(r Renderer) {
	s.renderBox(r, s.root, 1.0, Vec2{})

	if s.drag.rubber && s.drag.state == dragDragging {
		r.DrawRect(s.drag.band, s.theme.SelectionFill)
	}
}

func (s *Scene) renderBox(r Renderer, b *Box, parentAlpha float64, origin Vec2) {
	if !b.Visible {
		return
	}
	alpha := parentAlpha * b.Alpha
	abs := b.Rect.Translate(origin.X, origin.Y)

	if b.Background.A > 0 && !abs.Empty() {
		bg := b.Background
		bg.A *= alpha
		r.DrawRect(abs, bg)
	}
	if b.Texture != nil && !abs.Empty() {
		r.DrawTexture(b.Texture, abs, alpha)
	}
	if b.selected {
		fill := s.theme.SelectionFill
		fill.A *= alpha
		r.DrawRect(abs, fill)
	}

	childOrigin := abs.Origin()
	for _, child := range b.paintOrder() {
		s.renderBox(r, child, alpha, childOrigin)
	}
}

// Draw renders the scene onto an Ebitengine image. Call it from your
// ebiten.Game's Draw method.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.ebitenRenderer.target = screen
	s.Render(&s.ebitenRenderer)
	s.ebitenRenderer.target = nil
	s.flushScreenshots(screen)
}

// EbitenRenderer draws rects and textures onto an *ebiten.Image. Solid fills
// reuse a single lazily-created white pixel stretched by the draw transform,
// so every fill stays on the same texture and batches.
type EbitenRenderer struct {
	target *ebiten.Image
	white  *ebiten.Image
}

func (er *EbitenRenderer) whitePixel() *ebiten.Image {
	if er.white == nil {
		er.white = ebiten.NewImage(1, 1)
		er.white.Fill(colorWhiteRGBA)
	}
	return er.white
}

// DrawRect fills a screen-space rect with a solid color.
func (er *EbitenRenderer) DrawRect(r Rect, c Color) {
	if c.A <= 0 || r.Width <= 0 || r.Height <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	er.target.DrawImage(er.whitePixel(), op)
}

// DrawTexture draws an image stretched over a screen-space rect.
func (er *EbitenRenderer) DrawTexture(img *ebiten.Image, r Rect, alpha float64) {
	if alpha <= 0 || r.Width <= 0 || r.Height <= 0 {
		return
	}
	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	if w == 0 || h == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width/w, r.Height/h)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	er.target.DrawImage(img, op)
}
