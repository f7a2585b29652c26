package bramble

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// NewFPSWidget creates a box that displays the current FPS and TPS in its
// corner, refreshed every ~0.5 seconds. Input passes through it.
func NewFPSWidget() *Box {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)

	b := NewBox("fps_widget", Rect{Width: 100, Height: 32})
	b.Texture = img
	b.InputEnabled = false
	b.ZIndex = 1 << 16 // above everything sensible

	var lastUpdate float64

	b.OnUpdate = func(dt float64) {
		lastUpdate += dt
		if lastUpdate < 0.5 {
			return
		}
		lastUpdate = 0

		img.Clear()
		// Semi-transparent background for readability
		img.Fill(color.RGBA{0, 0, 0, 128})

		fps := ebiten.ActualFPS()
		tps := ebiten.ActualTPS()
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps))
	}

	return b
}
