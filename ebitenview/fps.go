package ebitenview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/canopy"
)

// fpsOverlay is a canopy content that prints the measured FPS and TPS,
// refreshed at most twice a second.
type fpsOverlay struct {
	img      *ebiten.Image
	wrapped  *Image
	lastDraw float64
	now      func() float64
}

// NewFPSView returns a 100x32 non-interactive view showing FPS and TPS. now
// supplies the current time in seconds; the overlay redraws its text at
// most every half second.
func NewFPSView(now func() float64) *canopy.View {
	return canopy.NewCustomView(canopy.Settings{
		Name:          "fps",
		Frame:         canopy.Rect{Width: 100, Height: 32},
		NoInteraction: true,
	}, &fpsOverlay{now: now, lastDraw: -1})
}

func (o *fpsOverlay) DrawContent(ctx canopy.DrawContext) {
	if o.img == nil {
		o.img = ebiten.NewImage(100, 32)
		o.wrapped = NewImage(o.img)
	}
	if t := o.now(); o.lastDraw < 0 || t-o.lastDraw >= 0.5 {
		o.lastDraw = t
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	ctx.Renderer.SetColor(canopy.ColorWhite.WithAlpha(ctx.Alpha))
	ctx.Renderer.DrawImage(o.wrapped, 0, 0, 100, 32)
}
