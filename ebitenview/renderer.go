package ebitenview

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/canopy"
)

// whitePixel is a 1x1 white image scaled and tinted for solid fills and
// lines. Created lazily so that nothing touches the GPU before first use.
var whitePixel *ebiten.Image

func solidPixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// renderState is the part of the renderer saved by PushState.
type renderState struct {
	tx, ty float64
	color  canopy.Color
}

// Renderer implements canopy.Renderer on an *ebiten.Image.
type Renderer struct {
	target *ebiten.Image
	state  renderState
	stack  []renderState
	op     ebiten.DrawImageOptions

	// LineWidth is the stroke width used by DrawLine, in pixels.
	LineWidth float64
}

// NewRenderer creates a renderer drawing onto target. target may be nil and
// set later with SetTarget.
func NewRenderer(target *ebiten.Image) *Renderer {
	return &Renderer{
		target:    target,
		state:     renderState{color: canopy.ColorWhite},
		LineWidth: 1,
	}
}

// SetTarget switches the destination image and resets the state stack.
// Call it at the start of each frame with the screen image.
func (r *Renderer) SetTarget(target *ebiten.Image) {
	r.target = target
	r.state = renderState{color: canopy.ColorWhite}
	r.stack = r.stack[:0]
}

// PushState saves translation and color.
func (r *Renderer) PushState() {
	r.stack = append(r.stack, r.state)
}

// PopState restores the most recently pushed state. Unbalanced pops are
// ignored.
func (r *Renderer) PopState() {
	n := len(r.stack)
	if n == 0 {
		return
	}
	r.state = r.stack[n-1]
	r.stack = r.stack[:n-1]
}

// Translate offsets subsequent drawing.
func (r *Renderer) Translate(x, y float64) {
	r.state.tx += x
	r.state.ty += y
}

// SetColor sets the fill, line and image tint color.
func (r *Renderer) SetColor(c canopy.Color) {
	r.state.color = c
}

// Offset returns the accumulated translation.
func (r *Renderer) Offset() (x, y float64) {
	return r.state.tx, r.state.ty
}

// Depth returns the number of pushed states.
func (r *Renderer) Depth() int {
	return len(r.stack)
}

// FillRect fills a rectangle with the current color. Empty or inverted
// rectangles draw nothing.
func (r *Renderer) FillRect(x, y, width, height float64) {
	if r.target == nil || width <= 0 || height <= 0 {
		return
	}
	r.op.GeoM.Reset()
	r.op.GeoM.Scale(width, height)
	r.op.GeoM.Translate(r.state.tx+x, r.state.ty+y)
	r.applyColor()
	r.target.DrawImage(solidPixel(), &r.op)
}

// DrawLine strokes a line LineWidth pixels wide with the current color.
func (r *Renderer) DrawLine(x1, y1, x2, y2 float64) {
	if r.target == nil {
		return
	}
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	w := r.LineWidth
	r.op.GeoM.Reset()
	r.op.GeoM.Scale(length, w)
	r.op.GeoM.Translate(0, -w/2)
	r.op.GeoM.Rotate(math.Atan2(dy, dx))
	r.op.GeoM.Translate(r.state.tx+x1, r.state.ty+y1)
	r.applyColor()
	r.target.DrawImage(solidPixel(), &r.op)
}

// DrawImage draws img scaled into the given rectangle, tinted by the current
// color. Bitmaps not created by this package are skipped.
func (r *Renderer) DrawImage(img canopy.Bitmap, x, y, width, height float64) {
	src := ebitenImage(img)
	if r.target == nil || src == nil || width <= 0 || height <= 0 {
		return
	}
	b := src.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	if sw == 0 || sh == 0 {
		return
	}
	r.op.GeoM.Reset()
	r.op.GeoM.Scale(width/sw, height/sh)
	r.op.GeoM.Translate(r.state.tx+x, r.state.ty+y)
	r.applyColor()
	r.target.DrawImage(src, &r.op)
}

// applyColor loads the current color into the draw options, premultiplied.
func (r *Renderer) applyColor() {
	c := r.state.color
	a := float32(c.A)
	r.op.ColorScale.Reset()
	r.op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
}
