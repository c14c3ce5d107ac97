package canopy

// calculateLayout recomputes the content size from frame and margin. Every
// frame or margin mutation goes through here; the result may be negative.
func (v *View) calculateLayout() {
	v.contentW = v.frame.Width - v.margin.Right - v.margin.Left
	v.contentH = v.frame.Height - v.margin.Top - v.margin.Bottom
}

// --- Frame and margin ---

// Frame returns the declared frame. Its origin is the configured origin and
// does not follow Position.
func (v *View) Frame() Rect {
	return v.frame
}

// SetFrame replaces the declared frame and resets Position to its origin.
func (v *View) SetFrame(r Rect) {
	v.frame = r
	v.position = r.Origin()
	v.calculateLayout()
}

// Margin returns the view's margin.
func (v *View) Margin() Margin {
	return v.margin
}

// SetMargin replaces the margin and recomputes the content size.
func (v *View) SetMargin(m Margin) {
	v.margin = m
	v.calculateLayout()
}

// Width returns the content width (frame width minus horizontal margins).
func (v *View) Width() float64 {
	return v.contentW
}

// Height returns the content height (frame height minus vertical margins).
func (v *View) Height() float64 {
	return v.contentH
}

// SetWidth sets the declared frame width.
func (v *View) SetWidth(w float64) {
	v.frame.Width = w
	v.calculateLayout()
}

// SetHeight sets the declared frame height.
func (v *View) SetHeight(h float64) {
	v.frame.Height = h
	v.calculateLayout()
}

// SetSize sets the declared frame width and height.
func (v *View) SetSize(w, h float64) {
	v.frame.Width = w
	v.frame.Height = h
	v.calculateLayout()
}

// Bounds returns the content box in the view's own content space.
func (v *View) Bounds() Rect {
	return Rect{0, 0, v.contentW, v.contentH}
}

// --- Position ---

// Position returns the live parent-local origin.
func (v *View) Position() Vec2 {
	return v.position
}

// SetPosition moves the view to (x, y) in parent-local space. The declared
// frame is not changed.
func (v *View) SetPosition(x, y float64) {
	v.position = Vec2{x, y}
}

// Move offsets the view by (dx, dy).
func (v *View) Move(dx, dy float64) {
	v.position.X += dx
	v.position.Y += dy
}

// --- Coordinate conversion ---

// contentOffset returns the global position of v's content origin.
func (v *View) contentOffset() Vec2 {
	var o Vec2
	for p := v; p != nil; p = p.parent {
		o.X += p.position.X + p.margin.Left
		o.Y += p.position.Y + p.margin.Top
	}
	return o
}

// ToGlobal converts a point in v's content space to global space.
func (v *View) ToGlobal(x, y float64) (gx, gy float64) {
	o := v.contentOffset()
	return x + o.X, y + o.Y
}

// ToLocal converts a global point to v's content space.
func (v *View) ToLocal(gx, gy float64) (x, y float64) {
	o := v.contentOffset()
	return gx - o.X, gy - o.Y
}

// GlobalContentRect returns the content box in global space.
func (v *View) GlobalContentRect() Rect {
	o := v.contentOffset()
	return Rect{o.X, o.Y, v.contentW, v.contentH}
}

// --- Global edges ---

// Left returns the global x of the content box's left edge.
func (v *View) Left() float64 { return v.contentOffset().X }

// Top returns the global y of the content box's top edge.
func (v *View) Top() float64 { return v.contentOffset().Y }

// Right returns the global x of the content box's right edge.
func (v *View) Right() float64 { return v.Left() + v.contentW }

// Bottom returns the global y of the content box's bottom edge.
func (v *View) Bottom() float64 { return v.Top() + v.contentH }

// TopLeft returns the global content origin.
func (v *View) TopLeft() Vec2 { return v.contentOffset() }

// Center returns the global center of the content box.
func (v *View) Center() Vec2 {
	o := v.contentOffset()
	return Vec2{o.X + v.contentW*0.5, o.Y + v.contentH*0.5}
}

// SetLeft moves the view so its position x equals left.
func (v *View) SetLeft(left float64) { v.position.X = left }

// SetTop moves the view so its position y equals top.
func (v *View) SetTop(top float64) { v.position.Y = top }

// SetRight moves the view so its right edge sits at right (parent space).
func (v *View) SetRight(right float64) { v.position.X = right - v.contentW }

// SetBottom moves the view so its bottom edge sits at bottom (parent space).
func (v *View) SetBottom(bottom float64) { v.position.Y = bottom - v.contentH }

// SetLeftStretch moves the left edge to left while keeping the right edge.
func (v *View) SetLeftStretch(left float64) {
	l := v.position.X
	v.SetLeft(left)
	v.SetWidth(v.frame.Width + l - left)
}

// SetRightStretch moves the right edge to right while keeping the left edge.
func (v *View) SetRightStretch(right float64) {
	r := v.position.X + v.contentW
	v.SetWidth(v.frame.Width + right - r)
}

// SetTopStretch moves the top edge to top while keeping the bottom edge.
func (v *View) SetTopStretch(top float64) {
	t := v.position.Y
	v.SetTop(top)
	v.SetHeight(v.frame.Height + t - top)
}

// SetBottomStretch moves the bottom edge to bottom while keeping the top edge.
func (v *View) SetBottomStretch(bottom float64) {
	b := v.position.Y + v.contentH
	v.SetHeight(v.frame.Height + bottom - b)
}

// --- Opacity and visibility ---

// Alpha returns the view's own opacity.
func (v *View) Alpha() float64 {
	return v.alpha
}

// SetAlpha sets the view's own opacity.
func (v *View) SetAlpha(a float64) {
	v.alpha = a
}

// EffectiveAlpha returns the view's opacity multiplied by every ancestor's.
// It is computed on each call, so ancestor changes are visible immediately.
func (v *View) EffectiveAlpha() float64 {
	if v.parent == nil {
		return v.alpha
	}
	return v.parent.EffectiveAlpha() * v.alpha
}

// IsVisible reports the view's own visibility flag.
func (v *View) IsVisible() bool {
	return v.visible
}

// SetVisible sets the visibility flag. Hidden views and their whole subtree
// are skipped for drawing and pointer dispatch.
func (v *View) SetVisible(visible bool) {
	v.visible = visible
}

// Show makes the view visible.
func (v *View) Show() { v.visible = true }

// Hide makes the view invisible.
func (v *View) Hide() { v.visible = false }

// BackgroundColor returns the background color.
func (v *View) BackgroundColor() Color {
	return v.background
}

// SetBackgroundColor sets the background color.
func (v *View) SetBackgroundColor(c Color) {
	v.background = c
}

// SetBackgroundColor8 sets the background color from 0-255 components.
func (v *View) SetBackgroundColor8(r, g, b, a uint8) {
	v.background = RGBA8(r, g, b, a)
}

// FitToParent is an OnWindowResized handler that resizes the view to the
// resize context's width and height.
func FitToParent(e ResizeEvent) {
	e.View.SetSize(e.Bounds.Width, e.Bounds.Height)
}
