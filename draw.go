package canopy

// Renderer is the set of pixel primitives a host provides. canopy decides
// what to draw and in which order; the Renderer produces the pixels.
//
// Coordinates are relative to the current translation. PushState saves the
// translation and color; PopState restores them.
type Renderer interface {
	PushState()
	PopState()
	Translate(x, y float64)
	SetColor(c Color)
	FillRect(x, y, width, height float64)
	DrawLine(x1, y1, x2, y2 float64)
	DrawImage(img Bitmap, x, y, width, height float64)
}

// Draw renders the subtree rooted at v: background, own content, then
// children in child order, so later children paint on top. Hidden views
// draw nothing, including their children.
func (v *View) Draw(r Renderer) {
	if !v.visible {
		return
	}
	r.PushState()
	r.Translate(v.position.X+v.margin.Left, v.position.Y+v.margin.Top)
	v.drawBackground(r)
	v.drawContent(r)
	for i := 0; i < len(v.children); i++ {
		v.children[i].Draw(r)
	}
	r.PopState()
}

func (v *View) drawBackground(r Renderer) {
	a := v.background.A * v.EffectiveAlpha()
	if a <= 0 {
		return
	}
	r.SetColor(Color{v.background.R, v.background.G, v.background.B, a})
	r.FillRect(0, 0, v.contentW, v.contentH)
}

// drawContent draws the kind-specific content between background and
// children.
func (v *View) drawContent(r Renderer) {
	switch v.Kind {
	case ViewKindImage:
		if v.bitmap == nil {
			return
		}
		r.SetColor(ColorWhite.WithAlpha(v.EffectiveAlpha()))
		r.DrawImage(v.bitmap, 0, 0, v.contentW, v.contentH)
	case ViewKindDrawer:
		if v.drawFn != nil {
			v.drawFn(v.drawContext(r))
		}
	case ViewKindCustom:
		if v.content != nil {
			v.content.DrawContent(v.drawContext(r))
		}
	}
}

// DrawContext is the read-only view state handed to custom draw code. It is
// a value copy: changing it does not affect the view.
type DrawContext struct {
	Renderer Renderer
	Name     string
	Width    float64 // content width
	Height   float64 // content height
	Alpha    float64 // effective alpha
	Origin   Vec2    // global content origin
	UserData any
}

// SetForegroundColor sets the renderer color with alpha scaled by the view's
// effective alpha.
func (c DrawContext) SetForegroundColor(col Color) {
	c.Renderer.SetColor(col.WithAlpha(c.Alpha))
}

func (v *View) drawContext(r Renderer) DrawContext {
	return DrawContext{
		Renderer: r,
		Name:     v.name,
		Width:    v.contentW,
		Height:   v.contentH,
		Alpha:    v.EffectiveAlpha(),
		Origin:   v.contentOffset(),
		UserData: v.UserData,
	}
}
