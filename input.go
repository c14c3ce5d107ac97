package canopy

// --- Interaction flags ---

// IsUserInteractionEnabled reports whether the view takes part in hit testing.
func (v *View) IsUserInteractionEnabled() bool {
	return v.interactive
}

// EnableUserInteraction includes the view in hit testing.
func (v *View) EnableUserInteraction() { v.interactive = true }

// DisableUserInteraction excludes the view from hit testing. Its children
// are still tested.
func (v *View) DisableUserInteraction() { v.interactive = false }

// IsEventTransparent reports whether the view lets events it accepts keep
// propagating.
func (v *View) IsEventTransparent() bool {
	return v.eventTransparent
}

// SetEventTransparent sets event transparency.
func (v *View) SetEventTransparent(transparent bool) {
	v.eventTransparent = transparent
}

// IsClickedNow reports whether a pointer-down was accepted by the view and
// not yet released.
func (v *View) IsClickedNow() bool {
	return v.clickedNow
}

// ClickedPoint returns the global point of the latched pointer-down. Only
// meaningful while IsClickedNow is true.
func (v *View) ClickedPoint() Vec2 {
	return v.clickedPoint
}

// --- Hit testing ---

// Contains reports whether the global point (x, y) lies in the view's
// content box. The frame's margins are excluded on both axes.
func (v *View) Contains(x, y float64) bool {
	return v.GlobalContentRect().Contains(x, y)
}

// accepts reports whether the view itself would react to a pointer at (x, y).
func (v *View) accepts(x, y float64) bool {
	return v.interactive && v.Contains(x, y)
}

// HitTest returns the view that would consume a pointer-down at the global
// point (x, y), or nil. Event-transparent views are skipped since they never
// consume.
func (v *View) HitTest(x, y float64) *View {
	if !v.visible {
		return nil
	}
	for i := len(v.children) - 1; i >= 0; i-- {
		if hit := v.children[i].HitTest(x, y); hit != nil {
			return hit
		}
	}
	if !v.eventTransparent && v.accepts(x, y) {
		return v
	}
	return nil
}

// --- Dispatch ---

// dispatchSink receives every view that handled an event. Used by Stage for
// the ECS bridge; nil otherwise.
type dispatchSink func(t EventType, e PointerEvent)

func (v *View) pointerEvent(x, y float64) PointerEvent {
	lx, ly := v.ToLocal(x, y)
	return PointerEvent{
		View:    v,
		GlobalX: x,
		GlobalY: y,
		LocalX:  lx,
		LocalY:  ly,
		Inside:  v.Contains(x, y),
	}
}

// PointerDown dispatches a pointer press at global (x, y) through the
// subtree rooted at v and reports whether it was consumed.
//
// Children are tested front to back (reverse child order) before the view
// itself. The first visible, interactive view containing the point latches
// IsClickedNow and gets OnPointerDown; unless it is event transparent,
// dispatch stops there.
func (v *View) PointerDown(x, y float64) bool {
	return v.pointerDown(x, y, nil)
}

func (v *View) pointerDown(x, y float64, sink dispatchSink) bool {
	if !v.visible {
		return false
	}
	for i := len(v.children) - 1; i >= 0; i-- {
		if i >= len(v.children) {
			continue
		}
		if v.children[i].pointerDown(x, y, sink) {
			return true
		}
	}
	if !v.accepts(x, y) {
		return false
	}
	if !v.clickedNow {
		v.clickedPoint = Vec2{x, y}
	}
	v.clickedNow = true
	e := v.pointerEvent(x, y)
	if v.OnPointerDown != nil {
		v.OnPointerDown(e)
	}
	if sink != nil {
		sink(EventPointerDown, e)
	}
	return !v.eventTransparent
}

// PointerUp dispatches a pointer release at global (x, y) and reports
// whether it was consumed.
//
// A view fires OnPointerUp when the point is inside its content box or when
// it had latched the matching press, so drags that end outside still
// release. Every latch in the subtree is cleared afterwards, including those
// of views the search never reached.
func (v *View) PointerUp(x, y float64) bool {
	return v.pointerUp(x, y, nil)
}

func (v *View) pointerUp(x, y float64, sink dispatchSink) bool {
	consumed := v.releaseAt(x, y, sink)
	v.clearClicks()
	return consumed
}

func (v *View) clearClicks() {
	v.clickedNow = false
	for _, c := range v.children {
		c.clearClicks()
	}
}

func (v *View) releaseAt(x, y float64, sink dispatchSink) bool {
	wasClicked := v.clickedNow
	v.clickedNow = false
	if !v.visible {
		return false
	}
	for i := len(v.children) - 1; i >= 0; i-- {
		if i >= len(v.children) {
			continue
		}
		if v.children[i].releaseAt(x, y, sink) {
			return true
		}
	}
	if !v.accepts(x, y) && !wasClicked {
		return false
	}
	e := v.pointerEvent(x, y)
	if v.OnPointerUp != nil {
		v.OnPointerUp(e)
	}
	if sink != nil {
		sink(EventPointerUp, e)
	}
	return !v.eventTransparent
}

// PointerMove dispatches a hover at global (x, y). Unlike press and release
// it is not consumed: every visible, interactive view containing the point
// receives OnPointerOver, front-most first.
func (v *View) PointerMove(x, y float64) {
	v.pointerMove(x, y, nil)
}

func (v *View) pointerMove(x, y float64, sink dispatchSink) {
	if !v.visible {
		return
	}
	for i := len(v.children) - 1; i >= 0; i-- {
		if i >= len(v.children) {
			continue
		}
		v.children[i].pointerMove(x, y, sink)
	}
	if !v.accepts(x, y) {
		return
	}
	e := v.pointerEvent(x, y)
	if v.OnPointerOver != nil {
		v.OnPointerOver(e)
	}
	if sink != nil {
		sink(EventPointerOver, e)
	}
}

// --- Resize ---

// WindowResized delivers a window resize to v as a root and propagates it to
// the whole subtree.
func (v *View) WindowResized(width, height float64) {
	v.windowResized(ResizeEvent{View: v, Bounds: Rect{0, 0, width, height}})
}

// windowResized runs v's own handlers first, then gives each child the
// parent's updated position and content size as context.
func (v *View) windowResized(e ResizeEvent) {
	if r, ok := v.content.(Resizer); ok {
		r.Resize(e)
	}
	if v.OnWindowResized != nil {
		v.OnWindowResized(e)
	}
	for i := 0; i < len(v.children); i++ {
		c := v.children[i]
		c.windowResized(ResizeEvent{
			View:   c,
			Bounds: Rect{v.position.X, v.position.Y, v.contentW, v.contentH},
		})
	}
}
