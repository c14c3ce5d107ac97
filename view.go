package canopy

import "strconv"

// Settings is the configuration value a View is created from. The zero value
// is a visible, interactive, opaque view with an empty frame and a
// transparent background.
type Settings struct {
	// Name identifies the view among its siblings. Empty means auto-generated.
	Name string

	// Frame is the parent-local origin and declared size.
	Frame Rect

	// Margin insets the content box from the frame.
	Margin Margin

	// BackgroundColor fills the content box when its alpha is non-zero.
	BackgroundColor Color

	Hidden           bool // start invisible
	EventTransparent bool // react to pointer events without consuming them
	NoInteraction    bool // exclude from hit testing
}

// PointerEvent carries pointer event data to view callbacks.
type PointerEvent struct {
	View    *View
	GlobalX float64
	GlobalY float64
	LocalX  float64 // relative to the view's content origin
	LocalY  float64
	Inside  bool // the point lies in the view's content box
}

// ResizeEvent carries window-resize data to view callbacks. Bounds is the
// window for the root and the parent's position and content size for every
// other view.
type ResizeEvent struct {
	View   *View
	Bounds Rect
}

// viewIDCounter is a plain counter (no atomic, canopy is single-threaded).
var viewIDCounter uint64

func nextViewID() uint64 {
	viewIDCounter++
	return viewIDCounter
}

// View is the scene graph element. A single flat struct is used for all view
// kinds; Kind selects what the view draws between its background and its
// children.
type View struct {
	// Identity
	ID   uint64
	Kind ViewKind
	name string

	// Hierarchy. parent is a non-owning back pointer cleared on detach.
	parent   *View
	children []*View

	// Layout
	frame    Rect
	margin   Margin
	contentW float64
	contentH float64
	position Vec2

	// Visual state
	background Color
	alpha      float64
	visible    bool

	// Interaction
	interactive      bool
	eventTransparent bool
	clickedNow       bool
	clickedPoint     Vec2

	// Metadata for the ECS bridge.
	UserData any
	EntityID uint32

	// Kind-specific content
	bitmap    Bitmap
	imagePath string
	drawFn    DrawFunc
	content   Content

	// Per-view callbacks (nil by default)
	OnPointerDown   func(PointerEvent)
	OnPointerUp     func(PointerEvent)
	OnPointerOver   func(PointerEvent)
	OnWindowResized func(ResizeEvent)

	// Animations scheduled through the view helpers, cancelled on Dispose.
	animations map[string]viewAnimation

	disposed bool
}

// NewView creates a plain view from settings.
func NewView(s Settings) *View {
	v := &View{}
	v.init(s)
	return v
}

// NewViewRect is shorthand for a plain view with only a frame.
func NewViewRect(x, y, width, height float64) *View {
	return NewView(Settings{Frame: Rect{x, y, width, height}})
}

func (v *View) init(s Settings) {
	v.ID = nextViewID()
	v.name = s.Name
	if v.name == "" {
		v.name = "view_" + strconv.FormatUint(v.ID, 10)
	}
	v.alpha = 1
	v.apply(s)
}

// apply copies settings into the view and resets the live position to the
// frame origin.
func (v *View) apply(s Settings) {
	v.frame = s.Frame
	v.margin = s.Margin
	v.position = Vec2{s.Frame.X, s.Frame.Y}
	v.background = s.BackgroundColor
	v.visible = !s.Hidden
	v.eventTransparent = s.EventTransparent
	v.interactive = !s.NoInteraction
	v.calculateLayout()
}

// Settings returns the view's current configuration.
func (v *View) Settings() Settings {
	return Settings{
		Name:             v.name,
		Frame:            v.frame,
		Margin:           v.margin,
		BackgroundColor:  v.background,
		Hidden:           !v.visible,
		EventTransparent: v.eventTransparent,
		NoInteraction:    !v.interactive,
	}
}

// SetSettings replaces the view's configuration. The live position is reset
// to the new frame origin. The name is left unchanged so sibling lookups stay
// consistent; rename through AddNamed.
func (v *View) SetSettings(s Settings) {
	v.apply(s)
}

// Name returns the view's name.
func (v *View) Name() string {
	return v.name
}

// --- Tree manipulation ---

// Add appends child to this view's children, on top of every existing
// sibling. If child already has a parent it is detached first.
func (v *View) Add(child *View) {
	if !v.canAdopt(child, "Add") {
		return
	}
	child.detach()
	child.parent = v
	v.children = append(v.children, child)
	v.afterAdd(child)
}

// AddNamed renames child to name and appends it. A sibling already holding
// that name is removed first.
func (v *View) AddNamed(name string, child *View) {
	if !v.canAdopt(child, "AddNamed") {
		return
	}
	child.detach()
	v.RemoveNamed(name)
	child.name = name
	child.parent = v
	v.children = append(v.children, child)
	v.afterAdd(child)
}

// InsertBefore places child directly behind target (drawn before it, hit
// tested after it). Falls back to Add with a warning if target is not a
// child of v.
func (v *View) InsertBefore(child, target *View) {
	v.insertRelative(child, "", target, 0, "InsertBefore")
}

// InsertAfter places child directly in front of target. Falls back to Add
// with a warning if target is not a child of v.
func (v *View) InsertAfter(child, target *View) {
	v.insertRelative(child, "", target, 1, "InsertAfter")
}

// InsertBeforeNamed is InsertBefore with the target looked up by name.
func (v *View) InsertBeforeNamed(child *View, targetName string) {
	v.insertRelative(child, "", v.Find(targetName), 0, "InsertBefore")
}

// InsertAfterNamed is InsertAfter with the target looked up by name.
func (v *View) InsertAfterNamed(child *View, targetName string) {
	v.insertRelative(child, "", v.Find(targetName), 1, "InsertAfter")
}

// InsertNamedBefore renames child to name, replacing any sibling with that
// name, and places it behind target.
func (v *View) InsertNamedBefore(name string, child, target *View) {
	v.insertRelative(child, name, target, 0, "InsertNamedBefore")
}

// InsertNamedAfter renames child to name, replacing any sibling with that
// name, and places it in front of target.
func (v *View) InsertNamedAfter(name string, child, target *View) {
	v.insertRelative(child, name, target, 1, "InsertNamedAfter")
}

// insertRelative implements the Insert* family. offset 0 inserts at the
// target's index, offset 1 right after it.
func (v *View) insertRelative(child *View, name string, target *View, offset int, op string) {
	if !v.canAdopt(child, op) {
		return
	}
	child.detach()
	index := v.indexOf(target)
	if index >= 0 {
		index += offset
	}
	if name != "" {
		if index >= 0 && target.name == name {
			// The target itself is replaced; take over its slot.
			index -= offset
		}
		bound := index
		for i, c := range v.children {
			if c.name == name && i < bound {
				index--
			}
		}
		v.RemoveNamed(name)
		child.name = name
	}
	child.parent = v

	if index < 0 {
		logger.Warn("insert target not found, appending",
			"op", op, "parent", v.name, "children", len(v.children))
		v.children = append(v.children, child)
	} else {
		v.children = append(v.children, nil)
		copy(v.children[index+1:], v.children[index:])
		v.children[index] = child
	}
	v.afterAdd(child)
}

// Remove detaches child from this view. No-op if child is not a child of v.
func (v *View) Remove(child *View) {
	if child == nil || child.parent != v {
		return
	}
	v.removeChildByPtr(child)
	child.parent = nil
}

// RemoveNamed detaches every child named name. No-op if none match.
func (v *View) RemoveNamed(name string) {
	kept := v.children[:0]
	for _, c := range v.children {
		if c.name == name {
			c.parent = nil
			continue
		}
		kept = append(kept, c)
	}
	clear(v.children[len(kept):])
	v.children = kept
}

// RemoveFromParent detaches this view from its parent. On a root it only
// logs a warning.
func (v *View) RemoveFromParent() {
	if v.parent == nil {
		logger.Warn("RemoveFromParent on a view without parent, maybe root", "view", v.name)
		return
	}
	v.parent.Remove(v)
}

// RemoveChildren detaches all children. Children are not disposed.
func (v *View) RemoveChildren() {
	for _, c := range v.children {
		c.parent = nil
	}
	clear(v.children)
	v.children = v.children[:0]
}

// Find returns the direct child named name, or nil. Grandchildren are not
// searched.
func (v *View) Find(name string) *View {
	for _, c := range v.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Parent returns the parent view, or nil for a root or detached view.
func (v *View) Parent() *View {
	return v.parent
}

// IsRoot reports whether the view has no parent.
func (v *View) IsRoot() bool {
	return v.parent == nil
}

// Root returns the topmost ancestor (v itself when detached).
func (v *View) Root() *View {
	r := v
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Children returns the child list in draw order. The returned slice MUST
// NOT be mutated by the caller.
func (v *View) Children() []*View {
	return v.children
}

// NumChildren returns the number of children.
func (v *View) NumChildren() int {
	return len(v.children)
}

// ChildAt returns the child at the given index.
func (v *View) ChildAt(index int) *View {
	return v.children[index]
}

// --- Disposal ---

// Dispose detaches the view, cancels every animation it scheduled and
// recursively disposes its children.
func (v *View) Dispose() {
	if v.disposed {
		return
	}
	if v.parent != nil {
		v.parent.Remove(v)
	}
	v.dispose()
}

func (v *View) dispose() {
	v.disposed = true
	for _, c := range v.children {
		c.parent = nil
		c.dispose()
	}
	v.children = nil
	v.parent = nil
	v.cancelAnimations()
	v.clickedNow = false
	v.bitmap = nil
	v.drawFn = nil
	v.content = nil
	v.UserData = nil
	v.OnPointerDown = nil
	v.OnPointerUp = nil
	v.OnPointerOver = nil
	v.OnWindowResized = nil
}

// IsDisposed reports whether Dispose has been called.
func (v *View) IsDisposed() bool {
	return v.disposed
}

// --- Helpers ---

// canAdopt rejects nil children and adds that would create a cycle.
func (v *View) canAdopt(child *View, op string) bool {
	if child == nil {
		logger.Warn("nil view ignored", "op", op, "parent", v.name)
		return false
	}
	if globalDebug {
		debugCheckDisposed(v, op+" (parent)")
		debugCheckDisposed(child, op+" (child)")
	}
	if isAncestor(child, v) {
		logger.Error("adding view would create a cycle", "op", op, "parent", v.name, "child", child.name)
		return false
	}
	return true
}

func (v *View) afterAdd(child *View) {
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(v)
		debugCheckSiblingNames(v)
	}
}

// detach removes v from its current parent, if any.
func (v *View) detach() {
	if v.parent != nil {
		v.parent.removeChildByPtr(v)
		v.parent = nil
	}
}

// isAncestor reports whether candidate is view or one of its ancestors.
func isAncestor(candidate, view *View) bool {
	for p := view; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

func (v *View) indexOf(child *View) int {
	if child == nil {
		return -1
	}
	for i, c := range v.children {
		if c == child {
			return i
		}
	}
	return -1
}

// removeChildByPtr removes child from v.children without clearing
// child.parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (v *View) removeChildByPtr(child *View) {
	i := v.indexOf(child)
	if i < 0 {
		return
	}
	copy(v.children[i:], v.children[i+1:])
	v.children[len(v.children)-1] = nil
	v.children = v.children[:len(v.children)-1]
}
