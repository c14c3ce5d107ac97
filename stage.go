package canopy

// EntityStore is the interface for optional ECS integration.
// When set on a Stage, handled pointer events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
	// Resize fields (valid for EventWindowResize)
	Width  float64
	Height float64
}

// Stage is the top-level object a host drives once per frame. It owns the
// root view, the animation scheduler and the injected-input queue.
//
//	stage := canopy.NewStage(root)
//	// per frame:
//	stage.Update(now)
//	stage.Draw(renderer)
type Stage struct {
	root      *View
	scheduler *Scheduler
	store     EntityStore
	debug     bool

	width, height float64

	injectQueue     []syntheticPointerEvent
	pointerDown     bool
	script          *ScriptRunner
	screenshotQueue []string

	sink dispatchSink
}

// NewStage creates a stage around root. A nil root gets an empty view named
// "root".
func NewStage(root *View) *Stage {
	if root == nil {
		root = NewView(Settings{Name: "root"})
	}
	s := &Stage{
		root:      root,
		scheduler: NewScheduler(),
	}
	s.sink = s.emitInteractionEvent
	return s
}

// Root returns the root view.
func (s *Stage) Root() *View {
	return s.root
}

// Scheduler returns the stage's animation scheduler.
func (s *Stage) Scheduler() *Scheduler {
	return s.scheduler
}

// Update runs the script runner, consumes one injected pointer event and
// advances animations to now (seconds). Call it once per frame before Draw.
func (s *Stage) Update(now float64) {
	if s.script != nil {
		s.script.step(s)
	}
	s.processInjectedInput()
	s.scheduler.Advance(now)

	if s.debug {
		var st debugStats
		st.animations = s.scheduler.Len()
		countViews(s.root, &st)
		s.debugLog(st)
	}
}

// Draw renders the view tree.
func (s *Stage) Draw(r Renderer) {
	s.root.Draw(r)
}

// PointerDown dispatches a press at global (x, y) and reports whether a
// view consumed it.
func (s *Stage) PointerDown(x, y float64) bool {
	s.pointerDown = true
	return s.root.pointerDown(x, y, s.sink)
}

// PointerUp dispatches a release at global (x, y) and reports whether a
// view consumed it.
func (s *Stage) PointerUp(x, y float64) bool {
	s.pointerDown = false
	return s.root.pointerUp(x, y, s.sink)
}

// PointerMove dispatches a hover or drag at global (x, y).
func (s *Stage) PointerMove(x, y float64) {
	s.root.pointerMove(x, y, s.sink)
}

// IsPointerDown reports whether a press is in progress.
func (s *Stage) IsPointerDown() bool {
	return s.pointerDown
}

// Resize propagates a window resize through the tree. Repeated calls with
// an unchanged size are ignored.
func (s *Stage) Resize(width, height float64) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.root.WindowResized(width, height)
	if s.store != nil {
		s.store.EmitEvent(InteractionEvent{
			Type:     EventWindowResize,
			EntityID: s.root.EntityID,
			Width:    width,
			Height:   height,
		})
	}
}

// Size returns the last size passed to Resize.
func (s *Stage) Size() (width, height float64) {
	return s.width, s.height
}

// SetEntityStore sets the optional ECS bridge.
func (s *Stage) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, use of a
// disposed view is logged as an error, tree depth, child count and duplicate
// sibling names are reported, and per-frame stats are logged at debug level.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// SetScriptRunner attaches a ScriptRunner; it advances one step per Update.
func (s *Stage) SetScriptRunner(r *ScriptRunner) {
	s.script = r
}

// Screenshot queues a labeled screenshot request. canopy renders no pixels
// itself; the host drains the queue with TakeScreenshotRequests after
// drawing the frame.
func (s *Stage) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// TakeScreenshotRequests returns and clears the queued screenshot labels.
func (s *Stage) TakeScreenshotRequests() []string {
	if len(s.screenshotQueue) == 0 {
		return nil
	}
	labels := s.screenshotQueue
	s.screenshotQueue = nil
	return labels
}

// Dispose cancels every animation and disposes the tree.
func (s *Stage) Dispose() {
	s.scheduler.Clear()
	s.root.Dispose()
}

// --- ECS bridge ---

func (s *Stage) emitInteractionEvent(t EventType, e PointerEvent) {
	if s.store == nil || e.View == nil || e.View.EntityID == 0 {
		return
	}
	s.store.EmitEvent(InteractionEvent{
		Type:     t,
		EntityID: e.View.EntityID,
		GlobalX:  e.GlobalX,
		GlobalY:  e.GlobalY,
		LocalX:   e.LocalX,
		LocalY:   e.LocalY,
	})
}
