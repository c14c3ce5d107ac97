package canopy

// pointerAction is the kind of a synthetic pointer event.
type pointerAction uint8

const (
	pointerPress pointerAction = iota
	pointerMove
	pointerRelease
)

// syntheticPointerEvent represents a single injected pointer event in global
// coordinates.
type syntheticPointerEvent struct {
	x, y   float64
	action pointerAction
}

// InjectPress queues a pointer press at (x, y). The event is consumed on the
// next Update.
func (s *Stage) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, action: pointerPress})
}

// InjectMove queues a pointer move at (x, y).
func (s *Stage) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, action: pointerMove})
}

// InjectRelease queues a pointer release at (x, y).
func (s *Stage) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, action: pointerRelease})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (s *Stage) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (s *Stage) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// PendingInput returns the number of queued synthetic events.
func (s *Stage) PendingInput() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the queue and dispatches it.
// Returns true if an event was consumed.
func (s *Stage) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.action {
	case pointerPress:
		s.PointerDown(evt.x, evt.y)
	case pointerMove:
		s.PointerMove(evt.x, evt.y)
	case pointerRelease:
		s.PointerUp(evt.x, evt.y)
	}
	return true
}
