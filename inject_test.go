package canopy

import "testing"

func TestInjectClick(t *testing.T) {
	root := NewViewRect(0, 0, 100, 100)
	var l clickLog
	l.watch(root)
	s := NewStage(root)

	s.InjectClick(50, 50)
	if s.PendingInput() != 2 {
		t.Fatalf("PendingInput = %d, want 2", s.PendingInput())
	}

	s.Update(0)
	if s.PendingInput() != 1 {
		t.Fatalf("PendingInput after frame 1 = %d, want 1", s.PendingInput())
	}
	if !s.IsPointerDown() {
		t.Error("pointer should be down after the press frame")
	}

	s.Update(0)
	if s.PendingInput() != 0 || s.IsPointerDown() {
		t.Error("release should drain the queue and lift the pointer")
	}
	name := root.Name()
	l.check(t, "down:"+name, "up:"+name)
}

func TestInjectDragInterpolates(t *testing.T) {
	s := NewStage(nil)
	s.InjectDrag(0, 0, 30, 60, 5)

	// press, frames-2 moves, release
	if len(s.injectQueue) != 5 {
		t.Fatalf("queue len = %d, want 5", len(s.injectQueue))
	}
	q := s.injectQueue
	if q[0].action != pointerPress || q[4].action != pointerRelease {
		t.Errorf("endpoints = %v / %v", q[0], q[4])
	}
	for i, wantX := range []float64{7.5, 15, 22.5} {
		if e := q[i+1]; e.action != pointerMove || e.x != wantX || e.y != wantX*2 {
			t.Errorf("move %d = %+v, want x=%v", i, e, wantX)
		}
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	s := NewStage(nil)
	s.InjectDrag(0, 0, 10, 10, 0)
	if s.PendingInput() != 2 {
		t.Errorf("PendingInput = %d, want 2", s.PendingInput())
	}
}

func TestInjectedInputOnePerUpdate(t *testing.T) {
	root := NewViewRect(0, 0, 100, 100)
	var moves int
	root.OnPointerOver = func(PointerEvent) { moves++ }
	s := NewStage(root)

	s.InjectMove(1, 1)
	s.InjectMove(2, 2)
	s.InjectMove(3, 3)
	for i := 1; i <= 3; i++ {
		s.Update(0)
		if moves != i {
			t.Fatalf("after %d updates moves = %d", i, moves)
		}
	}
	if s.processInjectedInput() {
		t.Error("empty queue should report no event")
	}
}
