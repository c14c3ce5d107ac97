package canopy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// clickLog records which views received which callbacks, in order.
type clickLog struct {
	events []string
}

func (l *clickLog) watch(v *View) *View {
	v.OnPointerDown = func(e PointerEvent) { l.events = append(l.events, "down:"+e.View.Name()) }
	v.OnPointerUp = func(e PointerEvent) { l.events = append(l.events, "up:"+e.View.Name()) }
	v.OnPointerOver = func(e PointerEvent) { l.events = append(l.events, "over:"+e.View.Name()) }
	return v
}

func (l *clickLog) check(t *testing.T, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, l.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	l.events = nil
}

// overlapping builds root (0,0 200x200) with back (10,10 100x100) and front
// (50,50 100x100) overlapping in 50..110.
func overlapping(l *clickLog) (root, back, front *View) {
	root = l.watch(NewView(Settings{Name: "root", Frame: Rect{0, 0, 200, 200}}))
	back = l.watch(NewView(Settings{Name: "back", Frame: Rect{10, 10, 100, 100}}))
	front = l.watch(NewView(Settings{Name: "front", Frame: Rect{50, 50, 100, 100}}))
	root.Add(back)
	root.Add(front)
	return root, back, front
}

func TestPointerDownFrontMostWins(t *testing.T) {
	var l clickLog
	root, back, front := overlapping(&l)

	if !root.PointerDown(80, 80) {
		t.Error("PointerDown should report consumed")
	}
	l.check(t, "down:front")
	if !front.IsClickedNow() || back.IsClickedNow() || root.IsClickedNow() {
		t.Error("only front should latch")
	}
	if front.ClickedPoint() != (Vec2{80, 80}) {
		t.Errorf("ClickedPoint = %v", front.ClickedPoint())
	}
}

func TestPointerDownFallsThroughToParent(t *testing.T) {
	var l clickLog
	root, _, _ := overlapping(&l)

	root.PointerDown(180, 20)
	l.check(t, "down:root")

	root.PointerDown(20, 20)
	l.check(t, "down:back")
}

func TestPointerDownMiss(t *testing.T) {
	var l clickLog
	root, _, _ := overlapping(&l)
	if root.PointerDown(500, 500) {
		t.Error("miss should not be consumed")
	}
	l.check(t)
}

func TestEventTransparencyPassesThrough(t *testing.T) {
	var l clickLog
	root, back, front := overlapping(&l)
	front.SetEventTransparent(true)

	if !root.PointerDown(80, 80) {
		t.Error("back should still consume")
	}
	l.check(t, "down:front", "down:back")
	if !front.IsClickedNow() || !back.IsClickedNow() {
		t.Error("front and back should both latch")
	}

	back.SetEventTransparent(true)
	root.PointerUp(80, 80)
	l.check(t, "up:front", "up:back", "up:root")
}

func TestTransparentLeafOnlyReportsUnconsumed(t *testing.T) {
	v := NewView(Settings{Frame: Rect{0, 0, 10, 10}, EventTransparent: true})
	var fired bool
	v.OnPointerDown = func(PointerEvent) { fired = true }
	if v.PointerDown(5, 5) {
		t.Error("transparent view must not consume")
	}
	if !fired {
		t.Error("transparent view should still fire")
	}
}

func TestHiddenViewsAreSkipped(t *testing.T) {
	var l clickLog
	root, _, front := overlapping(&l)
	front.Hide()

	root.PointerDown(120, 120)
	l.check(t, "down:root")

	root.PointerDown(80, 80)
	l.check(t, "down:back")
}

func TestHiddenParentHidesSubtree(t *testing.T) {
	var l clickLog
	root, back, _ := overlapping(&l)
	child := l.watch(NewView(Settings{Name: "child", Frame: Rect{0, 0, 20, 20}}))
	back.Add(child)
	back.Hide()

	root.PointerDown(15, 15)
	l.check(t, "down:root")
}

func TestDisabledInteractionSkipsViewNotChildren(t *testing.T) {
	var l clickLog
	root, back, _ := overlapping(&l)
	child := l.watch(NewView(Settings{Name: "child", Frame: Rect{0, 0, 20, 20}}))
	back.Add(child)
	back.DisableUserInteraction()

	root.PointerDown(15, 15) // inside child (10..30)
	l.check(t, "down:child")

	root.PointerDown(40, 40) // inside back only
	l.check(t, "down:root")

	back.EnableUserInteraction()
	root.PointerDown(40, 40)
	l.check(t, "down:back")
}

func TestHitBoxExcludesMargin(t *testing.T) {
	v := NewView(Settings{Frame: Rect{0, 0, 100, 100}, Margin: NewMargin(10, 20, 30, 40)})
	// content box: x 40..80, y 10..70
	tests := []struct {
		x, y float64
		want bool
	}{
		{40, 10, true},
		{80, 70, true},
		{39, 50, false},
		{81, 50, false},
		{60, 9, false},
		{60, 71, false},
		{5, 5, false},
	}
	for _, tt := range tests {
		if got := v.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestNegativeContentHitsNothing(t *testing.T) {
	v := NewView(Settings{Frame: Rect{0, 0, 10, 10}, Margin: UniformMargin(8)})
	if v.Contains(8, 8) || v.PointerDown(8, 8) {
		t.Error("negative content box should contain nothing")
	}
}

func TestPointerUpAfterDragOutside(t *testing.T) {
	var l clickLog
	root, _, front := overlapping(&l)

	root.PointerDown(140, 140) // front only
	l.check(t, "down:front")

	root.PointerUp(190, 10) // outside front, inside root
	l.check(t, "up:front")
	if front.IsClickedNow() {
		t.Error("latch should clear on release")
	}
}

func TestPointerUpClearsAllLatches(t *testing.T) {
	var l clickLog
	root, back, front := overlapping(&l)
	front.SetEventTransparent(true)

	root.PointerDown(80, 80) // front (transparent) and back latch
	l.events = nil

	root.PointerUp(80, 80)
	if front.IsClickedNow() || back.IsClickedNow() || root.IsClickedNow() {
		t.Error("every latch should clear on release")
	}
}

func TestPointerUpWithoutPressInside(t *testing.T) {
	var l clickLog
	root, _, _ := overlapping(&l)
	root.PointerUp(20, 20)
	l.check(t, "up:back")
}

func TestPointerMoveVisitsAllContaining(t *testing.T) {
	var l clickLog
	root, _, _ := overlapping(&l)

	root.PointerMove(80, 80)
	l.check(t, "over:front", "over:back", "over:root")

	root.PointerMove(180, 180)
	l.check(t, "over:root")
}

func TestPointerEventCoordinates(t *testing.T) {
	root, _, leaf := nestedTree()
	var got PointerEvent
	leaf.OnPointerDown = func(e PointerEvent) { got = e }

	root.PointerDown(45, 60)

	want := PointerEvent{View: leaf, GlobalX: 45, GlobalY: 60, LocalX: 5, LocalY: 2, Inside: true}
	if got != want {
		t.Errorf("event = %+v, want %+v", got, want)
	}
}

func TestHitTest(t *testing.T) {
	var l clickLog
	root, back, front := overlapping(&l)

	if got := root.HitTest(80, 80); got != front {
		t.Errorf("HitTest(80,80) = %v, want front", got)
	}
	front.SetEventTransparent(true)
	if got := root.HitTest(80, 80); got != back {
		t.Errorf("HitTest with transparent front = %v, want back", got)
	}
	if got := root.HitTest(500, 500); got != nil {
		t.Errorf("HitTest miss = %v, want nil", got)
	}
	l.check(t) // HitTest fires nothing
}

func TestCallbackRemovingSiblingDuringDispatch(t *testing.T) {
	root := NewView(Settings{Name: "root", Frame: Rect{0, 0, 100, 100}})
	a := NewView(Settings{Name: "a", Frame: Rect{0, 0, 100, 100}})
	b := NewView(Settings{Name: "b", Frame: Rect{0, 0, 100, 100}, EventTransparent: true})
	root.Add(a)
	root.Add(b)
	b.OnPointerDown = func(PointerEvent) { root.RemoveChildren() }

	root.PointerDown(50, 50) // must not panic
}

func TestWindowResizedPropagates(t *testing.T) {
	root := NewView(Settings{Name: "root", Frame: Rect{20, 30, 100, 100}, Margin: UniformMargin(10)})
	child := NewView(Settings{Name: "child"})
	grand := NewView(Settings{Name: "grand"})
	root.Add(child)
	child.Add(grand)

	var order []string
	var childBounds, grandBounds Rect
	root.OnWindowResized = func(e ResizeEvent) {
		order = append(order, "root")
		if e.Bounds != (Rect{0, 0, 800, 600}) {
			t.Errorf("root bounds = %v", e.Bounds)
		}
		e.View.SetSize(e.Bounds.Width-40, e.Bounds.Height-60)
	}
	child.OnWindowResized = func(e ResizeEvent) {
		order = append(order, "child")
		childBounds = e.Bounds
		FitToParent(e)
	}
	grand.OnWindowResized = func(e ResizeEvent) {
		order = append(order, "grand")
		grandBounds = e.Bounds
	}

	root.WindowResized(800, 600)

	if diff := cmp.Diff([]string{"root", "child", "grand"}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	// child sees root's position and updated content size (760-20 x 540-20)
	if childBounds != (Rect{20, 30, 740, 520}) {
		t.Errorf("child bounds = %v", childBounds)
	}
	if grandBounds != (Rect{0, 0, 740, 520}) {
		t.Errorf("grand bounds = %v", grandBounds)
	}
}

type resizingContent struct {
	calls *[]string
}

func (c resizingContent) DrawContent(DrawContext) {}
func (c resizingContent) Resize(ResizeEvent)     { *c.calls = append(*c.calls, "content") }

func TestWindowResizedContentFirst(t *testing.T) {
	var calls []string
	v := NewCustomView(Settings{}, resizingContent{&calls})
	v.OnWindowResized = func(ResizeEvent) { calls = append(calls, "callback") }
	v.WindowResized(10, 10)
	if diff := cmp.Diff([]string{"content", "callback"}, calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}
