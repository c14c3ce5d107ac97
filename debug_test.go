package canopy

import (
	"strings"
	"testing"
)

func TestDebugModeDisposedViewLogged(t *testing.T) {
	logs := captureLogs(t)
	s := NewStage(nil)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	child := named("child")
	child.Dispose()
	s.Root().Add(child)

	out := logs.String()
	if !strings.Contains(out, "operation on disposed view") || !strings.Contains(out, "child") {
		t.Errorf("expected disposed-view error, got:\n%s", out)
	}
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("disposed-view report not at error level:\n%s", out)
	}
}

func TestDebugModeAnimateDisposedLogged(t *testing.T) {
	logs := captureLogs(t)
	s := NewStage(nil)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	v := named("gone")
	v.Dispose()
	if label := v.FadeIn(s.Scheduler(), 1, nil); label != "" {
		t.Errorf("FadeIn on disposed view = %q, want empty label", label)
	}
	if s.Scheduler().Len() != 0 {
		t.Errorf("Scheduler().Len() = %d, want 0", s.Scheduler().Len())
	}
	if !strings.Contains(logs.String(), "op=animate") {
		t.Errorf("expected animate error, got:\n%s", logs.String())
	}
}

func TestDisposedAddWithoutDebug(t *testing.T) {
	root := named("root")
	child := named("child")
	child.Dispose()
	root.Add(child) // allowed outside debug mode
	if root.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", root.NumChildren())
	}
}

func TestDebugDuplicateSiblingNames(t *testing.T) {
	logs := captureLogs(t)
	s := NewStage(nil)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	s.Root().Add(named("twin"))
	s.Root().Add(named("twin"))

	if !strings.Contains(logs.String(), "duplicate sibling name") {
		t.Errorf("expected duplicate name warning, got:\n%s", logs.String())
	}
}

func TestDebugTreeDepth(t *testing.T) {
	logs := captureLogs(t)
	s := NewStage(nil)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := s.Root()
	for i := 0; i < debugMaxTreeDepth+1; i++ {
		c := NewView(Settings{})
		parent.Add(c)
		parent = c
	}
	if !strings.Contains(logs.String(), "tree depth exceeds threshold") {
		t.Errorf("expected depth warning, got:\n%s", logs.String())
	}
}

func TestDebugFrameStats(t *testing.T) {
	logs := captureLogs(t)
	s := NewStage(nil)
	s.Root().Add(NewView(Settings{Hidden: true}))
	s.Scheduler().Add(nil, 5)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	s.Update(1)
	out := logs.String()
	for _, want := range []string{"views=2", "visible=1", "animations=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame stats missing %q:\n%s", want, out)
		}
	}
}

func TestCountViews(t *testing.T) {
	root, _, _ := nestedTree()
	root.Add(NewView(Settings{Hidden: true}))
	var st debugStats
	countViews(root, &st)
	if st.views != 4 || st.visible != 3 {
		t.Errorf("stats = %+v, want 4 views 3 visible", st)
	}
}

func TestRejectedAddsAreLogged(t *testing.T) {
	logs := captureLogs(t)
	root := named("root")
	root.Add(nil)
	root.Add(root)
	root.InsertBefore(named("x"), named("stranger"))
	named("orphan").RemoveFromParent()

	out := logs.String()
	for _, want := range []string{"nil view ignored", "would create a cycle", "insert target not found", "RemoveFromParent"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	captureLogs(t)
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() is nil")
	}
}
