package canopy

// globalDebug mirrors the most recently set Stage debug flag so that view
// operations (which lack a Stage pointer) can check it cheaply. Only valid
// with a single Stage; multiple Stages with differing debug modes reflect
// whichever called SetDebugMode last.
var globalDebug bool

// debugCheckDisposed logs an error when a disposed view is used in a tree
// operation. Only called in debug mode; the operation itself is not blocked.
func debugCheckDisposed(v *View, op string) {
	if v.disposed {
		logger.Error("operation on disposed view", "op", op, "view", v.name, "id", v.ID)
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(v *View) {
	depth := 0
	for p := v; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "view", v.name)
	}
}

// debugCheckChildCount warns if a view has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(v *View) {
	if len(v.children) > debugMaxChildCount {
		logger.Warn("child count exceeds threshold",
			"view", v.name, "children", len(v.children), "threshold", debugMaxChildCount)
	}
}

// debugCheckSiblingNames warns when two direct children share a name, which
// makes Find and RemoveNamed ambiguous.
func debugCheckSiblingNames(v *View) {
	seen := make(map[string]struct{}, len(v.children))
	for _, c := range v.children {
		if _, dup := seen[c.name]; dup {
			logger.Warn("duplicate sibling name", "parent", v.name, "name", c.name)
			continue
		}
		seen[c.name] = struct{}{}
	}
}

// debugStats holds per-frame counters. Only populated in debug mode.
type debugStats struct {
	animations int
	views      int
	visible    int
}

func countViews(v *View, st *debugStats) {
	st.views++
	if v.visible {
		st.visible++
	}
	for _, c := range v.children {
		countViews(c, st)
	}
}

// debugLog reports per-frame stats at debug level.
func (s *Stage) debugLog(st debugStats) {
	if !s.debug {
		return
	}
	logger.Debug("frame",
		"views", st.views, "visible", st.visible, "animations", st.animations)
}
