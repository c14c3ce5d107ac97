package canopy

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// script is the top-level structure of an input script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// validActions lists the recognised step actions.
var validActions = map[string]bool{
	"press":      true,
	"release":    true,
	"move":       true,
	"click":      true,
	"drag":       true,
	"resize":     true,
	"wait":       true,
	"screenshot": true,
}

// ScriptRunner sequences injected input and resizes across frames for
// automated testing and demos. Attach to a Stage via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML input script (JSON is accepted too, being a YAML
// subset) and returns a ScriptRunner.
//
//	steps:
//	  - {action: click, x: 100, y: 200}
//	  - {action: wait, frames: 3}
//	  - {action: drag, fromX: 0, fromY: 0, toX: 50, toY: 50, frames: 6}
//	  - {action: resize, width: 800, height: 600}
//	  - {action: screenshot, label: after-drag}
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range sc.Steps {
		if !validActions[st.Action] {
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Stage.Update.
func (r *ScriptRunner) step(s *Stage) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "press":
		s.InjectPress(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "resize":
		s.Resize(st.Width, st.Height)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
