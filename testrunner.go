package runes

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string  `json:"action"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Node    string  `json:"node,omitempty"`
	Menu    string  `json:"menu,omitempty"`
	Enabled bool    `json:"enabled,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected clicks, waits and spiral toggles across
// frames for automated runs. Attach to a Scene via SetTestRunner.
//
// Supported actions:
//
//	{"action": "click", "x": 320, "y": 240}
//	{"action": "clickNode", "node": "fire"}
//	{"action": "spiral", "menu": "spells", "enabled": true}
//	{"action": "wait", "frames": 30}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "wait":
		case "clickNode":
			if st.Node == "" {
				return nil, fmt.Errorf("parse test script: step %d: clickNode needs a node", i)
			}
		case "spiral":
			if st.Menu == "" {
				return nil, fmt.Errorf("parse test script: step %d: spiral needs a menu", i)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before input processing each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
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
	case "click":
		s.InjectClick(st.X, st.Y)
	case "clickNode":
		if n := s.findNode(st.Node); n != nil {
			s.InjectClickNode(n)
		}
	case "spiral":
		if m := s.Menu(st.Menu); m != nil {
			m.ToggleSpiralMode(st.Enabled)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

// findNode returns the last node added with the given name, which is the one
// drawn on top among equal ZIndex.
func (s *Scene) findNode(name string) *Node {
	for i := len(s.nodes) - 1; i >= 0; i-- {
		if s.nodes[i].Name == name {
			return s.nodes[i]
		}
	}
	return nil
}
