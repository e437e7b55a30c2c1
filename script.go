package scrollkit

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a scroll script.
type scriptStep struct {
	Action string  `json:"action"`
	To     float64 `json:"to,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scrollScript is the top-level JSON structure for a scroll script.
type scrollScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON scroll script against a SimViewport, one step
// per frame, for deterministic multi-frame scenarios in demos and tests.
// Call Step once per frame before Scheduler.Tick.
//
// Supported actions:
//
//	{"action": "scroll", "to": 480}    set the scroll offset
//	{"action": "wait", "frames": 3}    hold the current offset for N frames
type ScriptRunner struct {
	viewport  *SimViewport
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON scroll script bound to the given viewport.
func LoadScript(jsonData []byte, viewport *SimViewport) (*ScriptRunner, error) {
	var script scrollScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("scrollkit: parse scroll script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("scrollkit: parse scroll script: no steps")
	}
	return &ScriptRunner{viewport: viewport, steps: script.Steps}, nil
}

// Done reports whether every step in the script has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame, mutating the bound viewport.
func (r *ScriptRunner) Step() {
	if r.done {
		return
	}
	// Count down wait frames before advancing the cursor.
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
	case "scroll":
		r.viewport.Top = st.To
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
