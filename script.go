package hitch

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a command script.
type scriptStep struct {
	Action   string   `json:"action"`
	Commands []string `json:"commands,omitempty"`
	Ticks    int      `json:"ticks,omitempty"`
	State    string   `json:"state,omitempty"`
	Latched  *bool    `json:"latched,omitempty"`

	cmds  Commands
	state State
}

// script is the top-level JSON structure for a command script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected commands and state expectations across
// ticks, for replaying docking scenarios without a keyboard.
//
// Actions:
//
//	hold   {commands, ticks}  inject commands for ticks ticks
//	tap    {commands}         inject commands for one tick, then one empty tick
//	wait   {ticks}            let ticks ticks pass with sampled input
//	until  {state, ticks}     wait until the sequencer reaches state, failing after ticks
//	expect {state, latched}   fail unless the session matches right now
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	untilLeft int
	until     *scriptStep
	done      bool
	err       error
}

// LoadScript parses a JSON command script and returns a ScriptRunner ready
// to drive a Session.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i := range sc.Steps {
		st := &sc.Steps[i]
		switch st.Action {
		case "hold", "tap":
			c, err := ParseCommands(st.Commands)
			if err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
			st.cmds = c
		case "wait":
		case "until", "expect":
			if st.State == "" {
				if st.Action == "until" || st.Latched == nil {
					return nil, fmt.Errorf("parse script: step %d: %s needs a state", i, st.Action)
				}
				continue
			}
			s, err := ParseState(st.State)
			if err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
			st.state = s
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether the script has finished, successfully or not.
func (r *ScriptRunner) Done() bool { return r.done }

// Err returns the first failed expectation, if any.
func (r *ScriptRunner) Err() error { return r.err }

// Step advances the runner by one tick. Call it once per frame before
// Session.Tick.
func (r *ScriptRunner) Step(s *Session) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if s.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.until != nil {
		if s.State() != r.until.state {
			if r.untilLeft <= 0 {
				r.fail(fmt.Errorf("step %d: state %s not reached, still %s", r.cursor-1, r.until.state, s.State()))
				return
			}
			r.untilLeft--
			return
		}
		r.until = nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := &r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "hold":
		s.Inject(st.cmds, st.Ticks)
	case "tap":
		s.InjectTap(st.cmds)
	case "wait":
		if st.Ticks > 0 {
			r.waitCount = st.Ticks - 1 // this tick counts as one
		}
	case "until":
		if s.State() != st.state {
			r.until = st
			r.untilLeft = st.Ticks
		}
	case "expect":
		if err := r.check(s, st); err != nil {
			r.fail(fmt.Errorf("step %d: %w", r.cursor-1, err))
			return
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.until == nil && s.Pending() == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) check(s *Session, st *scriptStep) error {
	if st.State != "" && s.State() != st.state {
		return fmt.Errorf("state = %s, want %s", s.State(), st.state)
	}
	if st.Latched != nil && s.Trailer().Latched() != *st.Latched {
		return fmt.Errorf("latched = %v, want %v", s.Trailer().Latched(), *st.Latched)
	}
	return nil
}

func (r *ScriptRunner) fail(err error) {
	r.err = err
	r.done = true
}

// Run drives s with empty sampled input until the script finishes or
// maxTicks ticks have passed.
func (r *ScriptRunner) Run(s *Session, dt float64, maxTicks int) error {
	for i := 0; i < maxTicks; i++ {
		r.Step(s)
		if r.done {
			return r.err
		}
		s.Tick(0, dt)
	}
	return fmt.Errorf("script not finished after %d ticks", maxTicks)
}
