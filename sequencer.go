package hitch

import (
	"fmt"
	"math"
)

// State is the control state of the coupling sequencer. Exactly one state is
// active at a time.
type State uint8

const (
	StateIdle            State = iota // trailer follows movement commands
	StateApproachingDock              // trailer moving to the rendezvous point
	StateAdvancing                    // trailer moving forward to docking depth
	StateLatching                     // latches closing
	StateUnlatching                   // latches opening after the truck unfolded
)

var stateNames = [...]string{
	StateIdle:            "idle",
	StateApproachingDock: "approaching_dock",
	StateAdvancing:       "advancing",
	StateLatching:        "latching",
	StateUnlatching:      "unlatching",
}

// String returns the snake_case name of the state.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// ParseState is the inverse of State.String.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return 0, fmt.Errorf("unknown state %q", name)
}

// ownsTrailer reports whether the sequencer drives the trailer exclusively.
func (s State) ownsTrailer() bool {
	return s == StateApproachingDock || s == StateAdvancing || s == StateLatching
}

// Transition records a state change observed at the end of a tick.
type Transition struct {
	From, To State
}

// Rejection explains why an idle movement command was dropped.
type Rejection uint8

const (
	RejectNone      Rejection = iota
	RejectBounds              // candidate position outside the world bound
	RejectCollision           // would run into a truck that is not dockable
	RejectBusy                // movement while the sequencer owns the trailer or the trailer is latched
)

// String returns a short label for logs.
func (r Rejection) String() string {
	switch r {
	case RejectBounds:
		return "bounds"
	case RejectCollision:
		return "collision"
	case RejectBusy:
		return "busy"
	default:
		return "none"
	}
}

// Input is everything the sequencer reads during one tick.
type Input struct {
	Commands Commands
	DT       float64
	Truck    TruckSnapshot
}

// Output is what one tick wrote: the trailer translation, the latch rotation
// (apply +LatchDelta to the left pivot and -LatchDelta to the right one), and
// the transition if the state changed.
type Output struct {
	State        State
	Latched      bool
	TrailerDelta Vec3
	LatchDelta   float64
	Transition   Transition
	Changed      bool
	Rejected     Rejection
}

// Sequencer drives a trailer from free movement to docked and latched, and
// back. It never returns errors: commands that are not allowed in the current
// state are ignored.
type Sequencer struct {
	cfg   Config
	state State
}

// NewSequencer returns a sequencer in StateIdle.
func NewSequencer(cfg Config) *Sequencer {
	return &Sequencer{cfg: cfg}
}

// State returns the active state.
func (s *Sequencer) State() State { return s.state }

// SetConfig swaps the tunables. The active state is kept.
func (s *Sequencer) SetConfig(cfg Config) { s.cfg = cfg }

// RendezvousPoint returns where the trailer lines up behind the truck.
func (s *Sequencer) RendezvousPoint(truck Vec3) Vec3 {
	return truck.Add(s.cfg.RendezvousOffset)
}

// DockPoint returns the trailer position at docking depth.
func (s *Sequencer) DockPoint(truck Vec3) Vec3 {
	return truck.Add(s.cfg.DockOffset)
}

// Update runs one tick against tr and reports what changed.
func (s *Sequencer) Update(tr *Trailer, in Input) Output {
	from := s.state
	prevPos := tr.Position
	prevLatch := tr.Latch.Value

	var out Output
	if in.Commands.Has(Reset) {
		s.reset(tr)
	} else {
		switch s.state {
		case StateIdle:
			out.Rejected = s.updateIdle(tr, in)
		case StateApproachingDock:
			out.Rejected = busyIfMoving(in.Commands)
			target := s.RendezvousPoint(in.Truck.Position)
			tr.Position = stepToward(tr.Position, target, s.cfg.DockSpeed, in.DT)
			if tr.Position == target {
				s.state = StateAdvancing
			}
		case StateAdvancing:
			out.Rejected = busyIfMoving(in.Commands)
			target := s.DockPoint(in.Truck.Position)
			tr.Position = stepToward(tr.Position, target, s.cfg.DockSpeed, in.DT)
			if tr.Position == target {
				s.state = StateLatching
			}
		case StateLatching:
			out.Rejected = busyIfMoving(in.Commands)
			tr.Latch.Step(1, in.DT)
			if tr.Latch.Value == tr.Latch.Max {
				tr.latched = true
				s.state = StateIdle
			}
		case StateUnlatching:
			out.Rejected = busyIfMoving(in.Commands)
			tr.Latch.Step(-1, in.DT)
			if tr.Latch.Value == tr.Latch.Min {
				tr.latched = false
				s.state = StateIdle
			}
		}
	}

	out.State = s.state
	out.Latched = tr.latched
	out.TrailerDelta = tr.Position.Sub(prevPos)
	out.LatchDelta = tr.Latch.Value - prevLatch
	if s.state != from {
		out.Transition = Transition{From: from, To: s.state}
		out.Changed = true
	}
	return out
}

// reset is the escape hatch: back to idle with the latches snapped open,
// skipping the unlatch animation. The trailer stays where it is.
func (s *Sequencer) reset(tr *Trailer) {
	tr.Latch.Reset()
	tr.latched = false
	s.state = StateIdle
}

func (s *Sequencer) updateIdle(tr *Trailer, in Input) Rejection {
	if tr.latched {
		if !in.Truck.Dockable {
			s.state = StateUnlatching
		}
		return busyIfMoving(in.Commands)
	}

	if in.Commands.Has(Relatch) && in.Truck.Dockable &&
		nearlyEqual(tr.Position, s.DockPoint(in.Truck.Position), s.cfg.Epsilon) {
		s.state = StateLatching
		return RejectNone
	}

	dir := in.Commands.moveVector()
	if dir == (Vec3{}) {
		return RejectNone
	}
	cand := tr.Position.Add(dir.Scale(s.cfg.TrailerSpeed * in.DT))
	if math.Abs(cand.X) > s.cfg.WorldBound || math.Abs(cand.Z) > s.cfg.WorldBound {
		return RejectBounds
	}

	// A trailer already inside the truck box may only move to shrink the
	// overlap. Any other move into the box docks or is refused.
	cur := tr.Box(s.cfg)
	next := tr.BoxAt(s.cfg, cand)
	if Overlaps(next, in.Truck.Box) &&
		(!Overlaps(cur, in.Truck.Box) || Intersection(next, in.Truck.Box) >= Intersection(cur, in.Truck.Box)) {
		if !in.Truck.Dockable {
			return RejectCollision
		}
		s.state = StateApproachingDock
		return RejectNone
	}
	tr.Position = cand
	return RejectNone
}

func busyIfMoving(c Commands) Rejection {
	if c.Any(MoveMask) {
		return RejectBusy
	}
	return RejectNone
}

// stepToward moves p toward target by at most speed*dt on each axis
// independently, landing exactly on target.
func stepToward(p, target Vec3, speed, dt float64) Vec3 {
	return Vec3{
		X: approach(p.X, target.X, speed, dt),
		Y: approach(p.Y, target.Y, speed, dt),
		Z: approach(p.Z, target.Z, speed, dt),
	}
}

func approach(cur, target, speed, dt float64) float64 {
	switch {
	case cur < target:
		return Advance(cur, speed, dt, cur, target)
	case cur > target:
		return Advance(cur, -speed, dt, target, cur)
	default:
		return cur
	}
}
