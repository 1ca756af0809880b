package hitch

import (
	"go.uber.org/zap"
)

// EventSink is the interface for optional ECS integration. When set on a
// Session, every state transition is forwarded to it.
type EventSink interface {
	Emit(event TransitionEvent)
}

// TransitionEvent carries a state change for the ECS bridge.
type TransitionEvent struct {
	Tick     uint64
	From     State
	To       State
	Latched  bool
	Position Vec3
}

type transitionHandler struct {
	id uint32
	fn func(TransitionEvent)
}

type handlerRegistry struct {
	transition []transitionHandler
	nextID     uint32
}

// CallbackHandle allows removing a registered session callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.transition
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = transitionHandler{}
			h.reg.transition = s[:len(s)-1]
			return
		}
	}
}

// Session owns everything one coupling simulation mutates: the truck, the
// trailer, and the sequencer. It is driven from a single goroutine by calling
// Tick once per frame.
type Session struct {
	cfg       Config
	truck     *Truck
	trailer   *Trailer
	seq       *Sequencer
	tick      uint64
	lastOut   Output
	lastJoint JointDeltas

	handlers    handlerRegistry
	sink        EventSink
	log         *zap.Logger
	debug       bool
	injectQueue []Commands
}

// NewSession creates a session with the truck at the origin in robot form
// and the trailer parked at cfg.TrailerStart.
func NewSession(cfg Config) *Session {
	return &Session{
		cfg:     cfg,
		truck:   NewTruck(cfg),
		trailer: NewTrailer(cfg),
		seq:     NewSequencer(cfg),
		log:     zap.NewNop(),
	}
}

// Tick advances the simulation by dt seconds using the sampled commands.
// Queued injected commands take precedence over cmds.
//
// The truck snapshot used by the sequencer is taken before this tick's joint
// commands apply, so a truck leaving its folded form is noticed on the next
// tick.
func (s *Session) Tick(cmds Commands, dt float64) Output {
	if c, ok := s.popInjected(); ok {
		cmds = c
	}
	s.tick++

	snap := s.truck.Snapshot(s.cfg)
	if s.debug {
		s.debugCheck(snap)
	}

	out := s.seq.Update(s.trailer, Input{Commands: cmds, DT: dt, Truck: snap})

	// Joints freeze while the sequencer owns the trailer so the truck stays
	// dockable for the whole approach.
	if s.seq.State().ownsTrailer() || out.State.ownsTrailer() {
		s.lastJoint = JointDeltas{}
	} else {
		s.lastJoint = s.truck.Apply(cmds, dt)
	}
	s.lastOut = out

	if out.Rejected != RejectNone {
		s.log.Debug("command rejected",
			zap.Uint64("tick", s.tick),
			zap.Stringer("commands", cmds),
			zap.Stringer("reason", out.Rejected),
			zap.Stringer("state", out.State))
	}
	if out.Changed {
		s.emitTransition(out)
	}
	if s.debug {
		s.debugLog(cmds, dt, out)
	}
	return out
}

func (s *Session) emitTransition(out Output) {
	ev := TransitionEvent{
		Tick:     s.tick,
		From:     out.Transition.From,
		To:       out.Transition.To,
		Latched:  out.Latched,
		Position: s.trailer.Position,
	}
	s.log.Info("sequencer transition",
		zap.Uint64("tick", ev.Tick),
		zap.Stringer("from", ev.From),
		zap.Stringer("to", ev.To),
		zap.Bool("latched", ev.Latched))
	for _, h := range s.handlers.transition {
		h.fn(ev)
	}
	if s.sink != nil {
		s.sink.Emit(ev)
	}
}

// OnTransition registers fn to run after every state change.
func (s *Session) OnTransition(fn func(TransitionEvent)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.transition = append(s.handlers.transition, transitionHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers}
}

// SetEventSink sets the optional ECS bridge.
func (s *Session) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetLogger replaces the session logger. A nil logger disables logging.
func (s *Session) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.log = l
}

// SetDebugMode enables or disables debug mode. When enabled, contract
// violations (degenerate boxes, inverted joint ranges) panic and every tick
// is logged at debug level.
func (s *Session) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Reconfigure swaps the tunables, e.g. after a config file reload. Joint
// values and the sequencer state are kept.
func (s *Session) Reconfigure(cfg Config) {
	s.cfg = cfg
	s.truck.configure(cfg)
	s.trailer.configure(cfg)
	s.seq.SetConfig(cfg)
	s.log.Info("session reconfigured")
}

// Config returns the active tunables.
func (s *Session) Config() Config { return s.cfg }

// State returns the active sequencer state.
func (s *Session) State() State { return s.seq.State() }

// Truck returns the truck assembly. Callers may read it freely; writes
// outside Tick bypass the sequencer.
func (s *Session) Truck() *Truck { return s.truck }

// Trailer returns the trailer assembly.
func (s *Session) Trailer() *Trailer { return s.trailer }

// Sequencer returns the coupling sequencer.
func (s *Session) Sequencer() *Sequencer { return s.seq }

// Frame returns the number of ticks run so far.
func (s *Session) Frame() uint64 { return s.tick }

// LastOutput returns what the most recent tick produced.
func (s *Session) LastOutput() Output { return s.lastOut }

// LastJointDeltas returns how far each truck joint moved on the last tick.
func (s *Session) LastJointDeltas() JointDeltas { return s.lastJoint }
