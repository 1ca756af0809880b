package hitch

import (
	"fmt"

	"go.uber.org/zap"
)

// debugCheckJoint panics when a joint's clamp range is inverted. Advance
// itself does not check, so the session checks every joint it owns.
func debugCheckJoint(j Joint, owner string) {
	if j.Min > j.Max {
		panic(fmt.Sprintf("hitch debug: %s joint min %v > max %v", owner, j.Min, j.Max))
	}
}

// debugCheckBox panics with a descriptive message when a degenerate box is
// about to enter a collision test.
func debugCheckBox(b Box, owner string) {
	if !b.Valid() {
		panic(fmt.Sprintf("hitch debug: degenerate %s box min=%v max=%v", owner, b.Min, b.Max))
	}
}

// debugCheck runs the contract checks for one tick.
func (s *Session) debugCheck(snap TruckSnapshot) {
	debugCheckBox(snap.Box, "truck")
	debugCheckBox(s.trailer.Box(s.cfg), "trailer")
	debugCheckJoint(s.truck.Head, "head")
	debugCheckJoint(s.truck.Arms, "arms")
	debugCheckJoint(s.truck.Thighs, "thighs")
	debugCheckJoint(s.truck.Boots, "boots")
	debugCheckJoint(s.trailer.Latch, "latch")
}

// debugLog writes one line per tick describing the sequencer output.
func (s *Session) debugLog(cmds Commands, dt float64, out Output) {
	s.log.Debug("tick",
		zap.Uint64("tick", s.tick),
		zap.Float64("dt", dt),
		zap.Stringer("commands", cmds),
		zap.Stringer("state", out.State),
		zap.Bool("latched", out.Latched),
		zap.Float64("latch", s.trailer.Latch.Value),
		zap.Float64("x", s.trailer.Position.X),
		zap.Float64("z", s.trailer.Position.Z))
}
