package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/hitch"
)

// TransitionEventType is the Donburi event type for sequencer transitions.
var TransitionEventType = events.NewEventType[hitch.TransitionEvent]()

// CouplingData is the latest known coupling state.
type CouplingData struct {
	State    hitch.State
	Latched  bool
	Position hitch.Vec3
	Tick     uint64
}

// Coupling is the component holding CouplingData on the sink's entity.
var Coupling = donburi.NewComponentType[CouplingData]()

// DonburiSink is a hitch.EventSink backed by a Donburi world.
type DonburiSink struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiSink creates a sink and its coupling entity in world.
// Transitions are published to TransitionEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{world: world, entity: world.Create(Coupling)}
}

// Entity returns the entity carrying the Coupling component.
func (s *DonburiSink) Entity() donburi.Entity { return s.entity }

// Emit implements hitch.EventSink.
func (s *DonburiSink) Emit(event hitch.TransitionEvent) {
	if entry := s.world.Entry(s.entity); entry.Valid() {
		Coupling.SetValue(entry, CouplingData{
			State:    event.To,
			Latched:  event.Latched,
			Position: event.Position,
			Tick:     event.Tick,
		})
	}
	TransitionEventType.Publish(s.world, event)
}
