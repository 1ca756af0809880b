package ecs

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/hitch"
)

var _ hitch.EventSink = (*DonburiSink)(nil)

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []hitch.TransitionEvent
	TransitionEventType.Subscribe(world, func(w donburi.World, e hitch.TransitionEvent) {
		received = append(received, e)
	})

	sink.Emit(hitch.TransitionEvent{Tick: 4, From: hitch.StateIdle, To: hitch.StateApproachingDock})
	sink.Emit(hitch.TransitionEvent{Tick: 30, From: hitch.StateLatching, To: hitch.StateIdle, Latched: true})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	TransitionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].To != hitch.StateApproachingDock || received[0].Tick != 4 {
		t.Errorf("event 0: %+v", received[0])
	}
	if !received[1].Latched {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_UpdatesCouplingComponent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	sink.Emit(hitch.TransitionEvent{Tick: 9, To: hitch.StateLatching, Position: hitch.Vec3{Z: -1160}})

	entry := world.Entry(sink.Entity())
	got := Coupling.Get(entry)
	if got.State != hitch.StateLatching || got.Tick != 9 || got.Position.Z != -1160 {
		t.Errorf("coupling = %+v", *got)
	}
}

func TestDonburiSink_SessionDocking(t *testing.T) {
	world := donburi.NewWorld()
	s := hitch.NewSession(hitch.DefaultConfig())
	s.Truck().Fold()
	s.Trailer().Position = hitch.Vec3{Z: -1400}
	sink := NewDonburiSink(world)
	s.SetEventSink(sink)

	var count int
	TransitionEventType.Subscribe(world, func(w donburi.World, e hitch.TransitionEvent) {
		count++
	})
	for i := 0; i < 600 && !s.Trailer().Latched(); i++ {
		s.Tick(hitch.MoveForward, 1.0/60)
	}
	events.ProcessAllEvents(world)

	if count != 4 {
		t.Errorf("transitions = %d, want 4", count)
	}
	got := Coupling.Get(world.Entry(sink.Entity()))
	if got.State != hitch.StateIdle || !got.Latched {
		t.Errorf("coupling = %+v, want idle and latched", *got)
	}
}
