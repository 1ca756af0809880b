// Package ecs provides ECS adapters for hitch sessions.
//
// The primary adapter is [NewDonburiSink], which forwards coupling sequencer
// transitions into a [Donburi] world as typed events and mirrors the latest
// state onto a coupling entity. Subscribe to [TransitionEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	session.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
