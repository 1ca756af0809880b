// Package hitch couples a trailer to a transforming robot truck.
//
// It is the simulation half of a retained-mode scene: the rendering layer owns
// meshes, cameras and the frame loop, and calls [Session.Tick] once per frame
// with the commands sampled from the keyboard and the elapsed time. Hitch
// answers with how far the trailer moved and how far its latches rotated.
//
// # Quick start
//
//	s := hitch.NewSession(hitch.DefaultConfig())
//	for running {
//		out := s.Tick(readCommands(), dt)
//		trailerNode.Translate(out.TrailerDelta)
//		leftLatch.Rotate(out.LatchDelta)
//		rightLatch.Rotate(-out.LatchDelta)
//	}
//
// # Coupling
//
// The [Sequencer] moves through five states. In [StateIdle] the trailer
// follows movement commands, except that moves leaving the world bound or
// running into a truck still in robot form are dropped. Driving into a truck
// whose head, thighs and boots are folded starts docking: the trailer lines
// up behind the truck ([StateApproachingDock]), slides forward to docking
// depth ([StateAdvancing]) and closes its latches ([StateLatching]). While
// docking runs, movement and joint commands are ignored. Unfolding a latched
// truck opens the latches again ([StateUnlatching]). The [Reset] command
// drops everything back to idle in a single tick.
//
// # Joints
//
// Every animated value, from the head fold to the latch angle, goes through
// [Advance], which steps toward a bound and lands on it exactly.
//
// # Scripts
//
// [LoadScript] reads a JSON list of hold/tap/wait/until/expect steps and
// replays it through [Session.Inject], which is how the docking scenarios are
// tested and how the demo binary runs unattended.
package hitch
