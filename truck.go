package hitch

import "math"

// Truck is the transforming robot/truck assembly. Only the joints that change
// its footprint are modeled; meshes live in the rendering layer.
type Truck struct {
	Position Vec3

	Head   Joint // fold angle, [0, π]
	Arms   Joint // outward slide, [0, ArmTravel]
	Thighs Joint // fold angle, [0, π/2]
	Boots  Joint // fold angle, [0, π/2]
}

// NewTruck returns a truck at the origin in robot form.
func NewTruck(cfg Config) *Truck {
	t := &Truck{}
	t.configure(cfg)
	return t
}

// configure resets bounds and rates from cfg, keeping joint values clamped.
func (t *Truck) configure(cfg Config) {
	t.Head = rebound(t.Head, 0, math.Pi, cfg.JointRate)
	t.Arms = rebound(t.Arms, 0, cfg.ArmTravel, cfg.ArmRate)
	t.Thighs = rebound(t.Thighs, 0, math.Pi/2, cfg.JointRate)
	t.Boots = rebound(t.Boots, 0, math.Pi/2, cfg.JointRate)
}

func rebound(j Joint, min, max, rate float64) Joint {
	return Joint{Value: math.Max(min, math.Min(j.Value, max)), Min: min, Max: max, Rate: rate}
}

// IsDockable reports whether head, thighs and boots all sit within tol of
// their folded extreme. Arm position does not matter.
func (t *Truck) IsDockable(tol float64) bool {
	return t.Head.AtMax(tol) && t.Thighs.AtMax(tol) && t.Boots.AtMax(tol)
}

// Form returns FormTruck when the truck is dockable, FormRobot otherwise.
func (t *Truck) Form(tol float64) Form {
	if t.IsDockable(tol) {
		return FormTruck
	}
	return FormRobot
}

// Box returns the world-space bounding box for the current form.
func (t *Truck) Box(cfg Config) Box {
	local := cfg.RobotBox
	if t.IsDockable(cfg.FoldTolerance) {
		local = cfg.TruckBox
	}
	return local.Translate(t.Position)
}

// Fold snaps every footprint joint to its folded extreme. Arms are left in.
func (t *Truck) Fold() {
	t.Head.Value = t.Head.Max
	t.Thighs.Value = t.Thighs.Max
	t.Boots.Value = t.Boots.Max
}

// JointDeltas reports how far each joint moved during one Apply call.
type JointDeltas struct {
	Head, Arms, Thighs, Boots float64
}

// Apply steps every joint whose command pair is held. Opposing commands
// cancel.
func (t *Truck) Apply(c Commands, dt float64) JointDeltas {
	return JointDeltas{
		Head:   t.Head.Step(direction(c, HeadUp, HeadDown), dt),
		Arms:   t.Arms.Step(direction(c, ArmsOut, ArmsIn), dt),
		Thighs: t.Thighs.Step(direction(c, ThighsUp, ThighsDown), dt),
		Boots:  t.Boots.Step(direction(c, BootsUp, BootsDown), dt),
	}
}

// TruckSnapshot is the read-only view of the truck the sequencer consumes.
// It is taken once per tick before any joint moves.
type TruckSnapshot struct {
	Position Vec3
	Dockable bool
	Box      Box
}

// Snapshot captures position, dockability and bounding box.
func (t *Truck) Snapshot(cfg Config) TruckSnapshot {
	return TruckSnapshot{
		Position: t.Position,
		Dockable: t.IsDockable(cfg.FoldTolerance),
		Box:      t.Box(cfg),
	}
}
