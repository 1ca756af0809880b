package hitch

import (
	"errors"
	"fmt"
	"math"
)

// Config holds the tunables of a coupling session. Speeds are world units per
// second, rates are radians per second. Boxes are local to the assembly
// position and translated every tick.
type Config struct {
	// WorldBound limits the trailer position to [-WorldBound, WorldBound] on
	// the x and z axes.
	WorldBound float64 `yaml:"world_bound"`
	// Epsilon is the position tolerance used when checking whether the
	// trailer rests at docking depth for a relatch.
	Epsilon float64 `yaml:"epsilon"`
	// FoldTolerance is how close (radians) head, thighs and boots must be
	// to their folded extreme for the truck to count as dockable.
	FoldTolerance float64 `yaml:"fold_tolerance"`

	TrailerSpeed float64 `yaml:"trailer_speed"`
	DockSpeed    float64 `yaml:"dock_speed"`
	LatchRate    float64 `yaml:"latch_rate"`
	JointRate    float64 `yaml:"joint_rate"`
	ArmRate      float64 `yaml:"arm_rate"`
	ArmTravel    float64 `yaml:"arm_travel"`

	TrailerStart     Vec3 `yaml:"trailer_start"`
	RendezvousOffset Vec3 `yaml:"rendezvous_offset"`
	DockOffset       Vec3 `yaml:"dock_offset"`

	RobotBox   Box `yaml:"robot_box"`
	TruckBox   Box `yaml:"truck_box"`
	TrailerBox Box `yaml:"trailer_box"`
}

// DefaultConfig returns the dimensions of the classroom robot truck: a
// 240-wide torso with 320-tall legs, and a 240x280x1160 trailer parked behind
// and to the side of it.
func DefaultConfig() Config {
	return Config{
		WorldBound:    2000,
		Epsilon:       1e-6,
		FoldTolerance: 0.02,

		TrailerSpeed: 400,
		DockSpeed:    300,
		LatchRate:    1.5,
		JointRate:    1.2,
		ArmRate:      80,
		ArmTravel:    80,

		TrailerStart:     Vec3{X: 600, Y: 0, Z: -1400},
		RendezvousOffset: Vec3{X: 0, Y: 0, Z: -1500},
		DockOffset:       Vec3{X: 0, Y: 0, Z: -1160},

		RobotBox:   Box{Min: Vec3{-200, -720, -160}, Max: Vec3{200, 200, 160}},
		TruckBox:   Box{Min: Vec3{-200, -400, -640}, Max: Vec3{200, 80, 160}},
		TrailerBox: Box{Min: Vec3{-120, -300, -580}, Max: Vec3{120, 140, 580}},
	}
}

// Validate reports every tunable that would break the sequencer, joined
// into one error.
func (c Config) Validate() error {
	var errs []error
	positive := []struct {
		name string
		v    float64
	}{
		{"world_bound", c.WorldBound},
		{"trailer_speed", c.TrailerSpeed},
		{"dock_speed", c.DockSpeed},
		{"latch_rate", c.LatchRate},
		{"joint_rate", c.JointRate},
		{"arm_rate", c.ArmRate},
		{"arm_travel", c.ArmTravel},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.v))
		}
	}
	if c.Epsilon < 0 || c.FoldTolerance < 0 {
		errs = append(errs, errors.New("epsilon and fold_tolerance must not be negative"))
	}
	boxes := []struct {
		name string
		b    Box
	}{
		{"robot_box", c.RobotBox},
		{"truck_box", c.TruckBox},
		{"trailer_box", c.TrailerBox},
	}
	for _, b := range boxes {
		if !b.b.Valid() {
			errs = append(errs, fmt.Errorf("%s: min exceeds max", b.name))
		}
	}
	if math.Abs(c.TrailerStart.X) > c.WorldBound || math.Abs(c.TrailerStart.Z) > c.WorldBound {
		errs = append(errs, errors.New("trailer_start lies outside world_bound"))
	}
	// The truck rests at the origin, so both docking targets are offsets from it.
	targets := []struct {
		name string
		v    Vec3
	}{
		{"rendezvous_offset", c.RendezvousOffset},
		{"dock_offset", c.DockOffset},
	}
	for _, p := range targets {
		if math.Abs(p.v.X) > c.WorldBound || math.Abs(p.v.Z) > c.WorldBound {
			errs = append(errs, fmt.Errorf("%s lies outside world_bound", p.name))
		}
	}
	return errors.Join(errs...)
}
