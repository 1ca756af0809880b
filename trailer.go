package hitch

import "math"

// Trailer is the movable body that couples to the truck. Its two coupler
// latches share one Latch joint and rotate in opposite directions.
type Trailer struct {
	Position Vec3
	Latch    Joint // [0, π/2]

	// latched is the docked+latched flag. Only the sequencer writes it.
	latched bool
}

// NewTrailer returns an unlatched trailer at cfg.TrailerStart.
func NewTrailer(cfg Config) *Trailer {
	return &Trailer{
		Position: cfg.TrailerStart,
		Latch:    NewJoint(0, math.Pi/2, cfg.LatchRate),
	}
}

// Latched reports whether the trailer is docked and its latches closed.
func (t *Trailer) Latched() bool { return t.latched }

// Box returns the world-space bounding box of the trailer.
func (t *Trailer) Box(cfg Config) Box {
	return cfg.TrailerBox.Translate(t.Position)
}

// BoxAt returns the bounding box the trailer would have at p.
func (t *Trailer) BoxAt(cfg Config, p Vec3) Box {
	return cfg.TrailerBox.Translate(p)
}

// LatchRotations returns the rotation for the left and right latch pivots.
// They mirror each other around the shared vertical axis.
func (t *Trailer) LatchRotations() (left, right float64) {
	return t.Latch.Value, -t.Latch.Value
}

func (t *Trailer) configure(cfg Config) {
	t.Latch = rebound(t.Latch, 0, math.Pi/2, cfg.LatchRate)
}
