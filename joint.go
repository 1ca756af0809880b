package hitch

import "math"

// Advance moves current by rate*dt toward the bound the rate points at and
// clamps there. A positive rate stops exactly at max, a negative rate exactly
// at min, so repeated calls at a bound return the bound unchanged.
//
// min > max is a caller bug and the result is unspecified. Sessions in debug
// mode panic on inverted joint ranges before any joint is advanced.
func Advance(current, rate, dt, min, max float64) float64 {
	next := current + rate*dt
	switch {
	case rate > 0:
		return math.Min(next, max)
	case rate < 0:
		return math.Max(next, min)
	default:
		return current
	}
}

// Joint is a rotation angle or linear offset confined to [Min, Max] and
// advanced at a fixed Rate (units per second).
type Joint struct {
	Value float64
	Min   float64
	Max   float64
	Rate  float64
}

// NewJoint returns a joint resting at min.
func NewJoint(min, max, rate float64) Joint {
	if min > max {
		panic("hitch: joint min exceeds max")
	}
	return Joint{Value: min, Min: min, Max: max, Rate: rate}
}

// Step advances the joint toward Max when dir > 0 and toward Min when
// dir < 0. A zero dir leaves the joint alone. Returns the applied delta.
func (j *Joint) Step(dir int, dt float64) float64 {
	if dir == 0 {
		return 0
	}
	prev := j.Value
	j.Value = Advance(j.Value, float64(dir)*j.Rate, dt, j.Min, j.Max)
	return j.Value - prev
}

// AtMax reports whether the joint is within tol of its upper bound.
func (j Joint) AtMax(tol float64) bool { return math.Abs(j.Max-j.Value) <= tol }

// AtMin reports whether the joint is within tol of its lower bound.
func (j Joint) AtMin(tol float64) bool { return math.Abs(j.Value-j.Min) <= tol }

// Reset snaps the joint back to Min and returns the applied delta.
func (j *Joint) Reset() float64 {
	d := j.Min - j.Value
	j.Value = j.Min
	return d
}

// Fraction returns how far along [Min, Max] the joint is, in [0, 1].
func (j Joint) Fraction() float64 {
	if j.Max == j.Min {
		return 0
	}
	return (j.Value - j.Min) / (j.Max - j.Min)
}

// direction folds a pair of opposing commands into -1, 0 or +1.
func direction(c Commands, up, down Commands) int {
	dir := 0
	if c.Has(up) {
		dir++
	}
	if c.Has(down) {
		dir--
	}
	return dir
}
