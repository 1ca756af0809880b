package hitch

import "math"

// Vec3 is a world-space position, offset or extent. The y axis points up and
// the truck faces +z.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v multiplied by s on every axis.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// nearlyEqual reports whether two positions agree within eps on every axis.
func nearlyEqual(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}

// Form is the discrete shape of the truck assembly.
type Form uint8

const (
	FormRobot Form = iota // limbs unfolded; tall bounding box
	FormTruck             // head, thighs and boots folded; dockable
)

// String returns "robot" or "truck".
func (f Form) String() string {
	if f == FormTruck {
		return "truck"
	}
	return "robot"
}
