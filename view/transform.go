package view

import (
	"math"

	"github.com/phanxgames/hitch"
)

// Axis selects the axis a part pivots around.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisZ
)

// Affine is a rigid 3D transform: a row-major rotation matrix followed by a
// translation.
//
//	| r0 r1 r2 tx |
//	| r3 r4 r5 ty |
//	| r6 r7 r8 tz |
type Affine struct {
	R [9]float64
	T hitch.Vec3
}

// identityAffine is the identity transform.
var identityAffine = Affine{R: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}

// rotation returns the rotation matrix for angle radians about axis.
func rotation(axis Axis, angle float64) [9]float64 {
	if axis == AxisNone || angle == 0 {
		return identityAffine.R
	}
	sin, cos := math.Sincos(angle)
	switch axis {
	case AxisX:
		return [9]float64{1, 0, 0, 0, cos, -sin, 0, sin, cos}
	case AxisY:
		return [9]float64{cos, 0, sin, 0, 1, 0, -sin, 0, cos}
	default:
		return [9]float64{cos, -sin, 0, sin, cos, 0, 0, 0, 1}
	}
}

// computeLocalTransform is Translate(Offset) * Rotate(Axis, Angle).
func computeLocalTransform(p *Part) Affine {
	return Affine{R: rotation(p.Axis, p.Angle), T: p.Offset}
}

// multiplyAffine returns parent * child.
func multiplyAffine(p, c Affine) Affine {
	var r [9]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row*3+col] = p.R[row*3]*c.R[col] + p.R[row*3+1]*c.R[3+col] + p.R[row*3+2]*c.R[6+col]
		}
	}
	return Affine{R: r, T: p.Apply(c.T)}
}

// Apply transforms a point.
func (m Affine) Apply(v hitch.Vec3) hitch.Vec3 {
	return hitch.Vec3{
		X: m.R[0]*v.X + m.R[1]*v.Y + m.R[2]*v.Z + m.T.X,
		Y: m.R[3]*v.X + m.R[4]*v.Y + m.R[5]*v.Z + m.T.Y,
		Z: m.R[6]*v.X + m.R[7]*v.Y + m.R[8]*v.Z + m.T.Z,
	}
}

// updateWorldTransform recomputes a part's world transform. parentRecomputed
// forces recomputation of this part even if it is not dirty.
func updateWorldTransform(p *Part, parent Affine, parentRecomputed bool) {
	recompute := p.dirty || parentRecomputed
	if recompute {
		p.world = multiplyAffine(parent, computeLocalTransform(p))
		p.dirty = false
	}
	for _, child := range p.children {
		updateWorldTransform(child, p.world, recompute)
	}
}
