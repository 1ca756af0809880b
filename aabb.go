package hitch

import (
	"fmt"
	"math"
)

// Box is an axis-aligned bounding box in world space. Boxes are rebuilt from
// assembly positions every tick and never cached across ticks.
type Box struct {
	Min, Max Vec3
}

// NewBox returns the box spanning min..max. Panics if min exceeds max on any
// axis, since a degenerate box can only come from a caller bug.
func NewBox(min, max Vec3) Box {
	b := Box{Min: min, Max: max}
	if !b.Valid() {
		panic(fmt.Sprintf("hitch: degenerate box min=%v max=%v", min, max))
	}
	return b
}

// BoxAt returns the box centered on center with the given half extents.
func BoxAt(center, half Vec3) Box {
	return NewBox(center.Sub(half), center.Add(half))
}

// Valid reports whether Min <= Max on every axis.
func (b Box) Valid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Translate returns the box moved by v.
func (b Box) Translate(v Vec3) Box {
	return Box{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// Center returns the midpoint of the box.
func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box on each axis.
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies inside b. Points on a face are inside.
func (b Box) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Overlaps reports whether a and b intersect on all three axes. Boxes that
// only share a face are considered overlapping.
func Overlaps(a, b Box) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Intersection returns the volume shared by a and b, or 0 when they are apart
// or only touch.
func Intersection(a, b Box) float64 {
	x := math.Min(a.Max.X, b.Max.X) - math.Max(a.Min.X, b.Min.X)
	y := math.Min(a.Max.Y, b.Max.Y) - math.Max(a.Min.Y, b.Min.Y)
	z := math.Min(a.Max.Z, b.Max.Z) - math.Max(a.Min.Z, b.Min.Z)
	if x <= 0 || y <= 0 || z <= 0 {
		return 0
	}
	return x * y * z
}
