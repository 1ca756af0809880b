package view

import (
	"image/color"

	"github.com/phanxgames/hitch"
)

// Part is one element of a rig: either a pure pivot (zero Size) or a box.
// Boxes are centered on the part origin. Rotation happens about the origin
// before the offset is applied, so a pivot part rotates all of its children.
type Part struct {
	Name string

	Parent   *Part
	children []*Part

	// Offset is the part origin in parent space.
	Offset hitch.Vec3
	Axis   Axis
	Angle  float64

	Size    hitch.Vec3
	Color   color.RGBA
	Visible bool

	world Affine
	dirty bool
}

// NewPivot creates an invisible part that only carries a transform.
func NewPivot(name string, offset hitch.Vec3, axis Axis) *Part {
	return &Part{Name: name, Offset: offset, Axis: axis, Visible: true, world: identityAffine, dirty: true}
}

// NewBoxPart creates a visible box of the given size.
func NewBoxPart(name string, size hitch.Vec3, c color.RGBA, offset hitch.Vec3) *Part {
	return &Part{Name: name, Offset: offset, Size: size, Color: c, Visible: true, world: identityAffine, dirty: true}
}

// AddChild appends child, detaching it from any previous parent first.
func (p *Part) AddChild(child *Part) *Part {
	if child == p {
		panic("view: cannot add a part as its own child")
	}
	for a := p.Parent; a != nil; a = a.Parent {
		if a == child {
			panic("view: adding " + child.Name + " would create a cycle")
		}
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = p
	child.dirty = true
	p.children = append(p.children, child)
	return child
}

// RemoveChild detaches child. It is a no-op if child is not a direct child.
func (p *Part) RemoveChild(child *Part) {
	for i, c := range p.children {
		if c == child {
			copy(p.children[i:], p.children[i+1:])
			p.children[len(p.children)-1] = nil
			p.children = p.children[:len(p.children)-1]
			child.Parent = nil
			return
		}
	}
}

// Children returns the direct children. The slice must not be modified.
func (p *Part) Children() []*Part { return p.children }

// SetOffset moves the part and marks it dirty.
func (p *Part) SetOffset(v hitch.Vec3) {
	if p.Offset != v {
		p.Offset = v
		p.dirty = true
	}
}

// SetAngle rotates the part about its axis and marks it dirty.
func (p *Part) SetAngle(a float64) {
	if p.Angle != a {
		p.Angle = a
		p.dirty = true
	}
}

// Find returns the first part named name in a depth-first walk, or nil.
func (p *Part) Find(name string) *Part {
	if p.Name == name {
		return p
	}
	for _, c := range p.children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// Walk calls fn for p and every descendant, parents first. Hidden parts and
// their subtrees are skipped.
func (p *Part) Walk(fn func(*Part)) {
	if !p.Visible {
		return
	}
	fn(p)
	for _, c := range p.children {
		c.Walk(fn)
	}
}

// UpdateTransforms recomputes world transforms for the tree rooted at p.
func (p *Part) UpdateTransforms() {
	updateWorldTransform(p, identityAffine, false)
}

// WorldPosition returns the part origin in world space. Valid after
// UpdateTransforms.
func (p *Part) WorldPosition() hitch.Vec3 { return p.world.T }

// IsBox reports whether the part has geometry to draw.
func (p *Part) IsBox() bool { return p.Size != (hitch.Vec3{}) }

// Corners returns the eight world-space corners of the box. Corner i has
// +x when bit 0 is set, +y for bit 1 and +z for bit 2.
func (p *Part) Corners() [8]hitch.Vec3 {
	h := p.Size.Scale(0.5)
	var out [8]hitch.Vec3
	for i := range out {
		local := hitch.Vec3{X: -h.X, Y: -h.Y, Z: -h.Z}
		if i&1 != 0 {
			local.X = h.X
		}
		if i&2 != 0 {
			local.Y = h.Y
		}
		if i&4 != 0 {
			local.Z = h.Z
		}
		out[i] = p.world.Apply(local)
	}
	return out
}
