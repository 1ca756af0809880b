package view

import (
	"testing"

	"golang.org/x/image/colornames"

	"github.com/phanxgames/hitch"
)

func TestPartHierarchy(t *testing.T) {
	root := NewPivot("root", hitch.Vec3{X: 100}, AxisNone)
	a := root.AddChild(NewBoxPart("a", hitch.Vec3{X: 2, Y: 2, Z: 2}, colornames.Red, hitch.Vec3{Y: 10}))
	b := a.AddChild(NewBoxPart("b", hitch.Vec3{X: 2, Y: 2, Z: 2}, colornames.Blue, hitch.Vec3{Z: 1}))

	root.UpdateTransforms()
	if got := b.WorldPosition(); got != (hitch.Vec3{X: 100, Y: 10, Z: 1}) {
		t.Errorf("b world = %v", got)
	}
	if root.Find("b") != b || root.Find("zzz") != nil {
		t.Error("Find mismatch")
	}

	// Moving the root must propagate to clean children.
	root.SetOffset(hitch.Vec3{X: -5})
	root.UpdateTransforms()
	if got := b.WorldPosition(); got != (hitch.Vec3{X: -5, Y: 10, Z: 1}) {
		t.Errorf("b world after move = %v", got)
	}
}

func TestPartReparent(t *testing.T) {
	root := NewPivot("root", hitch.Vec3{}, AxisNone)
	a := root.AddChild(NewPivot("a", hitch.Vec3{}, AxisNone))
	b := root.AddChild(NewPivot("b", hitch.Vec3{}, AxisNone))
	c := a.AddChild(NewPivot("c", hitch.Vec3{}, AxisNone))

	b.AddChild(c)
	if len(a.Children()) != 0 || c.Parent != b {
		t.Error("AddChild should detach from the previous parent")
	}
}

func TestPartCyclePanics(t *testing.T) {
	root := NewPivot("root", hitch.Vec3{}, AxisNone)
	child := root.AddChild(NewPivot("child", hitch.Vec3{}, AxisNone))
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a cycle")
		}
	}()
	child.AddChild(root)
}

func TestPartWalkSkipsHidden(t *testing.T) {
	root := NewPivot("root", hitch.Vec3{}, AxisNone)
	hidden := root.AddChild(NewPivot("hidden", hitch.Vec3{}, AxisNone))
	hidden.AddChild(NewPivot("under", hitch.Vec3{}, AxisNone))
	root.AddChild(NewPivot("shown", hitch.Vec3{}, AxisNone))
	hidden.Visible = false

	var names []string
	root.Walk(func(p *Part) { names = append(names, p.Name) })
	if len(names) != 2 || names[0] != "root" || names[1] != "shown" {
		t.Errorf("walked %v, want [root shown]", names)
	}
}

func TestPartCorners(t *testing.T) {
	p := NewBoxPart("p", hitch.Vec3{X: 2, Y: 4, Z: 6}, colornames.Red, hitch.Vec3{X: 10})
	p.UpdateTransforms()
	c := p.Corners()
	if c[0] != (hitch.Vec3{X: 9, Y: -2, Z: -3}) {
		t.Errorf("corner 0 = %v", c[0])
	}
	if c[7] != (hitch.Vec3{X: 11, Y: 2, Z: 3}) {
		t.Errorf("corner 7 = %v", c[7])
	}
	if NewPivot("pivot", hitch.Vec3{}, AxisX).IsBox() {
		t.Error("pivot should not be a box")
	}
}
