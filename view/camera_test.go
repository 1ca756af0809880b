package view

import (
	"testing"

	"github.com/phanxgames/hitch"
)

func TestCameraFrontProjection(t *testing.T) {
	c := NewCamera(800, 600)
	x, y, ok := c.Project(hitch.Vec3{X: 100, Y: 50})
	if !ok || !approxEqual(x, 430, 1e-9) || !approxEqual(y, 285, 1e-9) {
		t.Errorf("Project = (%v, %v, %v), want (430, 285, true)", x, y, ok)
	}
	if d := c.Depth(hitch.Vec3{}); !approxEqual(d, 500, 1e-9) {
		t.Errorf("Depth(origin) = %v, want 500", d)
	}
}

func TestCameraTopProjection(t *testing.T) {
	c := NewCamera(800, 600)
	c.SetPreset(PresetTop, 0)
	x, y, ok := c.Project(hitch.Vec3{X: 100, Z: -200})
	if !ok || !approxEqual(x, 430, 1e-9) || !approxEqual(y, 240, 1e-9) {
		t.Errorf("Project = (%v, %v, %v), want (430, 240, true)", x, y, ok)
	}
}

func TestCameraPerspective(t *testing.T) {
	c := NewCamera(800, 600)
	c.SetPreset(PresetPerspective, 0)
	if !c.Perspective() {
		t.Fatal("perspective preset should project with perspective")
	}
	x, y, ok := c.Project(hitch.Vec3{})
	if !ok || !approxEqual(x, 400, 1e-6) || !approxEqual(y, 300, 1e-6) {
		t.Errorf("target projects to (%v, %v, %v), want screen center", x, y, ok)
	}
	if _, _, ok := c.Project(hitch.Vec3{X: 1000, Y: 1000, Z: 1500}); ok {
		t.Error("a point behind the camera should not project")
	}
}

func TestCameraPresetTween(t *testing.T) {
	c := NewCamera(800, 600)
	c.SetPreset(PresetSide, 1.0)
	if !c.Moving() {
		t.Fatal("SetPreset with a duration should start a transition")
	}
	c.Update(0.5)
	if c.Eye.X <= 0 || c.Eye.X >= 500 {
		t.Errorf("halfway eye x = %v, want between 0 and 500", c.Eye.X)
	}
	c.Update(0.6)
	if c.Moving() {
		t.Error("transition should be finished")
	}
	if c.Eye != (hitch.Vec3{X: 500}) {
		t.Errorf("Eye = %v, want (500,0,0)", c.Eye)
	}
	if c.Preset() != PresetSide || c.Preset().String() != "side" {
		t.Errorf("Preset = %v", c.Preset())
	}
}

func TestCameraIgnoresUnknownPreset(t *testing.T) {
	c := NewCamera(800, 600)
	c.SetPreset(Preset(9), 0)
	if c.Preset() != PresetFront {
		t.Errorf("Preset = %v, want front", c.Preset())
	}
	if s := Preset(9).String(); s != "Preset(9)" {
		t.Errorf("String = %q", s)
	}
}

func TestCollectFacesSortedFarToNear(t *testing.T) {
	c := NewCamera(800, 600)
	root := NewPivot("root", hitch.Vec3{}, AxisNone)
	root.AddChild(NewBoxPart("near", hitch.Vec3{X: 10, Y: 10, Z: 10}, colorWheel, hitch.Vec3{Z: 100}))
	root.AddChild(NewBoxPart("far", hitch.Vec3{X: 10, Y: 10, Z: 10}, colorTrailer, hitch.Vec3{Z: -100}))
	root.UpdateTransforms()

	faces := collectFaces(nil, c, root)
	if len(faces) != 12 {
		t.Fatalf("faces = %d, want 12", len(faces))
	}
	for i := 1; i < len(faces); i++ {
		if faces[i].depth > faces[i-1].depth {
			t.Fatalf("face %d deeper than face %d", i, i-1)
		}
	}
	if faces[0].clr != colorTrailer || faces[11].clr != colorWheel {
		t.Error("far box should draw first and near box last")
	}
}
