package view

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/hitch"
)

// Preset is one of the fixed camera placements.
type Preset uint8

const (
	PresetFront Preset = iota
	PresetSide
	PresetTop
	PresetIso
	PresetPerspective
	presetCount
)

var presetNames = [...]string{"front", "side", "top", "iso", "perspective"}

func (p Preset) String() string {
	if p < presetCount {
		return presetNames[p]
	}
	return fmt.Sprintf("Preset(%d)", uint8(p))
}

// presetEyes are the camera positions, all looking at the world origin.
var presetEyes = [presetCount]hitch.Vec3{
	PresetFront:       {X: 0, Y: 0, Z: 500},
	PresetSide:        {X: 500, Y: 0, Z: 0},
	PresetTop:         {X: 0, Y: 500, Z: 0},
	PresetIso:         {X: 500, Y: 500, Z: 500},
	PresetPerspective: {X: 500, Y: 500, Z: 750},
}

const (
	nearPlane  = 1.0
	defaultFOV = 80 * math.Pi / 180
)

// eyeAnim holds active tweens for the three eye coordinates.
type eyeAnim struct {
	tweens [3]*gween.Tween
	done   [3]bool
}

// Camera projects world points onto the screen. Orthographic presets map
// one world unit to Zoom pixels; the perspective preset uses FOV.
type Camera struct {
	// Eye is the camera position. Target is the point it looks at.
	Eye, Target hitch.Vec3
	// Zoom is the orthographic scale in pixels per world unit.
	Zoom float64
	// FOV is the vertical field of view in radians for the perspective
	// preset.
	FOV float64

	Width, Height float64

	preset Preset
	anim   *eyeAnim

	right, up, forward hitch.Vec3
	dirty              bool
}

// NewCamera returns a front camera for a width x height viewport.
func NewCamera(width, height float64) *Camera {
	return &Camera{
		Eye:    presetEyes[PresetFront],
		Zoom:   0.3,
		FOV:    defaultFOV,
		Width:  width,
		Height: height,
		dirty:  true,
	}
}

// Preset returns the active preset.
func (c *Camera) Preset() Preset { return c.preset }

// Perspective reports whether the camera projects with perspective.
func (c *Camera) Perspective() bool { return c.preset == PresetPerspective }

// SetViewport resizes the projection target.
func (c *Camera) SetViewport(width, height float64) {
	c.Width, c.Height = width, height
}

// SetPreset switches to p. A positive duration tweens the eye there over
// duration seconds; otherwise it snaps.
func (c *Camera) SetPreset(p Preset, duration float32) {
	if p >= presetCount {
		return
	}
	c.preset = p
	to := presetEyes[p]
	if duration <= 0 {
		c.anim = nil
		c.Eye = to
		c.dirty = true
		return
	}
	c.anim = &eyeAnim{tweens: [3]*gween.Tween{
		gween.New(float32(c.Eye.X), float32(to.X), duration, ease.InOutQuad),
		gween.New(float32(c.Eye.Y), float32(to.Y), duration, ease.InOutQuad),
		gween.New(float32(c.Eye.Z), float32(to.Z), duration, ease.InOutQuad),
	}}
}

// Moving reports whether a preset transition is running.
func (c *Camera) Moving() bool { return c.anim != nil }

// Update advances the preset transition by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.anim == nil {
		return
	}
	for i, tw := range c.anim.tweens {
		if c.anim.done[i] {
			continue
		}
		val, done := tw.Update(dt)
		switch i {
		case 0:
			c.Eye.X = float64(val)
		case 1:
			c.Eye.Y = float64(val)
		case 2:
			c.Eye.Z = float64(val)
		}
		c.anim.done[i] = done
	}
	c.dirty = true
	if c.anim.done[0] && c.anim.done[1] && c.anim.done[2] {
		c.Eye = presetEyes[c.preset]
		c.anim = nil
	}
}

// computeBasis recomputes the camera axes if dirty.
func (c *Camera) computeBasis() {
	if !c.dirty {
		return
	}
	c.dirty = false

	f := normalize(c.Target.Sub(c.Eye))
	worldUp := hitch.Vec3{Y: 1}
	r := cross(f, worldUp)
	if length(r) < 1e-9 {
		// Looking straight down: screen up is world -z.
		r = cross(f, hitch.Vec3{Z: -1})
	}
	r = normalize(r)
	c.forward = f
	c.right = r
	c.up = cross(r, f)
}

// Depth returns the distance of p along the view direction.
func (c *Camera) Depth(p hitch.Vec3) float64 {
	c.computeBasis()
	return dot(p.Sub(c.Eye), c.forward)
}

// Project converts a world point to screen coordinates. ok is false when a
// perspective camera has the point behind it.
func (c *Camera) Project(p hitch.Vec3) (x, y float64, ok bool) {
	c.computeBasis()
	d := p.Sub(c.Eye)
	vx, vy, vz := dot(d, c.right), dot(d, c.up), dot(d, c.forward)
	cx, cy := c.Width/2, c.Height/2
	if !c.Perspective() {
		return cx + vx*c.Zoom, cy - vy*c.Zoom, true
	}
	if vz < nearPlane {
		return 0, 0, false
	}
	focal := cy / math.Tan(c.FOV/2)
	return cx + vx*focal/vz, cy - vy*focal/vz, true
}

func dot(a, b hitch.Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func cross(a, b hitch.Vec3) hitch.Vec3 {
	return hitch.Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func length(a hitch.Vec3) float64 { return math.Sqrt(dot(a, a)) }

func normalize(a hitch.Vec3) hitch.Vec3 {
	l := length(a)
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}
