package view

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/phanxgames/hitch"
)

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

var (
	colorSkin    = rgb(0xe8beac)
	colorArm     = rgb(0x035f53)
	colorForearm = rgb(0xffae42)
	colorThigh   = rgb(0x3492da)
	colorLeg     = rgb(0x3630a6)
	colorBoot    = rgb(0x131056)
	colorWheel   = rgb(0x5a5a5a)
	colorSocket  = rgb(0xdac134)
	colorTrailer = rgb(0xff606b)
	colorRig     = rgb(0x222222)
)

func v(x, y, z float64) hitch.Vec3 { return hitch.Vec3{X: x, Y: y, Z: z} }

// TruckRig is the robot truck part tree with handles on every joint.
type TruckRig struct {
	Root      *Part
	Head      *Part
	LeftArm   *Part
	RightArm  *Part
	Thighs    *Part
	LeftBoot  *Part
	RightBoot *Part

	armBase float64
}

// BuildTruck builds the robot truck in robot form. The root sits at the
// torso center.
func BuildTruck() *TruckRig {
	r := &TruckRig{Root: NewPivot("truck", hitch.Vec3{}, AxisNone), armBase: 160}

	r.Root.AddChild(NewBoxPart("torso", v(240, 160, 160), colornames.Gray, hitch.Vec3{}))

	r.Head = r.Root.AddChild(NewPivot("head_pivot", v(0, 80, -80), AxisX))
	head := r.Head.AddChild(NewBoxPart("head", v(80, 80, 80), colorSkin, v(0, 40, 40)))
	for _, side := range []float64{-1, 1} {
		head.AddChild(NewBoxPart("eye", v(20, 40.0/3, 10), colornames.White, v(side*20, 20, 40)))
		head.AddChild(NewBoxPart("antenna", v(40.0/3, 40, 40.0/3), colornames.Red, v(side*20, 40, -40)))
	}

	r.LeftArm = r.Root.AddChild(r.arm("left", -1))
	r.RightArm = r.Root.AddChild(r.arm("right", 1))

	abdomen := r.Root.AddChild(NewBoxPart("abdomen", v(80, 80, 160), colorArm, v(0, -120, 0)))
	waist := abdomen.AddChild(NewBoxPart("waist", v(240, 80, 120), colornames.Gray, v(0, -80, 20)))
	waist.AddChild(NewBoxPart("front_wheel_left", v(40, 80, 80), colorWheel, v(-140, -20, 0)))
	waist.AddChild(NewBoxPart("front_wheel_right", v(40, 80, 80), colorWheel, v(140, -20, 0)))

	r.Thighs = waist.AddChild(NewPivot("thighs_pivot", v(0, -40, -60), AxisX))
	r.LeftBoot = r.leg("left", -1)
	r.RightBoot = r.leg("right", 1)
	return r
}

func (r *TruckRig) arm(name string, side float64) *Part {
	arm := NewBoxPart(name+"_arm", v(80, 160, 80), colorArm, v(side*r.armBase, 0, -120))
	arm.AddChild(NewBoxPart(name+"_pipe", v(20, 120, 20), colornames.Gray, v(side*50, 60, -30)))
	arm.AddChild(NewBoxPart(name+"_forearm", v(80, 80, 240), colorForearm, v(0, -120, 80)))
	return arm
}

// leg hangs a thigh, leg and boot off the thighs pivot and returns the boot
// pivot.
func (r *TruckRig) leg(name string, side float64) *Part {
	thigh := r.Thighs.AddChild(NewBoxPart(name+"_thigh", v(40, 120, 40), colorThigh, v(side*60, -60, -20)))
	leg := thigh.AddChild(NewBoxPart(name+"_leg", v(80, 320, 80), colorLeg, v(0, -220, -20)))
	leg.AddChild(NewBoxPart(name+"_wheel_upper", v(40, 80, 80), colorWheel, v(side*60, 20, 20)))
	leg.AddChild(NewBoxPart(name+"_wheel_lower", v(40, 80, 80), colorWheel, v(side*60, -100, 20)))
	leg.AddChild(NewBoxPart(name+"_socket", v(40, 40, 40), colorSocket, v(-side*20, 60, -60)))
	boot := leg.AddChild(NewPivot(name+"_boot_pivot", v(0, -160, 40), AxisX))
	boot.AddChild(NewBoxPart(name+"_boot", v(80, 40, 40), colorBoot, v(0, -20, 20)))
	return boot
}

// Sync copies the truck position and joint values onto the rig.
func (r *TruckRig) Sync(t *hitch.Truck) {
	r.Root.SetOffset(t.Position)
	r.Head.SetAngle(-t.Head.Value)
	r.LeftArm.SetOffset(v(-r.armBase-t.Arms.Value, 0, -120))
	r.RightArm.SetOffset(v(r.armBase+t.Arms.Value, 0, -120))
	r.Thighs.SetAngle(t.Thighs.Value)
	r.LeftBoot.SetAngle(t.Boots.Value)
	r.RightBoot.SetAngle(t.Boots.Value)
	r.Root.UpdateTransforms()
}

// TrailerRig is the trailer part tree with handles on both coupler latches.
type TrailerRig struct {
	Root       *Part
	LeftLatch  *Part
	RightLatch *Part
}

// BuildTrailer builds the trailer with its latches open. The root sits at
// the body center.
func BuildTrailer() *TrailerRig {
	r := &TrailerRig{Root: NewPivot("trailer", hitch.Vec3{}, AxisNone)}

	body := r.Root.AddChild(NewBoxPart("body", v(240, 280, 1160), colorTrailer, hitch.Vec3{}))
	plate := body.AddChild(NewBoxPart("plate", v(240, 40, 760), colornames.Gray, v(0, -160, -200)))
	wheels := plate.AddChild(NewBoxPart("wheel_rig", v(240, 80, 400), colorRig, v(0, -60, -180)))
	for _, x := range []float64{-140, 140} {
		for _, z := range []float64{-80, 80} {
			wheels.AddChild(NewBoxPart("wheel", v(40, 80, 80), colorWheel, v(x, -20, z)))
		}
	}

	coupler := body.AddChild(NewBoxPart("coupler", v(80, 40, 120), colornames.Gray, v(0, -160, 480)))
	r.LeftLatch = coupler.AddChild(NewPivot("latch_left_pivot", v(-40, 0, 60), AxisY))
	r.LeftLatch.AddChild(NewBoxPart("latch_left", v(40, 40, 40), colornames.Gray, v(20, 0, 20)))
	r.RightLatch = coupler.AddChild(NewPivot("latch_right_pivot", v(40, 0, 60), AxisY))
	r.RightLatch.AddChild(NewBoxPart("latch_right", v(40, 40, 40), colornames.Gray, v(-20, 0, 20)))
	return r
}

// Sync copies the trailer position and latch angle onto the rig.
func (r *TrailerRig) Sync(t *hitch.Trailer) {
	left, right := t.LatchRotations()
	r.Root.SetOffset(t.Position)
	r.LeftLatch.SetAngle(left)
	r.RightLatch.SetAngle(right)
	r.Root.UpdateTransforms()
}
