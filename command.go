package hitch

import (
	"fmt"
	"strings"
)

// Commands is a bitmask of the controls held during one tick. Values can be
// combined with bitwise OR (e.g. MoveLeft | MoveForward). It is a snapshot,
// not a queue: each tick replaces the previous sample.
type Commands uint32

const (
	MoveLeft    Commands = 1 << iota // trailer toward -x
	MoveRight                        // trailer toward +x
	MoveForward                      // trailer toward +z (toward the truck)
	MoveBack                         // trailer toward -z
	Relatch                          // latch a trailer resting at docking depth
	Reset                            // drop the trailer: idle, latch open, undocked
	HeadUp                           // fold the head into the torso
	HeadDown                         // raise the head
	ArmsOut                          // slide the arms outward
	ArmsIn                           // slide the arms inward
	ThighsUp                         // fold the legs back
	ThighsDown                       // unfold the legs
	BootsUp                          // fold the boots
	BootsDown                        // unfold the boots
)

// MoveMask covers the four trailer movement directions.
const MoveMask = MoveLeft | MoveRight | MoveForward | MoveBack

// JointMask covers every truck joint command.
const JointMask = HeadUp | HeadDown | ArmsOut | ArmsIn | ThighsUp | ThighsDown | BootsUp | BootsDown

var commandNames = [...]struct {
	flag Commands
	name string
}{
	{MoveLeft, "left"},
	{MoveRight, "right"},
	{MoveForward, "forward"},
	{MoveBack, "back"},
	{Relatch, "relatch"},
	{Reset, "reset"},
	{HeadUp, "head_up"},
	{HeadDown, "head_down"},
	{ArmsOut, "arms_out"},
	{ArmsIn, "arms_in"},
	{ThighsUp, "thighs_up"},
	{ThighsDown, "thighs_down"},
	{BootsUp, "boots_up"},
	{BootsDown, "boots_down"},
}

// Has reports whether every flag in f is set.
func (c Commands) Has(f Commands) bool { return c&f == f && f != 0 }

// Any reports whether at least one flag in f is set.
func (c Commands) Any(f Commands) bool { return c&f != 0 }

// With returns c with f set.
func (c Commands) With(f Commands) Commands { return c | f }

// Without returns c with f cleared.
func (c Commands) Without(f Commands) Commands { return c &^ f }

// String joins the names of the set flags with "|", or returns "none".
func (c Commands) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for _, cn := range commandNames {
		if c&cn.flag != 0 {
			parts = append(parts, cn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseCommand returns the flag for a command name such as "left" or
// "thighs_up". Names are case-insensitive.
func ParseCommand(name string) (Commands, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, cn := range commandNames {
		if cn.name == name {
			return cn.flag, nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", name)
}

// ParseCommands ORs together the flags for every name.
func ParseCommands(names []string) (Commands, error) {
	var c Commands
	for _, n := range names {
		f, err := ParseCommand(n)
		if err != nil {
			return 0, err
		}
		c |= f
	}
	return c, nil
}

// moveVector converts the movement flags into a unit-per-axis direction.
// Opposing flags cancel.
func (c Commands) moveVector() Vec3 {
	return Vec3{
		X: float64(direction(c, MoveRight, MoveLeft)),
		Z: float64(direction(c, MoveForward, MoveBack)),
	}
}
