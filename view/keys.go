package view

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/hitch"
)

type binding struct {
	key ebiten.Key
	cmd hitch.Commands
}

// heldBindings fire on every tick the key is down.
var heldBindings = []binding{
	{ebiten.KeyArrowLeft, hitch.MoveLeft},
	{ebiten.KeyArrowRight, hitch.MoveRight},
	{ebiten.KeyArrowUp, hitch.MoveForward},
	{ebiten.KeyArrowDown, hitch.MoveBack},
	{ebiten.KeyE, hitch.ArmsOut},
	{ebiten.KeyD, hitch.ArmsIn},
	{ebiten.KeyR, hitch.HeadUp},
	{ebiten.KeyF, hitch.HeadDown},
	{ebiten.KeyT, hitch.ThighsUp},
	{ebiten.KeyG, hitch.ThighsDown},
	{ebiten.KeyY, hitch.BootsUp},
	{ebiten.KeyH, hitch.BootsDown},
}

// tapBindings fire once per key press.
var tapBindings = []binding{
	{ebiten.KeyL, hitch.Relatch},
	{ebiten.KeyU, hitch.Reset},
}

// presetKeys select camera presets, in Preset order.
var presetKeys = [presetCount]ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
}

const (
	keyWireframe  = ebiten.Key6
	keyScreenshot = ebiten.KeyF12
)

// decodeCommands builds the command set from key state queries.
func decodeCommands(held, tapped func(ebiten.Key) bool) hitch.Commands {
	var c hitch.Commands
	for _, b := range heldBindings {
		if held(b.key) {
			c |= b.cmd
		}
	}
	for _, b := range tapBindings {
		if tapped(b.key) {
			c |= b.cmd
		}
	}
	return c
}

// ReadCommands samples the keyboard once. Call it from Game.Update.
func ReadCommands() hitch.Commands {
	return decodeCommands(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

// presetPressed returns the preset whose key was just pressed.
func presetPressed(tapped func(ebiten.Key) bool) (Preset, bool) {
	for i, k := range presetKeys {
		if tapped(k) {
			return Preset(i), true
		}
	}
	return 0, false
}
