package view

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/hitch"
)

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	m := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return func(k ebiten.Key) bool { return m[k] }
}

func TestDecodeCommands(t *testing.T) {
	held := keySet(ebiten.KeyArrowUp, ebiten.KeyArrowLeft, ebiten.KeyT, ebiten.KeyL)
	tapped := keySet(ebiten.KeyU)
	got := decodeCommands(held, tapped)
	want := hitch.MoveForward | hitch.MoveLeft | hitch.ThighsUp | hitch.Reset
	if got != want {
		t.Errorf("decodeCommands = %v, want %v", got, want)
	}
}

func TestDecodeCommandsTapOnly(t *testing.T) {
	// Holding L does nothing; only the press edge relatches.
	got := decodeCommands(keySet(ebiten.KeyL), keySet())
	if got != 0 {
		t.Errorf("held L decoded as %v", got)
	}
	got = decodeCommands(keySet(), keySet(ebiten.KeyL))
	if got != hitch.Relatch {
		t.Errorf("tapped L decoded as %v", got)
	}
}

func TestEveryJointHasKeys(t *testing.T) {
	var all hitch.Commands
	for _, b := range heldBindings {
		all |= b.cmd
	}
	if all&hitch.JointMask != hitch.JointMask || all&hitch.MoveMask != hitch.MoveMask {
		t.Errorf("held bindings cover %v", all)
	}
}

func TestPresetPressed(t *testing.T) {
	p, ok := presetPressed(keySet(ebiten.Key4))
	if !ok || p != PresetIso {
		t.Errorf("presetPressed = %v, %v, want iso", p, ok)
	}
	if _, ok := presetPressed(keySet(ebiten.Key6)); ok {
		t.Error("key 6 is not a camera preset")
	}
}
