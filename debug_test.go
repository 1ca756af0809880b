package hitch

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func degenerateTrailerConfig() Config {
	cfg := DefaultConfig()
	cfg.TrailerBox = Box{Min: Vec3{120, 0, 0}, Max: Vec3{-120, 10, 10}}
	return cfg
}

func TestDebugMode_DegenerateBoxPanics(t *testing.T) {
	s := NewSession(degenerateTrailerConfig())
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for a degenerate trailer box, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "degenerate trailer box") {
			t.Errorf("panic message should name the trailer box, got: %s", msg)
		}
	}()
	s.Tick(0, testDT)
}

func TestReleaseMode_DegenerateBoxNoPanic(t *testing.T) {
	s := NewSession(degenerateTrailerConfig())
	s.SetDebugMode(false)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("release mode should not panic, got: %v", r)
		}
	}()
	s.Tick(MoveForward, testDT)
}

func TestDebugMode_LogsEveryTick(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewSession(DefaultConfig())
	s.SetLogger(zap.New(core))
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	for i := 0; i < 3; i++ {
		s.Tick(MoveLeft, testDT)
	}
	ticks := logs.FilterMessage("tick").All()
	if len(ticks) != 3 {
		t.Fatalf("tick logs = %d, want 3", len(ticks))
	}
	fields := ticks[2].ContextMap()
	if fields["state"] != "idle" {
		t.Errorf("state field = %v, want idle", fields["state"])
	}
	if fields["x"] != 600.0-150 {
		t.Errorf("x field = %v, want 450", fields["x"])
	}
}

func TestDebugMode_InvertedJointPanics(t *testing.T) {
	s := NewSession(DefaultConfig())
	s.Truck().Thighs.Min = 2
	s.SetDebugMode(true)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for an inverted thigh range, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "thighs joint") {
			t.Errorf("panic message should name the thighs joint, got: %s", msg)
		}
	}()
	s.Tick(ThighsUp, testDT)
}

func TestDebugModeIsPerSession(t *testing.T) {
	debug := NewSession(DefaultConfig())
	debug.SetDebugMode(true)

	release := NewSession(degenerateTrailerConfig())
	release.Truck().Thighs.Min = 2
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("session without debug mode panicked: %v", r)
		}
	}()
	release.Tick(ThighsUp|MoveForward, testDT)
	debug.Tick(0, testDT)
}
