package hitch

import "testing"

func TestInjectOverridesSampledInput(t *testing.T) {
	s := behindTruck(false)
	s.Inject(MoveBack, 2)
	if s.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", s.Pending())
	}
	s.Tick(MoveLeft, testDT)
	s.Tick(MoveLeft, testDT)
	if p := s.Trailer().Position; p != (Vec3{0, 0, -1500}) {
		t.Errorf("Position = %v, want (0,0,-1500)", p)
	}
	s.Tick(MoveLeft, testDT)
	if x := s.Trailer().Position.X; x != -50 {
		t.Errorf("sampled input should resume once the queue drains, X = %v", x)
	}
}

func TestInjectTap(t *testing.T) {
	s := NewSession(DefaultConfig())
	s.InjectTap(Reset)
	if s.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", s.Pending())
	}
	s.Inject(MoveLeft, 0)
	if s.Pending() != 3 {
		t.Errorf("Inject with ticks < 1 should queue one tick, Pending = %d", s.Pending())
	}
}
