package logx

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zap.DebugLevel,
		"":        zap.InfoLevel,
		"INFO":    zap.InfoLevel,
		" warn ":  zap.WarnLevel,
		"warning": zap.WarnLevel,
		"error":   zap.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Errorf("ParseLevel(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewHonoursLevel(t *testing.T) {
	for _, dev := range []bool{false, true} {
		l, err := New("warn", dev)
		if err != nil {
			t.Fatalf("New(warn, %v): %v", dev, err)
		}
		if l.Core().Enabled(zap.InfoLevel) {
			t.Errorf("development=%v: info should be disabled at warn", dev)
		}
		if !l.Core().Enabled(zap.ErrorLevel) {
			t.Errorf("development=%v: error should be enabled at warn", dev)
		}
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("verbose", false); err == nil {
		t.Error("expected error for unknown level")
	}
}
