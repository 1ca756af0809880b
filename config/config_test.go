package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/hitch"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "hitch.yaml", `
trailer_speed: 250
dock_offset:
  z: -1200
truck_box:
  max:
    y: 100
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	def := hitch.DefaultConfig()
	assert.Equal(t, 250.0, cfg.TrailerSpeed)
	assert.Equal(t, def.DockSpeed, cfg.DockSpeed)
	assert.Equal(t, hitch.Vec3{X: 0, Y: 0, Z: -1200}, cfg.DockOffset)
	assert.Equal(t, 100.0, cfg.TruckBox.Max.Y)
	assert.Equal(t, def.TruckBox.Min, cfg.TruckBox.Min)
}

func TestLoadEmptyFileGivesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yaml", "")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, hitch.DefaultConfig(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "config: load")
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("trailer_sped: 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailer_sped")
}

func TestParseRejectsInvalidValues(t *testing.T) {
	_, err := Parse([]byte("latch_rate: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latch_rate")
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := hitch.DefaultConfig()
	cfg.JointRate = 2.5
	require.NoError(t, Write(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "hitch.yaml", "dock_speed: 300\n")

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, dir, "other.yaml", "dock_speed: 1\n")
	writeFile(t, dir, "hitch.yaml", "dock_speed: 500\n")

	select {
	case cfg := <-w.Configs:
		assert.Equal(t, 500.0, cfg.DockSpeed)
	case err := <-w.Errors:
		t.Fatalf("unexpected watch error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload within 3s")
	}
}

func TestWatcherReportsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "hitch.yaml", "dock_speed: 300\n")

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, dir, "hitch.yaml", "dock_speed: -4\n")

	select {
	case <-w.Configs:
		t.Fatal("invalid config should not be delivered")
	case err := <-w.Errors:
		assert.Contains(t, err.Error(), "dock_speed")
	case <-time.After(3 * time.Second):
		t.Fatal("no error within 3s")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	path := writeFile(t, t.TempDir(), "hitch.yaml", "")
	w, err := Watch(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	_, ok := <-w.Configs
	assert.False(t, ok, "Configs should be closed")
}
