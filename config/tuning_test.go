package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/platformcore/camera"
	"github.com/milk9111/platformcore/physics"
)

func withDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}

func TestLoadEmbeddedTuning(t *testing.T) {
	withDir(t, t.TempDir())

	tuning, err := LoadTuning("")
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	if got := tuning.Constants(); got != physics.DefaultConstants() {
		t.Fatalf("embedded tuning should match defaults, got %+v", got)
	}
	if tuning.Camera.Smoothing == nil || *tuning.Camera.Smoothing != 0.1 {
		t.Fatalf("unexpected smoothing %v", tuning.Camera.Smoothing)
	}
	if tuning.Camera.DeadZone == nil || *tuning.Camera.DeadZone != (physics.Size{W: 100, H: 50}) {
		t.Fatalf("unexpected dead zone %v", tuning.Camera.DeadZone)
	}
	intensity, d := tuning.Camera.Shake()
	if intensity != 8 || d != 250*time.Millisecond {
		t.Fatalf("unexpected shake %v %v", intensity, d)
	}
}

func TestDiskOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)
	body := "physics:\n  gravity: 1500\n  friction: 4\n"
	if err := os.WriteFile(filepath.Join(dir, DefaultTuningFile), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	tuning, err := LoadTuning("config/" + DefaultTuningFile)
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	c := tuning.Constants()
	if c.Gravity != 1500 || c.Friction != 1 {
		t.Fatalf("expected overridden and clamped constants, got %+v", c)
	}
	if c.AirResistance != physics.DefaultConstants().AirResistance {
		t.Fatalf("absent keys should keep defaults, got %+v", c)
	}
	if _, ok := ModTime(DefaultTuningFile); !ok {
		t.Fatalf("expected mod time for disk file")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)

	if _, err := LoadTuning("missing.yaml"); err == nil || !strings.Contains(err.Error(), "config: load missing.yaml") {
		t.Fatalf("expected wrapped load error, got %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTuning("broken.yaml"); err == nil || !strings.Contains(err.Error(), "config: unmarshal broken.yaml") {
		t.Fatalf("expected wrapped unmarshal error, got %v", err)
	}
}

func TestApply(t *testing.T) {
	tuning, err := ParseTuning([]byte(`
physics:
  gravity: -3
  air_resistance: 0.5
camera:
  smoothing: 2
  dead_zone: {w: 40, h: 20}
  follow_offset: {x: 100, y: 200}
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	e := physics.NewEngine(physics.DefaultConstants())
	cam := camera.New(800, 600, 1600, 1200)
	tuning.Apply(e, cam)

	c := e.Constants()
	if c.Gravity != 0 || c.AirResistance != 0.5 || c.Friction != physics.DefaultConstants().Friction {
		t.Fatalf("unexpected constants %+v", c)
	}
	if cam.Smoothing() != 1 {
		t.Fatalf("expected clamped smoothing, got %v", cam.Smoothing())
	}
	if dz := cam.DeadZone(); dz.W != 40 || dz.H != 20 {
		t.Fatalf("unexpected dead zone %+v", dz)
	}
	if off := cam.FollowOffset(); off.X != 100 || off.Y != 200 {
		t.Fatalf("unexpected follow offset %v", off)
	}

	tuning.Apply(nil, nil)
}

func TestParseTuningError(t *testing.T) {
	if _, err := ParseTuning([]byte("camera: {smoothing: [")); err == nil {
		t.Fatalf("expected error")
	}
}
