package config

import (
	"fmt"
	"time"

	"github.com/milk9111/platformcore/camera"
	"github.com/milk9111/platformcore/physics"
	"gopkg.in/yaml.v3"
)

const DefaultTuningFile = "tuning.yaml"

type OffsetSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// CameraSpec holds camera settings. Nil fields keep the camera's current
// value when applied.
type CameraSpec struct {
	Smoothing      *float64      `yaml:"smoothing,omitempty"`
	DeadZone       *physics.Size `yaml:"dead_zone,omitempty"`
	FollowOffset   *OffsetSpec   `yaml:"follow_offset,omitempty"`
	ShakeIntensity float64       `yaml:"shake_intensity"`
	ShakeMillis    int           `yaml:"shake_ms"`
}

// Shake returns the intensity and duration used for impact shakes.
func (c CameraSpec) Shake() (float64, time.Duration) {
	return c.ShakeIntensity, time.Duration(c.ShakeMillis) * time.Millisecond
}

type Tuning struct {
	Physics physics.ConstantsUpdate `yaml:"physics"`
	Camera  CameraSpec              `yaml:"camera"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("config: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadTuning(filename string) (Tuning, error) {
	if filename == "" {
		filename = DefaultTuningFile
	}
	return LoadSpec[Tuning](filename)
}

func ParseTuning(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	return t, nil
}

// Constants resolves the physics section against the defaults.
func (t Tuning) Constants() physics.Constants {
	return physics.NewEngine(physics.DefaultConstants()).UpdateConstants(t.Physics)
}

// CameraOptions converts the camera section into constructor options.
func (t Tuning) CameraOptions() []camera.Option {
	var opts []camera.Option
	if t.Camera.Smoothing != nil {
		opts = append(opts, camera.WithSmoothing(*t.Camera.Smoothing))
	}
	if t.Camera.DeadZone != nil {
		opts = append(opts, camera.WithDeadZone(t.Camera.DeadZone.W, t.Camera.DeadZone.H))
	}
	if t.Camera.FollowOffset != nil {
		opts = append(opts, camera.WithFollowOffset(t.Camera.FollowOffset.X, t.Camera.FollowOffset.Y))
	}
	return opts
}

// Apply pushes the tuning into a running engine and camera. Either may be nil.
func (t Tuning) Apply(e *physics.Engine, c *camera.Camera) {
	if e != nil {
		e.UpdateConstants(t.Physics)
	}
	if c != nil {
		for _, opt := range t.CameraOptions() {
			opt(c)
		}
	}
}
