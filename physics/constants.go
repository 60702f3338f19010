package physics

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformcore/common"
)

// Constants tunes the integrator. Gravity is in units/s², TerminalVelocity in
// units/s, Friction and AirResistance are per-step velocity multipliers.
type Constants struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	Friction         float64 `yaml:"friction"`
	AirResistance    float64 `yaml:"air_resistance"`
}

func DefaultConstants() Constants {
	return Constants{
		Gravity:          980,
		TerminalVelocity: 600,
		Friction:         0.8,
		AirResistance:    0.95,
	}
}

// Clamped returns c with every field forced into its valid range. Non-finite
// values fall back to the defaults.
func (c Constants) Clamped() Constants {
	d := DefaultConstants()
	return Constants{
		Gravity:          clampConstant(c.Gravity, 0, math.MaxFloat64, d.Gravity),
		TerminalVelocity: clampConstant(c.TerminalVelocity, 0, math.MaxFloat64, d.TerminalVelocity),
		Friction:         clampConstant(c.Friction, 0, 1, d.Friction),
		AirResistance:    clampConstant(c.AirResistance, 0, 1, d.AirResistance),
	}
}

// ConstantsUpdate is a partial write. Nil fields are left untouched.
type ConstantsUpdate struct {
	Gravity          *float64 `yaml:"gravity,omitempty"`
	TerminalVelocity *float64 `yaml:"terminal_velocity,omitempty"`
	Friction         *float64 `yaml:"friction,omitempty"`
	AirResistance    *float64 `yaml:"air_resistance,omitempty"`
}

// Empty reports whether the update carries no keys.
func (u ConstantsUpdate) Empty() bool {
	return u.Gravity == nil && u.TerminalVelocity == nil && u.Friction == nil && u.AirResistance == nil
}

func (u ConstantsUpdate) applyTo(c Constants) Constants {
	if u.Gravity != nil {
		c.Gravity = clampConstant(*u.Gravity, 0, math.MaxFloat64, c.Gravity)
	}
	if u.TerminalVelocity != nil {
		c.TerminalVelocity = clampConstant(*u.TerminalVelocity, 0, math.MaxFloat64, c.TerminalVelocity)
	}
	if u.Friction != nil {
		c.Friction = clampConstant(*u.Friction, 0, 1, c.Friction)
	}
	if u.AirResistance != nil {
		c.AirResistance = clampConstant(*u.AirResistance, 0, 1, c.AirResistance)
	}
	return c
}

// constantsUpdateFromMap accepts both the camelCase and the snake_case
// spelling of each key.
func constantsUpdateFromMap(values map[string]float64) ConstantsUpdate {
	var u ConstantsUpdate
	for key, v := range values {
		v := v
		switch key {
		case "gravity":
			u.Gravity = &v
		case "terminalVelocity", "terminal_velocity":
			u.TerminalVelocity = &v
		case "friction":
			u.Friction = &v
		case "airResistance", "air_resistance":
			u.AirResistance = &v
		default:
			log.Printf("physics: update constants: ignoring unknown key %q", key)
		}
	}
	return u
}

func clampConstant(v, lo, hi, fallback float64) float64 {
	if !common.Finite(v) {
		log.Printf("physics: constant %v is not finite, keeping %v", v, fallback)
		return fallback
	}
	return cp.Clamp(v, lo, hi)
}
