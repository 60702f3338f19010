package physics

import (
	"math"
	"time"
)

// frictionSnap is the horizontal speed below which friction stops a body.
const frictionSnap = 0.1

// Engine integrates bodies with one set of constants. It keeps no reference
// to the bodies it is handed.
type Engine struct {
	constants Constants
}

func NewEngine(c Constants) *Engine {
	return &Engine{constants: c.Clamped()}
}

// Constants returns a copy of the current constants.
func (e *Engine) Constants() Constants {
	if e == nil {
		return DefaultConstants()
	}
	return e.constants
}

// UpdateConstants clamps and stores every key present in u and returns the
// resulting constants.
func (e *Engine) UpdateConstants(u ConstantsUpdate) Constants {
	if e == nil {
		return DefaultConstants()
	}
	e.constants = u.applyTo(e.constants)
	return e.constants
}

// UpdateConstantsMap is UpdateConstants for loosely typed input such as
// decoded JSON or console commands.
func (e *Engine) UpdateConstantsMap(values map[string]float64) Constants {
	return e.UpdateConstants(constantsUpdateFromMap(values))
}

// ApplyGravity accelerates the body downward and caps the fall speed at the
// terminal velocity. Non-positive steps are ignored.
func (e *Engine) ApplyGravity(m Mover, dt time.Duration) {
	b := bodyOf(m, "apply gravity")
	if e == nil || b == nil || dt <= 0 {
		return
	}
	b.Velocity.Y += e.constants.Gravity * dt.Seconds()
	if b.Velocity.Y > e.constants.TerminalVelocity {
		b.Velocity.Y = e.constants.TerminalVelocity
	}
}

// ApplyFriction damps horizontal speed with ground friction or air
// resistance and snaps it to zero once it falls below frictionSnap.
// The damping is per call; dt is accepted for call-site symmetry.
func (e *Engine) ApplyFriction(m Mover, dt time.Duration, onGround bool) {
	b := bodyOf(m, "apply friction")
	if e == nil || b == nil {
		return
	}
	factor := e.constants.AirResistance
	if onGround {
		factor = e.constants.Friction
	}
	b.Velocity.X *= factor
	if math.Abs(b.Velocity.X) < frictionSnap {
		b.Velocity.X = 0
	}
}

// UpdatePosition advances the body by velocity × dt on each axis.
// Non-positive steps are ignored.
func (e *Engine) UpdatePosition(m Mover, dt time.Duration) {
	b := bodyOf(m, "update position")
	if e == nil || b == nil || dt <= 0 {
		return
	}
	b.Position = b.Position.Add(b.Velocity.Mult(dt.Seconds()))
}

// Integrate runs gravity, friction (using the body's own ground flag) and the
// position update in that order.
func (e *Engine) Integrate(m Mover, dt time.Duration) {
	b := bodyOf(m, "integrate")
	if e == nil || b == nil {
		return
	}
	e.ApplyGravity(b, dt)
	e.ApplyFriction(b, dt, b.OnGround)
	e.UpdatePosition(b, dt)
}
