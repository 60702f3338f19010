package camera

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformcore/common"
	"github.com/milk9111/platformcore/physics"
)

const (
	DefaultSmoothing     = 0.1
	DefaultDeadZoneW     = 100
	DefaultDeadZoneH     = 50
	verticalSmoothFactor = 0.5
)

// Target is an entity the camera can follow. Its box position is the point
// kept at the follow offset on screen.
type Target interface {
	Box() physics.Box
}

// Bounds is the range the camera's top-left corner may occupy.
type Bounds struct {
	Left, Right, Top, Bottom float64
}

// Camera tracks a viewport over a stage. The authoritative position is the
// viewport's top-left corner in world units; shake only affects Position.
// Methods on a nil *Camera are no-ops, getters return zero values and the
// transforms are the identity.
type Camera struct {
	pos cp.Vector

	viewW, viewH   float64
	stageW, stageH float64
	bounds         Bounds

	followOffset cp.Vector
	deadZone     physics.Size
	// smoothing factor (0..1). higher -> faster follow.
	smooth float64
	target Target

	shake Shake
	rand  func() float64
}

type Option func(*Camera)

func WithSmoothing(f float64) Option {
	return func(c *Camera) { c.SetSmoothing(f) }
}

func WithDeadZone(w, h float64) Option {
	return func(c *Camera) { c.SetDeadZone(w, h) }
}

// WithFollowOffset sets where on screen the target is kept. Defaults to the
// viewport center.
func WithFollowOffset(x, y float64) Option {
	return func(c *Camera) { c.SetFollowOffset(x, y) }
}

// WithRand sets the random source used for shake offsets.
func WithRand(r *rand.Rand) Option {
	return func(c *Camera) {
		if r != nil {
			c.rand = r.Float64
		}
	}
}

// New creates a camera with a viewW×viewH viewport over a stageW×stageH stage.
func New(viewW, viewH, stageW, stageH float64, opts ...Option) *Camera {
	c := &Camera{
		viewW:    math.Max(0, viewW),
		viewH:    math.Max(0, viewH),
		deadZone: physics.Size{W: DefaultDeadZoneW, H: DefaultDeadZoneH},
		smooth:   DefaultSmoothing,
		rand:     rand.Float64,
	}
	c.followOffset = cp.Vector{X: c.viewW / 2, Y: c.viewH / 2}
	for _, opt := range opts {
		opt(c)
	}
	c.UpdateStageBounds(stageW, stageH)
	return c
}

// Follow sets the entity the camera pursues on Update.
func (c *Camera) Follow(t Target) {
	if c == nil {
		return
	}
	c.target = t
}

func (c *Camera) Unfollow() {
	if c == nil {
		return
	}
	c.target = nil
}

func (c *Camera) Target() Target {
	if c == nil {
		return nil
	}
	return c.target
}

// Update runs shake decay, smoothed follow and the boundary clamp, in that
// order. Call once per simulation tick after collisions are resolved.
func (c *Camera) Update(dt time.Duration) {
	if c == nil {
		return
	}
	c.updateShake(dt)
	if c.target != nil {
		c.follow()
	}
	c.ClampToBounds()
}

// follow eases the viewport toward the position that puts the target at the
// follow offset. Nothing moves while the target stays inside the dead zone;
// vertical pursuit runs at half the horizontal rate.
func (c *Camera) follow() {
	tb := c.target.Box()
	if !tb.Valid() {
		log.Printf("camera: follow: invalid target box %+v", tb)
		return
	}
	desired := tb.Pos.Sub(c.followOffset)

	if math.Abs(desired.X-c.pos.X) > c.deadZone.W/2 {
		c.pos.X = common.Lerp(c.pos.X, desired.X, c.smooth)
	}
	if math.Abs(desired.Y-c.pos.Y) > c.deadZone.H/2 {
		c.pos.Y = common.Lerp(c.pos.Y, desired.Y, c.smooth*verticalSmoothFactor)
	}
}

// ClampToBounds forces the authoritative position into the stage bounds.
func (c *Camera) ClampToBounds() {
	if c == nil {
		return
	}
	c.pos.X = cp.Clamp(c.pos.X, c.bounds.Left, c.bounds.Right)
	c.pos.Y = cp.Clamp(c.pos.Y, c.bounds.Top, c.bounds.Bottom)
}

// UpdateStageBounds recomputes the bounds for a new stage size. When the
// stage is smaller than the viewport the range collapses to zero.
func (c *Camera) UpdateStageBounds(stageW, stageH float64) {
	if c == nil {
		return
	}
	if !common.Finite(stageW, stageH) || stageW < 0 || stageH < 0 {
		log.Printf("camera: update stage bounds: invalid size %vx%v", stageW, stageH)
		return
	}
	c.stageW, c.stageH = stageW, stageH
	c.recomputeBounds()
}

// SetViewportSize updates the logical screen size and the derived bounds.
func (c *Camera) SetViewportSize(w, h float64) {
	if c == nil {
		return
	}
	if !common.Finite(w, h) || w <= 0 || h <= 0 {
		return
	}
	if c.viewW == w && c.viewH == h {
		return
	}
	c.viewW, c.viewH = w, h
	c.recomputeBounds()
}

func (c *Camera) recomputeBounds() {
	c.bounds = Bounds{
		Left:   0,
		Right:  math.Max(0, c.stageW-c.viewW),
		Top:    0,
		Bottom: math.Max(0, c.stageH-c.viewH),
	}
	c.ClampToBounds()
}

// SnapTo places the viewport's top-left corner immediately, without
// smoothing, then clamps it. Use after a level load or respawn.
func (c *Camera) SnapTo(x, y float64) {
	if c == nil {
		return
	}
	if !common.Finite(x, y) {
		log.Printf("camera: snap to: invalid position (%v, %v)", x, y)
		return
	}
	c.pos = cp.Vector{X: x, Y: y}
	c.ClampToBounds()
}

// CenterOn snaps so the target sits exactly at the follow offset.
func (c *Camera) CenterOn(t Target) {
	if c == nil || t == nil {
		return
	}
	p := t.Box().Pos.Sub(c.followOffset)
	c.SnapTo(p.X, p.Y)
}

// SetSmoothing sets the follow rate, clamped to [0, 1].
func (c *Camera) SetSmoothing(f float64) {
	if c == nil {
		return
	}
	if !common.Finite(f) {
		return
	}
	c.smooth = cp.Clamp01(f)
}

// SetDeadZone sets the dead zone size. Negative sizes become zero.
func (c *Camera) SetDeadZone(w, h float64) {
	if c == nil {
		return
	}
	if !common.Finite(w, h) {
		return
	}
	c.deadZone = physics.Size{W: math.Max(0, w), H: math.Max(0, h)}
}

func (c *Camera) SetFollowOffset(x, y float64) {
	if c == nil {
		return
	}
	if !common.Finite(x, y) {
		return
	}
	c.followOffset = cp.Vector{X: x, Y: y}
}

func (c *Camera) Smoothing() float64 {
	if c == nil {
		return 0
	}
	return c.smooth
}

func (c *Camera) DeadZone() physics.Size {
	if c == nil {
		return physics.Size{}
	}
	return c.deadZone
}

func (c *Camera) FollowOffset() cp.Vector {
	if c == nil {
		return cp.Vector{}
	}
	return c.followOffset
}

func (c *Camera) Bounds() Bounds {
	if c == nil {
		return Bounds{}
	}
	return c.bounds
}

// BasePosition returns the authoritative, unshaken top-left corner.
func (c *Camera) BasePosition() cp.Vector {
	if c == nil {
		return cp.Vector{}
	}
	return c.pos
}
