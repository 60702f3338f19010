package camera

import (
	"log"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformcore/common"
)

// Shake is a decaying random offset applied to the rendered position.
type Shake struct {
	Intensity float64
	Duration  time.Duration
	Timer     time.Duration
	OffsetX   float64
	OffsetY   float64
}

// StartShake begins a shake of the given intensity (world units) that fades
// out over d. A new shake replaces one in progress.
func (c *Camera) StartShake(intensity float64, d time.Duration) {
	if c == nil {
		return
	}
	if !common.Finite(intensity) || intensity <= 0 || d <= 0 {
		log.Printf("camera: start shake: ignoring intensity=%v duration=%v", intensity, d)
		return
	}
	c.shake = Shake{Intensity: intensity, Duration: d, Timer: d}
}

// StopShake cancels any shake in progress.
func (c *Camera) StopShake() {
	if c == nil {
		return
	}
	c.shake = Shake{}
}

func (c *Camera) Shaking() bool {
	if c == nil {
		return false
	}
	return c.shake.Timer > 0
}

func (c *Camera) ShakeState() Shake {
	if c == nil {
		return Shake{}
	}
	return c.shake
}

func (c *Camera) updateShake(dt time.Duration) {
	if c.shake.Timer <= 0 {
		c.shake.OffsetX, c.shake.OffsetY = 0, 0
		return
	}
	c.shake.Timer -= dt
	if c.shake.Timer <= 0 {
		c.StopShake()
		return
	}
	remaining := c.shake.Timer.Seconds() / c.shake.Duration.Seconds()
	c.shake.OffsetX = (c.rand() - 0.5) * c.shake.Intensity * remaining
	c.shake.OffsetY = (c.rand() - 0.5) * c.shake.Intensity * remaining
}

// Position returns the rendered top-left corner: the authoritative position
// plus the current shake offset.
func (c *Camera) Position() cp.Vector {
	if c == nil {
		return cp.Vector{}
	}
	return cp.Vector{X: c.pos.X + c.shake.OffsetX, Y: c.pos.Y + c.shake.OffsetY}
}
