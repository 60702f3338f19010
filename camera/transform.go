package camera

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformcore/physics"
)

// Viewport is the rendered world rectangle.
type Viewport struct {
	X, Y, W, H float64
}

func (v Viewport) Box() physics.Box {
	return physics.NewBox(v.X, v.Y, v.W, v.H)
}

func (c *Camera) Viewport() Viewport {
	if c == nil {
		return Viewport{}
	}
	p := c.Position()
	return Viewport{X: p.X, Y: p.Y, W: c.viewW, H: c.viewH}
}

func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	p := c.Position()
	return x - p.X, y - p.Y
}

func (c *Camera) ScreenToWorld(x, y float64) (float64, float64) {
	p := c.Position()
	return x + p.X, y + p.Y
}

// IsPointVisible reports whether a world point lies in the rendered
// viewport, edges included.
func (c *Camera) IsPointVisible(x, y float64) bool {
	if c == nil {
		return false
	}
	return c.Viewport().Box().BB().ContainsVect(cp.Vector{X: x, Y: y})
}

// IsRectVisible reports whether any part of a world rectangle, edges
// included, falls inside the rendered viewport.
func (c *Camera) IsRectVisible(x, y, w, h float64) bool {
	r := physics.NewBox(x, y, w, h)
	if c == nil || !r.Valid() {
		return false
	}
	return c.Viewport().Box().BB().Intersects(r.BB())
}

// IsVisible is IsRectVisible for anything with a box.
func (c *Camera) IsVisible(t physics.HasBox) bool {
	if c == nil || t == nil {
		return false
	}
	b := t.Box()
	return c.IsRectVisible(b.Pos.X, b.Pos.Y, b.Size.W, b.Size.H)
}
