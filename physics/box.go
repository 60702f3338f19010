package physics

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformcore/common"
)

// Size is a width/height pair in world units.
type Size struct {
	W float64 `yaml:"w" json:"w"`
	H float64 `yaml:"h" json:"h"`
}

// Box is an axis-aligned rectangle whose Pos is the top-left corner.
type Box struct {
	Pos  cp.Vector
	Size Size
}

// HasBox is implemented by anything that occupies world space.
type HasBox interface {
	Box() Box
}

func NewBox(x, y, w, h float64) Box {
	return Box{Pos: cp.Vector{X: x, Y: y}, Size: Size{W: w, H: h}}
}

func (b Box) Left() float64   { return b.Pos.X }
func (b Box) Right() float64  { return b.Pos.X + b.Size.W }
func (b Box) Top() float64    { return b.Pos.Y }
func (b Box) Bottom() float64 { return b.Pos.Y + b.Size.H }

func (b Box) Center() cp.Vector {
	return cp.Vector{X: b.Pos.X + b.Size.W/2, Y: b.Pos.Y + b.Size.H/2}
}

// Valid reports whether the box has finite coordinates and a non-negative size.
func (b Box) Valid() bool {
	if !common.Finite(b.Pos.X, b.Pos.Y, b.Size.W, b.Size.H) {
		return false
	}
	return b.Size.W >= 0 && b.Size.H >= 0
}

// Degenerate reports whether the box has no area.
func (b Box) Degenerate() bool {
	return b.Size.W <= 0 || b.Size.H <= 0
}

// BB converts to a chipmunk bounding box. B holds the top edge and T the
// bottom edge, matching screen space where y grows downward.
func (b Box) BB() cp.BB {
	return cp.BB{L: b.Left(), B: b.Top(), R: b.Right(), T: b.Bottom()}
}

// Overlaps reports whether a and b intersect on both axes. Touching edges
// do not count and boxes without area never overlap anything.
func Overlaps(a, b Box) bool {
	if !a.Valid() || !b.Valid() || a.Degenerate() || b.Degenerate() {
		return false
	}
	return a.Left() < b.Right() &&
		a.Right() > b.Left() &&
		a.Top() < b.Bottom() &&
		a.Bottom() > b.Top()
}

// FindOverlaps returns, in input order, every candidate overlapping subject.
// It never returns nil.
func FindOverlaps[T HasBox](subject HasBox, candidates []T) []T {
	out := make([]T, 0)
	if subject == nil {
		log.Printf("physics: find overlaps: nil subject")
		return out
	}
	sb := subject.Box()
	if !sb.Valid() {
		log.Printf("physics: find overlaps: invalid subject box %+v", sb)
		return out
	}
	for _, c := range candidates {
		if any(c) == nil {
			continue
		}
		if Overlaps(sb, c.Box()) {
			out = append(out, c)
		}
	}
	return out
}

// ContainsPoint reports whether (x, y) lies inside b, edges included.
func ContainsPoint(x, y float64, b Box) bool {
	if !b.Valid() {
		return false
	}
	return b.BB().ContainsVect(cp.Vector{X: x, Y: y})
}
