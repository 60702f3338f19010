package physics

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
)

// Direction names the side of the mover that met the obstacle.
type Direction string

const (
	DirNone   Direction = ""
	DirLeft   Direction = "left"
	DirRight  Direction = "right"
	DirTop    Direction = "top"
	DirBottom Direction = "bottom"
)

// Resolution reports what Resolve did. Overlap holds the signed penetration
// on both axes measured before the push; only the resolved axis was applied.
type Resolution struct {
	Resolved  bool
	Direction Direction
	Overlap   cp.Vector
}

// Horizontal reports whether the push was along X.
func (r Resolution) Horizontal() bool {
	return r.Direction == DirLeft || r.Direction == DirRight
}

// Resolve pushes the mover out of obstacle along the axis of least
// penetration and zeroes the velocity on that axis. Landing on top of the
// obstacle raises the ground flag; the flag is never cleared here.
// Touching edges do not overlap, so a resting or sliding contact is left alone.
func Resolve(m Mover, obstacle HasBox) Resolution {
	b := bodyOf(m, "resolve")
	if b == nil {
		return Resolution{}
	}
	if obstacle == nil {
		log.Printf("physics: resolve: nil obstacle")
		return Resolution{}
	}
	mb, ob := b.Box(), obstacle.Box()
	if !mb.Valid() || !ob.Valid() {
		log.Printf("physics: resolve: malformed boxes mover=%+v obstacle=%+v", mb, ob)
		return Resolution{}
	}
	if !Overlaps(mb, ob) {
		return Resolution{}
	}

	overlap := cp.Vector{
		X: smallerMagnitude(mb.Right()-ob.Left(), -(ob.Right() - mb.Left())),
		Y: smallerMagnitude(mb.Bottom()-ob.Top(), -(ob.Bottom() - mb.Top())),
	}
	res := Resolution{Resolved: true, Overlap: overlap}

	if math.Abs(overlap.X) < math.Abs(overlap.Y) {
		b.Position.X -= overlap.X
		b.Velocity.X = 0
		if overlap.X > 0 {
			res.Direction = DirLeft
		} else {
			res.Direction = DirRight
		}
		return res
	}

	b.Position.Y -= overlap.Y
	b.Velocity.Y = 0
	if overlap.Y > 0 {
		res.Direction = DirBottom
		b.OnGround = true
	} else {
		res.Direction = DirTop
	}
	return res
}

// ResolveAll resolves the mover against every obstacle that overlaps it at
// call time, in input order. The returned slice has one entry per candidate;
// a candidate an earlier push already cleared reports Resolved false.
func ResolveAll[T HasBox](m Mover, obstacles []T) []Resolution {
	b := bodyOf(m, "resolve all")
	if b == nil {
		return []Resolution{}
	}
	hits := FindOverlaps[T](b, obstacles)
	out := make([]Resolution, 0, len(hits))
	for _, o := range hits {
		out = append(out, Resolve(b, o))
	}
	return out
}

func smallerMagnitude(a, b float64) float64 {
	if math.Abs(b) < math.Abs(a) {
		return b
	}
	return a
}
