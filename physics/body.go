package physics

import (
	"log"

	"github.com/jakecoffman/cp"
)

// Kind classifies static level geometry.
type Kind int

const (
	KindSolid Kind = iota
	KindHazard
)

func (k Kind) String() string {
	switch k {
	case KindSolid:
		return "solid"
	case KindHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Obstacle is a piece of static geometry. The engine never mutates it.
type Obstacle struct {
	Bounds Box
	Kind   Kind
}

func (o Obstacle) Box() Box {
	return o.Bounds
}

// Body is the kinematic state of a movable entity. The engine mutates it in
// place; the caller owns its storage.
type Body struct {
	Position cp.Vector
	Velocity cp.Vector
	Size     Size
	OnGround bool
}

// Mover hands the engine a mutable body. Game types embed Body to satisfy it.
type Mover interface {
	PhysicsBody() *Body
}

func (b *Body) PhysicsBody() *Body {
	return b
}

func (b *Body) Box() Box {
	if b == nil {
		return Box{}
	}
	return Box{Pos: b.Position, Size: b.Size}
}

func bodyOf(m Mover, op string) *Body {
	if m == nil {
		log.Printf("physics: %s: nil mover", op)
		return nil
	}
	b := m.PhysicsBody()
	if b == nil {
		log.Printf("physics: %s: mover has no body", op)
		return nil
	}
	return b
}
