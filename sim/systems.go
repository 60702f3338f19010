package sim

import (
	"time"

	"github.com/milk9111/platformcore/physics"
)

// IntegrationSystem applies gravity and friction, then moves each body.
type IntegrationSystem struct{}

func NewIntegrationSystem() *IntegrationSystem {
	return &IntegrationSystem{}
}

func (s *IntegrationSystem) Update(w *World, dt time.Duration) {
	if w == nil || w.Engine == nil {
		return
	}
	for _, m := range w.bodies {
		w.Engine.Integrate(m, dt)
	}
}

// CollisionSystem resolves each body against the static solids and reports
// contacts. The ground flag is recomputed from scratch every tick.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Update(w *World, _ time.Duration) {
	if w == nil {
		return
	}
	for _, m := range w.bodies {
		b := m.PhysicsBody()
		if b == nil {
			continue
		}
		wasGrounded := b.OnGround
		b.OnGround = false

		hits := physics.FindOverlaps(b, w.Obstacles)
		solids := make([]physics.Obstacle, 0, len(hits))
		for _, o := range hits {
			if o.Kind == physics.KindHazard {
				w.events.Push(CollisionEvent{Body: b, Kind: CollisionEventHitHazard, Obstacle: o})
				continue
			}
			solids = append(solids, o)
		}

		for i, res := range physics.ResolveAll(b, solids) {
			if !res.Resolved {
				continue
			}
			switch {
			case res.Horizontal():
				w.events.Push(CollisionEvent{Body: b, Kind: CollisionEventWall, Direction: res.Direction, Obstacle: solids[i]})
			case res.Direction == physics.DirTop:
				w.events.Push(CollisionEvent{Body: b, Kind: CollisionEventCeiling, Direction: res.Direction, Obstacle: solids[i]})
			}
		}

		if b.OnGround && !wasGrounded {
			w.events.Push(CollisionEvent{Body: b, Kind: CollisionEventGrounded, Direction: physics.DirBottom})
		}
	}
}

// CameraSystem updates the camera from the corrected body positions.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Update(w *World, dt time.Duration) {
	if w == nil || w.Camera == nil {
		return
	}
	w.Camera.Update(dt)
}
