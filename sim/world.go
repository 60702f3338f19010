package sim

import (
	"time"

	"github.com/milk9111/platformcore/camera"
	"github.com/milk9111/platformcore/physics"
)

// World owns the per-tick pipeline. Bodies and obstacles belong to the
// caller; the world only holds references between ticks.
type World struct {
	Engine    *physics.Engine
	Camera    *camera.Camera
	Obstacles []physics.Obstacle

	bodies    []physics.Mover
	scheduler *Scheduler
	events    EventQueue
	ticks     uint64
}

// NewWorld creates a world running integration, collision and camera
// systems in that order. cam may be nil.
func NewWorld(engine *physics.Engine, cam *camera.Camera, obstacles []physics.Obstacle) *World {
	if engine == nil {
		engine = physics.NewEngine(physics.DefaultConstants())
	}
	return &World{
		Engine:    engine,
		Camera:    cam,
		Obstacles: obstacles,
		scheduler: NewScheduler(
			NewIntegrationSystem(),
			NewCollisionSystem(),
			NewCameraSystem(),
		),
	}
}

// SetScheduler replaces the system order.
func (w *World) SetScheduler(s *Scheduler) {
	if w == nil || s == nil {
		return
	}
	w.scheduler = s
}

func (w *World) AddBody(m physics.Mover) {
	if w == nil || m == nil {
		return
	}
	w.bodies = append(w.bodies, m)
}

// RemoveBody drops m from the world and reports whether it was present.
func (w *World) RemoveBody(m physics.Mover) bool {
	if w == nil || m == nil {
		return false
	}
	for i, b := range w.bodies {
		if b == m {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return true
		}
	}
	return false
}

func (w *World) Bodies() []physics.Mover {
	if w == nil {
		return nil
	}
	return w.bodies
}

// Tick advances the simulation by dt. Events left undrained from the
// previous tick are discarded first.
func (w *World) Tick(dt time.Duration) {
	if w == nil {
		return
	}
	w.events.flush()
	w.scheduler.Update(w, dt)
	w.ticks++
}

// Ticks returns the number of completed ticks.
func (w *World) Ticks() uint64 {
	if w == nil {
		return 0
	}
	return w.ticks
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
