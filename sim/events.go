package sim

import "github.com/milk9111/platformcore/physics"

// CollisionEventKind identifies collision event types.
type CollisionEventKind string

const (
	CollisionEventGrounded  CollisionEventKind = "grounded"
	CollisionEventHitHazard CollisionEventKind = "hazard"
	CollisionEventWall      CollisionEventKind = "wall"
	CollisionEventCeiling   CollisionEventKind = "ceiling"
)

// CollisionEvent is emitted when a body's contact state changes.
type CollisionEvent struct {
	Body      *physics.Body
	Kind      CollisionEventKind
	Direction physics.Direction
	Obstacle  physics.Obstacle
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []CollisionEvent
}

// Push adds an event.
func (q *EventQueue) Push(evt CollisionEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []CollisionEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
